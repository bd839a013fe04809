// CFOP Cube Solver - CLI application for scrambling, validating, and solving a Rubik's Cube.
package main

import (
	"github.com/mackworth/cfop/internal/cli"
)

func main() {
	cli.Execute()
}
