// Package cfop models a 3x3 Rubik's cube and solves it with the CFOP
// method.
//
// # Cube model
//
// The cube is six packed faces indexed by color, 4 bits per sticker,
// with the solved orientation White up and Green front. Turns are
// table-driven cyclic permutations and use standard notation:
//
//	cube := cfop.NewCube()
//	cube.Apply(cfop.R, cfop.U, cfop.RPrime, cfop.UPrime)
//	cube.ApplyNotation("F B2 L' D")
//	fmt.Println(cube.IsSolved())
//
// Arbitrary sticker configurations can be checked for physical
// reachability:
//
//	cube, err := cfop.ParseNet("GGGGGGGG RRRRRRRR ...")
//	fmt.Println(cube.Valid())
//
// # Solving
//
// A Solver runs the CFOP pipeline, mutating the cube in place and
// returning the tidied solution with per-stage timings:
//
//	solver := cfop.NewSolver()
//	scramble := solver.Scramble(cube)
//	report, err := solver.Solve(cube)
//	fmt.Println(report.Notation())
//
// The cross is solved optimally by breadth-first search over a packed
// edge state; F2L inserts pairs via a case lookup with sexy-move
// retrieval. The OLL and PLL stages are stubs: they run as pipeline
// stages but currently leave the cube untouched, so Solve finishes with
// the first two layers done and the last layer unsolved.
//
// # Stage detection
//
// The package also detects CFOP stages on arbitrary states, with a
// monotonic Tracker for following a solve in progress:
//
//	tracker := cfop.NewTracker()
//	tracker.SetStageCallback(func(s cfop.Stage, key string) {
//	    fmt.Println("reached:", s.DisplayName())
//	})
//	tracker.ApplyTurns(turns)
package cfop
