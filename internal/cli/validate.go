package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mackworth/cfop"
)

var validateCmd = &cobra.Command{
	Use:   "validate <net>",
	Short: "Check whether a sticker net is a reachable cube state",
	Long: `Check whether a 48-letter sticker net describes a cube state reachable
by turning a solved cube.

The net lists each face's eight stickers clockwise from the top-left,
faces in the order green, red, white, blue, orange, yellow. Sticker
letters are G, R, W, B, O, Y. Whitespace is ignored, so the net can be
split across arguments for readability.

A hand-entered net can fail in three ways: a sticker combination that
is not a real piece, a piece that is flipped or twisted in place, or
two pieces swapped. All three are reported as unreachable.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	var net string
	for _, arg := range args {
		net += arg
	}

	cube, err := cfop.ParseNet(net)
	if err != nil {
		return err
	}

	if !cube.Valid() {
		fmt.Println(cube)
		return fmt.Errorf("net is not a reachable cube state")
	}

	fmt.Println(cube)
	fmt.Printf("Valid. Stage: %s\n", cube.DetectStage().DisplayName())
	return nil
}
