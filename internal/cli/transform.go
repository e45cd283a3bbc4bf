package cli

import (
	"github.com/spf13/cobra"

	stickering "github.com/SeamusWaldron/gocube_stickering"
)

var (
	transformMask    string
	transformAlg     string
	transformCompact bool
)

var transformCmd = &cobra.Command{
	Use:   "transform",
	Short: "Move a mask along with the pieces of an alg",
	Long: `Apply the transformation of an alg to a mask and print the per-facelet
result as JSON, ready to assign to experimentalStickeringMaskOrbits.

--mask takes a serialized mask or the name of a stored preset.

Examples:
  stickering transform --mask "EDGES:-IIIIIIIIIII,CORNERS:IIIIIIII,CENTERS:IIIIII" --alg "R U"
  stickering transform --mask cross --alg "x2" --compact`,
	Args: cobra.NoArgs,
	RunE: runTransform,
}

func init() {
	rootCmd.AddCommand(transformCmd)
	transformCmd.Flags().StringVar(&transformMask, "mask", "", "Serialized mask or preset name")
	transformCmd.Flags().StringVar(&transformAlg, "alg", "", "Alg whose transformation is applied")
	transformCmd.Flags().BoolVar(&transformCompact, "compact", false, "Print the serialized form when one exists")
}

func runTransform(cmd *cobra.Command, args []string) error {
	in, err := resolveMask(transformMask)
	if err != nil {
		return err
	}

	t, err := stickering.ParseTransformation(transformAlg)
	if err != nil {
		return err
	}
	out, err := stickering.Transform(in.orbits, t)
	if err != nil {
		return err
	}

	if transformCompact {
		return maskOutput(cmd.OutOrStdout(), out, false)
	}
	return writeJSON(cmd.OutOrStdout(), out)
}
