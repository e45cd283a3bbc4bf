package cli

import (
	"github.com/spf13/cobra"

	stickering "github.com/SeamusWaldron/gocube_stickering"
	"github.com/SeamusWaldron/gocube_stickering/internal/logger"
)

var (
	buildFlags maskFlags
	buildSetup string
	buildJSON  bool
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build a stickering mask",
	Long: `Build a mask from the pieces given for each option. Pieces not named get the
default option. A piece named more than once takes the option given last.

With --setup the mask is moved along with the pieces as the setup alg is
performed. A twisted piece whose stickers differ has no serialized form; the
JSON facelet form is printed instead.

Examples:
  stickering build --solved DF,DR,DB,DL,D --dim F,R,B,L
  stickering build --default dim --oriented UF,UR,UB,UL,U
  stickering build --set solved=UF --set ignored=UF --setup "R U"
  stickering build --permuted UFR --setup R --json`,
	Args: cobra.NoArgs,
	RunE: runBuild,
}

func init() {
	rootCmd.AddCommand(buildCmd)
	buildFlags.register(buildCmd)
	buildCmd.Flags().StringVar(&buildSetup, "setup", "", "Setup alg to move the mask with")
	buildCmd.Flags().BoolVar(&buildJSON, "json", false, "Print the JSON facelet form")
}

func runBuild(cmd *cobra.Command, args []string) error {
	mask, err := buildFlags.build()
	if err != nil {
		return err
	}

	om, err := stickering.ApplySetup(mask, buildSetup)
	if err != nil {
		return err
	}
	logger.Named("build").Debugw("Built mask", logger.FieldMask, mask.String(), logger.FieldSetup, buildSetup)

	return maskOutput(cmd.OutOrStdout(), om, buildJSON)
}
