package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	stickering "github.com/SeamusWaldron/gocube_stickering"
	"github.com/SeamusWaldron/gocube_stickering/internal/cube"
	"github.com/SeamusWaldron/gocube_stickering/internal/render"
)

var (
	showMask  string
	showSetup string
	showPlain bool
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Draw a mask on the cube net",
	Long: `Draw the unfolded cube with each sticker shown as the mask asks: coloured
when regular, darker when dim, grey when only its orientation matters, a dot
when ignored and blank when invisible.

With --setup the cube is shown in the setup state and the mask follows the
pieces there. A stored preset is shown in the state of its own setup alg,
followed by --setup when given.

Examples:
  stickering show --mask "EDGES:----IIIIIIII,CORNERS:IIIIIIII,CENTERS:-IIIII"
  stickering show --mask cross --setup "x2"`,
	Args: cobra.NoArgs,
	RunE: runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)
	showCmd.Flags().StringVar(&showMask, "mask", "", "Serialized mask or preset name")
	showCmd.Flags().StringVar(&showSetup, "setup", "", "Setup alg")
	showCmd.Flags().BoolVar(&showPlain, "plain", false, "Plain letters instead of coloured stickers")
}

func runShow(cmd *cobra.Command, args []string) error {
	in, err := resolveMask(showMask)
	if err != nil {
		return err
	}

	// A stored preset's mask already sits in the state of its own setup alg.
	om := in.orbits
	var state string
	if in.preset != nil {
		state = deref(in.preset.SetupAlg)
	}
	if showSetup != "" {
		t, err := stickering.ParseTransformation(showSetup)
		if err != nil {
			return err
		}
		if om, err = stickering.Transform(om, t); err != nil {
			return err
		}
		state = strings.TrimSpace(state + "\n" + showSetup)
	}

	t, err := stickering.ParseTransformation(state)
	if err != nil {
		return err
	}
	net, err := cube.Paint(om, t)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if showPlain {
		fmt.Fprint(out, net.String())
		return nil
	}

	nr := render.NewNetRenderer(lipgloss.NewRenderer(out))
	fmt.Fprintln(out, nr.Render(net))
	fmt.Fprintln(out)
	fmt.Fprintln(out, nr.Legend())
	return nil
}
