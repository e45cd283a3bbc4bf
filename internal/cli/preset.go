package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	stickering "github.com/SeamusWaldron/gocube_stickering"
	"github.com/SeamusWaldron/gocube_stickering/internal/logger"
	"github.com/SeamusWaldron/gocube_stickering/internal/notation"
	"github.com/SeamusWaldron/gocube_stickering/internal/storage"
)

var (
	presetFlags maskFlags
	presetMask  string
	presetSetup string
	presetAlg   string
	presetForce bool
	presetLimit int
	presetJSON  bool
)

var presetCmd = &cobra.Command{
	Use:   "preset",
	Short: "Manage named stickering presets",
}

var presetAddCmd = &cobra.Command{
	Use:   "add NAME",
	Short: "Store a named preset",
	Long: `Store a mask under a name. The mask comes from --mask or from the same
option flags as build. The stored mask is in the state of --setup.

Examples:
  stickering preset add cross --solved DF,DR,DB,DL,D --dim F,R,B,L
  stickering preset add oll --mask "EDGES:IIII--------,CORNERS:IIII----,CENTERS:I-----" --alg "F R U R' U' F'"`,
	Args: cobra.ExactArgs(1),
	RunE: runPresetAdd,
}

var presetListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored presets",
	Args:  cobra.NoArgs,
	RunE:  runPresetList,
}

var presetShowCmd = &cobra.Command{
	Use:   "show NAME",
	Short: "Print a stored preset",
	Args:  cobra.ExactArgs(1),
	RunE:  runPresetShow,
}

var presetDeleteCmd = &cobra.Command{
	Use:   "delete NAME",
	Short: "Delete a stored preset",
	Args:  cobra.ExactArgs(1),
	RunE:  runPresetDelete,
}

func init() {
	rootCmd.AddCommand(presetCmd)
	presetCmd.AddCommand(presetAddCmd, presetListCmd, presetShowCmd, presetDeleteCmd)

	presetFlags.register(presetAddCmd)
	presetAddCmd.Flags().StringVar(&presetMask, "mask", "", "Serialized mask (instead of option flags)")
	presetAddCmd.Flags().StringVar(&presetSetup, "setup", "", "Setup alg")
	presetAddCmd.Flags().StringVar(&presetAlg, "alg", "", "Alg shown with the preset")
	presetAddCmd.Flags().BoolVarP(&presetForce, "force", "f", false, "Replace an existing preset")

	presetListCmd.Flags().IntVarP(&presetLimit, "limit", "n", 0, "Maximum presets to list (0 for all)")

	presetShowCmd.Flags().BoolVar(&presetJSON, "json", false, "Print the mask in JSON facelet form")
}

func runPresetAdd(cmd *cobra.Command, args []string) error {
	name := args[0]

	var mask stickering.Mask
	var err error
	if presetMask != "" {
		mask, err = stickering.ParseMask(presetMask)
	} else {
		mask, err = presetFlags.build()
	}
	if err != nil {
		return err
	}

	if presetAlg != "" {
		if _, err := notation.Parse(presetAlg); err != nil {
			return errors.Wrap(err, "alg")
		}
	}
	om, err := stickering.ApplySetup(mask, presetSetup)
	if err != nil {
		return err
	}

	p, err := storage.NewPreset(name, om, presetSetup, presetAlg, "")
	if err != nil {
		return err
	}

	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()
	repo := storage.NewPresetRepository(db)

	var id string
	if presetForce {
		id, err = repo.Upsert(p)
	} else {
		id, err = repo.Create(p)
	}
	if err != nil {
		return err
	}

	logger.Named("preset").Infow("Stored preset",
		logger.FieldPreset, name,
		logger.FieldPresetID, id,
		logger.FieldMask, p.Mask)
	fmt.Fprintf(cmd.OutOrStdout(), "Stored preset %s (%s)\n", name, id)
	return nil
}

func runPresetList(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	presets, err := storage.NewPresetRepository(db).List(presetLimit)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(presets) == 0 {
		fmt.Fprintln(out, "No presets stored.")
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tFORMAT\tSETUP\tSOURCE")
	for _, p := range presets {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", p.Name, p.MaskFormat, deref(p.SetupAlg), deref(p.Source))
	}
	return w.Flush()
}

func runPresetShow(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	p, err := storage.NewPresetRepository(db).GetByName(args[0])
	if err != nil {
		return err
	}
	om, err := p.Orbits()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Name:    %s\n", p.Name)
	fmt.Fprintf(out, "ID:      %s\n", p.PresetID)
	if s := deref(p.SetupAlg); s != "" {
		fmt.Fprintf(out, "Setup:   %s\n", s)
	}
	if a := deref(p.Alg); a != "" {
		fmt.Fprintf(out, "Alg:     %s\n", a)
	}
	if s := deref(p.Source); s != "" {
		fmt.Fprintf(out, "Source:  %s\n", s)
	}
	fmt.Fprintf(out, "Updated: %s\n", p.UpdatedAt.Local().Format("2006-01-02 15:04"))
	fmt.Fprint(out, "Mask:    ")
	return maskOutput(out, om, presetJSON)
}

func runPresetDelete(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	if err := storage.NewPresetRepository(db).Delete(args[0]); err != nil {
		return err
	}
	logger.Named("preset").Infow("Deleted preset", logger.FieldPreset, args[0])
	fmt.Fprintf(cmd.OutOrStdout(), "Deleted preset %s\n", args[0])
	return nil
}
