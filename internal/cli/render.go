package cli

import (
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/gocube_stickering/internal/logger"
	"github.com/SeamusWaldron/gocube_stickering/internal/render"
	"github.com/SeamusWaldron/gocube_stickering/internal/storage"
)

var (
	renderOutput string
	renderTitle  string
)

var renderCmd = &cobra.Command{
	Use:   "render [NAME...]",
	Short: "Render presets to an HTML page",
	Long: `Write an HTML page with one twisty-player per stored preset, each showing
its alg with the preset's stickering. With names only those presets are
rendered, in the order given.`,
	RunE: runRender,
}

func init() {
	rootCmd.AddCommand(renderCmd)
	renderCmd.Flags().StringVarP(&renderOutput, "output", "o", "", "Output file (default: render.output)")
	renderCmd.Flags().StringVar(&renderTitle, "title", "", "Page title (default: render.title)")
}

func runRender(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()
	repo := storage.NewPresetRepository(db)

	var presets []storage.Preset
	if len(args) == 0 {
		if presets, err = repo.List(0); err != nil {
			return err
		}
	} else {
		for _, name := range args {
			p, err := repo.GetByName(name)
			if err != nil {
				return err
			}
			presets = append(presets, *p)
		}
	}
	if len(presets) == 0 {
		return errors.WithHint(errors.New("no presets to render"),
			"add one with 'stickering preset add' or 'stickering import'")
	}

	output := renderOutput
	if output == "" {
		output = cfg.Render.Output
	}
	title := renderTitle
	if title == "" {
		title = cfg.Render.Title
	}

	opts := render.PageOptions{Title: title, ScriptURL: cfg.Render.ScriptURL}
	if err := render.WritePageFile(output, presets, opts); err != nil {
		return err
	}

	logger.Named("render").Infow("Rendered page",
		logger.FieldPath, output,
		logger.FieldCount, len(presets))
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d preset(s) to %s\n", len(presets), output)
	return nil
}
