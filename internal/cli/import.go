package cli

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/gocube_stickering/internal/content"
	"github.com/SeamusWaldron/gocube_stickering/internal/logger"
	"github.com/SeamusWaldron/gocube_stickering/internal/storage"
)

var importWatch bool

var importCmd = &cobra.Command{
	Use:   "import [DIR]",
	Short: "Import stickerings from doc frontmatter",
	Long: `Scan a docs tree for pages whose frontmatter declares stickerings and store
each one as a preset. Existing presets with the same name are updated.

A page declares its stickerings like this:

  ---
  title: Cross
  stickerings:
    - name: cross
      default: ignored
      setup: x2
      pieces:
        solved: DF,DR,DB,DL,D
        dim: F,R,B,L
  ---

DIR defaults to content.dir from the config. With --watch the tree is
re-imported whenever a page changes until interrupted.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runImport,
}

func init() {
	rootCmd.AddCommand(importCmd)
	importCmd.Flags().BoolVarP(&importWatch, "watch", "w", false, "Keep watching and re-import on change")
}

func runImport(cmd *cobra.Command, args []string) error {
	dir := cfg.Content.Dir
	if len(args) > 0 {
		dir = args[0]
	}

	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()
	repo := storage.NewPresetRepository(db)

	res, err := content.Scan(dir, cfg.Content.Extensions)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if err := importDefinitions(out, repo, res); err != nil {
		return err
	}

	if !importWatch {
		return nil
	}

	w, err := content.NewWatcher(dir, cfg.Content.Extensions, time.Duration(cfg.Content.DebounceMS)*time.Millisecond)
	if err != nil {
		return err
	}
	w.OnChange(func(res *content.ScanResult) error {
		return importDefinitions(out, repo, res)
	})
	w.Start()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	fmt.Fprintf(out, "Watching %s (Ctrl+C to stop)\n", dir)
	<-ctx.Done()

	return w.Stop()
}

// importDefinitions builds every definition of a scan and upserts them
// together. Pages the scan skipped and definitions that fail to build are
// reported and left out.
func importDefinitions(out io.Writer, repo *storage.PresetRepository, res *content.ScanResult) error {
	log := logger.Named("import")
	start := time.Now()

	for _, skipped := range res.Skipped {
		fmt.Fprintf(out, "skip %v\n", skipped)
	}

	presets := make([]storage.Preset, 0, len(res.Definitions))
	for _, d := range res.Definitions {
		p, err := d.Preset(cfg.DefaultOption())
		if err != nil {
			log.Warnw("Skipping stickering",
				logger.FieldPreset, d.Name,
				logger.FieldFile, d.Source,
				logger.FieldError, err)
			fmt.Fprintf(out, "skip %s (%s): %v\n", d.Name, d.Source, err)
			continue
		}
		presets = append(presets, p)
	}

	if err := repo.UpsertAll(presets); err != nil {
		return err
	}

	log.Infow("Imported stickerings",
		logger.FieldCount, len(presets),
		logger.FieldDurationMS, time.Since(start).Milliseconds())
	fmt.Fprintf(out, "Imported %d stickering(s)\n", len(presets))
	return nil
}
