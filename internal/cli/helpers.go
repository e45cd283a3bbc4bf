package cli

import (
	"encoding/json"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	stickering "github.com/SeamusWaldron/gocube_stickering"
	"github.com/SeamusWaldron/gocube_stickering/internal/storage"
)

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	moveStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("82"))

	currentMoveStyle = lipgloss.NewStyle().
				Bold(true).
				Underline(true).
				Foreground(lipgloss.Color("39"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

// openDB opens the preset database named by the config.
func openDB() (*storage.DB, error) {
	return storage.Open(cfg.Database.Path)
}

// maskFlags are the per-option piece lists shared by build and preset add.
type maskFlags struct {
	defaultOption string
	pieces        map[stickering.Option]*[]string
	sets          []string
}

func (f *maskFlags) register(cmd *cobra.Command) {
	f.pieces = make(map[stickering.Option]*[]string, len(stickering.Options))
	for _, o := range stickering.Options {
		var list []string
		f.pieces[o] = &list
		cmd.Flags().StringSliceVar(&list, flagName(o), nil, "Pieces shown as "+string(o))
	}
	cmd.Flags().StringVar(&f.defaultOption, "default", "", "Option for pieces not named (default: builder.default_option)")
	cmd.Flags().StringArrayVar(&f.sets, "set", nil, `Ordered assignment "option=PIECE,PIECE"; applied after the option flags`)
}

// flagName turns orientedWithoutPermutation into oriented-without-permutation.
func flagName(o stickering.Option) string {
	var b strings.Builder
	for _, r := range string(o) {
		if r >= 'A' && r <= 'Z' {
			b.WriteByte('-')
			r += 'a' - 'A'
		}
		b.WriteRune(r)
	}
	return b.String()
}

// custom assembles the stickering: option flags in option order, then --set
// entries in the order given.
func (f *maskFlags) custom() (stickering.Custom, error) {
	var c stickering.Custom
	for _, o := range stickering.Options {
		if list := *f.pieces[o]; len(list) > 0 {
			c = c.Set(o, stickering.ParsePieces(strings.Join(list, ","))...)
		}
	}
	for _, s := range f.sets {
		name, pieces, ok := strings.Cut(s, "=")
		if !ok {
			return nil, errors.WithHint(errors.Newf("invalid --set %q", s), `use --set option=PIECE,PIECE`)
		}
		o, err := stickering.ParseOption(strings.TrimSpace(name))
		if err != nil {
			return nil, err
		}
		c = c.Set(o, stickering.ParsePieces(pieces)...)
	}
	return c, nil
}

func (f *maskFlags) build() (stickering.Mask, error) {
	c, err := f.custom()
	if err != nil {
		return stickering.Mask{}, err
	}
	def := cfg.DefaultOption()
	if f.defaultOption != "" {
		def, err = stickering.ParseOption(f.defaultOption)
		if err != nil {
			return stickering.Mask{}, err
		}
	}
	return stickering.Build(c, stickering.WithDefault(def))
}

// resolvedMask is a mask given on the command line, either literally or as a
// preset name.
type resolvedMask struct {
	orbits stickering.OrbitsMask
	preset *storage.Preset
}

// resolveMask accepts a serialized mask or the name of a stored preset.
func resolveMask(value string) (resolvedMask, error) {
	if value == "" {
		return resolvedMask{}, errors.WithHint(errors.New("no mask given"),
			"pass --mask with a serialized mask or a preset name")
	}
	if strings.Contains(value, ":") {
		m, err := stickering.ParseMask(value)
		if err != nil {
			return resolvedMask{}, err
		}
		return resolvedMask{orbits: m.Orbits()}, nil
	}

	db, err := openDB()
	if err != nil {
		return resolvedMask{}, err
	}
	defer db.Close()

	p, err := storage.NewPresetRepository(db).GetByName(value)
	if err != nil {
		return resolvedMask{}, err
	}
	om, err := p.Orbits()
	if err != nil {
		return resolvedMask{}, err
	}
	return resolvedMask{orbits: om, preset: p}, nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// maskOutput prints the compact form when there is one, JSON otherwise.
func maskOutput(w io.Writer, om stickering.OrbitsMask, forceJSON bool) error {
	if !forceJSON {
		m, err := om.Compact()
		if err == nil {
			_, err = io.WriteString(w, m.String()+"\n")
			return err
		}
		if !errors.Is(err, stickering.ErrNotCompact) {
			return err
		}
	}
	return writeJSON(w, om)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
