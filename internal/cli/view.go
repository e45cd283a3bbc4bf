package cli

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	stickering "github.com/SeamusWaldron/gocube_stickering"
	"github.com/SeamusWaldron/gocube_stickering/internal/cube"
	"github.com/SeamusWaldron/gocube_stickering/internal/notation"
	"github.com/SeamusWaldron/gocube_stickering/internal/render"
)

var (
	viewMask  string
	viewSetup string
	viewAlg   string
	viewSpeed float64
)

var viewCmd = &cobra.Command{
	Use:   "view",
	Short: "Step through an alg with the mask following the pieces",
	Long: `Open an interactive view of the cube net that steps through an alg move by
move. The stickering moves with the pieces, so a highlighted piece can be
followed through the whole alg.

--mask takes a serialized mask or the name of a stored preset; a preset
supplies its own setup and alg unless --setup or --alg are given.

Keys:
  SPACE/n/→  next move        b/←  previous move
  p          play/pause       r    reset
  +/-        speed            q    quit`,
	Args: cobra.NoArgs,
	RunE: runView,
}

func init() {
	rootCmd.AddCommand(viewCmd)
	viewCmd.Flags().StringVar(&viewMask, "mask", "", "Serialized mask or preset name")
	viewCmd.Flags().StringVar(&viewSetup, "setup", "", "Setup alg applied before stepping")
	viewCmd.Flags().StringVar(&viewAlg, "alg", "", "Alg to step through")
	viewCmd.Flags().Float64VarP(&viewSpeed, "speed", "s", 1.0, "Moves per second when playing")
}

func runView(cmd *cobra.Command, args []string) error {
	in, err := resolveMask(viewMask)
	if err != nil {
		return err
	}

	setup, alg := viewSetup, viewAlg
	om := in.orbits
	if in.preset != nil {
		// The stored mask is already in the preset's setup state; undo it so
		// the stepper can start from the solved state.
		if presetSetup := deref(in.preset.SetupAlg); presetSetup != "" {
			moves, err := notation.Parse(presetSetup)
			if err != nil {
				return err
			}
			undo, err := stickering.MovesTransformation(notation.Invert(moves))
			if err != nil {
				return err
			}
			if om, err = stickering.Transform(om, undo); err != nil {
				return err
			}
			if setup == "" {
				setup = presetSetup
			}
		}
		if alg == "" {
			alg = deref(in.preset.Alg)
		}
	}

	mask, err := om.Compact()
	if err != nil {
		return err
	}
	moves, err := notation.Parse(alg)
	if err != nil {
		return err
	}

	stepper, err := cube.NewStepper(mask, setup, moves)
	if err != nil {
		return err
	}

	model := newViewModel(stepper, setup, viewSpeed)
	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("view error: %w", err)
	}
	return nil
}

// viewModel is the bubbletea model of the stepper.
type viewModel struct {
	stepper  *cube.Stepper
	setup    string
	position int
	playing  bool
	speed    float64
	renderer *render.NetRenderer
	quitting bool
}

func newViewModel(stepper *cube.Stepper, setup string, speed float64) *viewModel {
	if speed <= 0 {
		speed = 1
	}
	return &viewModel{
		stepper:  stepper,
		setup:    setup,
		speed:    speed,
		renderer: render.NewNetRenderer(nil),
	}
}

type viewTickMsg time.Time

func (m *viewModel) Init() tea.Cmd {
	return nil
}

func (m *viewModel) tick() tea.Cmd {
	delay := time.Duration(float64(time.Second) / m.speed)
	return tea.Tick(delay, func(t time.Time) tea.Msg {
		return viewTickMsg(t)
	})
}

func (m *viewModel) last() int {
	return m.stepper.Len() - 1
}

func (m *viewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			m.quitting = true
			return m, tea.Quit

		case " ", "n", "right":
			m.playing = false
			if m.position < m.last() {
				m.position++
			}

		case "b", "left":
			m.playing = false
			if m.position > 0 {
				m.position--
			}

		case "p":
			if m.position >= m.last() {
				m.position = 0
			}
			m.playing = !m.playing
			if m.playing {
				return m, m.tick()
			}

		case "r":
			m.position = 0
			m.playing = false

		case "+", "=":
			m.speed *= 2
			if m.speed > 16 {
				m.speed = 16
			}

		case "-":
			m.speed /= 2
			if m.speed < 0.25 {
				m.speed = 0.25
			}
		}

	case viewTickMsg:
		if !m.playing {
			return m, nil
		}
		if m.position < m.last() {
			m.position++
		}
		if m.position >= m.last() {
			m.playing = false
			return m, nil
		}
		return m, m.tick()
	}

	return m, nil
}

func (m *viewModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("Stickering Viewer"))
	b.WriteString("\n\n")

	progress := fmt.Sprintf("Move %d/%d", m.position, m.last())
	if m.playing {
		progress += " [PLAYING]"
	}
	b.WriteString(statusStyle.Render(progress))
	b.WriteString(fmt.Sprintf(" (%.2gx speed)\n", m.speed))
	if m.setup != "" {
		b.WriteString(statusStyle.Render("Setup: " + m.setup))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	moves := m.stepper.Moves()
	if len(moves) > 0 {
		parts := make([]string, len(moves))
		for i, mv := range moves {
			switch {
			case i == m.position-1:
				parts[i] = currentMoveStyle.Render(mv.Notation())
			case i < m.position:
				parts[i] = moveStyle.Render(mv.Notation())
			default:
				parts[i] = statusStyle.Render(mv.Notation())
			}
		}
		b.WriteString("Alg: " + strings.Join(parts, " "))
		b.WriteString("\n\n")
	}

	b.WriteString(m.renderer.Render(m.stepper.Net(m.position)))
	b.WriteString("\n\n")
	b.WriteString(m.renderer.Legend())
	b.WriteString("\n\n")

	b.WriteString(helpStyle.Render("SPACE/n=next  b=back  p=play  r=reset  +/-=speed  q=quit"))
	b.WriteString("\n")

	return b.String()
}
