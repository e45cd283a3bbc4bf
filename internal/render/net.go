// Package render draws stickerings: coloured nets for the terminal and
// twisty-player pages for the browser.
package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	stickering "github.com/SeamusWaldron/gocube_stickering"
	"github.com/SeamusWaldron/gocube_stickering/internal/cube"
)

// Sticker glyphs by facelet mask.
const (
	glyphSticker  = "■"
	glyphDim      = "□"
	glyphOriented = "◆"
	glyphIgnored  = "·"
	glyphHidden   = " "
)

var faceColors = map[cube.Color]lipgloss.Color{
	cube.White:  lipgloss.Color("255"),
	cube.Yellow: lipgloss.Color("226"),
	cube.Green:  lipgloss.Color("34"),
	cube.Blue:   lipgloss.Color("27"),
	cube.Red:    lipgloss.Color("196"),
	cube.Orange: lipgloss.Color("208"),
}

// dimColors are darker shades of the face colors.
var dimColors = map[cube.Color]lipgloss.Color{
	cube.White:  lipgloss.Color("245"),
	cube.Yellow: lipgloss.Color("100"),
	cube.Green:  lipgloss.Color("22"),
	cube.Blue:   lipgloss.Color("18"),
	cube.Red:    lipgloss.Color("88"),
	cube.Orange: lipgloss.Color("130"),
}

// NetRenderer draws a cube net with lipgloss styles.
type NetRenderer struct {
	r        *lipgloss.Renderer
	oriented lipgloss.Style
	ignored  lipgloss.Style
	label    lipgloss.Style
}

// NewNetRenderer returns a renderer for r, or for the default renderer when r
// is nil.
func NewNetRenderer(r *lipgloss.Renderer) *NetRenderer {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	return &NetRenderer{
		r:        r,
		oriented: r.NewStyle().Foreground(lipgloss.Color("250")),
		ignored:  r.NewStyle().Foreground(lipgloss.Color("238")),
		label:    r.NewStyle().Foreground(lipgloss.Color("241")),
	}
}

// Sticker renders one facelet.
func (nr *NetRenderer) Sticker(s cube.Sticker) string {
	switch s.Mask {
	case stickering.FaceletRegular:
		return nr.r.NewStyle().Foreground(faceColors[s.Color]).Render(glyphSticker)
	case stickering.FaceletDim:
		return nr.r.NewStyle().Foreground(dimColors[s.Color]).Render(glyphDim)
	case stickering.FaceletOriented:
		return nr.oriented.Render(glyphOriented)
	case stickering.FaceletIgnored:
		return nr.ignored.Render(glyphIgnored)
	default:
		return glyphHidden
	}
}

func (nr *NetRenderer) row(n *cube.Net, face cube.Face, row int) string {
	var b strings.Builder
	for _, s := range n.Row(face, row) {
		b.WriteString(nr.Sticker(s))
		b.WriteByte(' ')
	}
	return b.String()
}

// Render draws the net in the usual cross layout: U above, L F R B in a
// row, D below.
func (nr *NetRenderer) Render(n *cube.Net) string {
	var lines []string
	indent := strings.Repeat(" ", 6)

	for row := 0; row < 3; row++ {
		lines = append(lines, indent+nr.row(n, cube.U, row))
	}
	for row := 0; row < 3; row++ {
		var b strings.Builder
		for _, face := range []cube.Face{cube.L, cube.F, cube.R, cube.B} {
			b.WriteString(nr.row(n, face, row))
		}
		lines = append(lines, b.String())
	}
	for row := 0; row < 3; row++ {
		lines = append(lines, indent+nr.row(n, cube.D, row))
	}

	return strings.Join(lines, "\n")
}

// Legend explains the glyphs.
func (nr *NetRenderer) Legend() string {
	parts := []string{
		nr.Sticker(cube.Sticker{Color: cube.White, Mask: stickering.FaceletRegular}) + " regular",
		nr.Sticker(cube.Sticker{Color: cube.White, Mask: stickering.FaceletDim}) + " dim",
		nr.oriented.Render(glyphOriented) + " oriented",
		nr.ignored.Render(glyphIgnored) + " ignored",
	}
	return nr.label.Render(strings.Join(parts, "   "))
}
