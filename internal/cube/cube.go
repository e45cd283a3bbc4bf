// Package cube lays a stickering out on the flat 6x9 net of a 3x3 cube.
package cube

import (
	"strings"

	stickering "github.com/SeamusWaldron/gocube_stickering"
	"github.com/SeamusWaldron/gocube_stickering/pkg/kpuzzle"
)

// Color represents a face color.
type Color byte

const (
	White  Color = 0 // Up face when solved
	Yellow Color = 1 // Down face when solved
	Green  Color = 2 // Front face when solved
	Blue   Color = 3 // Back face when solved
	Red    Color = 4 // Right face when solved
	Orange Color = 5 // Left face when solved
)

func (c Color) String() string {
	switch c {
	case White:
		return "W"
	case Yellow:
		return "Y"
	case Green:
		return "G"
	case Blue:
		return "B"
	case Red:
		return "R"
	case Orange:
		return "O"
	default:
		return "?"
	}
}

// Face represents a cube face.
type Face int

const (
	U Face = 0 // Up (White)
	D Face = 1 // Down (Yellow)
	F Face = 2 // Front (Green)
	B Face = 3 // Back (Blue)
	R Face = 4 // Right (Red)
	L Face = 5 // Left (Orange)
)

// Faces lists every face in net order.
var Faces = []Face{U, D, F, B, R, L}

func (f Face) String() string {
	switch f {
	case U:
		return "U"
	case D:
		return "D"
	case F:
		return "F"
	case B:
		return "B"
	case R:
		return "R"
	case L:
		return "L"
	default:
		return "?"
	}
}

// SolvedColor returns the color of a face when solved.
func (f Face) SolvedColor() Color {
	return Color(f)
}

// Sticker is one facelet of the net.
type Sticker struct {
	Color Color
	Mask  stickering.FaceletMask
}

// Net is the unfolded cube.
// Each face has 9 facelets indexed as:
//
//	0 1 2
//	3 4 5
//	6 7 8
//
// U and D are seen with F towards the bottom and top edge respectively; the
// side faces are seen with U on top.
type Net struct {
	Stickers [6][9]Sticker
}

// location is where one piece facelet sits on the net.
type location struct {
	face  Face
	index int
}

// Net positions of each piece's facelets, in facelet order.
var (
	edgeLocations = [][]location{
		{{U, 7}, {F, 1}}, // UF
		{{U, 5}, {R, 1}}, // UR
		{{U, 1}, {B, 1}}, // UB
		{{U, 3}, {L, 1}}, // UL
		{{D, 1}, {F, 7}}, // DF
		{{D, 5}, {R, 7}}, // DR
		{{D, 7}, {B, 7}}, // DB
		{{D, 3}, {L, 7}}, // DL
		{{F, 5}, {R, 3}}, // FR
		{{F, 3}, {L, 5}}, // FL
		{{B, 3}, {R, 5}}, // BR
		{{B, 5}, {L, 3}}, // BL
	}
	cornerLocations = [][]location{
		{{U, 8}, {F, 2}, {R, 0}}, // UFR
		{{U, 2}, {R, 2}, {B, 0}}, // UBR
		{{U, 0}, {B, 2}, {L, 0}}, // UBL
		{{U, 6}, {L, 2}, {F, 0}}, // UFL
		{{D, 2}, {R, 6}, {F, 8}}, // DFR
		{{D, 0}, {F, 6}, {L, 8}}, // DFL
		{{D, 6}, {L, 6}, {B, 8}}, // DBL
		{{D, 8}, {B, 6}, {R, 8}}, // DBR
	}
	centerFaces = []Face{U, L, F, R, B, D}
)

// New creates a solved net with every sticker regular.
func New() *Net {
	n := &Net{}
	for _, face := range Faces {
		for i := 0; i < 9; i++ {
			n.Stickers[face][i] = Sticker{Color: face.SolvedColor(), Mask: stickering.FaceletRegular}
		}
	}
	return n
}

// Paint builds the net of a cube in state t with the facelet mask om laid
// over it. The mask is expected to be expressed in the same state, as
// returned by stickering.Transform for t.
func Paint(om stickering.OrbitsMask, t stickering.Transformation) (*Net, error) {
	puzzle := kpuzzle.Cube3x3()
	if err := puzzle.Validate(t); err != nil {
		return nil, err
	}
	if err := om.Validate(); err != nil {
		return nil, err
	}

	n := &Net{}
	paintOrbit(n, om, t, kpuzzle.OrbitEdges, edgeLocations)
	paintOrbit(n, om, t, kpuzzle.OrbitCorners, cornerLocations)

	centers := t[kpuzzle.OrbitCenters]
	masks := om.Orbits[kpuzzle.OrbitCenters].Pieces
	for i, face := range centerFaces {
		src := centers.Permutation[i]
		n.Stickers[face][4] = Sticker{
			Color: centerFaces[src].SolvedColor(),
			Mask:  masks[i].Facelets[0],
		}
	}
	return n, nil
}

// paintOrbit colors each facelet with the home face of the sticker the
// transformation brought there.
func paintOrbit(n *Net, om stickering.OrbitsMask, t stickering.Transformation, orbit string, locations [][]location) {
	ot := t[orbit]
	masks := om.Orbits[orbit].Pieces
	for i, locs := range locations {
		src := ot.Permutation[i]
		ori := ot.OrientationDelta[i]
		for k, loc := range locs {
			home := locations[src][(k+ori)%len(locs)]
			n.Stickers[loc.face][loc.index] = Sticker{
				Color: home.face.SolvedColor(),
				Mask:  masks[i].Facelets[k],
			}
		}
	}
}

// IsSolved returns true if every face shows a single color.
func (n *Net) IsSolved() bool {
	for _, face := range Faces {
		want := n.Stickers[face][4].Color
		for i := 0; i < 9; i++ {
			if n.Stickers[face][i].Color != want {
				return false
			}
		}
	}
	return true
}

// Row returns the stickers of one row (0-2) of a face.
func (n *Net) Row(face Face, row int) []Sticker {
	return n.Stickers[face][row*3 : row*3+3]
}

// Symbol is the plain-text glyph of a sticker: the color letter when
// regular, lower case when dim, and a placeholder otherwise.
func (s Sticker) Symbol() string {
	switch s.Mask {
	case stickering.FaceletRegular:
		return s.Color.String()
	case stickering.FaceletDim:
		return strings.ToLower(s.Color.String())
	case stickering.FaceletOriented:
		return "*"
	case stickering.FaceletIgnored:
		return "."
	default:
		return " "
	}
}

// String returns a text representation of the net.
func (n *Net) String() string {
	var b strings.Builder

	writeRow := func(face Face, row int) {
		for _, s := range n.Row(face, row) {
			b.WriteString(s.Symbol())
			b.WriteByte(' ')
		}
	}

	// U face (indented)
	for row := 0; row < 3; row++ {
		b.WriteString("      ")
		writeRow(U, row)
		b.WriteString("\n")
	}

	// L, F, R, B faces (side by side)
	for row := 0; row < 3; row++ {
		for _, face := range []Face{L, F, R, B} {
			writeRow(face, row)
		}
		b.WriteString("\n")
	}

	// D face (indented)
	for row := 0; row < 3; row++ {
		b.WriteString("      ")
		writeRow(D, row)
		b.WriteString("\n")
	}

	return b.String()
}
