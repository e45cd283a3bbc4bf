package kpuzzle

import (
	"slices"
	"strings"
	"sync"

	"github.com/cockroachdb/errors"

	"github.com/SeamusWaldron/gocube_stickering/pkg/types"
)

// ErrUnknownMove is returned for a move family the puzzle does not define.
var ErrUnknownMove = errors.New("stickering: unknown move")

// Orbit names of the 3x3 cube, in canonical order.
const (
	OrbitEdges   = "EDGES"
	OrbitCorners = "CORNERS"
	OrbitCenters = "CENTERS"
)

// Puzzle is a definition together with the transformations of its moves.
type Puzzle struct {
	Definition
	moves map[types.Family]Transformation
}

var (
	cube3x3     *Puzzle
	cube3x3Once sync.Once
)

// Cube3x3 returns the 3x3x3 cube puzzle.
//
// Piece order:
//
//	EDGES:   UF UR UB UL DF DR DB DL FR FL BR BL
//	CORNERS: UFR UBR UBL UFL DFR DFL DBL DBR
//	CENTERS: U L F R B D
//
// Facelet 0 of each edge and corner is its U/D sticker (F/B for the four
// equator edges); corner facelets follow in the order URB, UBL, ULF ...
func Cube3x3() *Puzzle {
	cube3x3Once.Do(func() {
		cube3x3 = newCube3x3()
	})
	return cube3x3
}

func orbitT(perm, ori []int) OrbitTransformation {
	return OrbitTransformation{Permutation: perm, OrientationDelta: ori}
}

func cubeT(edges, corners, centers OrbitTransformation) Transformation {
	return Transformation{
		OrbitEdges:   edges,
		OrbitCorners: corners,
		OrbitCenters: centers,
	}
}

var (
	noEdgeTwist   = []int{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}
	noCornerTwist = []int{0, 0, 0, 0, 0, 0, 0, 0}
	centersFixed  = []int{0, 1, 2, 3, 4, 5}
)

func newCube3x3() *Puzzle {
	p := &Puzzle{
		Definition: Definition{
			Name: "3x3x3",
			Orbits: []OrbitDefinition{
				{Name: OrbitEdges, NumPieces: 12, NumOrientations: 2},
				{Name: OrbitCorners, NumPieces: 8, NumOrientations: 3},
				{Name: OrbitCenters, NumPieces: 6, NumOrientations: 4},
			},
		},
		moves: make(map[types.Family]Transformation),
	}

	// Quarter turns of the outer layers and two whole-cube rotations.
	// Everything else is composed from these.
	p.moves[types.FamilyU] = cubeT(
		orbitT([]int{1, 2, 3, 0, 4, 5, 6, 7, 8, 9, 10, 11}, noEdgeTwist),
		orbitT([]int{1, 2, 3, 0, 4, 5, 6, 7}, noCornerTwist),
		orbitT(centersFixed, []int{1, 0, 0, 0, 0, 0}),
	)
	p.moves[types.FamilyL] = cubeT(
		orbitT([]int{0, 1, 2, 11, 4, 5, 6, 9, 8, 3, 10, 7}, noEdgeTwist),
		orbitT([]int{0, 1, 6, 2, 4, 3, 5, 7}, []int{0, 0, 2, 1, 0, 2, 1, 0}),
		orbitT(centersFixed, []int{0, 1, 0, 0, 0, 0}),
	)
	p.moves[types.FamilyF] = cubeT(
		orbitT([]int{9, 1, 2, 3, 8, 5, 6, 7, 0, 4, 10, 11}, []int{1, 0, 0, 0, 1, 0, 0, 0, 1, 1, 0, 0}),
		orbitT([]int{3, 1, 2, 5, 0, 4, 6, 7}, []int{1, 0, 0, 2, 2, 1, 0, 0}),
		orbitT(centersFixed, []int{0, 0, 1, 0, 0, 0}),
	)
	p.moves[types.FamilyR] = cubeT(
		orbitT([]int{0, 8, 2, 3, 4, 10, 6, 7, 5, 9, 1, 11}, noEdgeTwist),
		orbitT([]int{4, 0, 2, 3, 7, 5, 6, 1}, []int{2, 1, 0, 0, 1, 0, 0, 2}),
		orbitT(centersFixed, []int{0, 0, 0, 1, 0, 0}),
	)
	p.moves[types.FamilyB] = cubeT(
		orbitT([]int{0, 1, 10, 3, 4, 5, 11, 7, 8, 9, 6, 2}, []int{0, 0, 1, 0, 0, 0, 1, 0, 0, 0, 1, 1}),
		orbitT([]int{0, 7, 1, 3, 4, 5, 2, 6}, []int{0, 2, 1, 0, 0, 0, 2, 1}),
		orbitT(centersFixed, []int{0, 0, 0, 0, 1, 0}),
	)
	p.moves[types.FamilyD] = cubeT(
		orbitT([]int{0, 1, 2, 3, 7, 4, 5, 6, 8, 9, 10, 11}, noEdgeTwist),
		orbitT([]int{0, 1, 2, 3, 5, 6, 7, 4}, noCornerTwist),
		orbitT(centersFixed, []int{0, 0, 0, 0, 0, 1}),
	)
	p.moves[types.FamilyX] = cubeT(
		orbitT([]int{4, 8, 0, 9, 6, 10, 2, 11, 5, 7, 1, 3}, []int{1, 0, 1, 0, 1, 0, 1, 0, 0, 0, 0, 0}),
		orbitT([]int{4, 0, 3, 5, 7, 6, 2, 1}, []int{2, 1, 2, 1, 1, 2, 1, 2}),
		orbitT([]int{2, 1, 5, 3, 0, 4}, []int{0, 3, 0, 1, 2, 2}),
	)
	p.moves[types.FamilyY] = cubeT(
		orbitT([]int{1, 2, 3, 0, 5, 6, 7, 4, 10, 8, 11, 9}, []int{0, 0, 0, 0, 0, 0, 0, 0, 1, 1, 1, 1}),
		orbitT([]int{1, 2, 3, 0, 7, 4, 5, 6}, noCornerTwist),
		orbitT([]int{0, 2, 3, 4, 1, 5}, []int{1, 0, 0, 0, 0, 3}),
	)

	p.moves[types.FamilyZ] = p.seq("x", "y", "x'")
	p.moves[types.FamilyM] = p.seq("R", "L'", "x'")
	p.moves[types.FamilyE] = p.seq("U", "D'", "y'")
	p.moves[types.FamilyS] = p.seq("F'", "B", "z")

	wide := map[types.Family]Transformation{
		"r": p.seq("L", "x"),
		"l": p.seq("R", "x'"),
		"u": p.seq("D", "y"),
		"d": p.seq("U", "y'"),
		"f": p.seq("B", "z"),
		"b": p.seq("F", "z'"),
	}
	for family, t := range wide {
		p.moves[family] = t
		p.moves[types.Family(strings.ToUpper(string(family))+"w")] = t
	}

	return p
}

// seq composes already-defined moves given as "R" or "R'". Only used while
// building the move table, so unknown names are a programming error.
func (p *Puzzle) seq(names ...string) Transformation {
	out := p.Identity()
	for _, name := range names {
		t, ok := p.moves[types.Family(name[:1])]
		if !ok {
			panic("kpuzzle: move " + name + " used before it is defined")
		}
		if len(name) > 1 {
			t = p.Invert(t)
		}
		out = p.Compose(out, t)
	}
	return out
}

// Families returns the move families the puzzle understands, sorted.
func (p *Puzzle) Families() []types.Family {
	out := make([]types.Family, 0, len(p.moves))
	for f := range p.moves {
		out = append(out, f)
	}
	slices.Sort(out)
	return out
}

// MoveTransformation returns the transformation of a single move.
func (p *Puzzle) MoveTransformation(m types.Move) (Transformation, error) {
	t, ok := p.moves[m.Family]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownMove, "%s", m.Notation())
	}
	return p.Repeat(t, m.QuarterTurns()), nil
}

// AlgTransformation returns the combined transformation of a move sequence.
func (p *Puzzle) AlgTransformation(moves []types.Move) (Transformation, error) {
	out := p.Identity()
	for _, m := range moves {
		t, err := p.MoveTransformation(m)
		if err != nil {
			return nil, err
		}
		out = p.Compose(out, t)
	}
	return out, nil
}
