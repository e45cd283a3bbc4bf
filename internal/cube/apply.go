package cube

import (
	stickering "github.com/SeamusWaldron/gocube_stickering"
	"github.com/SeamusWaldron/gocube_stickering/pkg/kpuzzle"
	"github.com/SeamusWaldron/gocube_stickering/pkg/types"
)

// FromSetup paints the net a learner sees after the setup alg is applied to
// a solved cube carrying mask.
func FromSetup(mask stickering.Mask, alg string) (*Net, error) {
	t, err := stickering.ParseTransformation(alg)
	if err != nil {
		return nil, err
	}
	om, err := stickering.Transform(mask.Orbits(), t)
	if err != nil {
		return nil, err
	}
	return Paint(om, t)
}

// Stepper paints the net move by move through an alg. It starts from the
// state reached by a setup and keeps the mask moving with the pieces.
type Stepper struct {
	moves []types.Move
	nets  []*Net
}

// NewStepper precomputes the net before the first move and after every move.
func NewStepper(mask stickering.Mask, setup string, moves []types.Move) (*Stepper, error) {
	start, err := stickering.ParseTransformation(setup)
	if err != nil {
		return nil, err
	}
	om, err := stickering.Transform(mask.Orbits(), start)
	if err != nil {
		return nil, err
	}
	steps, err := stickering.Steps(om, moves)
	if err != nil {
		return nil, err
	}

	nets := make([]*Net, len(steps))
	state := start
	for i, step := range steps {
		if i > 0 {
			mt, err := stickering.MovesTransformation(moves[i-1 : i])
			if err != nil {
				return nil, err
			}
			state = kpuzzle.Cube3x3().Compose(state, mt)
		}
		n, err := Paint(step, state)
		if err != nil {
			return nil, err
		}
		nets[i] = n
	}

	return &Stepper{moves: moves, nets: nets}, nil
}

// Len returns the number of positions: one more than the number of moves.
func (s *Stepper) Len() int {
	return len(s.nets)
}

// Net returns the net after the first i moves.
func (s *Stepper) Net(i int) *Net {
	return s.nets[i]
}

// Moves returns the alg being stepped through.
func (s *Stepper) Moves() []types.Move {
	return s.moves
}
