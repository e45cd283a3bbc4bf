package stickering

import (
	"github.com/cockroachdb/errors"

	"github.com/SeamusWaldron/gocube_stickering/internal/notation"
	"github.com/SeamusWaldron/gocube_stickering/pkg/kpuzzle"
	"github.com/SeamusWaldron/gocube_stickering/pkg/types"
)

// Transformation is a 3x3 cube transformation: per orbit, the slot each
// piece comes from and how far it twists on the way.
type Transformation = kpuzzle.Transformation

// Transform moves every piece's facelet mask to where the transformation
// takes the piece. For each destination slot i:
//
//	src, ori := Permutation[i], OrientationDelta[i]
//	out[i] = rotateLeft(in[src][:numOrientations], ori)
//
// Both inputs are validated first; a malformed transformation returns
// ErrInvalidTransformation and a malformed mask ErrInvalidMask.
func Transform(mask OrbitsMask, t Transformation) (OrbitsMask, error) {
	puzzle := kpuzzle.Cube3x3()
	if err := puzzle.Validate(t); err != nil {
		return OrbitsMask{}, err
	}
	if err := mask.Validate(); err != nil {
		return OrbitsMask{}, err
	}

	out := OrbitsMask{Orbits: make(map[string]OrbitMask, len(puzzle.Orbits))}
	for _, orbit := range puzzle.Orbits {
		in := mask.Orbits[orbit.Name].Pieces
		ot := t[orbit.Name]

		pieces := make([]PieceMask, orbit.NumPieces)
		for i := 0; i < orbit.NumPieces; i++ {
			src := ot.Permutation[i]
			ori := ot.OrientationDelta[i]
			facelets := in[src].Facelets[:orbit.NumOrientations]
			rotated := make([]FaceletMask, 0, len(facelets))
			rotated = append(rotated, facelets[ori:]...)
			rotated = append(rotated, facelets[:ori]...)
			pieces[i] = PieceMask{Facelets: rotated}
		}
		out.Orbits[orbit.Name] = OrbitMask{Pieces: pieces}
	}

	return out, nil
}

// ParseTransformation returns the transformation of an alg.
func ParseTransformation(alg string) (Transformation, error) {
	moves, err := notation.Parse(alg)
	if err != nil {
		return nil, err
	}
	return MovesTransformation(moves)
}

// MovesTransformation returns the transformation of a move sequence.
func MovesTransformation(moves []types.Move) (Transformation, error) {
	return kpuzzle.Cube3x3().AlgTransformation(moves)
}

// ApplySetup moves the mask's stickering along with the pieces as the setup
// alg is performed.
func ApplySetup(mask Mask, alg string) (OrbitsMask, error) {
	if mask.IsZero() {
		return OrbitsMask{}, errors.Wrap(ErrInvalidMask, "empty mask")
	}
	t, err := ParseTransformation(alg)
	if err != nil {
		return OrbitsMask{}, errors.Wrapf(err, "setup %q", alg)
	}
	return Transform(mask.Orbits(), t)
}

// Steps returns the mask after each prefix of the alg: element 0 is the
// untouched mask, element i the mask after the first i moves.
func Steps(mask OrbitsMask, moves []types.Move) ([]OrbitsMask, error) {
	puzzle := kpuzzle.Cube3x3()
	steps := make([]OrbitsMask, 0, len(moves)+1)
	steps = append(steps, mask.Clone())

	current := mask
	for _, m := range moves {
		t, err := puzzle.MoveTransformation(m)
		if err != nil {
			return nil, err
		}
		current, err = Transform(current, t)
		if err != nil {
			return nil, err
		}
		steps = append(steps, current)
	}
	return steps, nil
}

// Identity returns the transformation that leaves every piece in place.
func Identity() Transformation {
	return kpuzzle.Cube3x3().Identity()
}
