// Package kpuzzle models a permutation puzzle as a set of orbits, each a
// fixed number of pieces with a fixed number of orientations, and the
// transformations that moves apply to them.
//
// A transformation maps every destination slot to the slot its piece comes
// from, plus an orientation delta for the piece arriving there:
//
//	after[i] = before[Permutation[i]] twisted by OrientationDelta[i]
//
// Transformations compose left to right, so Compose(a, b) means "a, then b".
package kpuzzle

import (
	"github.com/cockroachdb/errors"
)

// ErrInvalidTransformation is returned when a transformation does not fit its definition.
var ErrInvalidTransformation = errors.New("stickering: invalid transformation")

// OrbitDefinition describes one class of pieces.
type OrbitDefinition struct {
	Name            string `json:"orbitName"`
	NumPieces       int    `json:"numPieces"`
	NumOrientations int    `json:"numOrientations"`
}

// Definition describes a puzzle: its orbits in canonical order.
type Definition struct {
	Name   string            `json:"name"`
	Orbits []OrbitDefinition `json:"orbits"`
}

// Orbit returns the definition of the named orbit.
func (d *Definition) Orbit(name string) (OrbitDefinition, bool) {
	for _, o := range d.Orbits {
		if o.Name == name {
			return o, true
		}
	}
	return OrbitDefinition{}, false
}

// OrbitTransformation is the per-orbit part of a Transformation.
type OrbitTransformation struct {
	Permutation      []int `json:"permutation"`
	OrientationDelta []int `json:"orientationDelta"`
}

// Transformation maps orbit name to its permutation and orientation deltas.
type Transformation map[string]OrbitTransformation

// Identity returns the transformation that leaves every piece in place.
func (d *Definition) Identity() Transformation {
	t := make(Transformation, len(d.Orbits))
	for _, o := range d.Orbits {
		perm := make([]int, o.NumPieces)
		for i := range perm {
			perm[i] = i
		}
		t[o.Name] = OrbitTransformation{
			Permutation:      perm,
			OrientationDelta: make([]int, o.NumPieces),
		}
	}
	return t
}

// Validate checks that t has every orbit of d with correctly sized arrays,
// that each permutation is a bijection and every delta is in range.
func (d *Definition) Validate(t Transformation) error {
	if len(t) != len(d.Orbits) {
		return errors.Wrapf(ErrInvalidTransformation, "expected %d orbits, got %d", len(d.Orbits), len(t))
	}

	for _, o := range d.Orbits {
		ot, ok := t[o.Name]
		if !ok {
			return errors.Wrapf(ErrInvalidTransformation, "missing orbit %s", o.Name)
		}
		if len(ot.Permutation) != o.NumPieces || len(ot.OrientationDelta) != o.NumPieces {
			return errors.Wrapf(ErrInvalidTransformation, "orbit %s: expected %d pieces, got permutation %d, orientation %d",
				o.Name, o.NumPieces, len(ot.Permutation), len(ot.OrientationDelta))
		}

		seen := make([]bool, o.NumPieces)
		for i, src := range ot.Permutation {
			if src < 0 || src >= o.NumPieces {
				return errors.Wrapf(ErrInvalidTransformation, "orbit %s: slot %d takes piece from out-of-range slot %d", o.Name, i, src)
			}
			if seen[src] {
				return errors.Wrapf(ErrInvalidTransformation, "orbit %s: slot %d used twice", o.Name, src)
			}
			seen[src] = true
		}
		for i, ori := range ot.OrientationDelta {
			if ori < 0 || ori >= o.NumOrientations {
				return errors.Wrapf(ErrInvalidTransformation, "orbit %s: slot %d orientation delta %d outside [0, %d)", o.Name, i, ori, o.NumOrientations)
			}
		}
	}

	return nil
}

// Compose returns the transformation of applying a, then b.
// Both must be valid for d.
func (d *Definition) Compose(a, b Transformation) Transformation {
	out := make(Transformation, len(d.Orbits))
	for _, o := range d.Orbits {
		ta, tb := a[o.Name], b[o.Name]
		perm := make([]int, o.NumPieces)
		ori := make([]int, o.NumPieces)
		for i := 0; i < o.NumPieces; i++ {
			perm[i] = ta.Permutation[tb.Permutation[i]]
			ori[i] = (ta.OrientationDelta[tb.Permutation[i]] + tb.OrientationDelta[i]) % o.NumOrientations
		}
		out[o.Name] = OrbitTransformation{Permutation: perm, OrientationDelta: ori}
	}
	return out
}

// Invert returns the transformation that undoes t.
func (d *Definition) Invert(t Transformation) Transformation {
	out := make(Transformation, len(d.Orbits))
	for _, o := range d.Orbits {
		ot := t[o.Name]
		perm := make([]int, o.NumPieces)
		ori := make([]int, o.NumPieces)
		for i, src := range ot.Permutation {
			perm[src] = i
			ori[src] = (o.NumOrientations - ot.OrientationDelta[i]) % o.NumOrientations
		}
		out[o.Name] = OrbitTransformation{Permutation: perm, OrientationDelta: ori}
	}
	return out
}

// Repeat returns t applied n times; negative n repeats the inverse.
func (d *Definition) Repeat(t Transformation, n int) Transformation {
	if n < 0 {
		t = d.Invert(t)
		n = -n
	}
	out := d.Identity()
	for i := 0; i < n; i++ {
		out = d.Compose(out, t)
	}
	return out
}

// IsIdentity reports whether t leaves every piece in place and untwisted.
func (d *Definition) IsIdentity(t Transformation) bool {
	for _, o := range d.Orbits {
		ot := t[o.Name]
		for i := 0; i < o.NumPieces; i++ {
			if ot.Permutation[i] != i || ot.OrientationDelta[i] != 0 {
				return false
			}
		}
	}
	return true
}

// Equal reports whether two transformations are the same.
func (d *Definition) Equal(a, b Transformation) bool {
	return d.IsIdentity(d.Compose(a, d.Invert(b)))
}
