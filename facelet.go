package stickering

import (
	"slices"

	"github.com/cockroachdb/errors"
)

// FaceletMask is how the widget draws one sticker.
type FaceletMask string

const (
	FaceletRegular   FaceletMask = "regular"
	FaceletDim       FaceletMask = "dim"
	FaceletOriented  FaceletMask = "oriented"
	FaceletIgnored   FaceletMask = "ignored"
	FaceletInvisible FaceletMask = "invisible"
)

// faceletPair is the (primary, other) sticker treatment of a mask character.
type faceletPair struct {
	primary FaceletMask
	other   FaceletMask
}

var charFacelets = map[byte]faceletPair{
	'-': {FaceletRegular, FaceletRegular},
	'D': {FaceletDim, FaceletDim},
	'I': {FaceletIgnored, FaceletIgnored},
	'P': {FaceletRegular, FaceletIgnored},
	'O': {FaceletDim, FaceletRegular},
	'o': {FaceletDim, FaceletIgnored},
	'?': {FaceletOriented, FaceletIgnored},
	'X': {FaceletInvisible, FaceletInvisible},
}

// PieceMask holds the treatment of each sticker of one piece, starting with
// its primary sticker.
type PieceMask struct {
	Facelets []FaceletMask `json:"facelets"`
}

// OrbitMask holds the piece masks of one orbit in slot order.
type OrbitMask struct {
	Pieces []PieceMask `json:"pieces"`
}

// OrbitsMask is the per-facelet form of a mask, shaped like the widget's
// experimentalStickeringMaskOrbits object.
type OrbitsMask struct {
	Orbits map[string]OrbitMask `json:"orbits"`
}

// Orbits expands the mask into its per-facelet form. Each piece gets one
// facelet per orientation.
func (m Mask) Orbits() OrbitsMask {
	out := OrbitsMask{Orbits: make(map[string]OrbitMask, len(Classes))}
	for _, c := range Classes {
		pieces := make([]PieceMask, c.NumSlots())
		for i, ch := range m.slots[c] {
			pair := charFacelets[ch]
			facelets := make([]FaceletMask, c.NumOrientations())
			facelets[0] = pair.primary
			for k := 1; k < len(facelets); k++ {
				facelets[k] = pair.other
			}
			pieces[i] = PieceMask{Facelets: facelets}
		}
		out.Orbits[c.Orbit()] = OrbitMask{Pieces: pieces}
	}
	return out
}

// Validate checks that every orbit is present with the right number of
// pieces and that each piece has at least one facelet per orientation.
func (om OrbitsMask) Validate() error {
	for _, c := range Classes {
		orbit, ok := om.Orbits[c.Orbit()]
		if !ok {
			return errors.Wrapf(ErrInvalidMask, "missing orbit %s", c.Orbit())
		}
		if len(orbit.Pieces) != c.NumSlots() {
			return errors.Wrapf(ErrInvalidMask, "orbit %s: expected %d pieces, got %d", c.Orbit(), c.NumSlots(), len(orbit.Pieces))
		}
		for i, p := range orbit.Pieces {
			if len(p.Facelets) < c.NumOrientations() {
				return errors.Wrapf(ErrInvalidMask, "orbit %s piece %d: expected %d facelets, got %d",
					c.Orbit(), i, c.NumOrientations(), len(p.Facelets))
			}
		}
	}
	return nil
}

// Compact converts the per-facelet form back to a serialized mask. It fails
// with ErrNotCompact when a piece's facelets match no character, which
// happens when a setup twists a piece whose stickers differ.
func (om OrbitsMask) Compact() (Mask, error) {
	if err := om.Validate(); err != nil {
		return Mask{}, err
	}

	var m Mask
	for _, c := range Classes {
		pieces := om.Orbits[c.Orbit()].Pieces
		chars := make([]byte, len(pieces))
		for i, p := range pieces {
			ch, ok := charForFacelets(p.Facelets[:c.NumOrientations()])
			if !ok {
				return Mask{}, errors.Wrapf(ErrNotCompact, "%s %s", c, c.Slots()[i])
			}
			chars[i] = ch
		}
		m.slots[c] = chars
	}
	return m, nil
}

// charForFacelets finds the character whose expansion equals facelets.
func charForFacelets(facelets []FaceletMask) (byte, bool) {
	for i := 0; i < len(validChars); i++ {
		ch := validChars[i]
		pair := charFacelets[ch]
		if facelets[0] != pair.primary {
			continue
		}
		match := true
		for _, f := range facelets[1:] {
			if f != pair.other {
				match = false
				break
			}
		}
		if match {
			return ch, true
		}
	}
	return 0, false
}

// Clone returns a deep copy.
func (om OrbitsMask) Clone() OrbitsMask {
	out := OrbitsMask{Orbits: make(map[string]OrbitMask, len(om.Orbits))}
	for name, orbit := range om.Orbits {
		pieces := make([]PieceMask, len(orbit.Pieces))
		for i, p := range orbit.Pieces {
			pieces[i] = PieceMask{Facelets: slices.Clone(p.Facelets)}
		}
		out.Orbits[name] = OrbitMask{Pieces: pieces}
	}
	return out
}

// Equal reports whether two facelet masks are identical.
func (om OrbitsMask) Equal(other OrbitsMask) bool {
	if len(om.Orbits) != len(other.Orbits) {
		return false
	}
	for name, orbit := range om.Orbits {
		o, ok := other.Orbits[name]
		if !ok || len(o.Pieces) != len(orbit.Pieces) {
			return false
		}
		for i := range orbit.Pieces {
			if !slices.Equal(orbit.Pieces[i].Facelets, o.Pieces[i].Facelets) {
				return false
			}
		}
	}
	return true
}

// Piece returns the facelet mask of a named piece.
func (om OrbitsMask) Piece(p Piece) (PieceMask, error) {
	class, idx, err := p.Slot()
	if err != nil {
		return PieceMask{}, err
	}
	orbit, ok := om.Orbits[class.Orbit()]
	if !ok || idx >= len(orbit.Pieces) {
		return PieceMask{}, errors.Wrapf(ErrInvalidMask, "no %s in mask", p)
	}
	return orbit.Pieces[idx], nil
}
