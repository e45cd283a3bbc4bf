package stickering

import (
	"strings"

	"github.com/cockroachdb/errors"
)

// Entry assigns one option to a list of pieces.
type Entry struct {
	Option Option  `json:"option" yaml:"option"`
	Pieces []Piece `json:"pieces" yaml:"pieces"`
}

// Custom is a human-authored stickering: options and the pieces they apply
// to. Entries are applied in order, so a piece named twice takes the option
// of its last entry.
type Custom []Entry

// Set returns c with another entry appended.
func (c Custom) Set(o Option, pieces ...Piece) Custom {
	return append(c, Entry{Option: o, Pieces: pieces})
}

// Mask is a complete stickering: one character per piece slot.
// The zero value is not usable; build masks with Build or ParseMask.
type Mask struct {
	slots [3][]byte
}

// validChars are all characters the widget understands.
const validChars = "-DIPOo?X"

func newMask(fill byte) Mask {
	var m Mask
	for _, c := range Classes {
		m.slots[c] = []byte(strings.Repeat(string(fill), c.NumSlots()))
	}
	return m
}

// Build converts a stickering into a mask. Every slot starts with the default
// option's character and is overwritten by the entries in order.
func Build(custom Custom, opts ...BuildOption) (Mask, error) {
	cfg := defaultBuildConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	fill, err := cfg.defaultOption.Char()
	if err != nil {
		return Mask{}, errors.Wrap(err, "default option")
	}
	m := newMask(fill)

	for _, entry := range custom {
		char, err := entry.Option.Char()
		if err != nil {
			return Mask{}, err
		}
		for _, piece := range entry.Pieces {
			class, idx, err := piece.Slot()
			if err != nil {
				return Mask{}, err
			}
			m.slots[class][idx] = char
		}
	}

	return m, nil
}

// MustBuild is like Build but panics on error.
func MustBuild(custom Custom, opts ...BuildOption) Mask {
	m, err := Build(custom, opts...)
	if err != nil {
		panic(err)
	}
	return m
}

// ParseMask parses the serialized "EDGES:...,CORNERS:...,CENTERS:..." form.
func ParseMask(s string) (Mask, error) {
	parts := strings.Split(strings.TrimSpace(s), ",")
	if len(parts) != len(Classes) {
		return Mask{}, errors.Wrapf(ErrInvalidMask, "expected %d sections, got %d", len(Classes), len(parts))
	}

	var m Mask
	for i, c := range Classes {
		name, chars, ok := strings.Cut(parts[i], ":")
		if !ok || name != c.Orbit() {
			return Mask{}, errors.Wrapf(ErrInvalidMask, "section %d should start with %s:", i+1, c.Orbit())
		}
		if len(chars) != c.NumSlots() {
			return Mask{}, errors.Wrapf(ErrInvalidMask, "%s needs %d characters, got %d", c.Orbit(), c.NumSlots(), len(chars))
		}
		for j := 0; j < len(chars); j++ {
			if strings.IndexByte(validChars, chars[j]) < 0 {
				return Mask{}, errors.Wrapf(ErrInvalidMask, "%s slot %d: unknown character %q", c.Orbit(), j, chars[j])
			}
		}
		m.slots[c] = []byte(chars)
	}

	return m, nil
}

// String returns the serialized form consumed by the widget.
func (m Mask) String() string {
	if m.slots[ClassEdge] == nil {
		return ""
	}
	var b strings.Builder
	for i, c := range Classes {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(c.Orbit())
		b.WriteByte(':')
		b.Write(m.slots[c])
	}
	return b.String()
}

// IsZero reports whether m was never built.
func (m Mask) IsZero() bool {
	return m.slots[ClassEdge] == nil
}

// Chars returns a copy of the characters of one class in slot order.
func (m Mask) Chars(c PieceClass) string {
	return string(m.slots[c])
}

// Char returns the character of a single piece.
func (m Mask) Char(p Piece) (byte, error) {
	class, idx, err := p.Slot()
	if err != nil {
		return 0, err
	}
	return m.slots[class][idx], nil
}

// Equal reports whether two masks have the same characters.
func (m Mask) Equal(other Mask) bool {
	return m.String() == other.String()
}
