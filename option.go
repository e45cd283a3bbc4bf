package stickering

import (
	"github.com/cockroachdb/errors"
)

// Option is a highlight category for a piece.
type Option string

const (
	Solved                     Option = "solved"
	Dim                        Option = "dim"
	Ignored                    Option = "ignored"
	Permuted                   Option = "permuted"
	Oriented                   Option = "oriented"
	OrientedWithoutPermutation Option = "orientedWithoutPermutation"
	Invisible                  Option = "invisible"
)

// Options lists every option in documentation order.
var Options = []Option{Solved, Dim, Ignored, Permuted, Oriented, OrientedWithoutPermutation, Invisible}

var optionChars = map[Option]byte{
	Solved:                     '-',
	Dim:                        'D',
	Ignored:                    'I',
	Permuted:                   'P',
	Oriented:                   'O',
	OrientedWithoutPermutation: '?',
	Invisible:                  'X',
}

// Char returns the serialized mask character of the option.
func (o Option) Char() (byte, error) {
	c, ok := optionChars[o]
	if !ok {
		return 0, errors.Wrapf(ErrUnknownOption, "%q", string(o))
	}
	return c, nil
}

// Valid reports whether o is one of the defined options.
func (o Option) Valid() bool {
	_, ok := optionChars[o]
	return ok
}

// ParseOption parses an option name as used in content and on the command line.
func ParseOption(s string) (Option, error) {
	o := Option(s)
	if !o.Valid() {
		return "", errors.WithHint(errors.Wrapf(ErrUnknownOption, "%q", s),
			"options are: solved, dim, ignored, permuted, oriented, orientedWithoutPermutation, invisible")
	}
	return o, nil
}

// OptionForChar returns the option that serializes to c. The 'o' character
// has no option and reports false.
func OptionForChar(c byte) (Option, bool) {
	for o, oc := range optionChars {
		if oc == c {
			return o, true
		}
	}
	return "", false
}
