// Package notation provides move notation parsing and formatting for algs.
package notation

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/cockroachdb/errors"

	"github.com/SeamusWaldron/gocube_stickering/pkg/types"
)

// ErrInvalidNotation is returned when an alg cannot be parsed.
var ErrInvalidNotation = errors.New("stickering: invalid move notation")

// maxRepeat bounds the repeat count of one group.
const maxRepeat = 64

// maxMoves bounds the expanded length of an alg, nested repeats included.
const maxMoves = 4096

// families lists every move family the parser accepts.
var families = map[string]types.Family{
	"U": types.FamilyU, "L": types.FamilyL, "F": types.FamilyF,
	"R": types.FamilyR, "B": types.FamilyB, "D": types.FamilyD,
	"u": "u", "l": "l", "f": "f", "r": "r", "b": "b", "d": "d",
	"Uw": "Uw", "Lw": "Lw", "Fw": "Fw", "Rw": "Rw", "Bw": "Bw", "Dw": "Dw",
	"M": types.FamilyM, "E": types.FamilyE, "S": types.FamilyS,
	"x": types.FamilyX, "y": types.FamilyY, "z": types.FamilyZ,
}

// ParseNotation parses a single move such as R, R', R2, Rw2', M2 or x.
func ParseNotation(s string) (types.Move, error) {
	s = strings.TrimSpace(s)
	if len(s) == 0 {
		return types.Move{}, errors.Wrap(ErrInvalidNotation, "empty move")
	}

	// Extract family: one letter, optionally followed by w
	n := 1
	if len(s) > 1 && s[1] == 'w' {
		n = 2
	}
	family, ok := families[s[:n]]
	if !ok {
		return types.Move{}, errors.Wrapf(ErrInvalidNotation, "unknown move family in %q", s)
	}

	// Extract amount
	rest := s[n:]
	amount := 1
	digits := strings.TrimRightFunc(rest, isPrime)
	if digits != "" {
		v, err := strconv.Atoi(digits)
		if err != nil || v <= 0 {
			return types.Move{}, errors.Wrapf(ErrInvalidNotation, "bad amount in %q", s)
		}
		amount = v
	}
	switch utf8.RuneCountInString(rest[len(digits):]) {
	case 0:
	case 1:
		amount = -amount
	default:
		return types.Move{}, errors.Wrapf(ErrInvalidNotation, "bad suffix in %q", s)
	}

	return types.Move{Family: family, Amount: amount}, nil
}

func isPrime(r rune) bool {
	return r == '\'' || r == '`' || r == '’'
}

// Parse parses an alg into a flat move sequence.
//
// Moves are separated by whitespace. Parenthesised groups may be followed
// by a repeat count and/or a prime, which inverts the group:
//
//	(R U R' U')3
//	(M' U)2 M2'
//	(r U R')'
//
// Everything after // on a line is a comment.
func Parse(s string) ([]types.Move, error) {
	p := &parser{src: stripComments(s)}
	moves, err := p.sequence(0)
	if err != nil {
		return nil, err
	}
	if p.pos < len(p.src) {
		return nil, errors.Wrapf(ErrInvalidNotation, "unexpected %q at offset %d", p.src[p.pos], p.pos)
	}
	return moves, nil
}

// MustParse is like Parse but panics on error. Intended for package-level algs.
func MustParse(s string) []types.Move {
	moves, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return moves
}

func stripComments(s string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		if idx := strings.Index(line, "//"); idx >= 0 {
			lines[i] = line[:idx]
		}
	}
	return strings.Join(lines, "\n")
}

type parser struct {
	src string
	pos int
}

func (p *parser) skipSpace() {
	for p.pos < len(p.src) && unicode.IsSpace(rune(p.src[p.pos])) {
		p.pos++
	}
}

// sequence parses moves and groups until the end of input or a closing paren.
func (p *parser) sequence(depth int) ([]types.Move, error) {
	moves := make([]types.Move, 0)
	for {
		p.skipSpace()
		if p.pos >= len(p.src) {
			if depth > 0 {
				return nil, errors.Wrap(ErrInvalidNotation, "unclosed group")
			}
			return moves, nil
		}

		switch p.src[p.pos] {
		case ')':
			if depth == 0 {
				return nil, errors.Wrapf(ErrInvalidNotation, "unmatched ) at offset %d", p.pos)
			}
			return moves, nil

		case '(':
			p.pos++
			group, err := p.sequence(depth + 1)
			if err != nil {
				return nil, err
			}
			p.pos++ // closing paren
			group, err = p.groupSuffix(group)
			if err != nil {
				return nil, err
			}
			moves = append(moves, group...)
			if len(moves) > maxMoves {
				return nil, errors.Wrapf(ErrInvalidNotation, "alg expands to more than %d moves", maxMoves)
			}

		default:
			start := p.pos
			for p.pos < len(p.src) && !unicode.IsSpace(rune(p.src[p.pos])) && p.src[p.pos] != '(' && p.src[p.pos] != ')' {
				p.pos++
			}
			m, err := ParseNotation(p.src[start:p.pos])
			if err != nil {
				return nil, err
			}
			moves = append(moves, m)
			if len(moves) > maxMoves {
				return nil, errors.Wrapf(ErrInvalidNotation, "alg expands to more than %d moves", maxMoves)
			}
		}
	}
}

// groupSuffix applies the optional repeat count and prime after a group.
func (p *parser) groupSuffix(group []types.Move) ([]types.Move, error) {
	start := p.pos
	for p.pos < len(p.src) && p.src[p.pos] >= '0' && p.src[p.pos] <= '9' {
		p.pos++
	}
	count := 1
	if p.pos > start {
		v, err := strconv.Atoi(p.src[start:p.pos])
		if err != nil || v <= 0 || v > maxRepeat {
			return nil, errors.Wrapf(ErrInvalidNotation, "bad group repeat %q", p.src[start:p.pos])
		}
		count = v
	}

	if p.pos < len(p.src) && isPrime(rune(p.src[p.pos])) {
		p.pos++
		group = Invert(group)
	} else if strings.HasPrefix(p.src[p.pos:], "’") {
		p.pos += len("’")
		group = Invert(group)
	}

	if len(group)*count > maxMoves {
		return nil, errors.Wrapf(ErrInvalidNotation, "alg expands to more than %d moves", maxMoves)
	}
	out := make([]types.Move, 0, len(group)*count)
	for i := 0; i < count; i++ {
		out = append(out, group...)
	}
	return out, nil
}

// Format formats a slice of moves as a space-separated string.
func Format(moves []types.Move) string {
	if len(moves) == 0 {
		return ""
	}

	parts := make([]string, len(moves))
	for i, m := range moves {
		parts[i] = m.Notation()
	}

	return strings.Join(parts, " ")
}

// Invert returns the inverse alg: reversed order, each move inverted.
func Invert(moves []types.Move) []types.Move {
	inv := make([]types.Move, len(moves))
	for i, m := range moves {
		inv[len(moves)-1-i] = m.Inverse()
	}
	return inv
}

// Simplify merges adjacent moves of the same family and drops cancellations.
// R R' U -> U, R R -> R2, M' M' M' -> M
func Simplify(moves []types.Move) []types.Move {
	out := make([]types.Move, 0, len(moves))
	for _, m := range moves {
		if m.QuarterTurns() == 0 {
			continue
		}
		if len(out) > 0 && out[len(out)-1].CanMerge(m) {
			merged := out[len(out)-1].Merge(m)
			out = out[:len(out)-1]
			if merged != nil {
				out = append(out, *merged)
			}
			continue
		}
		out = append(out, normalize(m))
	}
	return out
}

// normalize rewrites amounts into R, R' or R2 form.
func normalize(m types.Move) types.Move {
	switch m.QuarterTurns() {
	case 2:
		m.Amount = types.AmountDouble
	case 3:
		m.Amount = types.AmountCCW
	default:
		m.Amount = types.AmountCW
	}
	return m
}
