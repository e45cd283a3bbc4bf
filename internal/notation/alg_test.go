package notation

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SeamusWaldron/gocube_stickering/pkg/types"
)

func TestParseNotation(t *testing.T) {
	tests := []struct {
		in   string
		want types.Move
	}{
		{"R", types.Move{Family: types.FamilyR, Amount: 1}},
		{"R'", types.Move{Family: types.FamilyR, Amount: -1}},
		{"R2", types.Move{Family: types.FamilyR, Amount: 2}},
		{"U2'", types.Move{Family: types.FamilyU, Amount: -2}},
		{"M`", types.Move{Family: types.FamilyM, Amount: -1}},
		{"r", types.Move{Family: "r", Amount: 1}},
		{"Rw'", types.Move{Family: "Rw", Amount: -1}},
		{"x", types.Move{Family: types.FamilyX, Amount: 1}},
		{"y3", types.Move{Family: types.FamilyY, Amount: 3}},
		{"E’", types.Move{Family: types.FamilyE, Amount: -1}},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseNotation(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseNotationInvalid(t *testing.T) {
	for _, in := range []string{"", "Q", "R''", "R0", "R2x", "rw", "w"} {
		_, err := ParseNotation(in)
		assert.True(t, errors.Is(err, ErrInvalidNotation), "expected ErrInvalidNotation for %q, got %v", in, err)
	}
}

func TestParseSequence(t *testing.T) {
	moves, err := Parse("R U R' U'")
	require.NoError(t, err)
	assert.Equal(t, "R U R' U'", Format(moves))
}

func TestParseGroups(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"(R U R' U')2", "R U R' U' R U R' U'"},
		{"(M' U)2 M2'", "M' U M' U M2'"},
		{"(r U R')'", "R U' r'"},
		{"F (R U R' U')2' F'", "F U R U' R' U R U' R' F'"},
		{"((M U)2 x)", "M U M U x"},
		{"R U // sune start\nR' U R U2 R'", "R U R' U R U2 R'"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			moves, err := Parse(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, Format(moves))
		})
	}
}

func TestParseGroupErrors(t *testing.T) {
	for _, in := range []string{"(R U", "R U)", "(R)0", "(R)999", "R (U Q)"} {
		_, err := Parse(in)
		assert.ErrorIs(t, err, ErrInvalidNotation, "input %q", in)
	}
}

func TestParseNestedRepeatBounded(t *testing.T) {
	moves, err := Parse("((R U)32)64")
	require.NoError(t, err)
	assert.Len(t, moves, maxMoves)

	for _, in := range []string{"(((R U)64)64)64", "((R U)64)64", "((R U)32)64 R"} {
		_, err := Parse(in)
		assert.ErrorIs(t, err, ErrInvalidNotation, "input %q", in)
	}
}

func TestInvert(t *testing.T) {
	moves := MustParse("R U2 M' x")
	assert.Equal(t, "x' M U2' R'", Format(Invert(moves)))
}

func TestSimplify(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"R R' U", "U"},
		{"R R", "R2"},
		{"M' M' M'", "M"},
		{"R U U' R", "R2"},
		{"R4 U", "U"},
		{"U3", "U'"},
		{"R L", "R L"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, Format(Simplify(MustParse(tt.in))))
		})
	}
}

func TestMustParsePanics(t *testing.T) {
	assert.Panics(t, func() { MustParse("R (") })
}
