package stickering

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildDefaultsFillEverySlot(t *testing.T) {
	for _, opt := range Options {
		t.Run(string(opt), func(t *testing.T) {
			m, err := Build(nil, WithDefault(opt))
			require.NoError(t, err)

			char, err := opt.Char()
			require.NoError(t, err)
			for _, c := range Classes {
				assert.Equal(t, strings.Repeat(string(char), c.NumSlots()), m.Chars(c))
			}
		})
	}
}

func TestBuildDefaultIsIgnored(t *testing.T) {
	m := MustBuild(nil)
	assert.Equal(t, "EDGES:IIIIIIIIIIII,CORNERS:IIIIIIII,CENTERS:IIIIII", m.String())
}

func TestBuildAssignsEveryPiece(t *testing.T) {
	for _, c := range Classes {
		for idx, piece := range c.Slots() {
			m, err := Build(Custom{}.Set(Oriented, piece), WithDefault(Invisible))
			require.NoError(t, err)

			chars := []byte(strings.Repeat("X", c.NumSlots()))
			chars[idx] = 'O'
			assert.Equal(t, string(chars), m.Chars(c), "piece %s", piece)

			got, err := m.Char(piece)
			require.NoError(t, err)
			assert.Equal(t, byte('O'), got)
		}
	}
}

func TestBuildExample(t *testing.T) {
	m, err := Build(Custom{}.Set(Oriented, "UF"), WithDefault(Ignored))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(m.String(), "EDGES:OIIIIIIIIIII,CORNERS:IIIIIIII,CENTERS:IIIIII"))
}

func TestBuildLastWriteWins(t *testing.T) {
	custom := Custom{}.
		Set(Solved, "UF", "UFR", "U").
		Set(Dim, "UF", "UFR", "U")
	m := MustBuild(custom)
	assert.Equal(t, "EDGES:DIIIIIIIIIII,CORNERS:DIIIIIII,CENTERS:DIIIII", m.String())

	// Reversed order, reversed outcome
	custom = Custom{}.
		Set(Dim, "UF").
		Set(Solved, "UF")
	m = MustBuild(custom)
	assert.Equal(t, "-IIIIIIIIIII", m.Chars(ClassEdge))
}

func TestBuildRouxBlocks(t *testing.T) {
	// First block on the left, second block dimmed, LSE edges to orient.
	custom := Custom{}.
		Set(Solved, "DL", "FL", "BL", "DFL", "DBL", "L").
		Set(Dim, "DR", "FR", "BR", "DFR", "DBR", "R").
		Set(Oriented, "UF", "UR", "UB", "UL", "DF", "DB").
		Set(Solved, "F", "B", "U", "D")
	m := MustBuild(custom, WithDefault(Ignored))
	assert.Equal(t, "EDGES:OOOOODO-D-D-,CORNERS:IIIID--D,CENTERS:---D--", m.String())
}

func TestBuildErrors(t *testing.T) {
	tests := []struct {
		name   string
		custom Custom
		opts   []BuildOption
		want   error
	}{
		{"unknown edge", Custom{}.Set(Solved, "FU"), nil, ErrUnknownPiece},
		{"unknown corner", Custom{}.Set(Solved, "FRU"), nil, ErrUnknownPiece},
		{"unknown center", Custom{}.Set(Solved, "Q"), nil, ErrUnknownPiece},
		{"too long", Custom{}.Set(Solved, "UFRB"), nil, ErrUnknownPiece},
		{"empty name", Custom{}.Set(Solved, ""), nil, ErrUnknownPiece},
		{"unknown option", Custom{}.Set("shiny", "UF"), nil, ErrUnknownOption},
		{"unknown default", nil, []BuildOption{WithDefault("shiny")}, ErrUnknownOption},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Build(tt.custom, tt.opts...)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestMustBuildPanics(t *testing.T) {
	assert.Panics(t, func() { MustBuild(Custom{}.Set(Solved, "XYZ")) })
}

func TestParseMaskRoundTrip(t *testing.T) {
	for _, s := range []string{
		"EDGES:OIIIIIIIIIII,CORNERS:IIIIIIII,CENTERS:IIIIII",
		"EDGES:XXXXXXXXXXXX,CORNERS:--------,CENTERS:XXXXXX",
		"EDGES:-DIPOo?X-DIP,CORNERS:o?X-DIPO,CENTERS:------",
	} {
		m, err := ParseMask(s)
		require.NoError(t, err)
		assert.Equal(t, s, m.String())
	}
}

func TestParseMaskErrors(t *testing.T) {
	for _, s := range []string{
		"",
		"EDGES:OIIIIIIIIIII,CORNERS:IIIIIIII",
		"EDGES:OIIIIIIIIII,CORNERS:IIIIIIII,CENTERS:IIIIII",
		"CORNERS:IIIIIIII,EDGES:OIIIIIIIIIII,CENTERS:IIIIII",
		"EDGES:OIIIIIIIIIIZ,CORNERS:IIIIIIII,CENTERS:IIIIII",
		"EDGES=OIIIIIIIIIII,CORNERS:IIIIIIII,CENTERS:IIIIII",
	} {
		_, err := ParseMask(s)
		assert.ErrorIs(t, err, ErrInvalidMask, "mask %q", s)
	}
}

func TestParsePieces(t *testing.T) {
	assert.Equal(t, []Piece{"UF", "UR", "DFL"}, ParsePieces("uf, UR  dfl,"))
	assert.Empty(t, ParsePieces(" , "))
}

func TestParseOption(t *testing.T) {
	o, err := ParseOption("orientedWithoutPermutation")
	require.NoError(t, err)
	assert.Equal(t, OrientedWithoutPermutation, o)

	_, err = ParseOption("Solved")
	assert.ErrorIs(t, err, ErrUnknownOption)
}

func TestOptionCharsAreDistinct(t *testing.T) {
	seen := map[byte]Option{}
	for _, o := range Options {
		c, err := o.Char()
		require.NoError(t, err)
		_, dup := seen[c]
		assert.False(t, dup, "char %q used twice", c)
		seen[c] = o

		back, ok := OptionForChar(c)
		require.True(t, ok)
		assert.Equal(t, o, back)
	}

	_, ok := OptionForChar('o')
	assert.False(t, ok)
}

func TestZeroMask(t *testing.T) {
	var m Mask
	assert.True(t, m.IsZero())
	assert.Equal(t, "", m.String())
	assert.False(t, MustBuild(nil).IsZero())
}
