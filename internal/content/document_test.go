package content

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	stickering "github.com/SeamusWaldron/gocube_stickering"
	"github.com/SeamusWaldron/gocube_stickering/internal/storage"
)

const crossPage = `---
title: Cross
stickerings:
  - name: cross
    default: ignored
    pieces:
      solved: [DF, DR, DB, DL, D]
      dim: F, R, B, L
  - name: cross-edge
    setup: "F2"
    alg: "F2"
    pieces:
      solved: [DF]
      ignored: [DF]
      dim: [D]
---
# Cross

Solve the cross first.
`

func TestParseDocument(t *testing.T) {
	doc, err := ParseDocument([]byte(crossPage))
	require.NoError(t, err)

	assert.Equal(t, "Cross", doc.Title)
	assert.Equal(t, "# Cross\n\nSolve the cross first.\n", doc.Body)
	require.Len(t, doc.Stickerings, 2)

	cross := doc.Stickerings[0]
	assert.Equal(t, "cross", cross.Name)
	assert.Equal(t, Assignments{
		{Option: stickering.Solved, Pieces: []stickering.Piece{"DF", "DR", "DB", "DL", "D"}},
		{Option: stickering.Dim, Pieces: []stickering.Piece{"F", "R", "B", "L"}},
	}, cross.Pieces)

	edge := doc.Stickerings[1]
	assert.Equal(t, "F2", edge.Setup)
	require.Len(t, edge.Pieces, 3)
	assert.Equal(t, stickering.Solved, edge.Pieces[0].Option)
	assert.Equal(t, stickering.Ignored, edge.Pieces[1].Option)
}

func TestParseDocumentWithoutFrontmatter(t *testing.T) {
	doc, err := ParseDocument([]byte("# Just text\n"))
	require.NoError(t, err)
	assert.Empty(t, doc.Stickerings)
	assert.Equal(t, "# Just text\n", doc.Body)

	doc, err = ParseDocument([]byte("---\n---\nbody"))
	require.NoError(t, err)
	assert.Equal(t, "body", doc.Body)

	doc, err = ParseDocument([]byte("---\r\ntitle: x\r\n---"))
	require.NoError(t, err)
	assert.Equal(t, "x", doc.Title)
	assert.Empty(t, doc.Body)
}

func TestParseDocumentErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    error
	}{
		{"unterminated", "---\ntitle: x\n", ErrInvalidDocument},
		{"bad yaml", "---\ntitle: [x\n---\n", ErrInvalidDocument},
		{"no name", "---\nstickerings:\n  - default: dim\n---\n", ErrInvalidDocument},
		{"unknown option", "---\nstickerings:\n  - name: a\n    pieces:\n      shiny: [UF]\n---\n", stickering.ErrUnknownOption},
		{"pieces not a mapping", "---\nstickerings:\n  - name: a\n    pieces: [UF]\n---\n", ErrInvalidDocument},
		{"nested list", "---\nstickerings:\n  - name: a\n    pieces:\n      dim: [[UF]]\n---\n", ErrInvalidDocument},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseDocument([]byte(tt.content))
			assert.ErrorIs(t, err, tt.want)
			assert.True(t, stderrors.Is(err, tt.want), "plain errors.Is should see %v in %v", tt.want, err)
		})
	}
}

func TestParseDocumentKeepsYAMLDetail(t *testing.T) {
	_, err := ParseDocument([]byte("---\ntitle: [x\n---\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "frontmatter: yaml:")
}

func TestDefinitionBuild(t *testing.T) {
	doc, err := ParseDocument([]byte(crossPage))
	require.NoError(t, err)

	om, err := doc.Stickerings[0].Build(stickering.Dim)
	require.NoError(t, err)
	m, err := om.Compact()
	require.NoError(t, err)
	assert.Equal(t, "EDGES:IIII----IIII,CORNERS:IIIIIIII,CENTERS:IDDDD-", m.String())
	centers := m.Chars(stickering.ClassCenter)
	assert.Equal(t, byte('-'), centers[5])

	// the later ignored entry wins over solved for DF, then F2 moves it to UF
	om, err = doc.Stickerings[1].Build(stickering.Dim)
	require.NoError(t, err)
	m, err = om.Compact()
	require.NoError(t, err)
	assert.Equal(t, "EDGES:IDDDDDDDDDDD,CORNERS:DDDDDDDD,CENTERS:DDDDDD", m.String())
}

func TestDefinitionBuildErrors(t *testing.T) {
	_, err := Definition{Name: "a", Default: "shiny"}.Build(stickering.Dim)
	assert.ErrorIs(t, err, stickering.ErrUnknownOption)

	_, err = Definition{Name: "a", Setup: "R Q"}.Build(stickering.Dim)
	assert.ErrorIs(t, err, stickering.ErrInvalidNotation)

	_, err = Definition{Name: "a", Alg: "(R U"}.Build(stickering.Dim)
	assert.ErrorIs(t, err, stickering.ErrInvalidNotation)

	_, err = Definition{Name: "a", Pieces: Assignments{{Option: stickering.Dim, Pieces: []stickering.Piece{"FRU"}}}}.Build(stickering.Dim)
	assert.ErrorIs(t, err, stickering.ErrUnknownPiece)
}

func TestDefinitionPreset(t *testing.T) {
	def := Definition{
		Name:   "twist",
		Setup:  "R",
		Alg:    "R'",
		Source: "corners/twist.md",
		Pieces: Assignments{{Option: stickering.Permuted, Pieces: []stickering.Piece{"UFR"}}},
	}

	p, err := def.Preset(stickering.Ignored)
	require.NoError(t, err)
	assert.Equal(t, "twist", p.Name)
	assert.Equal(t, storage.FormatOrbits, p.MaskFormat)
	require.NotNil(t, p.Source)
	assert.Equal(t, "corners/twist.md", *p.Source)
	require.NotNil(t, p.SetupAlg)
	assert.Equal(t, "R", *p.SetupAlg)
}
