package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoveNotation(t *testing.T) {
	tests := []struct {
		move Move
		want string
	}{
		{Move{FamilyR, AmountCW}, "R"},
		{Move{FamilyR, AmountCCW}, "R'"},
		{Move{FamilyR, AmountDouble}, "R2"},
		{Move{FamilyM, -2}, "M2'"},
		{Move{FamilyX, 1}, "x"},
		{Move{"Rw", 3}, "Rw3"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.move.Notation())
		assert.Equal(t, tt.want, tt.move.String())
	}
}

func TestMoveInverse(t *testing.T) {
	m := Move{FamilyU, AmountCW}
	assert.Equal(t, Move{FamilyU, AmountCCW}, m.Inverse())
	assert.Equal(t, m, m.Inverse().Inverse())
}

func TestQuarterTurns(t *testing.T) {
	assert.Equal(t, 1, Move{FamilyF, 1}.QuarterTurns())
	assert.Equal(t, 3, Move{FamilyF, -1}.QuarterTurns())
	assert.Equal(t, 2, Move{FamilyF, -2}.QuarterTurns())
	assert.Equal(t, 0, Move{FamilyF, 4}.QuarterTurns())
	assert.Equal(t, 1, Move{FamilyF, -7}.QuarterTurns())
}

func TestIsCancellation(t *testing.T) {
	assert.True(t, Move{FamilyR, 1}.IsCancellation(Move{FamilyR, -1}))
	assert.True(t, Move{FamilyR, 2}.IsCancellation(Move{FamilyR, 2}))
	assert.False(t, Move{FamilyR, 1}.IsCancellation(Move{FamilyR, 1}))
	assert.False(t, Move{FamilyR, 1}.IsCancellation(Move{FamilyL, -1}))
}

func TestMerge(t *testing.T) {
	m := Move{FamilyU, 1}
	require.True(t, m.CanMerge(Move{FamilyU, 2}))

	merged := m.Merge(Move{FamilyU, 2})
	require.NotNil(t, merged)
	assert.Equal(t, Move{FamilyU, AmountCCW}, *merged)

	merged = m.Merge(Move{FamilyU, 1})
	require.NotNil(t, merged)
	assert.Equal(t, Move{FamilyU, AmountDouble}, *merged)

	assert.Nil(t, m.Merge(Move{FamilyU, -1}))
	assert.False(t, m.CanMerge(Move{FamilyD, 1}))
	assert.Nil(t, m.Merge(Move{FamilyD, 1}))
}
