// Package types contains shared type definitions for the stickering tools.
package types

import "strconv"

// Family names the layer (or whole-cube rotation) a move turns.
// Examples: R, Rw, r, M, E, S, x, y, z
type Family string

const (
	FamilyU Family = "U" // Up
	FamilyL Family = "L" // Left
	FamilyF Family = "F" // Front
	FamilyR Family = "R" // Right
	FamilyB Family = "B" // Back
	FamilyD Family = "D" // Down

	FamilyM Family = "M" // Middle slice, turns like L
	FamilyE Family = "E" // Equator slice, turns like D
	FamilyS Family = "S" // Standing slice, turns like F

	FamilyX Family = "x" // Whole cube, turns like R
	FamilyY Family = "y" // Whole cube, turns like U
	FamilyZ Family = "z" // Whole cube, turns like F
)

// Amount constants for the common quarter and half turns.
const (
	AmountCW     = 1  // Clockwise quarter turn
	AmountCCW    = -1 // Counter-clockwise quarter turn
	AmountDouble = 2  // Half turn
)

// Move is a single move of an alg: a family turned by a signed number of
// quarter turns.
type Move struct {
	Family Family `json:"family"`
	Amount int    `json:"amount"`
}

// Notation returns the standard notation for the move.
// Examples: R, R', R2, M2', x
func (m Move) Notation() string {
	switch {
	case m.Amount == 1:
		return string(m.Family)
	case m.Amount == -1:
		return string(m.Family) + "'"
	case m.Amount < 0:
		return string(m.Family) + strconv.Itoa(-m.Amount) + "'"
	default:
		return string(m.Family) + strconv.Itoa(m.Amount)
	}
}

// String returns the notation string (alias for Notation).
func (m Move) String() string {
	return m.Notation()
}

// Inverse returns the inverse of this move.
func (m Move) Inverse() Move {
	inv := m
	inv.Amount = -m.Amount
	return inv
}

// QuarterTurns returns the amount normalised to [0, 4).
func (m Move) QuarterTurns() int {
	return ((m.Amount % 4) + 4) % 4
}

// IsCancellation returns true if the other move cancels this move.
func (m Move) IsCancellation(other Move) bool {
	if m.Family != other.Family {
		return false
	}
	return (m.Amount+other.Amount)%4 == 0
}

// CanMerge returns true if two adjacent moves turn the same family.
func (m Move) CanMerge(other Move) bool {
	return m.Family == other.Family
}

// Merge combines two same-family moves into one (or returns nil if they cancel).
// Returns nil if the moves cannot be merged or if they cancel out completely.
func (m Move) Merge(other Move) *Move {
	if m.Family != other.Family {
		return nil
	}

	combined := ((m.Amount+other.Amount)%4 + 4) % 4
	switch combined {
	case 0:
		return nil // Moves cancel out
	case 3:
		combined = -1
	}

	return &Move{Family: m.Family, Amount: combined}
}
