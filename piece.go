package stickering

import (
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/SeamusWaldron/gocube_stickering/pkg/kpuzzle"
)

// PieceClass is one of the three kinds of 3x3 pieces.
type PieceClass int

const (
	ClassEdge   PieceClass = 0
	ClassCorner PieceClass = 1
	ClassCenter PieceClass = 2
)

// Classes lists the piece classes in serialized order.
var Classes = []PieceClass{ClassEdge, ClassCorner, ClassCenter}

func (c PieceClass) String() string {
	switch c {
	case ClassEdge:
		return "edge"
	case ClassCorner:
		return "corner"
	case ClassCenter:
		return "center"
	default:
		return "?"
	}
}

// Orbit returns the orbit name used in masks and transformations.
func (c PieceClass) Orbit() string {
	switch c {
	case ClassEdge:
		return kpuzzle.OrbitEdges
	case ClassCorner:
		return kpuzzle.OrbitCorners
	default:
		return kpuzzle.OrbitCenters
	}
}

// NumSlots returns the number of pieces of the class.
func (c PieceClass) NumSlots() int {
	return len(c.Slots())
}

// NumOrientations returns how many facelet rotations a piece of the class has.
func (c PieceClass) NumOrientations() int {
	switch c {
	case ClassEdge:
		return 2
	case ClassCorner:
		return 3
	default:
		return 4
	}
}

// Slots returns the piece names of the class in canonical order.
func (c PieceClass) Slots() []Piece {
	switch c {
	case ClassEdge:
		return edgeSlots
	case ClassCorner:
		return cornerSlots
	default:
		return centerSlots
	}
}

// Piece names a piece by its face letters: "U" (center), "UF" (edge),
// "UFR" (corner).
type Piece string

var (
	edgeSlots = []Piece{
		"UF", "UR", "UB", "UL",
		"DF", "DR", "DB", "DL",
		"FR", "FL", "BR", "BL",
	}
	cornerSlots = []Piece{
		"UFR", "UBR", "UBL", "UFL",
		"DFR", "DFL", "DBL", "DBR",
	}
	centerSlots = []Piece{"U", "L", "F", "R", "B", "D"}
)

var (
	edgeIndices   = slotIndex(edgeSlots)
	cornerIndices = slotIndex(cornerSlots)
	centerIndices = slotIndex(centerSlots)
)

func slotIndex(slots []Piece) map[Piece]int {
	m := make(map[Piece]int, len(slots))
	for i, p := range slots {
		m[p] = i
	}
	return m
}

// Class resolves the piece class from the length of the name.
// This only holds for the 3x3 cube.
func (p Piece) Class() (PieceClass, error) {
	switch len(p) {
	case 1:
		return ClassCenter, nil
	case 2:
		return ClassEdge, nil
	case 3:
		return ClassCorner, nil
	default:
		return 0, errors.Wrapf(ErrUnknownPiece, "%q", string(p))
	}
}

// Slot returns the piece class and its slot index in canonical order.
// Names must use the canonical face order (UFR, not FRU).
func (p Piece) Slot() (PieceClass, int, error) {
	class, err := p.Class()
	if err != nil {
		return 0, 0, err
	}

	var idx int
	var ok bool
	switch class {
	case ClassCenter:
		idx, ok = centerIndices[p]
	case ClassEdge:
		idx, ok = edgeIndices[p]
	default:
		idx, ok = cornerIndices[p]
	}
	if !ok {
		return 0, 0, errors.WithHintf(
			errors.Wrapf(ErrUnknownPiece, "%q", string(p)),
			"%s names are: %s", class, joinPieces(class.Slots()))
	}
	return class, idx, nil
}

// ParsePieces splits a comma or space separated list of piece names.
// Names are upper-cased; empty entries are skipped.
func ParsePieces(s string) []Piece {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n'
	})
	pieces := make([]Piece, 0, len(fields))
	for _, f := range fields {
		pieces = append(pieces, Piece(strings.ToUpper(f)))
	}
	return pieces
}

func joinPieces(pieces []Piece) string {
	parts := make([]string, len(pieces))
	for i, p := range pieces {
		parts[i] = string(p)
	}
	return strings.Join(parts, ", ")
}
