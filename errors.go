package stickering

import (
	"github.com/cockroachdb/errors"

	"github.com/SeamusWaldron/gocube_stickering/internal/notation"
	"github.com/SeamusWaldron/gocube_stickering/pkg/kpuzzle"
)

// Sentinel errors for the stickering package.
var (
	// Input errors
	ErrUnknownPiece  = errors.New("stickering: unknown piece")
	ErrUnknownOption = errors.New("stickering: unknown stickering option")
	ErrInvalidMask   = errors.New("stickering: invalid mask")

	// Transformation errors
	ErrInvalidTransformation = kpuzzle.ErrInvalidTransformation
	ErrUnknownMove           = kpuzzle.ErrUnknownMove
	ErrInvalidNotation       = notation.ErrInvalidNotation

	// Conversion errors
	ErrNotCompact = errors.New("stickering: mask has no serialized form")
)
