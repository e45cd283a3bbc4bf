// Package stickering builds the stickering masks used to highlight pieces
// of a 3x3 cube in tutorial widgets, and moves those masks along with the
// pieces when a setup alg is applied.
//
// # Building a mask
//
// Name the pieces to highlight per option; everything else gets the default:
//
//	custom := stickering.Custom{}.
//	    Set(stickering.Oriented, "UF", "UB").
//	    Set(stickering.Solved, "DF", "DB", "FL", "FR", "BL", "BR")
//
//	mask, err := stickering.Build(custom, stickering.WithDefault(stickering.Dim))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(mask) // EDGES:ODOD-D-D----,CORNERS:DDDDDDDD,CENTERS:DDDDDD
//
// Later entries win when a piece is named twice.
//
// # Serialized format
//
// The string form is "EDGES:<12>,CORNERS:<8>,CENTERS:<6>", one character per
// piece in canonical order:
//
//	EDGES:   UF, UR, UB, UL, DF, DR, DB, DL, FR, FL, BR, BL
//	CORNERS: UFR, UBR, UBL, UFL, DFR, DFL, DBL, DBR
//	CENTERS: U, L, F, R, B, D
//
// Each character sets the "primary" sticker (U/D stickers, and F/B on the
// FL, FR, BL, BR edges) and the other stickers of a piece:
//
//	| Char | Primary  | Other  | Meaning                                              |
//	|------|----------|--------|------------------------------------------------------|
//	| -    | bright   | bright | piece to solve                                       |
//	| D    | dim      | dim    | dim                                                  |
//	| I    | gray     | gray   | ignored                                              |
//	| P    | bright   | gray   | to permute (e.g. PLL)                                |
//	| O    | dim      | bright | to orient (e.g. OLL)                                 |
//	| o    | dim      | gray   | oriented, primary sticker known (e.g. OLL completed) |
//	| ?    | oriented | gray   | oriented, primary sticker unknown (e.g. EO)          |
//	| X    | N/A      | N/A    | invisible                                            |
//
// # Setup algs
//
// A mask describes pieces by the slot they sit in. ApplySetup moves every
// piece's stickering along with the piece, so a mask written for the solved
// cube still points at the same pieces after the setup:
//
//	orbits, err := stickering.ApplySetup(mask, "M' U2 M")
//
// The result is the per-facelet form (OrbitsMask); Compact turns it back into
// a string when every piece still matches one of the characters above.
package stickering
