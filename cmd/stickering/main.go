// Stickering - CLI for building, storing and previewing cube stickering masks.
package main

import (
	"github.com/SeamusWaldron/gocube_stickering/internal/cli"
)

func main() {
	cli.Execute()
}
