// cubesolver - scramble, solve and analyse a 3x3x3 Rubik's Cube.
package main

import (
	"github.com/SeamusWaldron/cubesolver/internal/cli"
)

func main() {
	cli.Execute()
}
