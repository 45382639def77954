package solver

import "github.com/SeamusWaldron/cubesolver/internal/notation"

// Algorithms are written for a red front. The first group assumes white on
// top, the rest yellow on top.
var (
	// white on top
	algDropEdge   = notation.MustParse("F F")
	algInsertEdge = notation.MustParse("D R F' R'")
	algDropRight  = notation.MustParse("R' D' R")
	algInsertLeft = notation.MustParse("L D L'")
	algFlipCorner = notation.MustParse("R' D D R D")

	// yellow on top
	algRightInsert = notation.MustParse("U R U' R' U' F' U F")
	algLeftInsert  = notation.MustParse("U' L' U L U F U' F'")
	algLine        = notation.MustParse("F R U R' U' F'")
	algEll         = notation.MustParse("F U R U' R' F'")
	algDot         = notation.MustParse("F R U R' U' F' U U F U R U' R' F'")
	algSwapEdges   = notation.MustParse("R U R' U R U U R' U")
	algCycleCorner = notation.MustParse("U R U' L' U R' U' L")
	algTwist       = notation.MustParse("R' D' R D")
	algTopTurn     = notation.MustParse("U")
)
