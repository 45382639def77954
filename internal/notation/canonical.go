// Package notation parses and formats face-turn notation.
package notation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/SeamusWaldron/cubesolver/pkg/types"
)

// ErrInvalidMove is returned for tokens outside {R,L,U,D,F,B} with an
// optional ' or 2 suffix.
var ErrInvalidMove = errors.New("notation: invalid move")

// ParseNotation parses a standard cube notation token into a Move.
// Examples: R, R', R2, U, U', U2
func ParseNotation(s string) (types.Move, error) {
	tok := strings.TrimSpace(s)
	if len(tok) == 0 || len(tok) > 2 {
		return types.Move{}, fmt.Errorf("%w: %q", ErrInvalidMove, s)
	}

	face := types.Face(tok[:1])
	if !face.Valid() {
		return types.Move{}, fmt.Errorf("%w: %q", ErrInvalidMove, s)
	}

	turn := types.TurnCW
	switch tok[1:] {
	case "":
	case "'":
		turn = types.TurnCCW
	case "2":
		turn = types.Turn180
	default:
		return types.Move{}, fmt.Errorf("%w: %q", ErrInvalidMove, s)
	}

	return types.Move{Face: face, Turn: turn}, nil
}

// MustParse parses a sequence and panics on error. Intended for package
// level algorithm tables.
func MustParse(s string) []types.Move {
	moves, err := ParseSequence(s)
	if err != nil {
		panic(err)
	}
	return moves
}

// ParseSequence parses a space-separated sequence of moves. The first
// invalid token aborts the parse.
func ParseSequence(s string) ([]types.Move, error) {
	parts := strings.Fields(s)
	moves := make([]types.Move, 0, len(parts))

	for i, part := range parts {
		move, err := ParseNotation(part)
		if err != nil {
			return nil, fmt.Errorf("token %d: %w", i, err)
		}
		moves = append(moves, move)
	}

	return moves, nil
}

// ParseTokens parses already split tokens.
func ParseTokens(tokens []string) ([]types.Move, error) {
	return ParseSequence(strings.Join(tokens, " "))
}

// FormatSequence formats a slice of moves as a space-separated string.
func FormatSequence(moves []types.Move) string {
	if len(moves) == 0 {
		return ""
	}

	parts := make([]string, len(moves))
	for i, m := range moves {
		parts[i] = m.Notation()
	}

	return strings.Join(parts, " ")
}

// Tokens returns the notation of each move.
func Tokens(moves []types.Move) []string {
	out := make([]string, len(moves))
	for i, m := range moves {
		out[i] = m.Notation()
	}
	return out
}

// SplitDoubles rewrites every half turn as two quarter turns, the form
// produced by replaying an external optimal solver's output.
func SplitDoubles(moves []types.Move) []types.Move {
	out := make([]types.Move, 0, len(moves))
	for _, m := range moves {
		out = append(out, m.Quarters()...)
	}
	return out
}

// NormalizeTurn normalizes a quarter-turn count to a Turn.
// -3 -> 1, -2 -> 2, -1 -> -1, 1 -> 1, 2 -> 2, 3 -> -1
// The boolean is false when the count is a multiple of four.
func NormalizeTurn(turn int) (types.Turn, bool) {
	turn = ((turn % 4) + 4) % 4
	switch turn {
	case 1:
		return types.TurnCW, true
	case 2:
		return types.Turn180, true
	case 3:
		return types.TurnCCW, true
	}
	return 0, false
}
