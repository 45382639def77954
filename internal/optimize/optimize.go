// Package optimize shortens recorded move lists.
package optimize

import "github.com/SeamusWaldron/cubesolver/pkg/types"

// Optimize runs two passes over moves. The first collapses three identical
// consecutive moves into one inverse move. The second drops a move
// immediately followed by its inverse. Pairs created by the second pass are
// not rescanned, so the result is not always minimal.
func Optimize(moves []types.Move) []types.Move {
	return cancelInverses(collapseTriples(moves))
}

func collapseTriples(moves []types.Move) []types.Move {
	out := make([]types.Move, 0, len(moves))
	for i := 0; i < len(moves); {
		if i+2 < len(moves) && moves[i] == moves[i+1] && moves[i] == moves[i+2] {
			out = append(out, moves[i].Inverse())
			i += 3
			continue
		}
		out = append(out, moves[i])
		i++
	}
	return out
}

func cancelInverses(moves []types.Move) []types.Move {
	out := make([]types.Move, 0, len(moves))
	for i := 0; i < len(moves); {
		if i+1 < len(moves) && moves[i+1] == moves[i].Inverse() {
			i += 2
			continue
		}
		out = append(out, moves[i])
		i++
	}
	return out
}

// Simplify merges adjacent turns of the same face until no merge applies,
// so "R R" becomes "R2" and "R R'" disappears. The result is equivalent to
// the input and never longer.
func Simplify(moves []types.Move) []types.Move {
	stack := make([]types.Move, 0, len(moves))
	for _, m := range moves {
		if n := len(stack); n > 0 && stack[n-1].CanMerge(m) {
			merged := stack[n-1].Merge(m)
			stack = stack[:n-1]
			if merged != nil {
				stack = append(stack, *merged)
			}
			continue
		}
		stack = append(stack, m)
	}
	return stack
}
