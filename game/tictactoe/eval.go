package tictactoe

import (
	"gametree/game"
)

const (
	centerWeight = 3
	cornerWeight = 2
)

var corners = [][2]int{{0, 0}, {0, 2}, {2, 0}, {2, 2}}

// heuristicBound is larger than any raw positional score, so dividing by it
// keeps estimates strictly inside (Loss, Win).
const heuristicBound = centerWeight + 4*cornerWeight + 8*Size + 1

// Estimate scores a position for player in (-1, 1): the center and corners
// are weighted for the player and against the opponent, and every line the
// opponent has not entered adds the player's marks on it.
func (g *Game) Estimate(state State, player game.Player) float64 {
	return float64(positionalScore(state.Board, player)) / heuristicBound
}

func positionalScore(board Board, player game.Player) int {
	mine := markOf(player)
	theirs := markOf(player.Other())
	score := 0

	score += weigh(board[1][1], mine, theirs, centerWeight)
	for _, corner := range corners {
		score += weigh(board[corner[0]][corner[1]], mine, theirs, cornerWeight)
	}

	for _, line := range lines {
		count := 0
		blocked := false
		for _, cell := range line {
			switch board[cell[0]][cell[1]] {
			case mine:
				count++
			case theirs:
				blocked = true
			}
		}
		if !blocked {
			score += count
		}
	}
	return score
}

func weigh(m, mine, theirs Mark, weight int) int {
	switch m {
	case mine:
		return weight
	case theirs:
		return -weight
	default:
		return 0
	}
}
