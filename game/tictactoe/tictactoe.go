// Package tictactoe implements 3x3 tic-tac-toe in exact, heuristic and
// forced-win variants.
package tictactoe

import (
	"fmt"
	"strings"

	"gametree/game"
	"gametree/utils"
)

const Size = 3

type Mark int8

const (
	Empty Mark = iota
	X          // Player0
	O          // Player1
)

func markOf(player game.Player) Mark {
	if player == game.Player0 {
		return X
	}
	return O
}

func (m Mark) String() string {
	switch m {
	case X:
		return "X"
	case O:
		return "O"
	default:
		return "."
	}
}

// Action places the mover's mark on a cell.
type Action struct {
	Row int
	Col int
}

func (a Action) String() string {
	return fmt.Sprintf("(%d,%d)", a.Row, a.Col)
}

type Board [Size][Size]Mark

// State is a board and the player to move. Boards are arrays, so a State is
// copied by value and never shared between positions.
type State struct {
	Board  Board
	Player game.Player
}

func (s State) String() string {
	rows := make([]string, Size)
	for r := range s.Board {
		var b strings.Builder
		for _, m := range s.Board[r] {
			b.WriteString(m.String())
		}
		rows[r] = b.String()
	}
	return strings.Join(rows, "|")
}

// Parse reads a board written row by row, rows separated by '|', using
// 'X', 'O' and '.' for cells. The mover is X when both have placed the same
// number of marks, otherwise O.
func Parse(text string) (State, error) {
	rows := strings.Split(text, "|")
	if len(rows) != Size {
		return State{}, fmt.Errorf("parse %q: want %d rows, got %d", text, Size, len(rows))
	}
	var state State
	xCount, oCount := 0, 0
	for r, row := range rows {
		if len(row) != Size {
			return State{}, fmt.Errorf("parse %q: row %d has %d cells", text, r, len(row))
		}
		for c, ch := range row {
			switch ch {
			case 'X', 'x':
				state.Board[r][c] = X
				xCount++
			case 'O', 'o':
				state.Board[r][c] = O
				oCount++
			case '.', ' ':
			default:
				return State{}, fmt.Errorf("parse %q: unexpected cell %q", text, ch)
			}
		}
	}
	switch xCount - oCount {
	case 0:
		state.Player = game.Player0
	case 1:
		state.Player = game.Player1
	default:
		return State{}, fmt.Errorf("parse %q: %d X marks and %d O marks", text, xCount, oCount)
	}
	return state, nil
}

type Option func(g *Game)

// WithHeuristic lets Utility score non-terminal states with Estimate.
func WithHeuristic() Option {
	return func(g *Game) {
		g.heuristic = true
	}
}

// WithForcedWins restricts Actions to the winning cell whenever the mover can
// complete a line immediately.
func WithForcedWins() Option {
	return func(g *Game) {
		g.forcedWins = true
	}
}

type Game struct {
	heuristic  bool
	forcedWins bool
}

func New(options ...Option) *Game {
	g := &Game{}
	for _, option := range options {
		option(g)
	}
	return g
}

func (g *Game) InitialState() State {
	return State{Player: game.Player0}
}

func (g *Game) ToMove(state State) game.Player {
	return state.Player
}

func (g *Game) Actions(state State) ([]Action, error) {
	if g.IsTerminal(state) {
		return nil, fmt.Errorf("actions of terminal state %v: %w", state, game.ErrPrecondition)
	}
	return g.actions(state), nil
}

func (g *Game) actions(state State) []Action {
	var actions []Action
	mark := markOf(state.Player)
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			if state.Board[r][c] != Empty {
				continue
			}
			action := Action{Row: r, Col: c}
			if g.forcedWins {
				next := state.Board
				next[r][c] = mark
				if hasLine(next, mark) {
					return []Action{action}
				}
			}
			actions = append(actions, action)
		}
	}
	return actions
}

func (g *Game) Result(state State, action Action) (State, error) {
	if g.IsTerminal(state) || !utils.Contains(g.actions(state), action) {
		return State{}, fmt.Errorf("%v in state %v: %w", action, state, game.ErrIllegalAction)
	}
	next := state
	next.Board[action.Row][action.Col] = markOf(state.Player)
	next.Player = state.Player.Other()
	return next, nil
}

// IsTerminal reports whether the player who just moved has a line or the
// board is full.
func (g *Game) IsTerminal(state State) bool {
	if hasLine(state.Board, markOf(state.Player.Other())) {
		return true
	}
	for r := range state.Board {
		for _, m := range state.Board[r] {
			if m == Empty {
				return false
			}
		}
	}
	return true
}

// Utility is Win, Loss or Draw at terminal states. With WithHeuristic,
// non-terminal states are scored by Estimate.
func (g *Game) Utility(state State, player game.Player) (float64, error) {
	if !g.IsTerminal(state) {
		if g.heuristic {
			return g.Estimate(state, player), nil
		}
		return 0, fmt.Errorf("utility of non-terminal state %v: %w", state, game.ErrPrecondition)
	}
	return outcome(state.Board, player), nil
}

// Winner returns the player with a line, if any.
func (g *Game) Winner(state State) (game.Player, bool) {
	for _, player := range []game.Player{game.Player0, game.Player1} {
		if hasLine(state.Board, markOf(player)) {
			return player, true
		}
	}
	return 0, false
}

func outcome(board Board, player game.Player) float64 {
	switch {
	case hasLine(board, markOf(player)):
		return game.Win
	case hasLine(board, markOf(player.Other())):
		return game.Loss
	default:
		return game.Draw
	}
}

var lines = [][Size][2]int{
	{{0, 0}, {0, 1}, {0, 2}},
	{{1, 0}, {1, 1}, {1, 2}},
	{{2, 0}, {2, 1}, {2, 2}},
	{{0, 0}, {1, 0}, {2, 0}},
	{{0, 1}, {1, 1}, {2, 1}},
	{{0, 2}, {1, 2}, {2, 2}},
	{{0, 0}, {1, 1}, {2, 2}},
	{{0, 2}, {1, 1}, {2, 0}},
}

func hasLine(board Board, mark Mark) bool {
	for _, line := range lines {
		if board[line[0][0]][line[0][1]] == mark &&
			board[line[1][0]][line[1][1]] == mark &&
			board[line[2][0]][line[2][1]] == mark {
			return true
		}
	}
	return false
}
