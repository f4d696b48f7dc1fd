package tictactoe

import (
	"testing"

	"gametree/game"

	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, text string) State {
	t.Helper()
	state, err := Parse(text)
	require.NoError(t, err)
	return state
}

func TestParse(t *testing.T) {
	t.Run("deriving the mover from mark counts", func(t *testing.T) {
		require.Equal(t, game.Player0, mustParse(t, "...|...|...").Player)
		require.Equal(t, game.Player1, mustParse(t, "X..|...|...").Player)
		require.Equal(t, game.Player0, mustParse(t, "XO.|...|...").Player)
	})

	t.Run("round tripping through String", func(t *testing.T) {
		text := "XO.|.X.|..O"
		require.Equal(t, text, mustParse(t, text).String())
	})

	t.Run("rejecting malformed boards", func(t *testing.T) {
		for _, text := range []string{"...|...", "....|...|...", "X?.|...|...", "XX.|...|..."} {
			_, err := Parse(text)
			require.Error(t, err, "Board %q should be rejected", text)
		}
	})
}

func TestActions(t *testing.T) {
	t.Run("listing empty cells in row-major order", func(t *testing.T) {
		g := New()
		actions, err := g.Actions(mustParse(t, "X.O|.X.|O.."))

		require.NoError(t, err)
		require.Equal(t, []Action{{0, 1}, {1, 0}, {1, 2}, {2, 1}, {2, 2}}, actions)
	})

	t.Run("failing on a won board", func(t *testing.T) {
		g := New()
		_, err := g.Actions(mustParse(t, "XXX|OO.|..."))

		require.ErrorIs(t, err, game.ErrPrecondition)
	})

	t.Run("forcing the immediate win", func(t *testing.T) {
		g := New(WithForcedWins())
		actions, err := g.Actions(mustParse(t, "O..|O..|.XX"))

		require.NoError(t, err)
		require.Equal(t, []Action{{2, 0}}, actions, "Only the winning cell should be offered")
	})

	t.Run("offering every cell without an immediate win", func(t *testing.T) {
		g := New(WithForcedWins())
		actions, err := g.Actions(mustParse(t, "X..|...|..."))

		require.NoError(t, err)
		require.Len(t, actions, 8)
	})
}

func TestResult(t *testing.T) {
	t.Run("placing the mover's mark and passing the turn", func(t *testing.T) {
		g := New()
		state := g.InitialState()

		next, err := g.Result(state, Action{Row: 1, Col: 1})

		require.NoError(t, err)
		require.Equal(t, X, next.Board[1][1])
		require.Equal(t, game.Player1, g.ToMove(next))
		require.Equal(t, Empty, state.Board[1][1], "Parent board should not change")
		require.Equal(t, game.Player0, g.ToMove(state), "Parent mover should not change")
	})

	t.Run("rejecting an occupied cell", func(t *testing.T) {
		g := New()
		_, err := g.Result(mustParse(t, "X..|...|..."), Action{Row: 0, Col: 0})

		require.ErrorIs(t, err, game.ErrIllegalAction)
	})

	t.Run("rejecting a cell off the board", func(t *testing.T) {
		g := New()
		_, err := g.Result(g.InitialState(), Action{Row: 3, Col: 0})

		require.ErrorIs(t, err, game.ErrIllegalAction)
	})

	t.Run("rejecting non-winning cells when a win is forced", func(t *testing.T) {
		g := New(WithForcedWins())
		_, err := g.Result(mustParse(t, "O..|O..|.XX"), Action{Row: 0, Col: 1})

		require.ErrorIs(t, err, game.ErrIllegalAction)
	})
}

func TestTerminalAndUtility(t *testing.T) {
	g := New()

	t.Run("scoring a win", func(t *testing.T) {
		state := mustParse(t, "XXX|OO.|...")
		require.True(t, g.IsTerminal(state))

		u0, err := g.Utility(state, game.Player0)
		require.NoError(t, err)
		u1, err := g.Utility(state, game.Player1)
		require.NoError(t, err)

		require.Equal(t, game.Win, u0)
		require.Equal(t, game.Loss, u1)
		winner, ok := g.Winner(state)
		require.True(t, ok)
		require.Equal(t, game.Player0, winner)
	})

	t.Run("scoring a draw", func(t *testing.T) {
		state := mustParse(t, "XOX|XOO|OXX")
		require.True(t, g.IsTerminal(state))

		u, err := g.Utility(state, game.Player1)
		require.NoError(t, err)
		require.Equal(t, game.Draw, u)
		_, ok := g.Winner(state)
		require.False(t, ok)
	})

	t.Run("failing on non-terminal state", func(t *testing.T) {
		_, err := g.Utility(mustParse(t, "X..|...|..."), game.Player0)

		require.ErrorIs(t, err, game.ErrPrecondition)
	})

	t.Run("zero-sum on terminal states", func(t *testing.T) {
		for _, text := range []string{"XXX|OO.|...", "OOO|XX.|X..", "XOX|XOO|OXX"} {
			ok, err := game.ZeroSum[State, Action](g, mustParse(t, text))
			require.NoError(t, err)
			require.True(t, ok, "Utilities should negate on %q", text)
		}
	})
}

func TestEstimate(t *testing.T) {
	t.Run("scoring non-terminal states with the heuristic variant", func(t *testing.T) {
		g := New(WithHeuristic())
		state := mustParse(t, "...|.X.|...")

		u, err := g.Utility(state, game.Player0)

		require.NoError(t, err)
		require.Equal(t, g.Estimate(state, game.Player0), u)
		require.Greater(t, u, 0.0, "Center should favor its owner")
	})

	t.Run("preferring the center over an edge", func(t *testing.T) {
		g := New()
		center := mustParse(t, "...|.X.|...")
		edge := mustParse(t, ".X.|...|...")

		require.Greater(t, g.Estimate(center, game.Player0), g.Estimate(edge, game.Player0))
	})

	t.Run("staying inside the exact outcome range", func(t *testing.T) {
		g := New()
		for _, text := range []string{"XOX|.X.|O.X", "OXO|.O.|X.O", "X.X|.X.|X.X"} {
			state := State{Board: mustParseBoard(t, text)}
			for _, player := range []game.Player{game.Player0, game.Player1} {
				estimate := g.Estimate(state, player)
				require.Greater(t, estimate, game.Loss)
				require.Less(t, estimate, game.Win)
			}
		}
	})

	t.Run("keeping exact outcomes when terminal", func(t *testing.T) {
		g := New(WithHeuristic())
		u, err := g.Utility(mustParse(t, "XXX|OO.|..."), game.Player0)

		require.NoError(t, err)
		require.Equal(t, game.Win, u)
	})
}

// mustParseBoard reads a board without checking mark counts.
func mustParseBoard(t *testing.T, text string) Board {
	t.Helper()
	var board Board
	for i, ch := range text {
		r, c := i/(Size+1), i%(Size+1)
		switch ch {
		case 'X':
			board[r][c] = X
		case 'O':
			board[r][c] = O
		}
	}
	return board
}
