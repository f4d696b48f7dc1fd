package engine

import (
	"errors"

	"gametree/game"
	"gametree/searcher"
)

// ErrNoMove is returned when an agent finds no move on a non-terminal state.
var ErrNoMove = errors.New("agent returned no move")

type Engine[S, A any] interface {
	// Run plays until the game ends or a max number of moves is reached
	Run() (Record[S, A], error)
}

// Turn is one applied move. Metrics stay empty for agents that do not search.
type Turn[A any] struct {
	Step    int
	Player  game.Player
	Action  A
	Value   float64
	Metrics searcher.SearchMetrics
}

// Record is the outcome of a play-out.
type Record[S, A any] struct {
	Turns []Turn[A]
	Final S
	// Finished is false when the play-out stopped at the move limit.
	Finished  bool
	Utilities [2]float64
	Winner    game.Player
	HasWinner bool
}
