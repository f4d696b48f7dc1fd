package agent

import (
	"gametree/searcher"
)

// Agent chooses moves for whichever player is to move.
type Agent[S, A any] interface {
	// FindMove returns the chosen action for the mover at state. The boolean is
	// false, with no error, when state is terminal.
	FindMove(state S) (A, bool, error)
}

// Searching is implemented by agents that can report the full search result,
// including metrics, behind a move.
type Searching[S, A any] interface {
	Agent[S, A]
	Search(state S) (searcher.Result[A], error)
}
