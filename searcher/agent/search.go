package agent

import (
	"gametree/searcher"
)

type searchAgent[S, A any] struct {
	searcher    *searcher.Searcher[S, A]
	competitive bool
}

// NewSearchAgent returns an agent for actual game play that picks its moves
// by searching the game tree.
func NewSearchAgent[S, A any](s *searcher.Searcher[S, A], competitive bool) Searching[S, A] {
	if s == nil {
		panic("search agent requires a searcher")
	}
	return searchAgent[S, A]{searcher: s, competitive: competitive}
}

func (a searchAgent[S, A]) FindMove(state S) (A, bool, error) {
	return a.searcher.ChooseMove(state, a.competitive)
}

func (a searchAgent[S, A]) Search(state S) (searcher.Result[A], error) {
	return a.searcher.Search(state, a.competitive)
}
