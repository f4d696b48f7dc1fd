package searcher

import (
	"gametree/game"
)

const (
	MinimaxName   = "minimax"
	AlphaBetaName = "alphabeta"
)

type Option func(o *options)

type options struct {
	cutoff  int
	metrics bool
}

// WithCutoff limits the search to depth plies below the root. Non-terminal
// states at the cutoff are scored with the game's Heuristic estimate.
func WithCutoff(depth int) Option {
	return func(o *options) {
		if depth > 0 {
			o.cutoff = depth
		}
	}
}

// WithMetrics counts visited nodes, leaves, cutoffs and prunes per search.
func WithMetrics() Option {
	return func(o *options) {
		o.metrics = true
	}
}

// Searcher picks moves for a game by minimax, optionally with alpha-beta
// pruning. It keeps no state between calls and is safe for concurrent use on
// independent states.
type Searcher[S, A any] struct {
	game    game.Game[S, A]
	prune   bool
	cutoff  int
	metrics bool
}

func newSearcher[S, A any](g game.Game[S, A], prune bool, opts []Option) *Searcher[S, A] {
	if g == nil {
		panic("searcher requires a game")
	}
	o := options{}
	for _, option := range opts {
		option(&o)
	}
	return &Searcher[S, A]{
		game:    g,
		prune:   prune,
		cutoff:  o.cutoff,
		metrics: o.metrics,
	}
}

// NewMinimax returns an exhaustive minimax searcher.
func NewMinimax[S, A any](g game.Game[S, A], options ...Option) *Searcher[S, A] {
	return newSearcher(g, false, options)
}

// NewAlphaBeta returns a minimax searcher with alpha-beta pruning.
func NewAlphaBeta[S, A any](g game.Game[S, A], options ...Option) *Searcher[S, A] {
	return newSearcher(g, true, options)
}

// Minimax chooses a move for the mover at state by exhaustive minimax. It
// reports false when state is terminal.
func Minimax[S, A any](g game.Game[S, A], state S, competitive bool) (A, bool, error) {
	return NewMinimax(g).ChooseMove(state, competitive)
}

// AlphaBeta is Minimax with alpha-beta pruning. It returns a move of the
// same value as Minimax.
func AlphaBeta[S, A any](g game.Game[S, A], state S, competitive bool) (A, bool, error) {
	return NewAlphaBeta(g).ChooseMove(state, competitive)
}

// Perspective returns the player whose payoff a search from state maximizes:
// the mover when competitive, otherwise Player0.
func Perspective[S, A any](g game.Game[S, A], state S, competitive bool) game.Player {
	if competitive {
		return g.ToMove(state)
	}
	return game.Player0
}

func (s *Searcher[S, A]) Name() string {
	if s.prune {
		return AlphaBetaName
	}
	return MinimaxName
}

func (s *Searcher[S, A]) Cutoff() int {
	return s.cutoff
}
