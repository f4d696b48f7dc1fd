package searcher

import (
	"fmt"
	"math"

	"gametree/game"

	"github.com/rs/zerolog/log"
)

// Result is the outcome of one search from a root state.
type Result[A any] struct {
	Action  A
	Value   float64 // Value of Action for the perspective player
	Found   bool    // False when the root is terminal
	Player  game.Player
	Metrics SearchMetrics
}

// walk carries what stays fixed for a whole search below one root.
type walk[S any] struct {
	perspective game.Player
	heuristic   game.Heuristic[S]
	metrics     MetricsCollector
}

// ChooseMove returns the action chosen for the mover at state. The boolean is
// false, with no error, when state is already terminal.
func (s *Searcher[S, A]) ChooseMove(state S, competitive bool) (A, bool, error) {
	result, err := s.Search(state, competitive)
	return result.Action, result.Found, err
}

// Search runs the configured strategy from state and reports the chosen
// action together with its value and search metrics.
func (s *Searcher[S, A]) Search(state S, competitive bool) (Result[A], error) {
	player := Perspective(s.game, state, competitive)
	if s.game.IsTerminal(state) {
		return Result[A]{Player: player}, nil
	}

	w := &walk[S]{
		perspective: player,
		metrics:     NewNoMetricsCollector(),
	}
	if s.metrics {
		w.metrics = NewMetricsCollector()
	}
	if s.cutoff > 0 {
		heuristic, ok := s.game.(game.Heuristic[S])
		if !ok {
			return Result[A]{Player: player}, fmt.Errorf("%s search with cutoff %d: game has no heuristic: %w", s.Name(), s.cutoff, game.ErrPrecondition)
		}
		w.heuristic = heuristic
	}

	value, action, found, err := s.value(state, 0, true, math.Inf(-1), math.Inf(1), w)
	if err != nil {
		return Result[A]{Player: player}, fmt.Errorf("%s search: %w", s.Name(), err)
	}
	metrics := w.metrics.Complete()

	log.Debug().
		Str("strategy", s.Name()).
		Stringer("perspective", player).
		Bool("competitive", competitive).
		Interface("action", action).
		Float64("value", value).
		Int64("nodes", metrics.Nodes).
		Int64("prunes", metrics.Prunes).
		Msg("chose move")

	return Result[A]{
		Action:  action,
		Value:   value,
		Found:   found,
		Player:  player,
		Metrics: metrics,
	}, nil
}

// value scores state for the perspective player. The root is a maximizing
// ply and plies alternate with depth. The first action reaching the best
// value is kept: later actions replace it only when strictly better. With
// pruning enabled the ply returns as soon as its value falls outside the
// (alpha, beta) window.
func (s *Searcher[S, A]) value(state S, depth int, maximizing bool, alpha, beta float64, w *walk[S]) (float64, A, bool, error) {
	var move A
	w.metrics.AddNode()

	if s.game.IsTerminal(state) {
		w.metrics.AddLeaf()
		utility, err := s.game.Utility(state, w.perspective)
		if err != nil {
			return 0, move, false, fmt.Errorf("scoring terminal state at depth %d: %w", depth, err)
		}
		return utility, move, false, nil
	}

	if s.cutoff > 0 && depth >= s.cutoff {
		w.metrics.AddCutoff()
		return w.heuristic.Estimate(state, w.perspective), move, false, nil
	}

	actions, err := s.game.Actions(state)
	if err != nil {
		return 0, move, false, fmt.Errorf("listing actions at depth %d: %w", depth, err)
	}
	if len(actions) == 0 {
		return 0, move, false, fmt.Errorf("non-terminal state at depth %d has no actions: %w", depth, game.ErrPrecondition)
	}

	best := math.Inf(1)
	if maximizing {
		best = math.Inf(-1)
	}
	found := false

	for _, action := range actions {
		child, err := s.game.Result(state, action)
		if err != nil {
			return 0, move, false, fmt.Errorf("applying %v at depth %d: %w", action, depth, err)
		}
		v, _, _, err := s.value(child, depth+1, !maximizing, alpha, beta, w)
		if err != nil {
			return 0, move, false, err
		}

		if maximizing {
			if !found || v > best {
				best, move, found = v, action, true
			}
			if s.prune {
				if best >= beta {
					w.metrics.AddPrune()
					return best, move, true, nil
				}
				alpha = max(alpha, best)
			}
		} else {
			if !found || v < best {
				best, move, found = v, action, true
			}
			if s.prune {
				if best <= alpha {
					w.metrics.AddPrune()
					return best, move, true, nil
				}
				beta = min(beta, best)
			}
		}
	}

	return best, move, true, nil
}
