package agent

import (
	"fmt"

	"gametree/game"

	"golang.org/x/exp/rand"
)

// randomAgent is not safe for concurrent use: it owns a seeded source.
type randomAgent[S, A any] struct {
	game game.Game[S, A]
	rng  *rand.Rand
}

// NewRandomAgent returns an agent that samples uniformly among the legal
// actions. The same seed replays the same moves.
func NewRandomAgent[S, A any](g game.Game[S, A], seed uint64) Agent[S, A] {
	if g == nil {
		panic("random agent requires a game")
	}
	return &randomAgent[S, A]{game: g, rng: rand.New(rand.NewSource(seed))}
}

func (a *randomAgent[S, A]) FindMove(state S) (A, bool, error) {
	var move A
	if a.game.IsTerminal(state) {
		return move, false, nil
	}
	actions, err := a.game.Actions(state)
	if err != nil {
		return move, false, fmt.Errorf("random move: %w", err)
	}
	if len(actions) == 0 {
		return move, false, nil
	}
	return actions[a.rng.Intn(len(actions))], true, nil
}
