package game

import (
	"errors"
	"fmt"
)

// Player identifies one of the two players of a game.
type Player int

const (
	Player0 Player = iota
	Player1
)

// Other returns the opponent of p.
func (p Player) Other() Player {
	if p == Player0 {
		return Player1
	}
	return Player0
}

func (p Player) String() string {
	return fmt.Sprintf("P%d", int(p)+1)
}

// Valid reports whether p is one of the two players.
func (p Player) Valid() bool {
	return p == Player0 || p == Player1
}

// Exact outcome values. Heuristic estimates must stay strictly between them.
const (
	Win  = 1.0
	Draw = 0.0
	Loss = -Win
)

var (
	// ErrPrecondition is returned when an operation is called on a state that
	// violates its documented precondition.
	ErrPrecondition = errors.New("precondition violation")
	// ErrIllegalAction is returned by Result for an action that is not legal
	// in the given state.
	ErrIllegalAction = errors.New("illegal action")
)

// Game is the contract any two-player, zero-sum, perfect-information game
// must satisfy to be searched.
//
// States must be immutable: Result returns a new state and leaves its input
// (and everything it references) untouched. Actions returns legal actions in a
// deterministic order, and that order decides ties between equally valued
// moves.
type Game[S, A any] interface {
	InitialState() S
	ToMove(state S) Player
	// Actions fails with ErrPrecondition on a terminal state.
	Actions(state S) ([]A, error)
	// Result fails with ErrIllegalAction if action is not in Actions(state).
	Result(state S, action A) (S, error)
	IsTerminal(state S) bool
	// Utility scores state for player. Games without heuristic scoring fail
	// with ErrPrecondition on non-terminal states.
	Utility(state S, player Player) (float64, error)
}

// Heuristic is implemented by games that can estimate non-terminal states.
// Estimates lie strictly inside (Loss, Win) so they never compete with a
// proven outcome.
type Heuristic[S any] interface {
	Estimate(state S, player Player) float64
}

// ZeroSum reports whether the terminal state scores exactly opposite for the
// two players.
func ZeroSum[S, A any](g Game[S, A], state S) (bool, error) {
	u0, err := g.Utility(state, Player0)
	if err != nil {
		return false, err
	}
	u1, err := g.Utility(state, Player1)
	if err != nil {
		return false, err
	}
	return u0 == -u1, nil
}
