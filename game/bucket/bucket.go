// Package bucket implements a two-move bucket game. The first player picks
// a bucket, the second player picks a number from it, and the number is the
// payoff of the player to move after that choice.
package bucket

import (
	"fmt"

	"gametree/game"
	"gametree/utils"
)

// Action is either a bucket choice or a number choice.
type Action struct {
	Bucket string // Set when choosing a bucket
	Number int    // Set when choosing a number from the chosen bucket
}

func Bucket(name string) Action {
	return Action{Bucket: name}
}

func Number(n int) Action {
	return Action{Number: n}
}

func (a Action) String() string {
	if a.Bucket != "" {
		return a.Bucket
	}
	return fmt.Sprintf("%d", a.Number)
}

// State is the player to move and the choices still open. It is never
// modified after creation.
type State struct {
	player  game.Player
	choices []Action
}

func (s State) Player() game.Player {
	return s.player
}

func (s State) String() string {
	return fmt.Sprintf("(%s, %v)", s.player, s.choices)
}

var contents = map[string][]int{
	"A": {-50, 50},
	"B": {3, 1},
	"C": {-5, 15},
}

// Game is the bucket game. The zero value is ready to use.
type Game struct{}

func New() Game {
	return Game{}
}

func (Game) InitialState() State {
	return State{
		player:  game.Player0,
		choices: []Action{Bucket("A"), Bucket("B"), Bucket("C")},
	}
}

func (Game) ToMove(state State) game.Player {
	return state.player
}

func (g Game) Actions(state State) ([]Action, error) {
	if g.IsTerminal(state) {
		return nil, fmt.Errorf("actions of terminal state %v: %w", state, game.ErrPrecondition)
	}
	actions := make([]Action, len(state.choices))
	copy(actions, state.choices)
	return actions, nil
}

func (g Game) Result(state State, action Action) (State, error) {
	if g.IsTerminal(state) || !utils.Contains(state.choices, action) {
		return State{}, fmt.Errorf("%v in state %v: %w", action, state, game.ErrIllegalAction)
	}

	next := State{player: state.player.Other()}
	if action.Bucket == "" {
		next.choices = []Action{action}
		return next, nil
	}
	for _, n := range contents[action.Bucket] {
		next.choices = append(next.choices, Number(n))
	}
	return next, nil
}

func (Game) IsTerminal(state State) bool {
	return len(state.choices) == 1
}

// Utility is the remaining number for the player to move and its negation for
// the other player.
func (g Game) Utility(state State, player game.Player) (float64, error) {
	if !g.IsTerminal(state) || state.choices[0].Bucket != "" {
		return 0, fmt.Errorf("utility of non-terminal state %v: %w", state, game.ErrPrecondition)
	}
	n := float64(state.choices[0].Number)
	if player == state.player {
		return n, nil
	}
	return -n, nil
}
