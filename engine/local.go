package engine

import (
	"fmt"

	"gametree/game"
	"gametree/meta"
	"gametree/searcher/agent"

	"github.com/rs/zerolog/log"
)

type localEngine[S, A any] struct {
	game     game.Game[S, A]
	agents   [2]agent.Agent[S, A]
	start    S
	hasStart bool
	maxMoves int
}

type Option[S, A any] func(e *localEngine[S, A])

// WithStart plays from state instead of the game's initial state.
func WithStart[S, A any](state S) Option[S, A] {
	return func(e *localEngine[S, A]) {
		e.start = state
		e.hasStart = true
	}
}

// WithMaxMoves stops the play-out after n moves. Non-positive values keep the
// default.
func WithMaxMoves[S, A any](n int) Option[S, A] {
	return func(e *localEngine[S, A]) {
		if n > 0 {
			e.maxMoves = n
		}
	}
}

// LocalEngine alternates the agents in-process: agents[0] plays Player0 and
// agents[1] plays Player1.
func LocalEngine[S, A any](g game.Game[S, A], agents [2]agent.Agent[S, A], options ...Option[S, A]) Engine[S, A] {
	if g == nil {
		panic("engine requires a game")
	}
	for i, a := range agents {
		if a == nil {
			panic(fmt.Sprintf("missing agent for player %d", i+1))
		}
	}
	e := &localEngine[S, A]{
		game:     g,
		agents:   agents,
		maxMoves: meta.MaxMoves,
	}
	for _, option := range options {
		option(e)
	}
	return e
}

// FromConfig builds a local engine for a configured match.
func FromConfig[S, A any](g game.Game[S, A], cfg meta.Config, options ...Option[S, A]) (Engine[S, A], error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	var agents [2]agent.Agent[S, A]
	for i, player := range cfg.Players {
		a, err := agent.FromConfig(g, player)
		if err != nil {
			return nil, fmt.Errorf("player %d: %w", i+1, err)
		}
		agents[i] = a
	}
	options = append([]Option[S, A]{WithMaxMoves[S, A](cfg.MaxMoves)}, options...)
	return LocalEngine(g, agents, options...), nil
}

// Run executes the game loop until a terminal state or the move limit.
func (e *localEngine[S, A]) Run() (Record[S, A], error) {
	state := e.game.InitialState()
	if e.hasStart {
		state = e.start
	}
	record := Record[S, A]{}

	log.Info().Msgf("player %s is starting", e.game.ToMove(state))

	for step := 1; !e.game.IsTerminal(state) && step <= e.maxMoves; step++ {
		player := e.game.ToMove(state)
		turn, err := e.play(step, player, state)
		if err != nil {
			record.Final = state
			return record, err
		}

		next, err := e.game.Result(state, turn.Action)
		if err != nil {
			record.Final = state
			return record, fmt.Errorf("turn %d: %w", step, err)
		}
		log.Debug().
			Int("step", step).
			Stringer("player", player).
			Interface("action", turn.Action).
			Int64("nodes", turn.Metrics.Nodes).
			Msg("played move")

		record.Turns = append(record.Turns, turn)
		state = next
	}

	record.Final = state
	if !e.game.IsTerminal(state) {
		log.Info().Msgf("stopped after %d moves (no result yet)", e.maxMoves)
		return record, nil
	}

	record.Finished = true
	for _, player := range []game.Player{game.Player0, game.Player1} {
		utility, err := e.game.Utility(state, player)
		if err != nil {
			return record, fmt.Errorf("scoring final state: %w", err)
		}
		record.Utilities[player] = utility
	}
	switch {
	case record.Utilities[game.Player0] > record.Utilities[game.Player1]:
		record.Winner, record.HasWinner = game.Player0, true
	case record.Utilities[game.Player1] > record.Utilities[game.Player0]:
		record.Winner, record.HasWinner = game.Player1, true
	}

	if record.HasWinner {
		log.Info().Msgf("game ended after %d moves, winner: %s", len(record.Turns), record.Winner)
	} else {
		log.Info().Msgf("game ended after %d moves in a draw", len(record.Turns))
	}
	return record, nil
}

func (e *localEngine[S, A]) play(step int, player game.Player, state S) (Turn[A], error) {
	turn := Turn[A]{Step: step, Player: player}
	a := e.agents[player]

	if s, ok := a.(agent.Searching[S, A]); ok {
		result, err := s.Search(state)
		if err != nil {
			return turn, fmt.Errorf("turn %d, player %s: %w", step, player, err)
		}
		if !result.Found {
			return turn, fmt.Errorf("turn %d, player %s: %w", step, player, ErrNoMove)
		}
		turn.Action, turn.Value, turn.Metrics = result.Action, result.Value, result.Metrics
		return turn, nil
	}

	move, found, err := a.FindMove(state)
	if err != nil {
		return turn, fmt.Errorf("turn %d, player %s: %w", step, player, err)
	}
	if !found {
		return turn, fmt.Errorf("turn %d, player %s: %w", step, player, ErrNoMove)
	}
	turn.Action = move
	return turn, nil
}
