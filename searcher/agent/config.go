package agent

import (
	"fmt"

	"gametree/game"
	"gametree/meta"
	"gametree/searcher"
)

// FromConfig builds the agent described by cfg. Search agents collect metrics
// so that engines can record them per turn.
func FromConfig[S, A any](g game.Game[S, A], cfg meta.AgentConfig) (Agent[S, A], error) {
	if cfg.Strategy == "" {
		cfg.Strategy = meta.DefaultStrategy
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	options := []searcher.Option{searcher.WithMetrics(), searcher.WithCutoff(cfg.Cutoff)}
	switch cfg.Strategy {
	case searcher.MinimaxName:
		return NewSearchAgent(searcher.NewMinimax(g, options...), cfg.IsCompetitive()), nil
	case searcher.AlphaBetaName:
		return NewSearchAgent(searcher.NewAlphaBeta(g, options...), cfg.IsCompetitive()), nil
	case meta.RandomStrategy:
		return NewRandomAgent(g, cfg.Seed), nil
	default:
		return nil, fmt.Errorf("unsupported strategy %q", cfg.Strategy)
	}
}
