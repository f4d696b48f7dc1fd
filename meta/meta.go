// meta/meta.go
package meta

import (
	"errors"
	"fmt"
	"os"

	"gametree/searcher"

	"gopkg.in/yaml.v3"
)

// MaxMoves bounds a local play-out when the configuration sets no limit.
const MaxMoves = 1000

// DefaultStrategy is used for players whose strategy is left empty.
const DefaultStrategy = searcher.AlphaBetaName

// RandomStrategy picks uniformly among legal actions.
const RandomStrategy = "random"

var ErrInvalidConfig = errors.New("invalid config")

// AgentConfig describes how one player chooses moves.
type AgentConfig struct {
	Strategy    string `yaml:"strategy"`
	Competitive *bool  `yaml:"competitive"`
	Cutoff      int    `yaml:"cutoff"`
	Seed        uint64 `yaml:"seed"`
}

// IsCompetitive reports whether the player maximizes its own payoff. Players
// are competitive unless configured otherwise.
func (c AgentConfig) IsCompetitive() bool {
	return c.Competitive == nil || *c.Competitive
}

// Config describes a two-player match.
type Config struct {
	Players  []AgentConfig `yaml:"players"`
	MaxMoves int           `yaml:"max_moves"`
}

// Parse decodes a YAML match description, fills in defaults and validates it.
func Parse(data []byte) (Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse match config: %w", err)
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Load reads and parses the match description at path.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read match config: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.MaxMoves == 0 {
		c.MaxMoves = MaxMoves
	}
	for i := range c.Players {
		if c.Players[i].Strategy == "" {
			c.Players[i].Strategy = DefaultStrategy
		}
	}
}

// Validate checks that the match has two players with known strategies and
// sane limits.
func (c Config) Validate() error {
	if len(c.Players) != 2 {
		return fmt.Errorf("%w: need 2 players, got %d", ErrInvalidConfig, len(c.Players))
	}
	if c.MaxMoves < 0 {
		return fmt.Errorf("%w: negative max_moves %d", ErrInvalidConfig, c.MaxMoves)
	}
	for i, player := range c.Players {
		if err := player.Validate(); err != nil {
			return fmt.Errorf("player %d: %w", i+1, err)
		}
	}
	return nil
}

// Validate checks the strategy and cutoff. An empty strategy stands for
// DefaultStrategy.
func (c AgentConfig) Validate() error {
	switch c.Strategy {
	case "", searcher.MinimaxName, searcher.AlphaBetaName, RandomStrategy:
	default:
		return fmt.Errorf("%w: unknown strategy %q", ErrInvalidConfig, c.Strategy)
	}
	if c.Cutoff < 0 {
		return fmt.Errorf("%w: negative cutoff %d", ErrInvalidConfig, c.Cutoff)
	}
	return nil
}
