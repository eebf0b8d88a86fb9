package searcher

import "fmt"

const (
	MinimaxName    = "minimax"
	AlphaBetaName  = "alphabeta"
	ExpectimaxName = "expectimax"
	MaxNName       = "maxn"
)

// DefaultPlayers is the table size assumed by Max-N.
const DefaultPlayers = 3

type Option func(c *config)

type config struct {
	players int
	metrics Collector
}

// WithPlayers sets the number of agents Max-N cycles through (self included).
func WithPlayers(players int) Option {
	return func(c *config) {
		if players > 1 {
			c.players = players
		}
	}
}

func WithMetrics() Option {
	return func(c *config) {
		c.metrics = NewCollector()
	}
}

func newConfig(options []Option) config {
	c := config{ // Default values
		players: DefaultPlayers,
		metrics: NewDummyCollector(),
	}
	for _, option := range options {
		option(&c)
	}
	return c
}

// New builds the searcher registered under name.
func New(name string, options ...Option) (Searcher, error) {
	switch name {
	case MinimaxName:
		return NewMinimax(options...), nil
	case AlphaBetaName:
		return NewAlphaBeta(options...), nil
	case ExpectimaxName:
		return NewExpectimax(options...), nil
	case MaxNName:
		return NewMaxN(options...), nil
	default:
		return nil, fmt.Errorf("unknown search algorithm %q", name)
	}
}
