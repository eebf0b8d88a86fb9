package metrics

import (
	"gamesearch/searcher"
	"time"
)

// NoAgent marks a missing winner or loser (drawn games, or multi-agent games without a single winner).
const NoAgent = -1

type AgentConfig struct {
	ID        int            `yaml:"id"`
	Algorithm string         `yaml:"algorithm"` // searcher name or "random"
	Depth     searcher.Depth `yaml:"depth"`
	Players   int            `yaml:"players"` // Max-N table size, 0 for the default
	Seed      uint64         `yaml:"seed"`    // random agents only
}

type MoveMetric struct {
	Step   int
	Player int // Agent ID
	Action string
	searcher.SearchMetric
}

type GameMetric struct {
	Agents     int
	Winner     int // Agent ID
	Loser      int // Agent ID
	StartTime  time.Time
	EndTime    time.Time
	Duration   time.Duration
	TotalMoves int
}

type GameRecord struct {
	ID     int
	Agents []int // AgentConfig.ID per seat
	GameMetric
}

type MoveRecord struct {
	Game int // GameRecord.ID
	MoveMetric
}
