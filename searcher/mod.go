package searcher

import (
	"fmt"
	"gamesearch/game"
)

// Sentinel scores, from the searching agent's perspective
const (
	Win    = 1.0
	Cutoff = 0.0 // Budget exhausted, outcome unknown
	Loss   = -1.0
)

// Alpha-beta window, one step outside the sentinels
const (
	lowerBound = Loss - 1
	upperBound = Win + 1
)

// Depth is the number of plies a search may still explore, or Unlimited.
type Depth int

// Unlimited searches until legal actions run out, which the game must guarantee happens on every path.
const Unlimited Depth = -1

func (d Depth) Valid() bool {
	return d >= Unlimited
}

func (d Depth) exhausted() bool {
	return d == 0
}

func (d Depth) next() Depth {
	if d == Unlimited {
		return Unlimited
	}
	return d - 1
}

func (d Depth) String() string {
	if d == Unlimited {
		return "unlimited"
	}
	return fmt.Sprintf("%d", int(d))
}

// Result is the score of a node with the action chosen there (nil at cutoff, terminal and chance nodes).
type Result struct {
	Score  float64
	Action game.Action
}

type Searcher interface {
	// Search explores the tree below state on behalf of self and returns the root result
	Search(state game.State, self game.AgentID, budget Depth) (Result, SearchMetric)
	Name() string
}

// isEnd reports a loss when maxID is stuck, a win when minID is stuck and 0 otherwise.
func isEnd(state game.State, maxID, minID game.AgentID) float64 {
	if len(state.LegalActions(maxID)) == 0 {
		return Loss
	}
	if len(state.LegalActions(minID)) == 0 {
		return Win
	}
	return 0
}

// opponent is the single adversary of a two player game.
func opponent(self game.AgentID) game.AgentID {
	return (self + 1) % 2
}
