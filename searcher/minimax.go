package searcher

import "gamesearch/game"

// Minimax plays a two player zero-sum game against a single adversary, the agent of opposite parity.
type Minimax struct {
	metrics Collector
}

func NewMinimax(options ...Option) *Minimax {
	c := newConfig(options)
	return &Minimax{metrics: c.metrics}
}

func (m *Minimax) Name() string { return MinimaxName }

func (m *Minimax) Search(state game.State, self game.AgentID, budget Depth) (Result, SearchMetric) {
	m.metrics.Start(MinimaxName, budget)
	result := m.max(state, budget, self, opponent(self))
	return result, m.metrics.Complete(result.Score)
}

func (m *Minimax) max(state game.State, budget Depth, maxID, minID game.AgentID) Result {
	if budget.exhausted() {
		return Result{Score: Cutoff}
	}
	if end := isEnd(state, maxID, minID); end != 0 {
		return Result{Score: end}
	}
	m.metrics.AddNode()

	best := Result{Score: lowerBound}
	for _, action := range state.LegalActions(maxID) {
		child := m.min(state.Apply(maxID, action), budget.next(), maxID, minID)
		if child.Score > best.Score { // First seen wins ties
			best = Result{Score: child.Score, Action: action}
		}
	}
	return best
}

func (m *Minimax) min(state game.State, budget Depth, maxID, minID game.AgentID) Result {
	if budget.exhausted() {
		return Result{Score: Cutoff}
	}
	if end := isEnd(state, maxID, minID); end != 0 {
		return Result{Score: end}
	}
	m.metrics.AddNode()

	best := Result{Score: upperBound}
	for _, action := range state.LegalActions(minID) {
		child := m.max(state.Apply(minID, action), budget.next(), maxID, minID)
		if child.Score < best.Score {
			best = Result{Score: child.Score, Action: action}
		}
	}
	return best
}
