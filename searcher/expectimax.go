package searcher

import "gamesearch/game"

// Expectimax models the opponent as picking uniformly at random among its legal actions.
type Expectimax struct {
	metrics Collector
}

func NewExpectimax(options ...Option) *Expectimax {
	c := newConfig(options)
	return &Expectimax{metrics: c.metrics}
}

func (e *Expectimax) Name() string { return ExpectimaxName }

func (e *Expectimax) Search(state game.State, self game.AgentID, budget Depth) (Result, SearchMetric) {
	e.metrics.Start(ExpectimaxName, budget)
	result := e.max(state, budget, self, opponent(self))
	return result, e.metrics.Complete(result.Score)
}

func (e *Expectimax) max(state game.State, budget Depth, maxID, chanceID game.AgentID) Result {
	if budget.exhausted() {
		return Result{Score: Cutoff}
	}
	if end := isEnd(state, maxID, chanceID); end != 0 {
		return Result{Score: end}
	}
	e.metrics.AddNode()

	best := Result{Score: lowerBound}
	for _, action := range state.LegalActions(maxID) {
		child := e.chance(state.Apply(maxID, action), budget.next(), maxID, chanceID)
		if child.Score > best.Score {
			best = Result{Score: child.Score, Action: action}
		}
	}
	return best
}

// chance averages over every outcome with equal weight; no action is chosen here.
func (e *Expectimax) chance(state game.State, budget Depth, maxID, chanceID game.AgentID) Result {
	if budget.exhausted() {
		return Result{Score: Cutoff}
	}
	if end := isEnd(state, maxID, chanceID); end != 0 {
		return Result{Score: end}
	}
	e.metrics.AddNode()

	// isEnd guarantees chanceID has at least one action
	actions := state.LegalActions(chanceID)
	sum := 0.0
	for _, action := range actions {
		sum += e.max(state.Apply(chanceID, action), budget.next(), maxID, chanceID).Score
	}
	return Result{Score: sum / float64(len(actions))}
}
