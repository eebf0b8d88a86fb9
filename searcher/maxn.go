package searcher

import "gamesearch/game"

// MaxN extends Minimax to a table of several agents. The opponents, taken in turn order after self,
// form one jointly minimising ply: every action of every opponent is folded into a single minimum.
// A position is only won once all opponents are stuck at the same time.
type MaxN struct {
	players int
	metrics Collector
}

func NewMaxN(options ...Option) *MaxN {
	c := newConfig(options)
	return &MaxN{players: c.players, metrics: c.metrics}
}

func (mn *MaxN) Name() string { return MaxNName }

func (mn *MaxN) Search(state game.State, self game.AgentID, budget Depth) (Result, SearchMetric) {
	mn.metrics.Start(MaxNName, budget)
	result := mn.max(state, budget, self, opponents(self, mn.players))
	return result, mn.metrics.Complete(result.Score)
}

// opponents lists the players-1 other agents in turn order starting after self.
func opponents(self game.AgentID, players int) []game.AgentID {
	ids := make([]game.AgentID, 0, players-1)
	for i := 1; i < players; i++ {
		ids = append(ids, (self+game.AgentID(i))%game.AgentID(players))
	}
	return ids
}

func isEndN(state game.State, maxID game.AgentID, minIDs []game.AgentID) float64 {
	if len(state.LegalActions(maxID)) == 0 {
		return Loss
	}
	for _, id := range minIDs {
		if len(state.LegalActions(id)) > 0 {
			return 0
		}
	}
	return Win
}

func (mn *MaxN) max(state game.State, budget Depth, maxID game.AgentID, minIDs []game.AgentID) Result {
	if budget.exhausted() {
		return Result{Score: Cutoff}
	}
	if end := isEndN(state, maxID, minIDs); end != 0 {
		return Result{Score: end}
	}
	mn.metrics.AddNode()

	best := Result{Score: lowerBound}
	for _, action := range state.LegalActions(maxID) {
		child := mn.min(state.Apply(maxID, action), budget.next(), maxID, minIDs)
		if child.Score > best.Score {
			best = Result{Score: child.Score, Action: action}
		}
	}
	return best
}

func (mn *MaxN) min(state game.State, budget Depth, maxID game.AgentID, minIDs []game.AgentID) Result {
	if budget.exhausted() {
		return Result{Score: Cutoff}
	}
	if end := isEndN(state, maxID, minIDs); end != 0 {
		return Result{Score: end}
	}
	mn.metrics.AddNode()

	best := Result{Score: upperBound}
	for _, id := range minIDs {
		for _, action := range state.LegalActions(id) {
			child := mn.max(state.Apply(id, action), budget.next(), maxID, minIDs)
			if child.Score < best.Score {
				best = Result{Score: child.Score, Action: action}
			}
		}
	}
	return best
}
