package searcher

import "gamesearch/game"

// AlphaBeta is Minimax with an (alpha, beta) window. It reaches the same scores while skipping
// siblings that cannot change the parent's choice.
//
// A cut node reports the action that triggered the cutoff. That child always beats the best score
// seen so far (it exceeds the bound the best score is held under), so it is also the node's best action.
type AlphaBeta struct {
	metrics Collector
}

func NewAlphaBeta(options ...Option) *AlphaBeta {
	c := newConfig(options)
	return &AlphaBeta{metrics: c.metrics}
}

func (ab *AlphaBeta) Name() string { return AlphaBetaName }

func (ab *AlphaBeta) Search(state game.State, self game.AgentID, budget Depth) (Result, SearchMetric) {
	ab.metrics.Start(AlphaBetaName, budget)
	result := ab.max(state, budget, self, opponent(self), lowerBound, upperBound)
	return result, ab.metrics.Complete(result.Score)
}

func (ab *AlphaBeta) max(state game.State, budget Depth, maxID, minID game.AgentID, alpha, beta float64) Result {
	if budget.exhausted() {
		return Result{Score: Cutoff}
	}
	if end := isEnd(state, maxID, minID); end != 0 {
		return Result{Score: end}
	}
	ab.metrics.AddNode()

	best := Result{Score: lowerBound}
	for _, action := range state.LegalActions(maxID) {
		child := ab.min(state.Apply(maxID, action), budget.next(), maxID, minID, alpha, beta)
		if child.Score > best.Score {
			best = Result{Score: child.Score, Action: action}
		}

		if child.Score > alpha {
			alpha = child.Score
		}
		if alpha > beta { // Fail high
			ab.metrics.AddCutoff()
			return best
		}
	}
	return best
}

func (ab *AlphaBeta) min(state game.State, budget Depth, maxID, minID game.AgentID, alpha, beta float64) Result {
	if budget.exhausted() {
		return Result{Score: Cutoff}
	}
	if end := isEnd(state, maxID, minID); end != 0 {
		return Result{Score: end}
	}
	ab.metrics.AddNode()

	best := Result{Score: upperBound}
	for _, action := range state.LegalActions(minID) {
		child := ab.max(state.Apply(minID, action), budget.next(), maxID, minID, alpha, beta)
		if child.Score < best.Score {
			best = Result{Score: child.Score, Action: action}
		}

		if child.Score < beta {
			beta = child.Score
		}
		if alpha > beta { // Fail low
			ab.metrics.AddCutoff()
			return best
		}
	}
	return best
}
