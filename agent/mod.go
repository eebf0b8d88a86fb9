package agent

import (
	"errors"
	"fmt"
	"gamesearch/game"
	"gamesearch/searcher"

	"github.com/rs/zerolog/log"
)

var (
	ErrInvalidDepth   = errors.New("invalid depth budget")
	ErrNoLegalActions = errors.New("no legal actions")
)

type Agent interface {
	ID() game.AgentID
	Name() string
	// DecideNextAction returns one of the agent's legal actions in state, looking at most maxLevels plies ahead
	DecideNextAction(state game.State, maxLevels searcher.Depth) (game.Action, error)
}

// Reporter is implemented by agents that can describe their last search.
type Reporter interface {
	LastSearch() searcher.SearchMetric
}

type Option func(a *SearchAgent)

// WithName sets the display name used in logs and experiment records.
func WithName(name string) Option {
	return func(a *SearchAgent) {
		if name != "" {
			a.name = name
		}
	}
}

// WithCeiling caps an Unlimited budget, for games that do not guarantee to run out of moves.
func WithCeiling(depth searcher.Depth) Option {
	return func(a *SearchAgent) {
		if depth > 0 {
			a.ceiling = depth
		}
	}
}

// SearchAgent decides by running a tree search from its own point of view. It plays the searched
// action only when the search proves a win and otherwise falls back to its first legal action.
type SearchAgent struct {
	id       game.AgentID
	name     string
	searcher searcher.Searcher
	ceiling  searcher.Depth
	last     searcher.SearchMetric
}

func NewSearchAgent(id game.AgentID, s searcher.Searcher, options ...Option) *SearchAgent {
	a := &SearchAgent{
		id:       id,
		name:     fmt.Sprintf("%s-%d", s.Name(), id),
		searcher: s,
	}
	for _, option := range options {
		option(a)
	}
	return a
}

func (a *SearchAgent) ID() game.AgentID { return a.id }
func (a *SearchAgent) Name() string     { return a.name }

func (a *SearchAgent) LastSearch() searcher.SearchMetric { return a.last }

func (a *SearchAgent) DecideNextAction(state game.State, maxLevels searcher.Depth) (game.Action, error) {
	actions, err := checkTurn(a.id, state, maxLevels)
	if err != nil {
		return nil, err
	}

	budget := maxLevels
	if budget == searcher.Unlimited && a.ceiling > 0 {
		budget = a.ceiling
	}

	result, metric := a.searcher.Search(state, a.id, budget)
	a.last = metric
	log.Debug().
		Str("agent", a.name).
		Str("depth", budget.String()).
		Float64("score", result.Score).
		Int("nodes", metric.Nodes).
		Int("cutoffs", metric.Cutoffs).
		Dur("duration", metric.Duration).
		Msg("search completed")

	// A win proven at the root itself carries no action
	if result.Score == searcher.Win && result.Action != nil {
		return result.Action, nil
	}
	return actions[0], nil
}

// checkTurn validates the preconditions of a decision and returns the agent's legal actions.
func checkTurn(id game.AgentID, state game.State, maxLevels searcher.Depth) ([]game.Action, error) {
	if !maxLevels.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidDepth, int(maxLevels))
	}
	actions := state.LegalActions(id)
	if len(actions) == 0 {
		return nil, fmt.Errorf("agent %d: %w", id, ErrNoLegalActions)
	}
	return actions, nil
}
