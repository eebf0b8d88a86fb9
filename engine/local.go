package engine

import (
	"context"
	"fmt"
	"gamesearch/agent"
	"gamesearch/experiments/metrics"
	"gamesearch/game"
	"gamesearch/searcher"
	"time"

	"github.com/rs/zerolog/log"
)

// LocalEngine drives a game in process: agents take turns in ID order and each is asked for one
// action per turn. The first agent that is stuck on its turn loses.
type LocalEngine struct {
	State    game.State
	Agents   []agent.Agent    // Indexed by agent ID
	Depths   []searcher.Depth // Budget handed to each agent, indexed by agent ID
	MaxMoves int
}

var _ Engine = (*LocalEngine)(nil)

// NewLocalEngine seats agents in ID order. A single depth applies to every agent, otherwise one
// depth per agent is expected.
func NewLocalEngine(state game.State, agents []agent.Agent, depths ...searcher.Depth) (*LocalEngine, error) {
	if len(agents) < 2 {
		return nil, fmt.Errorf("need at least two agents, got %d", len(agents))
	}
	for i, a := range agents {
		if int(a.ID()) != i {
			return nil, fmt.Errorf("agent %s has ID %d but sits in seat %d", a.Name(), a.ID(), i)
		}
	}
	if len(depths) == 1 {
		for len(depths) < len(agents) {
			depths = append(depths, depths[0])
		}
	}
	if len(depths) != len(agents) {
		return nil, fmt.Errorf("got %d depths for %d agents", len(depths), len(agents))
	}
	for _, depth := range depths {
		if !depth.Valid() {
			return nil, fmt.Errorf("%w: %d", agent.ErrInvalidDepth, int(depth))
		}
	}

	return &LocalEngine{
		State:    state,
		Agents:   agents,
		Depths:   depths,
		MaxMoves: MaxMoves,
	}, nil
}

func (e *LocalEngine) Run(ctx context.Context) (metrics.GameMetric, []metrics.MoveMetric, error) {
	gameMetric := metrics.GameMetric{
		Agents:    len(e.Agents),
		Winner:    metrics.NoAgent,
		Loser:     metrics.NoAgent,
		StartTime: time.Now(),
	}
	var moveMetrics []metrics.MoveMetric

	log.Debug().Msgf("agent %s is starting", e.Agents[0].Name())

	for step := 0; step < e.MaxMoves; step++ {
		if err := ctx.Err(); err != nil {
			return gameMetric, moveMetrics, err
		}

		current := e.Agents[step%len(e.Agents)]
		if len(e.State.LegalActions(current.ID())) == 0 {
			gameMetric.Loser = int(current.ID())
			if len(e.Agents) == 2 {
				gameMetric.Winner = int(e.Agents[(step+1)%2].ID())
			}
			log.Debug().Msgf("agent %s is stuck after %d moves", current.Name(), step)
			break
		}

		action, err := current.DecideNextAction(e.State, e.Depths[current.ID()])
		if err != nil {
			return gameMetric, moveMetrics, fmt.Errorf("agent %s failed to decide: %w", current.Name(), err)
		}

		moveMetric := metrics.MoveMetric{
			Step:   step + 1,
			Player: int(current.ID()),
			Action: fmt.Sprint(action),
		}
		if reporter, ok := current.(agent.Reporter); ok {
			moveMetric.SearchMetric = reporter.LastSearch()
		}
		moveMetrics = append(moveMetrics, moveMetric)

		e.State = e.State.Apply(current.ID(), action)
		gameMetric.TotalMoves++
	}

	if gameMetric.Loser == metrics.NoAgent {
		log.Warn().Msgf("stopped after %d moves without a loser", gameMetric.TotalMoves)
	}

	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	return gameMetric, moveMetrics, nil
}
