package engine

import (
	"context"
	"gamesearch/agent"
	"gamesearch/experiments/metrics"
	"gamesearch/game"
	"gamesearch/searcher"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func corridor(t *testing.T) game.State {
	t.Helper()
	m, err := game.ParseMap("0..1")
	require.NoError(t, err)
	return game.NewGameState(m)
}

func minimaxAgents(n int) []agent.Agent {
	agents := make([]agent.Agent, n)
	for i := range agents {
		agents[i] = agent.NewSearchAgent(game.AgentID(i), searcher.NewMinimax(searcher.WithMetrics()))
	}
	return agents
}

func TestNewLocalEngine(t *testing.T) {
	t.Run("rejecting a single agent", func(t *testing.T) {
		_, err := NewLocalEngine(corridor(t), minimaxAgents(1), 2)
		require.Error(t, err)
	})

	t.Run("rejecting agents out of seat order", func(t *testing.T) {
		agents := minimaxAgents(2)
		agents[0], agents[1] = agents[1], agents[0]

		_, err := NewLocalEngine(corridor(t), agents, 2)
		require.Error(t, err)
	})

	t.Run("rejecting invalid depth", func(t *testing.T) {
		_, err := NewLocalEngine(corridor(t), minimaxAgents(2), 2, -5)
		require.ErrorIs(t, err, agent.ErrInvalidDepth)
	})

	t.Run("rejecting a depth count that does not match", func(t *testing.T) {
		_, err := NewLocalEngine(corridor(t), minimaxAgents(3), 2, 2)
		require.Error(t, err)
	})

	t.Run("sharing a single depth", func(t *testing.T) {
		e, err := NewLocalEngine(corridor(t), minimaxAgents(3), 4)
		require.NoError(t, err)
		require.Equal(t, []searcher.Depth{4, 4, 4}, e.Depths)
	})
}

func TestLocalEngineRun(t *testing.T) {
	t.Run("playing until an agent is stuck", func(t *testing.T) {
		e, err := NewLocalEngine(corridor(t), minimaxAgents(2), searcher.Unlimited)
		require.NoError(t, err)

		gameMetric, moveMetrics, err := e.Run(context.Background())

		require.NoError(t, err)
		require.Equal(t, 0, gameMetric.Loser, "Agent 0 runs out of room first")
		require.Equal(t, 1, gameMetric.Winner)
		require.Equal(t, 2, gameMetric.TotalMoves)
		require.Len(t, moveMetrics, 2)
		require.Equal(t, "east", moveMetrics[0].Action)
		require.Equal(t, "west", moveMetrics[1].Action)
		require.Equal(t, searcher.MinimaxName, moveMetrics[0].Algorithm, "Search metrics should be attached")
		require.Equal(t, "x01x\n", e.State.(*game.GameState).String())
	})

	t.Run("stopping at the move limit", func(t *testing.T) {
		e, err := NewLocalEngine(corridor(t), minimaxAgents(2), 3)
		require.NoError(t, err)
		e.MaxMoves = 1

		gameMetric, moveMetrics, err := e.Run(context.Background())

		require.NoError(t, err)
		require.Equal(t, metrics.NoAgent, gameMetric.Loser)
		require.Equal(t, metrics.NoAgent, gameMetric.Winner)
		require.Len(t, moveMetrics, 1)
	})

	t.Run("stopping when cancelled", func(t *testing.T) {
		e, err := NewLocalEngine(corridor(t), minimaxAgents(2), 3)
		require.NoError(t, err)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, _, err = e.Run(ctx)

		require.ErrorIs(t, err, context.Canceled)
	})

	t.Run("three agents without a single winner", func(t *testing.T) {
		m, err := game.ParseMap("0.1.2")
		require.NoError(t, err)
		rng := rand.New(rand.NewSource(3))
		agents := []agent.Agent{
			agent.NewSearchAgent(0, searcher.NewMaxN()),
			agent.NewRandom(1, rng),
			agent.NewRandom(2, rng),
		}
		e, err := NewLocalEngine(game.NewGameState(m), agents, 2)
		require.NoError(t, err)

		gameMetric, _, err := e.Run(context.Background())

		require.NoError(t, err)
		require.NotEqual(t, metrics.NoAgent, gameMetric.Loser)
		require.Equal(t, metrics.NoAgent, gameMetric.Winner)
	})
}
