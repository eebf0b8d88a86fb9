package experiments

import (
	"context"
	"gamesearch/agent"
	"gamesearch/experiments/metrics"
	"gamesearch/searcher"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const smallPlan = `
name: small
map: |
  0..
  .#.
  ..1
games: 2
concurrency: 2
agents:
  - id: 1
    algorithm: alphabeta
    depth: -1
  - id: 2
    algorithm: random
    seed: 42
matchups:
  - [1, 2]
  - [2, 1]
`

func TestParsePlan(t *testing.T) {
	t.Run("reading a complete plan", func(t *testing.T) {
		plan, err := ParsePlan([]byte(smallPlan))

		require.NoError(t, err)
		require.Equal(t, "small", plan.Name)
		require.Equal(t, 2, plan.Games)
		require.Equal(t, searcher.Unlimited, plan.Agents[0].Depth)
		require.Equal(t, uint64(42), plan.Agents[1].Seed)
		require.Equal(t, [][]int{{1, 2}, {2, 1}}, plan.MatchUps)
	})

	t.Run("filling in defaults", func(t *testing.T) {
		plan, err := ParsePlan([]byte("agents: [{id: 1, algorithm: minimax, depth: 2}]\nmatchups: [[1, 1]]"))

		require.NoError(t, err)
		require.Equal(t, DefaultMap, plan.Map)
		require.Equal(t, 1, plan.Games)
		require.Equal(t, 1, plan.Concurrency)
	})

	t.Run("rejecting unknown algorithms", func(t *testing.T) {
		_, err := ParsePlan([]byte("agents: [{id: 1, algorithm: mcts}]\nmatchups: [[1, 1]]"))
		require.Error(t, err)
	})

	t.Run("rejecting unknown agents in matchups", func(t *testing.T) {
		_, err := ParsePlan([]byte("agents: [{id: 1, algorithm: minimax}]\nmatchups: [[1, 3]]"))
		require.Error(t, err)
	})

	t.Run("rejecting invalid depth", func(t *testing.T) {
		_, err := ParsePlan([]byte("agents: [{id: 1, algorithm: minimax, depth: -3}]\nmatchups: [[1, 1]]"))
		require.Error(t, err)
	})

	t.Run("rejecting malformed yaml", func(t *testing.T) {
		_, err := ParsePlan([]byte("agents: {"))
		require.Error(t, err)
	})
}

func TestDefaultPlan(t *testing.T) {
	require.NoError(t, DefaultPlan().Validate())
}

func TestNewAgent(t *testing.T) {
	t.Run("building a search agent", func(t *testing.T) {
		a, err := NewAgent(metrics.AgentConfig{ID: 7, Algorithm: searcher.ExpectimaxName}, 1, 0)

		require.NoError(t, err)
		require.IsType(t, &agent.SearchAgent{}, a)
		require.Equal(t, "expectimax-7", a.Name())
	})

	t.Run("building a random agent", func(t *testing.T) {
		a, err := NewAgent(metrics.AgentConfig{Algorithm: RandomName}, 1, 0)

		require.NoError(t, err)
		require.IsType(t, &agent.Random{}, a)
	})

	t.Run("rejecting unknown algorithms", func(t *testing.T) {
		_, err := NewAgent(metrics.AgentConfig{Algorithm: "mcts"}, 0, 0)
		require.Error(t, err)
	})
}

func TestRun(t *testing.T) {
	t.Run("storing records of every game", func(t *testing.T) {
		plan, err := ParsePlan([]byte(smallPlan))
		require.NoError(t, err)
		out := t.TempDir()

		err = Run(context.Background(), plan, out)
		require.NoError(t, err)

		dirs, err := os.ReadDir(filepath.Join(out, "small"))
		require.NoError(t, err)
		require.Len(t, dirs, 1)
		for _, file := range []string{"agent_configs.csv", "game_records.csv", "move_records.csv"} {
			require.FileExists(t, filepath.Join(out, "small", dirs[0].Name(), file))
		}
	})

	t.Run("rejecting a matchup that does not fit the map", func(t *testing.T) {
		plan, err := ParsePlan([]byte(smallPlan))
		require.NoError(t, err)
		plan.MatchUps = [][]int{{1, 2, 2}}

		err = Run(context.Background(), plan, t.TempDir())
		require.Error(t, err)
	})
}
