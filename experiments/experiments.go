package experiments

import (
	"context"
	"fmt"
	"gamesearch/agent"
	"gamesearch/engine"
	"gamesearch/experiments/metrics"
	"gamesearch/game"
	"gamesearch/meta"
	"gamesearch/searcher"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
	"golang.org/x/sync/errgroup"
)

const RandomName = "random"

// DefaultMap is a small open arena with two agents in opposite corners.
const DefaultMap = `
0....
.#...
...#.
....1
`

// DefaultPlan pits every search algorithm against the random baseline and against each other.
func DefaultPlan() *Plan {
	configs := []metrics.AgentConfig{
		{ID: 0, Algorithm: RandomName, Seed: 1},
		{ID: 1, Algorithm: searcher.MinimaxName, Depth: meta.DEFAULT_DEPTH},
		{ID: 2, Algorithm: searcher.AlphaBetaName, Depth: meta.DEFAULT_DEPTH},
		{ID: 3, Algorithm: searcher.ExpectimaxName, Depth: meta.DEFAULT_DEPTH},
		{ID: 4, Algorithm: searcher.MaxNName, Depth: meta.DEFAULT_DEPTH, Players: 2},
	}

	matchUps := [][]int{}
	for _, config := range configs[1:] {
		matchUps = append(matchUps, []int{config.ID, 0})
	}
	matchUps = append(matchUps, []int{1, 2}, []int{2, 3})

	return &Plan{
		Name:        "default",
		Map:         DefaultMap,
		Games:       meta.GAMES,
		Concurrency: meta.GO_ROUTINES,
		Agents:      configs,
		MatchUps:    matchUps,
	}
}

// scheduled is one game of a matchup
type scheduled struct {
	id      int
	seats   []metrics.AgentConfig
	matchUp int
}

// Run plays every game of the plan, several at a time, and stores the records under outDir.
func Run(ctx context.Context, plan *Plan, outDir string) error {
	if err := plan.Validate(); err != nil {
		return err
	}
	m, err := game.ParseMap(plan.Map)
	if err != nil {
		return fmt.Errorf("failed to parse map: %w", err)
	}

	log.Info().Msgf("starting %s experiment...", plan.Name)

	configs := plan.configsByID()
	games := []scheduled{}
	for mi, matchUp := range plan.MatchUps {
		seats := make([]metrics.AgentConfig, len(matchUp))
		for seat, id := range matchUp {
			seats[seat] = configs[id]
		}
		for i := 0; i < plan.Games; i++ {
			games = append(games, scheduled{id: len(games) + 1, seats: seats, matchUp: mi})
		}
	}

	gameRecords := make([]metrics.GameRecord, len(games))
	moveRecords := make([][]metrics.MoveRecord, len(games))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(plan.Concurrency)
	for i, gm := range games {
		i, gm := i, gm
		g.Go(func() error {
			gameRecord, moves, err := playGame(ctx, m, gm)
			if err != nil {
				return fmt.Errorf("game %d: %w", gm.id, err)
			}
			gameRecords[i] = gameRecord
			moveRecords[i] = moves

			log.Info().Msgf("completed matchup %d of %d game %d with loser: %d",
				gm.matchUp+1, len(plan.MatchUps), gm.id, gameRecord.Loser)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	log.Info().Msgf("completed %s experiment", plan.Name)

	writer, err := metrics.NewWriter(outDir, plan.Name)
	if err != nil {
		return fmt.Errorf("failed to create experiment writer: %w", err)
	}

	err = writer.WriteAgentConfigs(plan.Agents)
	if err != nil {
		return fmt.Errorf("failed to store agent configs: %w", err)
	}
	log.Info().Msg("stored agent configs")

	err = writer.WriteGameRecords(gameRecords)
	if err != nil {
		return fmt.Errorf("failed to write game records: %w", err)
	}
	log.Info().Msg("stored game records")

	var allMoves []metrics.MoveRecord
	for _, moves := range moveRecords {
		allMoves = append(allMoves, moves...)
	}
	err = writer.WriteMoveRecords(allMoves)
	if err != nil {
		return fmt.Errorf("failed to write move records: %w", err)
	}
	log.Info().Msgf("stored move records in %s", writer.Dir())

	return nil
}

// playGame executes a single game between the seated agents
func playGame(ctx context.Context, m *game.Map, gm scheduled) (metrics.GameRecord, []metrics.MoveRecord, error) {
	if len(gm.seats) != len(m.Starts) {
		return metrics.GameRecord{}, nil, fmt.Errorf("map has %d agents, matchup seats %d", len(m.Starts), len(gm.seats))
	}

	agents := make([]agent.Agent, len(gm.seats))
	depths := make([]searcher.Depth, len(gm.seats))
	ids := make([]int, len(gm.seats))
	for seat, config := range gm.seats {
		a, err := NewAgent(config, game.AgentID(seat), uint64(gm.id))
		if err != nil {
			return metrics.GameRecord{}, nil, err
		}
		agents[seat] = a
		depths[seat] = config.Depth
		ids[seat] = config.ID
	}

	e, err := engine.NewLocalEngine(game.NewGameState(m), agents, depths...)
	if err != nil {
		return metrics.GameRecord{}, nil, err
	}
	gameMetric, moveMetrics, err := e.Run(ctx)
	if err != nil {
		return metrics.GameRecord{}, nil, err
	}

	moves := make([]metrics.MoveRecord, len(moveMetrics))
	for i, mm := range moveMetrics {
		moves[i] = metrics.MoveRecord{Game: gm.id, MoveMetric: mm}
	}
	return metrics.GameRecord{ID: gm.id, Agents: ids, GameMetric: gameMetric}, moves, nil
}

// NewAgent builds the agent described by config for a seat. Random agents are seeded with the
// config seed offset by salt, so repeated games differ but stay reproducible.
func NewAgent(config metrics.AgentConfig, id game.AgentID, salt uint64) (agent.Agent, error) {
	if config.Algorithm == RandomName {
		return agent.NewRandom(id, rand.New(rand.NewSource(config.Seed+salt))), nil
	}

	options := []searcher.Option{searcher.WithMetrics()}
	if config.Players > 0 {
		options = append(options, searcher.WithPlayers(config.Players))
	}
	s, err := searcher.New(config.Algorithm, options...)
	if err != nil {
		return nil, err
	}
	return agent.NewSearchAgent(id, s,
		agent.WithName(fmt.Sprintf("%s-%d", config.Algorithm, config.ID)),
		agent.WithCeiling(meta.MAX_TURNS),
	), nil
}
