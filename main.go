package main

import (
	"context"
	"flag"
	"fmt"
	"gamesearch/agent"
	"gamesearch/engine"
	"gamesearch/experiments"
	"gamesearch/experiments/metrics"
	"gamesearch/game"
	"gamesearch/meta"
	"gamesearch/searcher"
	"os"
	"os/signal"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	mapFile := flag.String("map", "", "Map layout file, the built-in arena if empty")
	seats := flag.String("agents", "alphabeta,random", "Comma separated algorithm per seat (minimax, alphabeta, expectimax, maxn, random)")
	depth := flag.Int("depth", meta.DEFAULT_DEPTH, "Search depth per move, -1 for unlimited")
	planFile := flag.String("plan", "", "Run the YAML experiment plan instead of a single game")
	defaultPlan := flag.Bool("experiment", false, "Run the built-in experiment plan")
	outDir := flag.String("out", "experiments", "Directory for experiment records")
	seed := flag.Uint64("seed", 1, "Seed for random agents")
	verbose := flag.Bool("v", false, "Log every search")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var err error
	switch {
	case *planFile != "":
		var plan *experiments.Plan
		plan, err = experiments.LoadPlan(*planFile)
		if err == nil {
			err = experiments.Run(ctx, plan, *outDir)
		}
	case *defaultPlan:
		err = experiments.Run(ctx, experiments.DefaultPlan(), *outDir)
	default:
		err = playGame(ctx, *mapFile, strings.Split(*seats, ","), searcher.Depth(*depth), *seed)
	}
	if err != nil {
		log.Fatal().Err(err).Msg("run failed")
	}
}

func playGame(ctx context.Context, mapFile string, seats []string, depth searcher.Depth, seed uint64) error {
	layout := experiments.DefaultMap
	if mapFile != "" {
		data, err := os.ReadFile(mapFile)
		if err != nil {
			return fmt.Errorf("failed to read map: %w", err)
		}
		layout = string(data)
	}
	m, err := game.ParseMap(layout)
	if err != nil {
		return fmt.Errorf("failed to parse map: %w", err)
	}

	agents := make([]agent.Agent, len(seats))
	for i, name := range seats {
		config := metrics.AgentConfig{ID: i, Algorithm: strings.TrimSpace(name), Depth: depth, Players: len(seats), Seed: seed}
		agents[i], err = experiments.NewAgent(config, game.AgentID(i), 0)
		if err != nil {
			return err
		}
	}

	state := game.NewGameState(m)
	e, err := engine.NewLocalEngine(state, agents, depth)
	if err != nil {
		return err
	}

	log.Info().Msgf("starting game on\n%s", state)
	gameMetric, moveMetrics, err := e.Run(ctx)
	if err != nil {
		return err
	}
	for _, mm := range moveMetrics {
		log.Info().Msgf("move %d: agent %d plays %s (score %.3f)", mm.Step, mm.Player, mm.Action, mm.Score)
	}
	log.Info().Msgf("game over after %d moves, loser: %d, winner: %d\n%s",
		gameMetric.TotalMoves, gameMetric.Loser, gameMetric.Winner, e.State)
	return nil
}
