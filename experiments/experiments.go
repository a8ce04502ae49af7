package experiments

import (
	"context"
	"fmt"

	"dastan/agent"
	"dastan/engine"
	"dastan/experiments/metrics"
	"dastan/game"
	"dastan/meta"
	"dastan/searcher"

	"github.com/rs/zerolog/log"
)

// Config controls where and how long experiments run.
type Config struct {
	OutDir     string
	NumGames   int
	MaxDepth   int
	Goroutines int
}

func (c Config) withDefaults() Config {
	if c.NumGames <= 0 {
		c.NumGames = meta.NUM_GAMES
	}
	if c.MaxDepth <= 0 {
		c.MaxDepth = meta.DEPTH
	}
	if c.Goroutines <= 0 {
		c.Goroutines = 1
	}
	if c.OutDir == "" {
		c.OutDir = "experiments"
	}
	return c
}

// RunDepthExperiment pairs a random baseline against minimax agents of increasing depth.
func RunDepthExperiment(ctx context.Context, cfg Config) error {
	cfg = cfg.withDefaults()
	baseline := metrics.AgentConfig{ID: 0, Kind: "random", Seed: 1}
	configs := []metrics.AgentConfig{baseline}
	matchUps := [][]metrics.AgentConfig{}
	for depth := 1; depth <= cfg.MaxDepth; depth++ {
		config := metrics.AgentConfig{ID: depth, Kind: "minimax", Depth: depth, Goroutines: cfg.Goroutines}
		configs = append(configs, config)
		// Play both sides against the baseline
		matchUps = append(matchUps, []metrics.AgentConfig{config, baseline}, []metrics.AgentConfig{baseline, config})
	}

	return runExperiment(ctx, "depth", cfg, configs, matchUps)
}

// RunParallelizationExperiment pairs a sequential minimax agent against parallel
// agents of the same depth. Both play the same moves, so only timings differ.
func RunParallelizationExperiment(ctx context.Context, cfg Config) error {
	cfg = cfg.withDefaults()
	baseline := metrics.AgentConfig{ID: 0, Kind: "minimax", Depth: cfg.MaxDepth, Goroutines: 1}
	configs := []metrics.AgentConfig{baseline}
	matchUps := [][]metrics.AgentConfig{}
	for i, goroutines := range []int{2, 4, 8, 16} {
		config := metrics.AgentConfig{ID: i + 1, Kind: "minimax", Depth: cfg.MaxDepth, Goroutines: goroutines}
		configs = append(configs, config)
		matchUps = append(matchUps, []metrics.AgentConfig{baseline, config})
	}

	return runExperiment(ctx, "parallelization", cfg, configs, matchUps)
}

func runExperiment(ctx context.Context, name string, cfg Config, configs []metrics.AgentConfig, matchUps [][]metrics.AgentConfig) error {
	// Run a number of games for each matchup
	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}

	log.Info().Msgf("starting %s experiment...", name)

	for mi, matchup := range matchUps {
		config1 := matchup[0]
		config2 := matchup[1]

		log.Info().Msgf("starting matchup %d of %d between agent1=%+v and agent2=%+v...", mi+1, len(matchUps), config1, config2)

		for i := 0; i < cfg.NumGames; i++ {
			gameMetric, moveMetrics, err := runGame(ctx, config1, config2, uint64(i))
			if err != nil {
				return fmt.Errorf("matchup %d game %d: %w", mi+1, i+1, err)
			}
			gameRecords = append(gameRecords, metrics.GameRecord{
				Agent1:     config1.ID,
				Agent2:     config2.ID,
				GameMetric: gameMetric,
			})
			for _, mm := range moveMetrics {
				moveRecords = append(moveRecords, metrics.MoveRecord{
					Game:       gameMetric.ID,
					MoveMetric: mm,
				})
			}

			log.Info().Msgf("completed matchup %d of %d game %d with winner: %q", mi+1, len(matchUps), i+1, gameMetric.Winner)
		}
	}

	log.Info().Msgf("completed %s experiment", name)

	return store(name, cfg.OutDir, configs, gameRecords, moveRecords)
}

func store(name, outDir string, configs []metrics.AgentConfig, games []metrics.GameRecord, moves []metrics.MoveRecord) error {
	writer, err := metrics.NewWriter(outDir, name)
	if err != nil {
		return fmt.Errorf("failed to create experiment writer: %w", err)
	}
	if err := writer.WriteAgentConfigs(configs); err != nil {
		return err
	}
	if err := writer.WriteGameRecords(games); err != nil {
		return err
	}
	if err := writer.WriteMoveRecords(moves); err != nil {
		return err
	}
	log.Info().Msgf("stored %s experiment records in %s", name, writer.Dir())
	return nil
}

// runGame executes a single game between two agents from the standard opening.
// Random agents are reseeded per game so repeated games differ.
func runGame(ctx context.Context, config1, config2 metrics.AgentConfig, round uint64) (metrics.GameMetric, []metrics.MoveMetric, error) {
	agents := [2]agent.Agent{createAgent(config1, round), createAgent(config2, round)}
	e := engine.NewLocalEngine(agents, game.NewStandardPosition())
	return e.Run(ctx)
}

func createAgent(config metrics.AgentConfig, round uint64) agent.Agent {
	if config.Kind == "random" {
		return agent.NewRandomAgent(config.Seed + round)
	}
	return agent.NewMinimaxAgent(config.Depth, searcher.WithGoroutines(config.Goroutines), searcher.WithMetrics())
}
