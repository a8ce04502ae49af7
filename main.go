package main

import (
	"context"
	"flag"
	"os"
	"os/signal"

	"dastan/agent"
	"dastan/engine"
	"dastan/experiments"
	"dastan/meta"
	"dastan/searcher"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	mode := flag.String("mode", "play", "play drives a running game, depth or parallelization run an experiment")
	python := flag.String("python", meta.PYTHON, "Interpreter used to launch the game")
	script := flag.String("game", "", "Path to the game script")
	depth := flag.Int("depth", meta.DEPTH, "Search depth in plies")
	goroutines := flag.Int("goroutines", meta.GO_ROUTINES, "Number of goroutines evaluating root moves")
	games := flag.Int("games", meta.NUM_GAMES, "Number of games per experiment matchup")
	out := flag.String("out", "experiments", "Directory for experiment records")
	verbose := flag.Bool("v", false, "Echo the game transcript and search details")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	if *depth < 1 {
		log.Fatal().Msgf("-depth must be at least 1, got %d", *depth)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cfg := experiments.Config{
		OutDir:     *out,
		NumGames:   *games,
		MaxDepth:   *depth,
		Goroutines: *goroutines,
	}

	var err error
	switch *mode {
	case "play":
		err = play(ctx, *python, *script, *depth, *goroutines)
	case "depth":
		err = experiments.RunDepthExperiment(ctx, cfg)
	case "parallelization":
		err = experiments.RunParallelizationExperiment(ctx, cfg)
	default:
		log.Fatal().Msgf("unknown mode %q", *mode)
	}
	if err != nil {
		log.Fatal().Err(err).Msgf("%s failed", *mode)
	}
}

func play(ctx context.Context, python, script string, depth, goroutines int) error {
	if script == "" {
		log.Fatal().Msg("-game is required in play mode")
	}
	process, err := engine.StartProcess(ctx, python, script)
	if err != nil {
		return err
	}
	defer process.Close()

	bot := agent.NewMinimaxAgent(depth, searcher.WithGoroutines(goroutines), searcher.WithMetrics())
	return engine.NewRemote(process, bot).Run(ctx)
}
