package main

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/gol-window/model"
	"github.com/sheikhrachel/gol-window/utils"
	"github.com/sheikhrachel/gol-window/window"
)

func main() {
	opts := registerFlags(flag.CommandLine)
	flag.Parse()

	config, err := loadConfig(opts)
	if err != nil {
		log.Fatalf("Invalid configuration: %+v", err)
	}

	if err := run(config); err != nil {
		log.Fatalf("Game of Life stopped: %+v", err)
	}
}

// run drives the selected renderer alongside a signal watcher. Either one
// finishing stops the other.
func run(config utils.Config) error {
	sim, rng := initializeGame(config)

	baseCtx, stop := context.WithCancel(context.Background())
	defer stop()

	eg, ctx := errgroup.WithContext(baseCtx)
	eg.Go(func() error {
		return watchSignals(ctx)
	})

	var runErr error
	switch config.Renderer {
	case utils.RendererTerminal:
		eg.Go(func() error {
			defer stop()
			return runTerminal(ctx, config, sim, os.Stdout, model.NewTerminalRenderer())
		})
	default:
		// ebiten must own the main goroutine.
		runErr = window.Run(window.NewGame(ctx, config, sim, rng))
		stop()
	}

	err := eg.Wait()
	if errors.Cause(err) == errShutdown {
		err = nil
	}
	if runErr != nil {
		return runErr
	}
	if err != nil {
		return err
	}

	stats := sim.Stats()
	log.Printf("Final stats: %d generations in %.1f seconds | %.1f avg population",
		sim.Generation(), stats.Runtime().Seconds(), stats.AveragePopulation)
	return nil
}
