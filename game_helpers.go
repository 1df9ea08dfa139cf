package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/exp/rand"

	"github.com/sheikhrachel/gol-window/model"
	"github.com/sheikhrachel/gol-window/utils"
)

var errShutdown = errors.New("shutdown requested")

// screen is the headless rendering surface used by the terminal loop
type screen interface {
	Clear()
	Display(g *model.Grid) error
}

// loadConfig reads the config file, falling back to defaults when it is missing
func loadConfig(opts *options) (utils.Config, error) {
	config, err := utils.LoadConfig(opts.configPath)
	if err != nil {
		if !os.IsNotExist(errors.Cause(err)) {
			return config, err
		}
		log.Printf("Using default configuration (%s not found)", opts.configPath)
		config = utils.DefaultConfig()
	}

	opts.apply(&config)
	if err := config.Validate(); err != nil {
		return config, err
	}
	return config, nil
}

// initializeGame sets up the initial game state
func initializeGame(config utils.Config) (*model.Simulation, *rand.Rand) {
	seed := config.ResolveSeed()
	rng := rand.New(rand.NewSource(seed))

	sim := model.NewSimulation(config.Rows(), config.Columns())
	sim.Seed(rng, config.InitialLiveCells)

	log.Printf("Grid: %dx%d | Seed: %d | Initial living cells: %d",
		config.Columns(), config.Rows(), seed, sim.Current().CountLivingCells())
	return sim, rng
}

// formatStatus renders the status line shown above the terminal grid
func formatStatus(sim *model.Simulation) string {
	grid := sim.Current()
	stats := sim.Stats()
	density := float64(stats.Population) / float64(grid.Rows()*grid.Columns()) * 100

	return fmt.Sprintf("Gen: %d | Living: %d | Density: %.1f%% | Status: %s\n"+
		"Performance: %.1f gen/sec | Avg Pop: %.1f | Peak: %d | Runtime: %.1fs\n",
		sim.Generation(), stats.Population, density, sim.Status(),
		stats.GenerationsPerSecond, stats.AveragePopulation, stats.PeakPopulation, stats.Runtime().Seconds())
}

// runTerminal steps and prints the simulation once per frame interval until
// ctx is cancelled or the generation limit is reached.
func runTerminal(ctx context.Context, config utils.Config, sim *model.Simulation, out io.Writer, scr screen) error {
	ticker := time.NewTicker(config.FrameInterval())
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}

		if config.MaxGenerations > 0 && sim.Generation() >= config.MaxGenerations {
			fmt.Fprintf(out, "\nReached maximum generations limit (%d)\n", config.MaxGenerations)
			return nil
		}

		sim.Advance()
		scr.Clear()
		fmt.Fprint(out, formatStatus(sim))
		if err := scr.Display(sim.Current()); err != nil {
			return errors.Wrap(err, "[runTerminal] failed to display grid")
		}
	}
}

// watchSignals returns errShutdown on SIGINT or SIGTERM, and nil once ctx is done
func watchSignals(ctx context.Context) error {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	select {
	case <-ctx.Done():
		return nil
	case sig := <-sigChan:
		log.Printf("Received %s, shutting down gracefully", sig)
		return errShutdown
	}
}
