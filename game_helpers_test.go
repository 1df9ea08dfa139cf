package main

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/sheikhrachel/gol-window/model"
	"github.com/sheikhrachel/gol-window/utils"
)

type fakeScreen struct {
	clears   int
	displays int
	err      error
}

func (s *fakeScreen) Clear() { s.clears++ }

func (s *fakeScreen) Display(*model.Grid) error {
	s.displays++
	return s.err
}

func parseFlags(t *testing.T, args ...string) *options {
	t.Helper()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	opts := registerFlags(fs)
	if err := fs.Parse(args); err != nil {
		t.Fatalf("parse flags: %v", err)
	}
	return opts
}

func testConfig() utils.Config {
	config := utils.DefaultConfig()
	config.Width, config.Height, config.CellSize = 80, 48, 8
	config.TPS = 1000
	config.Seed = 3
	config.Renderer = utils.RendererTerminal
	return config
}

func TestLoadConfigFallsBackToDefaults(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "config.json")
	opts := parseFlags(t, "-config", missing, "-renderer", "terminal", "-seed", "9", "-debug")

	config, err := loadConfig(opts)
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if config.Renderer != utils.RendererTerminal || config.Seed != 9 || !config.Debug {
		t.Fatalf("flags not applied: %+v", config)
	}
	if config.Width != 640 || config.Height != 480 {
		t.Fatalf("defaults not used: %+v", config)
	}
}

func TestLoadConfigFlagsOverrideFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	body := `{"renderer": "terminal", "seed": 5, "cell_size": 16}`
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}

	config, err := loadConfig(parseFlags(t, "-config", path, "-seed", "11"))
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if config.Seed != 11 || config.Renderer != utils.RendererTerminal || config.CellSize != 16 {
		t.Fatalf("unexpected config %+v", config)
	}
}

func TestLoadConfigRejectsInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(`{"cell_size": 0}`), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := loadConfig(parseFlags(t, "-config", path)); err == nil {
		t.Fatal("expected validation error")
	}

	if err := os.WriteFile(path, []byte(`not json`), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := loadConfig(parseFlags(t, "-config", path)); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestInitializeGame(t *testing.T) {
	config := testConfig()
	sim, rng := initializeGame(config)
	if rng == nil {
		t.Fatal("nil rng")
	}

	grid := sim.Current()
	if grid.Rows() != 6 || grid.Columns() != 10 {
		t.Fatalf("grid = %dx%d, want 6x10", grid.Rows(), grid.Columns())
	}
	live := grid.CountLivingCells()
	if live == 0 || live > grid.Rows()*grid.Columns() {
		t.Fatalf("live cells = %d", live)
	}

	again, _ := initializeGame(config)
	if !again.Current().Equal(grid) {
		t.Fatal("same seed produced different grids")
	}
}

func TestRunTerminalStopsAtMaxGenerations(t *testing.T) {
	config := testConfig()
	config.MaxGenerations = 4
	sim, _ := initializeGame(config)

	var out bytes.Buffer
	scr := &fakeScreen{}
	if err := runTerminal(context.Background(), config, sim, &out, scr); err != nil {
		t.Fatalf("runTerminal: %v", err)
	}

	if sim.Generation() != 4 {
		t.Fatalf("generation = %d, want 4", sim.Generation())
	}
	if scr.clears != 4 || scr.displays != 4 {
		t.Fatalf("screen calls = %+v, want 4 clears and displays", scr)
	}
	if !strings.Contains(out.String(), "Gen: 4 |") || !strings.Contains(out.String(), "maximum generations limit (4)") {
		t.Fatalf("unexpected output:\n%s", out.String())
	}
}

func TestRunTerminalStopsOnCancel(t *testing.T) {
	config := testConfig()
	sim, _ := initializeGame(config)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	done := make(chan error, 1)
	go func() {
		done <- runTerminal(ctx, config, sim, io.Discard, &fakeScreen{})
	}()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("runTerminal: %v", err)
		}
	case <-time.After(time.Second):
		t.Fatal("runTerminal ignored cancellation")
	}
}

func TestRunTerminalDisplayError(t *testing.T) {
	config := testConfig()
	sim, _ := initializeGame(config)
	boom := errors.New("boom")

	err := runTerminal(context.Background(), config, sim, io.Discard, &fakeScreen{err: boom})
	if err == nil || !strings.Contains(err.Error(), "boom") {
		t.Fatalf("runTerminal error = %v, want wrapped boom", err)
	}
}

func TestWatchSignalsReturnsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := watchSignals(ctx); err != nil {
		t.Fatalf("watchSignals = %v, want nil", err)
	}
}

func TestFormatStatus(t *testing.T) {
	sim := model.NewSimulation(4, 5)
	sim.Current().AddBlock(1, 1)
	sim.Advance()

	status := formatStatus(sim)
	for _, want := range []string{"Gen: 1", "Living: 4", "Density: 20.0%", "Status: Active"} {
		if !strings.Contains(status, want) {
			t.Fatalf("status %q missing %q", status, want)
		}
	}
}
