package window

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/pkg/errors"

	"github.com/sheikhrachel/gol-window/model"
	"github.com/sheikhrachel/gol-window/utils"
)

// Game adapts a Simulation to ebiten's frame loop: one step per tick, one
// render pass per frame.
type Game struct {
	ctx    context.Context
	config utils.Config
	sim    *model.Simulation
	rng    model.Sampler

	paused     bool
	lastStatus model.Status
}

// NewGame wires the simulation to a window described by config. The game
// terminates once ctx is cancelled.
func NewGame(ctx context.Context, config utils.Config, sim *model.Simulation, rng model.Sampler) *Game {
	return &Game{
		ctx:        ctx,
		config:     config,
		sim:        sim,
		rng:        rng,
		lastStatus: sim.Status(),
	}
}

// Update handles input and advances the simulation by one generation.
func (g *Game) Update() error {
	if g.ctx.Err() != nil || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if g.config.MaxGenerations > 0 && g.sim.Generation() >= g.config.MaxGenerations {
		log.Printf("Reached maximum generations limit (%d)", g.config.MaxGenerations)
		return ebiten.Termination
	}

	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.sim.Seed(g.rng, g.config.InitialLiveCells)
		log.Printf("Reseeded at generation %d | Living cells: %d",
			g.sim.Generation(), g.sim.Current().CountLivingCells())
	}

	step := !g.paused || inpututil.IsKeyJustPressed(ebiten.KeyN)
	if !step {
		return nil
	}

	g.sim.Advance()
	if status := g.sim.Status(); status != g.lastStatus {
		log.Printf("Generation %d: %s -> %s", g.sim.Generation(), g.lastStatus, status)
		g.lastStatus = status
	}
	return nil
}

// Draw renders the current generation and the optional debug overlay.
func (g *Game) Draw(screen *ebiten.Image) {
	model.DrawGrid(imageCanvas{screen}, g.sim.Current(), g.config.CellSize, model.DefaultPalette)

	if g.config.Debug {
		stats := g.sim.Stats()
		msg := fmt.Sprintf("FPS: %.1f TPS: %.1f\nGen: %d | Living: %d | Avg: %.1f\nStatus: %s",
			ebiten.ActualFPS(), ebiten.ActualTPS(),
			g.sim.Generation(), stats.Population, stats.AveragePopulation, g.sim.Status())
		if g.paused {
			msg += " (paused)"
		}
		ebitenutil.DebugPrint(screen, msg)
	}
}

// Layout reports the logical screen size used by Ebiten.
func (g *Game) Layout(_, _ int) (int, int) { return g.config.Width, g.config.Height }

// Run opens the window and blocks until it is closed or the game terminates.
func Run(g *Game) error {
	ebiten.SetWindowSize(g.config.Width, g.config.Height)
	ebiten.SetWindowTitle(g.config.Title)
	ebiten.SetTPS(g.config.TPS)
	if err := ebiten.RunGame(g); err != nil {
		return errors.Wrap(err, "[Run] window loop failed")
	}
	return nil
}

// imageCanvas draws onto an ebiten image
type imageCanvas struct {
	img *ebiten.Image
}

func (c imageCanvas) Clear(clr color.Color) {
	c.img.Fill(clr)
}

func (c imageCanvas) FillRect(x, y, width, height int, clr color.Color) {
	c.img.SubImage(image.Rect(x, y, x+width, y+height)).(*ebiten.Image).Fill(clr)
}
