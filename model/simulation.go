package model

import (
	"time"

	"github.com/sheikhrachel/gol-window/utils"
)

// Status summarizes where the simulation is heading
type Status int

const (
	StatusActive Status = iota
	StatusStagnant
	StatusExtinct
)

func (s Status) String() string {
	switch s {
	case StatusStagnant:
		return "Stagnant"
	case StatusExtinct:
		return "Extinct"
	default:
		return "Active"
	}
}

// Simulation drives a Generation one step per frame and keeps the bookkeeping
// used for status reporting.
type Simulation struct {
	gen        *Generation
	generation int
	status     Status
	history    History
	stats      *utils.Stats
	lastStep   time.Time
}

// NewSimulation allocates an all-dead simulation of the given size
func NewSimulation(rows, columns int) *Simulation {
	return &Simulation{
		gen:      NewGeneration(rows, columns),
		stats:    utils.NewStats(),
		lastStep: time.Now(),
	}
}

// Seed reseeds the current grid with n uniformly sampled live cells and
// restarts status tracking. The generation counter keeps running.
func (s *Simulation) Seed(rng Sampler, n int) {
	s.gen.Current().Seed(rng, n)
	s.history.Reset()
	s.status = StatusActive
	s.stats.ResetPopulation(s.gen.Current().CountLivingCells())
}

// Advance computes the next generation and updates status and stats
func (s *Simulation) Advance() {
	s.history.Record(s.gen.Current().Hash())
	s.gen.Step()
	s.generation++

	current := s.gen.Current()
	population := current.CountLivingCells()
	switch {
	case population == 0:
		s.status = StatusExtinct
	case s.history.IsStagnant(current.Hash()):
		s.status = StatusStagnant
	default:
		s.status = StatusActive
	}

	now := time.Now()
	s.stats.Update(s.generation, population, now.Sub(s.lastStep))
	s.lastStep = now
}

// Current returns the grid to render
func (s *Simulation) Current() *Grid {
	return s.gen.Current()
}

// Generation returns how many steps have been taken
func (s *Simulation) Generation() int {
	return s.generation
}

// Status returns the status computed by the last Advance or Seed
func (s *Simulation) Status() Status {
	return s.status
}

// Stats returns the running statistics
func (s *Simulation) Stats() *utils.Stats {
	return s.stats
}
