package game

import (
	"fmt"
	"math/rand/v2"

	"github.com/sirupsen/logrus"

	"github.com/04pril/gridsweeper/internal/grid"
)

type Status int

const (
	Playing Status = iota
	Won
	Lost
)

func (s Status) String() string {
	switch s {
	case Playing:
		return "playing"
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

type Button int

const (
	ButtonPrimary Button = iota
	ButtonSecondary
)

// Params is what a fresh grid is built from.
type Params struct {
	Width, Height, Bombs int
}

// State is owned by the control loop and replaces the old module-level
// game-over flag.
type State struct {
	params Params
	rng    *rand.Rand
	log    logrus.FieldLogger
	grid   *grid.Grid
	status Status
}

func New(p Params, rng *rand.Rand, log logrus.FieldLogger) (*State, error) {
	s := &State{params: p, rng: rng, log: log}
	if err := s.Restart(); err != nil {
		return nil, err
	}
	return s, nil
}

// NewWithGrid wraps an existing grid, for fixed layouts.
func NewWithGrid(g *grid.Grid, log logrus.FieldLogger) *State {
	return &State{
		params: Params{Width: g.Width(), Height: g.Height(), Bombs: g.NumBombs()},
		log:    log,
		grid:   g,
	}
}

// Restart deals a new grid with the same parameters.
func (s *State) Restart() error {
	g, err := grid.New(s.params.Width, s.params.Height, s.params.Bombs, s.rng)
	if err != nil {
		return fmt.Errorf("new game: %w", err)
	}
	s.grid = g
	s.status = Playing
	s.log.WithFields(logrus.Fields{
		"width":  s.params.Width,
		"height": s.params.Height,
		"bombs":  s.params.Bombs,
	}).Info("new game")
	return nil
}

func (s *State) Grid() *grid.Grid { return s.grid }
func (s *State) Status() Status   { return s.status }
func (s *State) IsOver() bool     { return s.status != Playing }

// RemainingBombs is bombs minus flags; it goes negative when over-flagged.
func (s *State) RemainingBombs() int {
	return s.grid.NumBombs() - s.grid.FlagCount()
}

// Click applies one input event. Clicks after the game is over and clicks
// outside the board are ignored.
func (s *State) Click(p grid.Position, b Button) {
	if s.IsOver() {
		return
	}
	if !s.grid.Contains(p) {
		s.log.WithField("cell", p).Debug("click outside board")
		return
	}

	log := s.log.WithField("cell", p)
	switch b {
	case ButtonPrimary:
		log.Debug("reveal")
		if s.grid.Reveal(p) == grid.Loss {
			s.status = Lost
			log.Info("game over")
			return
		}
	case ButtonSecondary:
		log.Debug("toggle flag")
		s.grid.ToggleFlag(p)
	default:
		log.WithField("button", int(b)).Warn("unknown button")
		return
	}

	if s.grid.HasWon() {
		s.status = Won
		s.log.WithField("discovered", s.grid.Discovered()).Info("player won")
	}
}
