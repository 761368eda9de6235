package grid

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/zyedidia/generic/queue"
)

var ErrInvalidConfiguration = errors.New("invalid grid configuration")

// Outcome is the result of a reveal.
type Outcome int

const (
	Continue Outcome = iota
	Loss
)

func (o Outcome) String() string {
	switch o {
	case Continue:
		return "CONTINUE"
	case Loss:
		return "GAME_OVER_LOSS"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}

// Grid is the board of a single game. It is not safe for concurrent use.
type Grid struct {
	w, h     int
	numBombs int
	cells    [][]cell
	flags    int
	revealed int
}

// New builds a width x height grid with numBombs bombs placed uniformly at
// random. A nil rng falls back to the package-level source.
func New(width, height, numBombs int, rng *rand.Rand) (*Grid, error) {
	g, err := newEmpty(width, height, numBombs)
	if err != nil {
		return nil, err
	}

	candidates := make([]Position, 0, width*height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			candidates = append(candidates, Position{X: x, Y: y})
		}
	}
	swap := func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	}
	if rng != nil {
		rng.Shuffle(len(candidates), swap)
	} else {
		rand.Shuffle(len(candidates), swap)
	}

	for _, p := range candidates[:numBombs] {
		g.cells[p.Y][p.X].typ = Bomb
	}
	return g, nil
}

// NewWithBombs builds a grid with bombs at exactly the given positions.
func NewWithBombs(width, height int, bombs []Position) (*Grid, error) {
	g, err := newEmpty(width, height, len(bombs))
	if err != nil {
		return nil, err
	}
	for _, p := range bombs {
		if !g.Contains(p) {
			return nil, fmt.Errorf("%w: bomb %s outside %dx%d board", ErrInvalidConfiguration, p, width, height)
		}
		c := &g.cells[p.Y][p.X]
		if c.typ == Bomb {
			return nil, fmt.Errorf("%w: duplicate bomb at %s", ErrInvalidConfiguration, p)
		}
		c.typ = Bomb
	}
	return g, nil
}

func newEmpty(width, height, numBombs int) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: dimensions %dx%d must be positive", ErrInvalidConfiguration, width, height)
	}
	if numBombs < 0 || numBombs > width*height {
		return nil, fmt.Errorf("%w: %d bombs do not fit in %d cells", ErrInvalidConfiguration, numBombs, width*height)
	}
	g := &Grid{w: width, h: height, numBombs: numBombs}
	g.cells = make([][]cell, height)
	for y := range g.cells {
		g.cells[y] = make([]cell, width)
	}
	return g, nil
}

func (g *Grid) Width() int    { return g.w }
func (g *Grid) Height() int   { return g.h }
func (g *Grid) NumBombs() int { return g.numBombs }

// FlagCount is the number of cells currently flagged.
func (g *Grid) FlagCount() int { return g.flags }

// Discovered is the number of cells currently discovered.
func (g *Grid) Discovered() int { return g.revealed }

func (g *Grid) Contains(p Position) bool {
	return p.X >= 0 && p.Y >= 0 && p.X < g.w && p.Y < g.h
}

func (g *Grid) Cell(p Position) (Cell, bool) {
	if !g.Contains(p) {
		return Cell{}, false
	}
	c := g.cells[p.Y][p.X]
	return Cell{Position: p, Type: c.typ, Status: c.status}, true
}

// Each calls fn for every cell, row by row.
func (g *Grid) Each(fn func(c Cell)) {
	for y := 0; y < g.h; y++ {
		for x := 0; x < g.w; x++ {
			c := g.cells[y][x]
			fn(Cell{Position: Position{X: x, Y: y}, Type: c.typ, Status: c.status})
		}
	}
}

func (g *Grid) around(p Position, fn func(n Position)) {
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			n := Position{X: p.X + dx, Y: p.Y + dy}
			if g.Contains(n) {
				fn(n)
			}
		}
	}
}

// NeighborBombCount counts bombs among the up to eight cells touching p.
func (g *Grid) NeighborBombCount(p Position) int {
	count := 0
	g.around(p, func(n Position) {
		if g.cells[n.Y][n.X].typ == Bomb {
			count++
		}
	})
	return count
}

// Reveal discovers the cell at p. Positions outside the board and cells that
// are already discovered or flagged are left alone.
func (g *Grid) Reveal(p Position) Outcome {
	if !g.Contains(p) {
		return Continue
	}
	c := &g.cells[p.Y][p.X]
	if c.status != Unknown {
		return Continue
	}
	c.status = Discovered
	g.revealed++

	if c.typ == Bomb {
		return Loss
	}
	if g.NeighborBombCount(p) == 0 {
		g.flood(p)
	}
	return Continue
}

// flood expands outwards from a discovered cell with no neighbouring bombs.
// Only cells with a zero count are expanded, so a bomb is never reached.
func (g *Grid) flood(start Position) {
	todo := queue.New[Position]()
	todo.Enqueue(start)
	for !todo.Empty() {
		cur := todo.Dequeue()
		g.around(cur, func(n Position) {
			nc := &g.cells[n.Y][n.X]
			if nc.status != Unknown {
				return
			}
			nc.status = Discovered
			g.revealed++
			if g.NeighborBombCount(n) == 0 {
				todo.Enqueue(n)
			}
		})
	}
}

// ToggleFlag flips an undiscovered cell between unknown and flagged.
func (g *Grid) ToggleFlag(p Position) {
	if !g.Contains(p) {
		return
	}
	c := &g.cells[p.Y][p.X]
	switch c.status {
	case Unknown:
		c.status = Flagged
		g.flags++
	case Flagged:
		c.status = Unknown
		g.flags--
	case Discovered:
	}
}

// HasWon reports whether no cell is left unknown and no safe cell is flagged.
// A flag on a safe cell blocks the win even when everything else is cleared.
func (g *Grid) HasWon() bool {
	for y := 0; y < g.h; y++ {
		for x := 0; x < g.w; x++ {
			c := g.cells[y][x]
			if c.status == Unknown {
				return false
			}
			if c.status == Flagged && c.typ == Safe {
				return false
			}
		}
	}
	return true
}

func (g *Grid) String() string {
	return fmt.Sprintf("%dx%d grid, %d bombs", g.w, g.h, g.numBombs)
}
