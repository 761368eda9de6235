package grid

import "fmt"

// Position is a cell coordinate: X is the column, Y the row.
type Position struct {
	X, Y int
}

func (p Position) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}

type CellType int

const (
	Safe CellType = iota
	Bomb
)

func (t CellType) String() string {
	switch t {
	case Safe:
		return "SAFE"
	case Bomb:
		return "BOMB"
	default:
		return fmt.Sprintf("CellType(%d)", int(t))
	}
}

type CellStatus int

const (
	Unknown CellStatus = iota
	Discovered
	Flagged
)

func (s CellStatus) String() string {
	switch s {
	case Unknown:
		return "UNKNOWN"
	case Discovered:
		return "DISCOVERED"
	case Flagged:
		return "FLAGGED"
	default:
		return fmt.Sprintf("CellStatus(%d)", int(s))
	}
}

// Cell is a read-only snapshot of one square. The grid keeps the live copy.
type Cell struct {
	Position Position
	Type     CellType
	Status   CellStatus
}

func (c Cell) String() string {
	return fmt.Sprintf("%s %s %s", c.Position, c.Type, c.Status)
}

type cell struct {
	typ    CellType
	status CellStatus
}
