package world

import "github.com/Scrimzay/icefall/internal/hex"

type Status uint8

const (
	StatusIntact Status = 0
	StatusFallen Status = 1 // terminal
)

func (s Status) String() string {
	switch s {
	case StatusIntact:
		return "intact"

	case StatusFallen:
		return "fallen"

	default:
		return "unknown"
	}
}

// Tile is one ice block. Coord and friction never change after placement,
// status only ever moves Intact -> Fallen.
type Tile struct {
	coord    hex.Coord
	friction float64 // 0-1, higher grips better and falls less
	status   Status
}

func newTile(c hex.Coord, friction float64) *Tile {
	return &Tile{coord: c, friction: friction, status: StatusIntact}
}

func (t *Tile) Coord() hex.Coord {
	return t.coord
}

func (t *Tile) Friction() float64 {
	return t.friction
}

func (t *Tile) Status() Status {
	return t.status
}

func (t *Tile) Intact() bool {
	return t.status == StatusIntact
}

// fall marks the tile Fallen and reports whether it changed.
func (t *Tile) fall() bool {
	if t.status == StatusFallen {
		return false
	}
	t.status = StatusFallen
	return true
}
