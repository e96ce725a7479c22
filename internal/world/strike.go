package world

import "github.com/Scrimzay/icefall/internal/hex"

// Outcome is the result of one strike.
type Outcome struct {
	Struck   bool        `json:"struck"` // false when the target was off the board or already fallen
	Fallen   []hex.Coord `json:"fallen"` // struck tile first, then in the order tiles fell
	HomeLost bool        `json:"homeLost"`
	Passes   int         `json:"passes"`
	Capped   bool        `json:"capped"` // propagation stopped at MaxPasses
}

// Strike knocks out the tile at c and lets the board settle, running at most
// MaxPasses stability passes. Striking a missing or fallen tile changes nothing.
func (b *Board) Strike(c hex.Coord) Outcome {
	t := b.tiles[c]
	if t == nil || !t.Intact() {
		return Outcome{Fallen: []hex.Coord{}}
	}

	t.fall()
	out := Outcome{Struck: true, Fallen: []hex.Coord{c}}

	e := &engine{board: b}
	candidates := e.neighborsOfAll([]hex.Coord{c})
	for out.Passes < b.cfg.MaxPasses {
		out.Passes++
		fell := e.pass(candidates)
		if len(fell) == 0 {
			break
		}
		out.Fallen = append(out.Fallen, fell...)
		candidates = e.neighborsOfAll(fell)

		if out.Passes == b.cfg.MaxPasses {
			out.Capped = true
		}
	}

	// A capped session may stop right after a stress fall cut off an island.
	if out.Capped {
		out.Fallen = append(out.Fallen, e.disconnected()...)
	}

	out.HomeLost = b.HomeLost()
	return out
}
