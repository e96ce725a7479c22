package world

import "github.com/Scrimzay/icefall/internal/hex"

// engine runs stability passes over a borrowed board.
type engine struct {
	board *Board
}

// pass runs the connectivity sweep over the whole board, then the stress check
// over the candidates, and returns every tile that fell in fall order.
func (e *engine) pass(candidates []hex.Coord) []hex.Coord {
	fell := e.disconnected()
	return append(fell, e.stress(candidates)...)
}

// disconnected drops every intact tile with no intact path to an anchor.
// No randomness is involved.
func (e *engine) disconnected() []hex.Coord {
	b := e.board
	reached := make(map[hex.Coord]bool, len(b.tiles))
	queue := make([]*Tile, 0, len(b.tiles))

	for _, c := range b.order {
		t := b.tiles[c]
		if t.Intact() && b.IsAnchor(c) {
			reached[c] = true
			queue = append(queue, t)
		}
	}

	for head := 0; head < len(queue); head++ {
		for _, n := range b.NeighborsOf(queue[head]) {
			if reached[n.coord] {
				continue
			}
			reached[n.coord] = true
			queue = append(queue, n)
		}
	}

	var fell []hex.Coord
	for _, c := range b.order {
		t := b.tiles[c]
		if t.Intact() && !reached[c] && t.fall() {
			fell = append(fell, c)
		}
	}
	return fell
}

// stress rolls each candidate once against its fall chance.
func (e *engine) stress(candidates []hex.Coord) []hex.Coord {
	b := e.board
	processed := make(map[hex.Coord]bool, len(candidates))

	var fell []hex.Coord
	for _, c := range candidates {
		if processed[c] {
			continue
		}
		processed[c] = true

		t := b.tiles[c]
		if t == nil || !t.Intact() {
			continue
		}

		chance := FallChance(b.cfg.Stress, b.cfg.FrictionOffset, b.activeNeighbors(t), t.friction)
		if chance <= 0 {
			continue
		}
		if b.rng.Float64() < chance && t.fall() {
			fell = append(fell, c)
		}
	}
	return fell
}

// neighborsOfAll returns the deduplicated intact neighbors of the given
// coordinates, in first-seen order.
func (e *engine) neighborsOfAll(coords []hex.Coord) []hex.Coord {
	b := e.board
	seen := make(map[hex.Coord]bool)
	var out []hex.Coord
	for _, c := range coords {
		for _, n := range c.Neighbors() {
			if seen[n] {
				continue
			}
			seen[n] = true
			if t, ok := b.tiles[n]; ok && t.Intact() {
				out = append(out, n)
			}
		}
	}
	return out
}
