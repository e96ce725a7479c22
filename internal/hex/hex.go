// Package hex holds the axial coordinate math for the hexagonal board.
// The third cube coordinate is implicit: s = -q - r.
package hex

import "math"

// Coord is an axial hex coordinate.
type Coord struct {
	Q int `json:"q"`
	R int `json:"r"`
}

// Origin is the centre of every board.
var Origin = Coord{}

// Directions are the six neighbor offsets in axial coordinates.
var Directions = [6]Coord{
	{Q: 1, R: 0},
	{Q: 1, R: -1},
	{Q: 0, R: -1},
	{Q: -1, R: 0},
	{Q: -1, R: 1},
	{Q: 0, R: 1},
}

// S returns the implicit third cube coordinate.
func (c Coord) S() int {
	return -c.Q - c.R
}

func (c Coord) Add(o Coord) Coord {
	return Coord{Q: c.Q + o.Q, R: c.R + o.R}
}

// Neighbors returns the six adjacent coordinates, in Directions order.
func (c Coord) Neighbors() [6]Coord {
	var out [6]Coord
	for i, dir := range Directions {
		out[i] = c.Add(dir)
	}
	return out
}

// Ring returns the distance from the origin: max(|q|, |r|, |s|).
func (c Coord) Ring() int {
	return max(abs(c.Q), abs(c.R), abs(c.S()))
}

// Distance returns the number of steps between two coordinates.
func Distance(a, b Coord) int {
	return Coord{Q: a.Q - b.Q, R: a.R - b.R}.Ring()
}

// Disk returns every coordinate within radius of the origin, q ascending then r ascending.
func Disk(radius int) []Coord {
	if radius < 0 {
		return nil
	}
	out := make([]Coord, 0, DiskSize(radius))
	for q := -radius; q <= radius; q++ {
		r1 := max(-radius, -q-radius)
		r2 := min(radius, -q+radius)
		for r := r1; r <= r2; r++ {
			out = append(out, Coord{Q: q, R: r})
		}
	}
	return out
}

// DiskSize is the tile count of a disk: 3r(r+1)+1.
func DiskSize(radius int) int {
	if radius < 0 {
		return 0
	}
	return 3*radius*(radius+1) + 1
}

// Pixel returns the centre of the hex in a flat-top layout where size is the
// corner radius. The second value is the depth axis (z), not screen y.
func (c Coord) Pixel(size float64) (x, z float64) {
	x = size * (1.5 * float64(c.Q))
	z = size * (math.Sqrt(3)/2*float64(c.Q) + math.Sqrt(3)*float64(c.R))
	return x, z
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
