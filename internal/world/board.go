package world

import (
	"errors"
	"fmt"
	"math"

	"github.com/Scrimzay/icefall/internal/hex"
)

const (
	DefaultRadius         = 3
	DefaultBaseFriction   = 0.5
	DefaultFrictionJitter = 0.2
	DefaultFrictionOffset = 1.5
	DefaultMaxPasses      = 20
)

var (
	ErrInvalidRadius   = errors.New("radius must be at least 1")
	ErrInvalidFriction = errors.New("friction must be within [0,1]")
	ErrInvalidStress   = errors.New("stress chances must be within [0,1]")
	ErrInvalidPasses   = errors.New("max passes must be at least 1")
	ErrInvalidOffset   = errors.New("friction offset must be a non-negative number")
	ErrNilRand         = errors.New("random source is required")
)

// Rand is the random source the board draws from. *rand.Rand from math/rand/v2
// satisfies it; tests pass seeded sources.
type Rand interface {
	Float64() float64
}

// FrictionFunc picks the friction for a tile at placement time.
type FrictionFunc func(c hex.Coord, rng Rand) float64

type Config struct {
	Radius         int
	BaseFriction   float64      // midpoint of the per-tile friction draw
	FrictionJitter float64      // half-width of the random offset around BaseFriction
	FrictionFunc   FrictionFunc // overrides BaseFriction/FrictionJitter when set
	Stress         StressTable
	FrictionOffset float64 // fall chance is scaled by (FrictionOffset - friction)
	MaxPasses      int
}

func DefaultConfig() Config {
	return Config{
		Radius:         DefaultRadius,
		BaseFriction:   DefaultBaseFriction,
		FrictionJitter: DefaultFrictionJitter,
		Stress:         DefaultStressTable(),
		FrictionOffset: DefaultFrictionOffset,
		MaxPasses:      DefaultMaxPasses,
	}
}

func (c Config) Validate() error {
	if c.Radius < 1 {
		return fmt.Errorf("radius %d: %w", c.Radius, ErrInvalidRadius)
	}
	if c.FrictionFunc == nil {
		if !unit(c.BaseFriction) {
			return fmt.Errorf("base friction %.2f: %w", c.BaseFriction, ErrInvalidFriction)
		}
		if !unit(c.FrictionJitter) {
			return fmt.Errorf("friction jitter %.2f: %w", c.FrictionJitter, ErrInvalidFriction)
		}
	}
	for _, v := range c.Stress.values() {
		if !unit(v) {
			return fmt.Errorf("stress chance %.2f: %w", v, ErrInvalidStress)
		}
	}
	if !(c.FrictionOffset >= 0) || math.IsInf(c.FrictionOffset, 1) {
		return fmt.Errorf("friction offset %.2f: %w", c.FrictionOffset, ErrInvalidOffset)
	}
	if c.MaxPasses < 1 {
		return fmt.Errorf("max passes %d: %w", c.MaxPasses, ErrInvalidPasses)
	}
	return nil
}

// Board owns every tile of a hexagonal sheet of ice. It is not safe for
// concurrent use; World wraps it with a lock.
type Board struct {
	cfg   Config
	rng   Rand
	tiles map[hex.Coord]*Tile
	order []hex.Coord // layout order, used wherever iteration must be deterministic
}

// NewBoard lays out one tile per coordinate within cfg.Radius and draws each
// tile's friction once.
func NewBoard(cfg Config, rng Rand) (*Board, error) {
	if rng == nil {
		return nil, ErrNilRand
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("new board: %w", err)
	}

	frictionFor := cfg.FrictionFunc
	if frictionFor == nil {
		frictionFor = UniformFriction(cfg.BaseFriction, cfg.FrictionJitter)
	}

	coords := hex.Disk(cfg.Radius)
	b := &Board{
		cfg:   cfg,
		rng:   rng,
		tiles: make(map[hex.Coord]*Tile, len(coords)),
		order: coords,
	}
	for _, c := range coords {
		f := frictionFor(c, rng)
		if math.IsNaN(f) {
			return nil, fmt.Errorf("new board: friction at (%d,%d) is NaN: %w", c.Q, c.R, ErrInvalidFriction)
		}
		b.tiles[c] = newTile(c, clamp01(f))
	}
	return b, nil
}

// UniformFriction draws friction uniformly from [base-jitter, base+jitter].
func UniformFriction(base, jitter float64) FrictionFunc {
	return func(_ hex.Coord, rng Rand) float64 {
		return base + (rng.Float64()*2-1)*jitter
	}
}

func (b *Board) Radius() int {
	return b.cfg.Radius
}

// Home is the tile the penguin stands on.
func (b *Board) Home() hex.Coord {
	return hex.Origin
}

// Tile returns the tile at c, or nil when c is off the board.
func (b *Board) Tile(c hex.Coord) *Tile {
	return b.tiles[c]
}

// Tiles returns every tile in layout order.
func (b *Board) Tiles() []*Tile {
	out := make([]*Tile, 0, len(b.order))
	for _, c := range b.order {
		out = append(out, b.tiles[c])
	}
	return out
}

func (b *Board) IsAnchor(c hex.Coord) bool {
	return c.Ring() == b.cfg.Radius
}

func (b *Board) HomeLost() bool {
	return !b.tiles[hex.Origin].Intact()
}

// NeighborsOf returns the intact tiles adjacent to t that exist on the board.
func (b *Board) NeighborsOf(t *Tile) []*Tile {
	out := make([]*Tile, 0, 6)
	for _, n := range t.coord.Neighbors() {
		if nt, ok := b.tiles[n]; ok && nt.Intact() {
			out = append(out, nt)
		}
	}
	return out
}

func (b *Board) activeNeighbors(t *Tile) int {
	count := 0
	for _, n := range t.coord.Neighbors() {
		if nt, ok := b.tiles[n]; ok && nt.Intact() {
			count++
		}
	}
	return count
}

// FallChance is the current stress fall chance of the tile at c. Fallen and
// missing tiles report 0.
func (b *Board) FallChance(c hex.Coord) float64 {
	t := b.tiles[c]
	if t == nil || !t.Intact() {
		return 0
	}
	return FallChance(b.cfg.Stress, b.cfg.FrictionOffset, b.activeNeighbors(t), t.friction)
}

// IntactCount returns how many tiles are still standing.
func (b *Board) IntactCount() int {
	count := 0
	for _, t := range b.tiles {
		if t.Intact() {
			count++
		}
	}
	return count
}

// unit reports whether v is within [0,1]; NaN is not.
func unit(v float64) bool {
	return v >= 0 && v <= 1
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
