package world

import (
	"fmt"
	"log"
	"sync"

	"github.com/Scrimzay/icefall/internal/hex"
	"github.com/google/uuid"
)

// World is the shared game: one board at a time, guarded by Mu. A strike holds
// the write lock for its whole propagation so nobody sees a half-collapsed board.
type World struct {
	Mu       sync.RWMutex
	board    *Board
	layout   Layout
	gameID   string
	gameOver bool // latched once the home tile falls, cleared by Reset/InitMap
	rng      Rand
	tune     func(*Config) // applied on top of every layout, may be nil
}

// New builds a world on the default layout. tune lets the caller override
// layout values (env config does this); it may be nil.
func New(rng Rand, tune func(*Config)) (*World, error) {
	w := &World{rng: rng, tune: tune}
	if err := w.InitMap(DefaultLayout); err != nil {
		return nil, err
	}
	return w, nil
}

// InitMap replaces the board with a fresh one built from the named layout.
func (w *World) InitMap(name string) error {
	layout := LookupLayout(name)
	cfg := layout.Config()
	if w.tune != nil {
		w.tune(&cfg)
	}

	w.Mu.Lock()
	defer w.Mu.Unlock()

	board, err := NewBoard(cfg, w.rng)
	if err != nil {
		return fmt.Errorf("init layout %s: %w", layout.Name, err)
	}

	w.board = board
	w.layout = layout
	w.gameID = uuid.NewString()
	w.gameOver = false
	log.Printf("Layout %s ready: radius %d, %d tiles, game %s", layout.Name, cfg.Radius, len(board.order), w.gameID)
	return nil
}

// Reset rebuilds the current layout.
func (w *World) Reset() error {
	w.Mu.RLock()
	name := w.layout.Name
	w.Mu.RUnlock()
	return w.InitMap(name)
}

// StrikeReport is what the host sees after a strike.
type StrikeReport struct {
	GameID string    `json:"gameId"`
	Target hex.Coord `json:"target"`
	Outcome
	GameOver bool `json:"gameOver"`
}

// Strike forwards to the board unless the game is already over.
func (w *World) Strike(c hex.Coord) StrikeReport {
	w.Mu.Lock()
	defer w.Mu.Unlock()

	report := StrikeReport{GameID: w.gameID, Target: c}
	if w.gameOver {
		report.Outcome = Outcome{Fallen: []hex.Coord{}}
		report.GameOver = true
		return report
	}

	report.Outcome = w.board.Strike(c)
	if report.HomeLost {
		w.gameOver = true
		log.Printf("Game %s over: home tile fell after striking (%d,%d)", w.gameID, c.Q, c.R)
	}
	report.GameOver = w.gameOver
	return report
}

func (w *World) IsGameOver() bool {
	w.Mu.RLock()
	defer w.Mu.RUnlock()
	return w.gameOver
}

func (w *World) GameID() string {
	w.Mu.RLock()
	defer w.Mu.RUnlock()
	return w.gameID
}

type TileView struct {
	Q        int     `json:"q"`
	R        int     `json:"r"`
	X        float64 `json:"x"`
	Z        float64 `json:"z"`
	Friction float64 `json:"friction"`
	Status   string  `json:"status"`
	Anchor   bool    `json:"anchor"`
}

func (tv TileView) Coord() hex.Coord {
	return hex.Coord{Q: tv.Q, R: tv.R}
}

type Snapshot struct {
	GameID   string     `json:"gameId"`
	Layout   string     `json:"layout"`
	Radius   int        `json:"radius"`
	GameOver bool       `json:"gameOver"`
	Intact   int        `json:"intact"`
	Tiles    []TileView `json:"tiles"`
}

// hex corner radius used for x/z in snapshots
const tileSize = 1.0

// Snapshot copies the board for broadcasting.
func (w *World) Snapshot() Snapshot {
	w.Mu.RLock()
	defer w.Mu.RUnlock()

	snap := Snapshot{
		GameID:   w.gameID,
		Layout:   w.layout.Name,
		Radius:   w.board.Radius(),
		GameOver: w.gameOver,
		Intact:   w.board.IntactCount(),
		Tiles:    make([]TileView, 0, len(w.board.order)),
	}
	for _, t := range w.board.Tiles() {
		x, z := t.coord.Pixel(tileSize)
		snap.Tiles = append(snap.Tiles, TileView{
			Q:        t.coord.Q,
			R:        t.coord.R,
			X:        x,
			Z:        z,
			Friction: t.friction,
			Status:   t.status.String(),
			Anchor:   w.board.IsAnchor(t.coord),
		})
	}
	return snap
}

type TileInfo struct {
	Q               int     `json:"q"`
	R               int     `json:"r"`
	Ring            int     `json:"ring"`
	Friction        float64 `json:"friction"`
	Status          string  `json:"status"`
	Anchor          bool    `json:"anchor"`
	Home            bool    `json:"home"`
	IntactNeighbors int     `json:"intactNeighbors"`
	FallChance      float64 `json:"fallChance"`
}

// Inspect describes one tile; ok is false when c is off the board.
func (w *World) Inspect(c hex.Coord) (TileInfo, bool) {
	w.Mu.RLock()
	defer w.Mu.RUnlock()

	t := w.board.Tile(c)
	if t == nil {
		return TileInfo{}, false
	}
	return TileInfo{
		Q:               c.Q,
		R:               c.R,
		Ring:            c.Ring(),
		Friction:        t.friction,
		Status:          t.status.String(),
		Anchor:          w.board.IsAnchor(c),
		Home:            c == w.board.Home(),
		IntactNeighbors: len(w.board.NeighborsOf(t)),
		FallChance:      w.board.FallChance(c),
	}, true
}
