package world

import (
	"reflect"
	"testing"

	"github.com/Scrimzay/icefall/internal/hex"
)

func TestStrike_RadiusOneCenter(t *testing.T) {
	b := calmBoard(t, 1)
	out := b.Strike(hex.Origin)

	if !out.Struck {
		t.Fatal("strike on intact home should be accepted")
	}
	if want := []hex.Coord{hex.Origin}; !reflect.DeepEqual(out.Fallen, want) {
		t.Fatalf("fallen = %v, want %v", out.Fallen, want)
	}
	if !out.HomeLost {
		t.Fatal("homeLost should be true")
	}
	if got := b.IntactCount(); got != 6 {
		t.Fatalf("%d tiles intact, want the 6 anchors", got)
	}
}

func TestStrike_RadiusTwoInnerTile(t *testing.T) {
	b := calmBoard(t, 2)
	out := b.Strike(hex.Coord{Q: 1, R: 0})

	if want := []hex.Coord{{Q: 1, R: 0}}; !reflect.DeepEqual(out.Fallen, want) {
		t.Fatalf("fallen = %v, want %v", out.Fallen, want)
	}
	if out.HomeLost {
		t.Fatal("home should survive")
	}
	if out.Capped || out.Passes != 1 {
		t.Fatalf("passes = %d capped = %v, want 1 pass", out.Passes, out.Capped)
	}
}

func TestStrike_SeveringLastPathDropsIsland(t *testing.T) {
	b := calmBoard(t, 2)
	// home keeps a single bridge to the outer ring through (1,0)
	knockOut(t, b,
		hex.Coord{Q: 1, R: -1}, hex.Coord{Q: 0, R: -1},
		hex.Coord{Q: -1, R: 0}, hex.Coord{Q: -1, R: 1}, hex.Coord{Q: 0, R: 1})

	out := b.Strike(hex.Coord{Q: 1, R: 0})

	want := []hex.Coord{{Q: 1, R: 0}, hex.Origin}
	if !reflect.DeepEqual(out.Fallen, want) {
		t.Fatalf("fallen = %v, want %v", out.Fallen, want)
	}
	if !out.HomeLost {
		t.Fatal("home should fall with its island in the same strike")
	}
	assertAnchored(t, b)
}

func TestStrike_ConnectivityCollapseIsDeterministic(t *testing.T) {
	want := append([]hex.Coord{{Q: 2, R: 0}}, hex.Disk(1)...)

	for seed := uint64(1); seed <= 20; seed++ {
		cfg := DefaultConfig()
		cfg.Stress = NoStress()
		b := mustBoard(t, cfg, seeded(seed))

		// everything on ring 2 except the (2,0) bridge
		for _, c := range hex.Disk(2) {
			if c.Ring() == 2 && c != (hex.Coord{Q: 2, R: 0}) {
				knockOut(t, b, c)
			}
		}

		out := b.Strike(hex.Coord{Q: 2, R: 0})
		if !reflect.DeepEqual(out.Fallen, want) {
			t.Fatalf("seed %d: fallen = %v, want %v", seed, out.Fallen, want)
		}
		if !out.HomeLost || out.Passes != 2 {
			t.Fatalf("seed %d: homeLost=%v passes=%d", seed, out.HomeLost, out.Passes)
		}
		if got := b.IntactCount(); got != 18 {
			t.Fatalf("seed %d: %d intact, want 18 anchors", seed, got)
		}
	}
}

func statuses(b *Board) map[hex.Coord]Status {
	out := map[hex.Coord]Status{}
	for _, tile := range b.Tiles() {
		out[tile.Coord()] = tile.Status()
	}
	return out
}

func TestStrike_InvalidTargetsChangeNothing(t *testing.T) {
	b := mustBoard(t, DefaultConfig(), seeded(3))
	b.Strike(hex.Coord{Q: 3, R: 0})
	before := statuses(b)

	for _, c := range []hex.Coord{{Q: 3, R: 0}, {Q: 4, R: 0}, {Q: -9, R: 2}} {
		out := b.Strike(c)
		if out.Struck || len(out.Fallen) != 0 || out.Passes != 0 {
			t.Fatalf("strike %v = %+v, want empty outcome", c, out)
		}
		if !reflect.DeepEqual(statuses(b), before) {
			t.Fatalf("strike %v changed the board", c)
		}
	}
}

func TestStrike_PassCap(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxPasses = 1
	// every roll succeeds
	b := mustBoard(t, cfg, constRand(0))

	out := b.Strike(hex.Coord{Q: 3, R: 0})
	if out.Passes != 1 || !out.Capped {
		t.Fatalf("passes = %d capped = %v, want capped after 1", out.Passes, out.Capped)
	}
	if len(out.Fallen) < 2 {
		t.Fatalf("fallen = %v, want the strike plus stress falls", out.Fallen)
	}
	assertAnchored(t, b)
}

func TestStrike_RandomSessionsKeepInvariants(t *testing.T) {
	for seed := uint64(1); seed <= 40; seed++ {
		cfg := DefaultConfig()
		cfg.Radius = 3 + int(seed%2)
		rng := seeded(seed)
		b := mustBoard(t, cfg, rng)
		coords := hex.Disk(cfg.Radius)

		for turn := 0; turn < 30 && !b.HomeLost(); turn++ {
			before := statuses(b)
			target := coords[rng.IntN(len(coords))]
			out := b.Strike(target)

			if out.Passes > DefaultMaxPasses {
				t.Fatalf("seed %d: %d passes", seed, out.Passes)
			}
			for c, s := range before {
				if s == StatusFallen && b.Tile(c).Intact() {
					t.Fatalf("seed %d: tile %v came back", seed, c)
				}
			}
			seen := map[hex.Coord]bool{}
			for _, c := range out.Fallen {
				if seen[c] {
					t.Fatalf("seed %d: %v reported twice", seed, c)
				}
				seen[c] = true
				if before[c] != StatusIntact || b.Tile(c).Intact() {
					t.Fatalf("seed %d: %v reported but was not a new fall", seed, c)
				}
			}
			if out.HomeLost != b.HomeLost() {
				t.Fatalf("seed %d: homeLost mismatch", seed)
			}
			assertAnchored(t, b)
		}
	}
}
