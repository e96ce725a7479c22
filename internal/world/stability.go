package world

// StressTable holds the base fall chance for a tile by how many intact
// neighbors still hold it up.
type StressTable struct {
	FourPlus  float64 `json:"fourPlus"` // 4-6 neighbors
	Three     float64 `json:"three"`
	Two       float64 `json:"two"`
	OneOrLess float64 `json:"oneOrLess"` // 0-1 neighbors
}

func DefaultStressTable() StressTable {
	return StressTable{
		FourPlus:  0.00,
		Three:     0.30,
		Two:       0.70,
		OneOrLess: 0.95,
	}
}

// NoStress never lets a tile fall from stress, leaving connectivity loss as the
// only way down.
func NoStress() StressTable {
	return StressTable{}
}

// Base returns the unadjusted fall chance for a neighbor count.
func (s StressTable) Base(activeNeighbors int) float64 {
	switch {
	case activeNeighbors >= 4:
		return s.FourPlus

	case activeNeighbors == 3:
		return s.Three

	case activeNeighbors == 2:
		return s.Two

	default:
		return s.OneOrLess
	}
}

func (s StressTable) values() [4]float64 {
	return [4]float64{s.FourPlus, s.Three, s.Two, s.OneOrLess}
}

// FallChance applies the friction adjustment (offset - friction) to the base
// chance and clamps the result to [0,1].
func FallChance(table StressTable, offset float64, activeNeighbors int, friction float64) float64 {
	chance := table.Base(activeNeighbors) * (offset - friction)
	if chance < 0 {
		return 0
	}
	if chance > 1 {
		return 1
	}
	return chance
}
