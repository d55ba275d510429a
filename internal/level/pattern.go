package level

// NumSides is the number of angular segments in the obstacle ring.
const NumSides = 6

// Pattern identifies one obstacle shape. Narrow shares Single's shape and
// Wide shares HalfOpen's; the duplicates are distinct on purpose because the
// branches that pick them weight them separately, which shifts the observable
// difficulty distribution.
type Pattern int

const (
	PatternSingle Pattern = iota
	PatternOpposite
	PatternAdjacent
	PatternHalfOpen
	PatternWide
	PatternNarrow
	PatternAlternating
)

func (p Pattern) String() string {
	switch p {
	case PatternSingle:
		return "single"
	case PatternOpposite:
		return "opposite"
	case PatternAdjacent:
		return "adjacent"
	case PatternHalfOpen:
		return "halfOpen"
	case PatternWide:
		return "wide"
	case PatternNarrow:
		return "narrow"
	case PatternAlternating:
		return "alternating"
	}
	return "unknown"
}

// SideSet is a bitmask of open (passable) ring sides, one bit per side index
// 0..5.
type SideSet uint8

// Side returns the set containing only side i (mod 6).
func Side(i int) SideSet {
	i %= NumSides
	if i < 0 {
		i += NumSides
	}
	return 1 << uint(i)
}

// Sides returns the open sides the pattern leaves at rotation rot.
func (p Pattern) Sides(rot int) SideSet {
	switch p {
	case PatternSingle, PatternNarrow:
		return Side(rot)
	case PatternOpposite:
		return Side(rot) | Side(rot+3)
	case PatternAdjacent:
		return Side(rot) | Side(rot+1)
	case PatternHalfOpen, PatternWide:
		return Side(rot) | Side(rot+1) | Side(rot+2)
	case PatternAlternating:
		return Side(rot) | Side(rot+2) | Side(rot+4)
	}
	return 0
}

// Has reports whether side i is open.
func (s SideSet) Has(i int) bool { return s&Side(i) != 0 }

// With returns the set with side i added. Fix-ups may grow a pattern past
// its nominal shape; that is the passability-over-difficulty trade-off.
func (s SideSet) With(i int) SideSet { return s | Side(i) }

// Intersects reports whether two sets share an open side.
func (s SideSet) Intersects(o SideSet) bool { return s&o != 0 }

// Count returns the number of open sides.
func (s SideSet) Count() int {
	n := 0
	for i := 0; i < NumSides; i++ {
		if s.Has(i) {
			n++
		}
	}
	return n
}

// List returns the open side indices in ascending order.
func (s SideSet) List() []int {
	var out []int
	for i := 0; i < NumSides; i++ {
		if s.Has(i) {
			out = append(out, i)
		}
	}
	return out
}

// First returns the lowest open side index, or -1 for an empty set.
func (s SideSet) First() int {
	for i := 0; i < NumSides; i++ {
		if s.Has(i) {
			return i
		}
	}
	return -1
}
