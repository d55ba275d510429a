package level

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPatternSides(t *testing.T) {
	assert.Equal(t, Side(0), PatternSingle.Sides(0))
	assert.Equal(t, Side(1)|Side(4), PatternOpposite.Sides(1))
	assert.Equal(t, Side(5)|Side(0), PatternAdjacent.Sides(5))
	assert.Equal(t, Side(4)|Side(5)|Side(0), PatternHalfOpen.Sides(4))
	assert.Equal(t, Side(1)|Side(3)|Side(5), PatternAlternating.Sides(1))
}

func TestPatternRotationWraps(t *testing.T) {
	assert.Equal(t, PatternSingle.Sides(0), PatternSingle.Sides(6))
	assert.Equal(t, PatternOpposite.Sides(2), PatternOpposite.Sides(8))
	assert.Equal(t, Side(5), Side(-1))
}

func TestPatternDuplicateShapes(t *testing.T) {
	// Narrow/Single and Wide/HalfOpen share shapes on purpose: the
	// selection branches weight them separately.
	for rot := 0; rot < NumSides; rot++ {
		assert.Equal(t, PatternSingle.Sides(rot), PatternNarrow.Sides(rot))
		assert.Equal(t, PatternHalfOpen.Sides(rot), PatternWide.Sides(rot))
	}
}

func TestSideSetOps(t *testing.T) {
	s := PatternOpposite.Sides(0) // {0,3}
	assert.True(t, s.Has(0))
	assert.True(t, s.Has(3))
	assert.False(t, s.Has(1))
	assert.Equal(t, 2, s.Count())
	assert.Equal(t, []int{0, 3}, s.List())
	assert.Equal(t, 0, s.First())

	grown := s.With(5)
	assert.Equal(t, 3, grown.Count())
	assert.True(t, grown.Has(5))

	assert.True(t, s.Intersects(PatternAdjacent.Sides(3)))
	assert.False(t, s.Intersects(Side(1)|Side(2)))
	assert.Equal(t, -1, SideSet(0).First())
}

func TestPatternString(t *testing.T) {
	assert.Equal(t, "halfOpen", PatternHalfOpen.String())
	assert.Equal(t, "alternating", PatternAlternating.String())
	assert.Equal(t, "unknown", Pattern(99).String())
}
