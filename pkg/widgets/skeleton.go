package widgets

import (
	"math"
	"time"

	"github.com/go-aura/aura/pkg/animation"
	"github.com/go-aura/aura/pkg/graphics"
	"github.com/go-aura/aura/pkg/theme"
)

// Skeleton is a loading placeholder block with a shimmering highlight.
type Skeleton struct {
	// Width and Height fix the placeholder extent. Zero lets the host size it.
	Width  float64
	Height float64
	// Circle renders the placeholder as a circle (for avatars).
	Circle bool
}

// SkeletonOf creates a placeholder block with the given extent.
func SkeletonOf(width, height float64) Skeleton {
	return Skeleton{Width: width, Height: height}
}

// SkeletonStyle is the resolved visual state the host renders.
type SkeletonStyle struct {
	BaseColor      graphics.Color
	HighlightColor graphics.Color
	BorderRadius   float64
	ShimmerPeriod  time.Duration
}

// Resolve reads the skeleton styling from the theme.
func (s Skeleton) Resolve(t *theme.ThemeData) SkeletonStyle {
	skeletonTheme := t.SkeletonThemeOf()
	radius := skeletonTheme.BorderRadius
	if s.Circle {
		radius = math.Max(s.Width, s.Height) / 2
	}
	return SkeletonStyle{
		BaseColor:      skeletonTheme.BaseColor,
		HighlightColor: skeletonTheme.HighlightColor,
		BorderRadius:   radius,
		ShimmerPeriod:  skeletonTheme.ShimmerPeriod,
	}
}

// ShimmerColor returns the interpolated color at elapsed time since the
// shimmer started. The highlight sweeps back and forth over the base color.
func (st SkeletonStyle) ShimmerColor(elapsed time.Duration) graphics.Color {
	if st.ShimmerPeriod <= 0 {
		return st.BaseColor
	}
	phase := math.Mod(elapsed.Seconds(), st.ShimmerPeriod.Seconds()) / st.ShimmerPeriod.Seconds()
	// Triangle wave so the sweep reverses instead of snapping back.
	t := 1 - math.Abs(2*phase-1)
	return animation.LerpColor(st.BaseColor, st.HighlightColor, t)
}
