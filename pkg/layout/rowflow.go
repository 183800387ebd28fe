package layout

import (
	"math"

	"github.com/go-aura/aura/pkg/graphics"
)

// Child is a single panel member participating in row-flow layout.
//
// The host panel owns the child views; the engine only drives their
// measurement and arrangement callbacks. Measure must record the desired
// size so later DesiredSize calls return the same value, matching the
// two-pass measure/arrange contract of the host layout system.
type Child interface {
	// Measure asks the child for its desired size under the given
	// available space. A dimension of graphics.Unbounded means the child
	// may size freely along that axis.
	Measure(available graphics.Size) graphics.Size

	// DesiredSize returns the size recorded by the last Measure call.
	DesiredSize() graphics.Size

	// Arrange assigns the child's final rectangle.
	Arrange(rect graphics.Rect)

	// Wrap reports whether the child renders on a secondary line below
	// the main row instead of joining the horizontal flow.
	Wrap() bool

	// Grow reports whether the child requests the leftover row width.
	Grow() bool
}

// RowFlow lays out a horizontal row of children where one child may grow to
// fill leftover width while wrap-flagged children drop to lines below.
//
// RowFlow is a pure value: Measure and Arrange re-derive the main-row/wrapped
// partition and the grow target from the children on every call, so repeated
// passes over the same inputs are reproducible with no state carried between
// calls. The host layout system may invoke either pass multiple times per
// frame.
//
// # Grow target
//
// The first child in the main row with an explicit grow flag wins. When no
// child asks to grow, the main-row child at GrowColumnIndex (if in range) is
// the fallback. Later grow claims are ignored rather than rejected.
type RowFlow struct {
	// Spacing is the gap between adjacent main-row children and between
	// wrapped lines. Negative values are treated as zero.
	Spacing float64

	// GrowColumnIndex is the default main-row position that receives
	// leftover width when no child sets an explicit grow flag. An
	// out-of-range index disables the fallback.
	GrowColumnIndex int
}

// Measure computes the total size of the row plus any wrapped lines.
//
// Non-grow main-row children measure against unconstrained width so they
// report natural sizes; the grow child measures against whatever width
// remains after the fixed children and inter-item spacing are subtracted.
// Wrapped children measure against the full available width with
// unconstrained height.
func (r RowFlow) Measure(children []Child, available graphics.Size) graphics.Size {
	spacing := r.spacing()
	mainRow, wrapped := partition(children)
	growIndex := r.growTarget(mainRow)

	fixedWidth := 0.0
	mainHeight := 0.0
	for i, child := range mainRow {
		if i == growIndex {
			continue
		}
		size := child.Measure(graphics.Size{Width: graphics.Unbounded, Height: available.Height})
		fixedWidth += size.Width
		mainHeight = math.Max(mainHeight, size.Height)
	}
	if n := len(mainRow); n > 1 {
		fixedWidth += spacing * float64(n-1)
	}

	if growIndex >= 0 {
		remaining := math.Max(0, available.Width-fixedWidth)
		size := mainRow[growIndex].Measure(graphics.Size{Width: remaining, Height: available.Height})
		mainHeight = math.Max(mainHeight, size.Height)
	}

	// Spacing accumulates once per wrapped line, including before the
	// first: each line contributes height + spacing to the total.
	wrapHeight := 0.0
	for _, child := range wrapped {
		size := child.Measure(graphics.Size{Width: available.Width, Height: graphics.Unbounded})
		wrapHeight += size.Height + spacing
	}

	width := available.Width
	if width >= graphics.Unbounded {
		width = 0
		for i, child := range mainRow {
			if i > 0 {
				width += spacing
			}
			width += child.DesiredSize().Width
		}
	}

	return graphics.Size{Width: width, Height: mainHeight + wrapHeight}
}

// Arrange assigns final rectangles to every child within finalSize.
//
// The partition and grow target are re-derived exactly as in Measure.
// Main-row children are placed left to right, each vertically centered
// within the tallest main-row child; the grow child's width is the leftover
// width after all fixed children and spacing. Wrapped children stack below
// the main row at full width.
func (r RowFlow) Arrange(children []Child, finalSize graphics.Size) {
	spacing := r.spacing()
	mainRow, wrapped := partition(children)
	growIndex := r.growTarget(mainRow)

	fixedWidth := 0.0
	mainHeight := 0.0
	for i, child := range mainRow {
		size := child.DesiredSize()
		mainHeight = math.Max(mainHeight, size.Height)
		if i == growIndex {
			continue
		}
		fixedWidth += size.Width
	}
	if n := len(mainRow); n > 1 {
		fixedWidth += spacing * float64(n-1)
	}
	remaining := math.Max(0, finalSize.Width-fixedWidth)

	x := 0.0
	for i, child := range mainRow {
		size := child.DesiredSize()
		width := size.Width
		if i == growIndex {
			width = remaining
		}
		y := (mainHeight - size.Height) / 2
		child.Arrange(graphics.RectFromLTWH(x, y, width, size.Height))
		x += width + spacing
	}

	y := mainHeight + spacing
	for _, child := range wrapped {
		size := child.DesiredSize()
		child.Arrange(graphics.RectFromLTWH(0, y, finalSize.Width, size.Height))
		y += size.Height + spacing
	}
}

// GrowTarget reports which child receives leftover width, as an index into
// the original children slice, or -1 when no child grows. Hosts use it to
// surface the effective grow column for inspection.
func (r RowFlow) GrowTarget(children []Child) int {
	mainRow, _ := partition(children)
	growIndex := r.growTarget(mainRow)
	if growIndex < 0 {
		return -1
	}
	target := mainRow[growIndex]
	for i, child := range children {
		if child == target {
			return i
		}
	}
	return -1
}

// growTarget returns the index into mainRow of the effective grow child,
// or -1 when none applies. First explicit grow flag wins; GrowColumnIndex
// is the positional fallback.
func (r RowFlow) growTarget(mainRow []Child) int {
	for i, child := range mainRow {
		if child.Grow() {
			return i
		}
	}
	if r.GrowColumnIndex >= 0 && r.GrowColumnIndex < len(mainRow) {
		return r.GrowColumnIndex
	}
	return -1
}

func (r RowFlow) spacing() float64 {
	return math.Max(0, r.Spacing)
}

// partition splits children into the ordered main row and the ordered
// wrapped sequence. The split is total and disjoint, preserving index order
// within each side.
func partition(children []Child) (mainRow, wrapped []Child) {
	for _, child := range children {
		if child.Wrap() {
			wrapped = append(wrapped, child)
		} else {
			mainRow = append(mainRow, child)
		}
	}
	return mainRow, wrapped
}
