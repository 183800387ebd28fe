package widgets

import (
	"fmt"

	"github.com/go-aura/aura/pkg/errors"
	"github.com/go-aura/aura/pkg/event"
	"github.com/go-aura/aura/pkg/graphics"
	"github.com/go-aura/aura/pkg/layout"
)

// RowItem adapts one host child view to the row layout contract. The host
// supplies the measurement and arrangement callbacks of the underlying view;
// the grow and wrap flags are observable properties so flipping them
// invalidates the owning panel's layout.
type RowItem struct {
	measure func(available graphics.Size) graphics.Size
	arrange func(rect graphics.Rect)
	desired graphics.Size
	grow    *event.Value[bool]
	wrap    *event.Value[bool]
}

// NewRowItem wraps a host view's measure and arrange callbacks as a row item.
func NewRowItem(measure func(graphics.Size) graphics.Size, arrange func(graphics.Rect)) *RowItem {
	return &RowItem{
		measure: measure,
		arrange: arrange,
		grow:    event.NewValue(false),
		wrap:    event.NewValue(false),
	}
}

// Measure invokes the host view's measurement callback and records the
// desired size for the arrange pass.
func (ri *RowItem) Measure(available graphics.Size) graphics.Size {
	if ri.measure != nil {
		ri.desired = ri.measure(available)
	}
	return ri.desired
}

// DesiredSize returns the size recorded by the last Measure call.
func (ri *RowItem) DesiredSize() graphics.Size {
	return ri.desired
}

// Arrange assigns the final rectangle to the host view.
func (ri *RowItem) Arrange(rect graphics.Rect) {
	if ri.arrange != nil {
		ri.arrange(rect)
	}
}

// Wrap reports whether the item renders on a line below the main row.
func (ri *RowItem) Wrap() bool {
	return ri.wrap.Get()
}

// Grow reports whether the item requests the leftover row width.
func (ri *RowItem) Grow() bool {
	return ri.grow.Get()
}

// GrowProperty exposes the grow flag for host bindings.
func (ri *RowItem) GrowProperty() *event.Value[bool] {
	return ri.grow
}

// WrapProperty exposes the wrap flag for host bindings.
func (ri *RowItem) WrapProperty() *event.Value[bool] {
	return ri.wrap
}

// ItemRow is the list-row panel: a horizontal row of items where one item
// grows to fill the leftover width and wrap-flagged items drop to secondary
// lines below.
//
// The panel owns observable Spacing and GrowColumnIndex properties plus the
// per-item grow/wrap flags; any change invalidates layout via the callback
// registered with OnInvalidate, and the host answers by re-running the
// Measure and Arrange passes. Both passes are pure delegations to
// [layout.RowFlow], so repeated invocations per frame are safe.
type ItemRow struct {
	spacing         *event.Value[float64]
	growColumnIndex *event.Value[int]
	items           []*RowItem
	unsubscribe     []func()
	invalidate      func()
	warnedMultiGrow bool // one-shot flag to avoid log spam
}

// NewItemRow creates an empty panel. The first column is the default grow
// target until a different index or an explicit per-item grow flag is set.
func NewItemRow() *ItemRow {
	p := &ItemRow{
		spacing:         event.NewValue(0.0),
		growColumnIndex: event.NewValue(0),
	}
	p.spacing.Subscribe(func(event.Change[float64]) { p.invalidateLayout() })
	p.growColumnIndex.Subscribe(func(event.Change[int]) { p.invalidateLayout() })
	return p
}

// Spacing exposes the row gap property.
func (p *ItemRow) Spacing() *event.Value[float64] {
	return p.spacing
}

// GrowColumnIndex exposes the default grow column property.
func (p *ItemRow) GrowColumnIndex() *event.Value[int] {
	return p.growColumnIndex
}

// Items returns the current ordered items.
func (p *ItemRow) Items() []*RowItem {
	return p.items
}

// SetItems replaces the panel's ordered items and rewires flag subscriptions.
func (p *ItemRow) SetItems(items ...*RowItem) {
	for _, unsub := range p.unsubscribe {
		unsub()
	}
	p.unsubscribe = p.unsubscribe[:0]
	p.items = items
	for _, item := range items {
		p.unsubscribe = append(p.unsubscribe,
			item.GrowProperty().Subscribe(func(event.Change[bool]) { p.invalidateLayout() }),
			item.WrapProperty().Subscribe(func(event.Change[bool]) { p.invalidateLayout() }),
		)
	}
	p.warnedMultiGrow = false
	p.invalidateLayout()
}

// OnInvalidate registers the host callback that schedules a new layout pass.
func (p *ItemRow) OnInvalidate(fn func()) {
	p.invalidate = fn
}

// Measure runs the measurement pass and returns the panel's desired size.
func (p *ItemRow) Measure(available graphics.Size) graphics.Size {
	p.warnOnMultipleGrow()
	return p.flow().Measure(p.children(), available)
}

// Arrange runs the arrangement pass, assigning every item its rectangle.
func (p *ItemRow) Arrange(finalSize graphics.Size) {
	p.flow().Arrange(p.children(), finalSize)
}

// GrowTarget reports the index of the item that receives leftover width,
// or -1 when no item grows.
func (p *ItemRow) GrowTarget() int {
	return p.flow().GrowTarget(p.children())
}

func (p *ItemRow) flow() layout.RowFlow {
	return layout.RowFlow{
		Spacing:         p.spacing.Get(),
		GrowColumnIndex: p.growColumnIndex.Get(),
	}
}

func (p *ItemRow) children() []layout.Child {
	children := make([]layout.Child, len(p.items))
	for i, item := range p.items {
		children[i] = item
	}
	return children
}

func (p *ItemRow) invalidateLayout() {
	if p.invalidate != nil {
		p.invalidate()
	}
}

// warnOnMultipleGrow reports once when several items claim the grow flag.
// Layout tolerates it (the first claim wins) but it usually signals a
// misconfigured row.
func (p *ItemRow) warnOnMultipleGrow() {
	if p.warnedMultiGrow {
		return
	}
	claims := 0
	for _, item := range p.items {
		if !item.Wrap() && item.Grow() {
			claims++
		}
	}
	if claims > 1 {
		errors.Report(&errors.AuraError{
			Op:   "widgets.ItemRow",
			Kind: errors.KindLayout,
			Err:  fmt.Errorf("%d items claim the grow flag; only the first takes effect", claims),
		})
		p.warnedMultiGrow = true
	}
}
