package widgets

import (
	"time"

	"github.com/go-aura/aura/pkg/animation"
	"github.com/go-aura/aura/pkg/event"
	"github.com/go-aura/aura/pkg/graphics"
	"github.com/go-aura/aura/pkg/layout"
	"github.com/go-aura/aura/pkg/theme"
)

// AccordionSection is one collapsible header/body pair. The expanded state is
// an observable property; toggling it drives an animation controller from
// which the host reads the reveal fraction each frame.
type AccordionSection struct {
	// Title is the header text.
	Title string

	expanded   *event.Value[bool]
	controller *animation.AnimationController
}

// NewAccordionSection creates a collapsed section with the given title.
func NewAccordionSection(title string) *AccordionSection {
	s := &AccordionSection{
		Title:      title,
		expanded:   event.NewValue(false),
		controller: animation.NewAnimationController(200 * time.Millisecond),
	}
	s.controller.Curve = animation.EaseInOut
	s.expanded.Subscribe(func(change event.Change[bool]) {
		if change.New {
			s.controller.Forward()
		} else {
			s.controller.Reverse()
		}
	})
	return s
}

// Expanded exposes the expanded state property.
func (s *AccordionSection) Expanded() *event.Value[bool] {
	return s.expanded
}

// Toggle flips the expanded state.
func (s *AccordionSection) Toggle() {
	s.expanded.Set(!s.expanded.Get())
}

// RevealFraction returns the current body reveal in [0, 1]. The host scales
// the body height by this value each frame while the controller animates.
func (s *AccordionSection) RevealFraction() float64 {
	return s.controller.Value
}

// IsAnimating reports whether the reveal animation is running.
func (s *AccordionSection) IsAnimating() bool {
	return s.controller.IsAnimating()
}

// SetExpandDuration changes the reveal animation duration.
func (s *AccordionSection) SetExpandDuration(d time.Duration) {
	s.controller.Duration = d
}

// AddListener registers a per-frame callback while the reveal animates and
// returns an unsubscribe function.
func (s *AccordionSection) AddListener(fn func()) func() {
	return s.controller.AddListener(fn)
}

// Dispose releases the section's animation resources.
func (s *AccordionSection) Dispose() {
	s.controller.Dispose()
}

// Accordion groups sections and optionally keeps at most one expanded.
type Accordion struct {
	// Exclusive collapses the other sections when one expands.
	Exclusive bool

	sections    []*AccordionSection
	unsubscribe []func()
}

// NewAccordion creates an accordion over the given sections.
func NewAccordion(sections ...*AccordionSection) *Accordion {
	a := &Accordion{}
	a.SetSections(sections...)
	return a
}

// Sections returns the current ordered sections.
func (a *Accordion) Sections() []*AccordionSection {
	return a.sections
}

// SetSections replaces the accordion's sections and rewires exclusivity.
func (a *Accordion) SetSections(sections ...*AccordionSection) {
	for _, unsub := range a.unsubscribe {
		unsub()
	}
	a.unsubscribe = a.unsubscribe[:0]
	a.sections = sections
	for _, section := range sections {
		section := section
		a.unsubscribe = append(a.unsubscribe,
			section.Expanded().Subscribe(func(change event.Change[bool]) {
				if change.New && a.Exclusive {
					a.collapseOthers(section)
				}
			}),
		)
	}
}

func (a *Accordion) collapseOthers(keep *AccordionSection) {
	for _, section := range a.sections {
		if section != keep {
			section.Expanded().Set(false)
		}
	}
}

// AccordionStyle is the resolved visual state the host renders.
type AccordionStyle struct {
	HeaderColor     graphics.Color
	HeaderTextColor graphics.Color
	BodyColor       graphics.Color
	DividerColor    graphics.Color
	HeaderPadding   layout.EdgeInsets
	BodyPadding     layout.EdgeInsets
	ExpandDuration  time.Duration
}

// Resolve reads the accordion styling from the theme.
func (a *Accordion) Resolve(t *theme.ThemeData) AccordionStyle {
	accordionTheme := t.AccordionThemeOf()
	return AccordionStyle{
		HeaderColor:     accordionTheme.HeaderColor,
		HeaderTextColor: accordionTheme.HeaderTextColor,
		BodyColor:       accordionTheme.BodyColor,
		DividerColor:    accordionTheme.DividerColor,
		HeaderPadding:   accordionTheme.HeaderPadding,
		BodyPadding:     accordionTheme.BodyPadding,
		ExpandDuration:  accordionTheme.ExpandDuration,
	}
}
