package widgets

import (
	"github.com/go-aura/aura/pkg/graphics"
	"github.com/go-aura/aura/pkg/theme"
)

// TimelineEntry is one event on a timeline.
type TimelineEntry struct {
	// Title is the entry headline.
	Title string
	// Detail is the optional body text.
	Detail string
	// Active highlights the entry's dot in the accent color.
	Active bool
}

// Timeline is a vertical list of entries connected by a line.
type Timeline struct {
	// Entries are the ordered timeline events, newest first or last as the
	// caller prefers.
	Entries []TimelineEntry
}

// TimelineOf creates a timeline over the given entries.
func TimelineOf(entries ...TimelineEntry) Timeline {
	return Timeline{Entries: entries}
}

// TimelineStyle is the resolved visual state the host renders.
type TimelineStyle struct {
	LineColor   graphics.Color
	DotColor    graphics.Color
	ActiveColor graphics.Color
	LineWidth   float64
	DotSize     float64
	ItemSpacing float64
}

// Resolve reads the timeline styling from the theme.
func (tl Timeline) Resolve(t *theme.ThemeData) TimelineStyle {
	timelineTheme := t.TimelineThemeOf()
	return TimelineStyle{
		LineColor:   timelineTheme.LineColor,
		DotColor:    timelineTheme.DotColor,
		ActiveColor: timelineTheme.ActiveColor,
		LineWidth:   timelineTheme.LineWidth,
		DotSize:     timelineTheme.DotSize,
		ItemSpacing: timelineTheme.ItemSpacing,
	}
}

// DotColorFor returns the dot color for an entry.
func (st TimelineStyle) DotColorFor(entry TimelineEntry) graphics.Color {
	if entry.Active {
		return st.ActiveColor
	}
	return st.DotColor
}
