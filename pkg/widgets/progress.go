package widgets

import (
	"math"

	"github.com/go-aura/aura/pkg/graphics"
	"github.com/go-aura/aura/pkg/theme"
)

// LinearProgress is a horizontal progress bar.
type LinearProgress struct {
	// Value is the completion fraction in [0, 1]. NaN renders indeterminate.
	Value float64
	// Color overrides the fill. Defaults to the theme fill if zero.
	Color graphics.Color
	// Height overrides the track height. Defaults to the theme height if zero.
	Height float64
}

// LinearProgressOf creates a determinate progress bar at the given fraction.
func LinearProgressOf(value float64) LinearProgress {
	return LinearProgress{Value: value}
}

// IndeterminateProgressOf creates an indeterminate progress bar.
func IndeterminateProgressOf() LinearProgress {
	return LinearProgress{Value: math.NaN()}
}

// ProgressStyle is the resolved visual state the host renders.
type ProgressStyle struct {
	TrackColor    graphics.Color
	FillColor     graphics.Color
	TrackHeight   float64
	StrokeWidth   float64
	Fraction      float64
	Indeterminate bool
}

// Resolve merges the bar's explicit properties with the theme defaults.
func (p LinearProgress) Resolve(t *theme.ThemeData) ProgressStyle {
	progressTheme := t.ProgressThemeOf()

	fill := p.Color
	if fill == 0 {
		fill = progressTheme.FillColor
	}
	height := p.Height
	if height == 0 {
		height = progressTheme.TrackHeight
	}

	return ProgressStyle{
		TrackColor:    progressTheme.TrackColor,
		FillColor:     fill,
		TrackHeight:   height,
		Fraction:      clampFraction(p.Value),
		Indeterminate: math.IsNaN(p.Value),
	}
}

// CircularProgress is a ring-shaped progress indicator.
type CircularProgress struct {
	// Value is the completion fraction in [0, 1]. NaN renders indeterminate.
	Value float64
	// Color overrides the fill. Defaults to the theme fill if zero.
	Color graphics.Color
	// StrokeWidth overrides the ring thickness. Defaults to the theme width if zero.
	StrokeWidth float64
}

// CircularProgressOf creates a determinate ring at the given fraction.
func CircularProgressOf(value float64) CircularProgress {
	return CircularProgress{Value: value}
}

// Resolve merges the ring's explicit properties with the theme defaults.
func (p CircularProgress) Resolve(t *theme.ThemeData) ProgressStyle {
	progressTheme := t.ProgressThemeOf()

	fill := p.Color
	if fill == 0 {
		fill = progressTheme.FillColor
	}
	stroke := p.StrokeWidth
	if stroke == 0 {
		stroke = progressTheme.StrokeWidth
	}

	return ProgressStyle{
		TrackColor:    progressTheme.TrackColor,
		FillColor:     fill,
		StrokeWidth:   stroke,
		Fraction:      clampFraction(p.Value),
		Indeterminate: math.IsNaN(p.Value),
	}
}

func clampFraction(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
