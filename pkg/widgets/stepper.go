package widgets

import (
	"github.com/go-aura/aura/pkg/event"
	"github.com/go-aura/aura/pkg/graphics"
	"github.com/go-aura/aura/pkg/theme"
)

// StepState is the visual state of one stepper step.
type StepState int

const (
	StepInactive StepState = iota
	StepActive
	StepCompleted
)

// Stepper tracks progress through an ordered sequence of labeled steps.
// The current step is an observable property; steps before it render
// completed and steps after it inactive.
type Stepper struct {
	labels  []string
	current *event.Value[int]
}

// NewStepper creates a stepper over the given step labels, starting at step 0.
func NewStepper(labels ...string) *Stepper {
	return &Stepper{
		labels:  labels,
		current: event.NewValue(0),
	}
}

// Labels returns the ordered step labels.
func (s *Stepper) Labels() []string {
	return s.labels
}

// Current exposes the current step property.
func (s *Stepper) Current() *event.Value[int] {
	return s.current
}

// Advance moves to the next step, clamping at the last step.
func (s *Stepper) Advance() {
	if cur := s.current.Get(); cur < len(s.labels)-1 {
		s.current.Set(cur + 1)
	}
}

// Back moves to the previous step, clamping at the first step.
func (s *Stepper) Back() {
	if cur := s.current.Get(); cur > 0 {
		s.current.Set(cur - 1)
	}
}

// StateOf returns the visual state of the step at the given index.
func (s *Stepper) StateOf(index int) StepState {
	switch cur := s.current.Get(); {
	case index < cur:
		return StepCompleted
	case index == cur:
		return StepActive
	default:
		return StepInactive
	}
}

// StepperStyle is the resolved visual state the host renders.
type StepperStyle struct {
	ActiveColor    graphics.Color
	CompletedColor graphics.Color
	InactiveColor  graphics.Color
	LabelColor     graphics.Color
	ConnectorWidth float64
	MarkerSize     float64
}

// Resolve reads the stepper styling from the theme.
func (s *Stepper) Resolve(t *theme.ThemeData) StepperStyle {
	stepperTheme := t.StepperThemeOf()
	return StepperStyle{
		ActiveColor:    stepperTheme.ActiveColor,
		CompletedColor: stepperTheme.CompletedColor,
		InactiveColor:  stepperTheme.InactiveColor,
		LabelColor:     stepperTheme.LabelColor,
		ConnectorWidth: stepperTheme.ConnectorWidth,
		MarkerSize:     stepperTheme.MarkerSize,
	}
}

// MarkerColor returns the marker color for a step in the given state.
func (st StepperStyle) MarkerColor(state StepState) graphics.Color {
	switch state {
	case StepActive:
		return st.ActiveColor
	case StepCompleted:
		return st.CompletedColor
	default:
		return st.InactiveColor
	}
}
