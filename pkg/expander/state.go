package expander

import (
	"context"
	"strconv"

	"github.com/zoobzio/capitan"
)

// FrameState is the restorable snapshot of a Frame.
type FrameState struct {
	Expansion float64 `yaml:"expansion"`
}

// StackState is the restorable snapshot of a Stack.
type StackState struct {
	Expanded bool `yaml:"expanded"`
}

// SaveState captures the resting expansion. An idle frame stores its exact
// expansion, so manual mid-range values survive. A frame caught mid-animation
// stores the value the animation is heading to (1 or 0), not the partial
// expansion it has reached, so a restore lands on a terminal state.
func (f *Frame) SaveState() FrameState {
	if f.phase == Idle {
		return FrameState{Expansion: f.expansion}
	}
	if f.IsExpanded() {
		return FrameState{Expansion: 1}
	}
	return FrameState{Expansion: 0}
}

// RestoreState discards any in-flight animation and applies a snapshot. The
// listener is not notified.
func (f *Frame) RestoreState(state FrameState) {
	f.run.Cancel()
	f.run = nil
	f.phase = Idle
	f.expansion = state.Expansion
	if f.expansion != 0 {
		f.host.SetVisible(true)
	}
	f.host.RequestRelayout()
	capitan.Emit(context.Background(), StateRestored,
		KeyName.Field(f.name),
		KeyKind.Field("frame"),
		KeyExpanded.Field(strconv.FormatBool(f.IsExpanded())),
	)
}

// SaveState captures the expanded flag.
func (s *Stack) SaveState() StackState {
	return StackState{Expanded: s.expanded}
}

// RestoreState discards any in-flight animation, applies the flag and puts
// every tracked child in its resting state. The listener is not notified.
func (s *Stack) RestoreState(state StackState) {
	s.run.Cancel()
	s.expanded = state.Expanded
	s.Settle()
	capitan.Emit(context.Background(), StateRestored,
		KeyName.Field(s.name),
		KeyKind.Field("stack"),
		KeyExpanded.Field(strconv.FormatBool(s.expanded)),
	)
}

// Settle discards any in-flight animation and puts every tracked child in
// the resting state of the current flag without notifying the listener.
func (s *Stack) Settle() {
	s.run.Cancel()
	s.run = nil
	s.phase = Idle
	s.progress = 0
	if s.expanded {
		s.progress = 1
	}
	for _, e := range s.entries {
		s.settle(e)
	}
	s.host.RequestRelayout()
}
