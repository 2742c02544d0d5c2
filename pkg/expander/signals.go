package expander

import "github.com/zoobzio/capitan"

// Animation lifecycle signals.
var (
	// AnimationStarted is emitted when an expander starts animating.
	AnimationStarted = capitan.NewSignal(
		"expander.animation.started",
		"Expander animation started",
	)

	// AnimationEnded is emitted when an animation reaches its target.
	AnimationEnded = capitan.NewSignal(
		"expander.animation.ended",
		"Expander animation reached its target",
	)

	// AnimationCanceled is emitted when an animation is interrupted.
	AnimationCanceled = capitan.NewSignal(
		"expander.animation.canceled",
		"Expander animation canceled",
	)
)

// State signals.
var (
	// StateRestored is emitted when a saved snapshot is applied.
	StateRestored = capitan.NewSignal(
		"expander.state.restored",
		"Expander state restored from snapshot",
	)
)

// Field keys for expander events.
var (
	// KeyName is the configured name of the expander.
	KeyName = capitan.NewStringKey("name")

	// KeyKind is "frame" or "stack".
	KeyKind = capitan.NewStringKey("kind")

	// KeyPhase is the phase the animation runs in.
	KeyPhase = capitan.NewStringKey("phase")

	// KeyDuration is the configured animation duration.
	KeyDuration = capitan.NewDurationKey("duration")

	// KeyChildren is the number of children an animation resizes.
	KeyChildren = capitan.NewIntKey("children")

	// KeyExpanded is "true" when the restored state is expanded.
	KeyExpanded = capitan.NewStringKey("expanded")
)
