package carousel

import "github.com/zoobzio/capitan"

// Lifecycle signals.
var (
	// CarouselConstructed is emitted when a carousel is wired successfully.
	CarouselConstructed = capitan.NewSignal(
		"carousel.constructed",
		"Carousel constructed and rendered",
	)

	// CarouselConstructFailed is emitted when construction aborts and the
	// instance is left inert.
	CarouselConstructFailed = capitan.NewSignal(
		"carousel.construct.failed",
		"Carousel construction aborted",
	)

	// CarouselDestroyed is emitted when Destroy cancels the timer.
	CarouselDestroyed = capitan.NewSignal(
		"carousel.destroyed",
		"Carousel destroyed",
	)

	// OptionsRejected is emitted when resolved options fail validation
	// and the offending fields are reset to their defaults.
	OptionsRejected = capitan.NewSignal(
		"carousel.options.rejected",
		"Options failed validation, offending fields reset",
	)
)

// Navigation signals.
var (
	// SlideChanged is emitted after any transition re-renders.
	SlideChanged = capitan.NewSignal(
		"carousel.slide.changed",
		"Active slide changed",
	)

	// AutoAdvanceStarted is emitted when auto-advance resumes after a
	// pause. The initial arming is covered by CarouselConstructed, and
	// per-navigation re-arms are implied by SlideChanged.
	AutoAdvanceStarted = capitan.NewSignal(
		"carousel.autoadvance.started",
		"Auto-advance resumed after pause",
	)

	// AutoAdvanceStopped is emitted when the recurring timer is cancelled.
	AutoAdvanceStopped = capitan.NewSignal(
		"carousel.autoadvance.stopped",
		"Auto-advance timer cancelled",
	)
)

// Field keys for carousel events.
var (
	// KeyCarouselID identifies the instance (container id or generated).
	KeyCarouselID = capitan.NewStringKey("carousel_id")

	// KeyReason is the failure reason when construction aborts.
	KeyReason = capitan.NewStringKey("reason")

	// KeyError is the validation error message when options are rejected.
	KeyError = capitan.NewStringKey("error")

	// KeyIndex is the active slide index after a transition.
	KeyIndex = capitan.NewIntKey("index")

	// KeySlides is the total slide count.
	KeySlides = capitan.NewIntKey("slides")

	// KeyInterval is the configured auto-advance interval.
	KeyInterval = capitan.NewDurationKey("interval")
)
