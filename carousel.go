package carousel

import (
	"context"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/zoobzio/capitan"
	"github.com/zoobzio/clockz"
	"golang.org/x/net/html"
)

// SwipeThreshold is the minimum horizontal travel, in cells, for a
// pointer gesture to count as a swipe.
const SwipeThreshold = 50

// Carousel cycles the active class across the slide and indicator
// children of a single container element. A failed construction leaves
// the instance inert: every method is a no-op.
type Carousel struct {
	id          string
	container   *html.Node
	opts        Options
	slides      []*html.Node
	indicators  []*html.Node
	prevControl *html.Node
	nextControl *html.Node
	clock       clockz.Clock
	onChange    func(index int)

	mu          sync.Mutex
	current     int
	total       int
	timer       clockz.Timer
	timerStop   chan struct{}
	touchStartX int
	touchEndX   int
	ready       bool
}

type instanceConfig struct {
	clock    clockz.Clock
	onChange func(int)
}

// Option configures a Carousel at construction.
type Option func(*instanceConfig)

// WithClock sets a custom clock for the auto-advance timer.
// Use this with clockz.FakeClock for deterministic tests.
func WithClock(clock clockz.Clock) Option {
	return func(c *instanceConfig) {
		c.clock = clock
	}
}

// WithOnChange registers a callback invoked with the new index after
// every transition. Front-ends use it to schedule a re-render.
func WithOnChange(fn func(index int)) Option {
	return func(c *instanceConfig) {
		c.onChange = fn
	}
}

// New constructs a carousel over the container element. Overrides are
// merged key-by-key onto DefaultOptions. Construction never fails hard:
// a nil container or a container with zero slides emits
// CarouselConstructFailed and returns an inert instance.
func New(container *html.Node, overrides Overrides, opts ...Option) *Carousel {
	cfg := instanceConfig{clock: clockz.RealClock}
	for _, opt := range opts {
		opt(&cfg)
	}

	c := &Carousel{
		id:       uuid.NewString(),
		clock:    cfg.clock,
		onChange: cfg.onChange,
	}

	if container == nil {
		capitan.Emit(context.Background(), CarouselConstructFailed,
			KeyCarouselID.Field(c.id),
			KeyReason.Field("container not resolved"),
		)
		return c
	}
	if v, ok := Attr(container, AttrCarouselID); ok && strings.TrimSpace(v) != "" {
		c.id = strings.TrimSpace(v)
	}

	c.container = container
	c.opts = overrides.apply(DefaultOptions()).normalize()
	c.slides = ElementsByClass(container, ClassSlide)
	if len(c.slides) == 0 {
		capitan.Emit(context.Background(), CarouselConstructFailed,
			KeyCarouselID.Field(c.id),
			KeyReason.Field("no slide elements"),
		)
		return c
	}
	c.indicators = ElementsByClass(container, ClassIndicator)
	if prev := ElementsByClass(container, ClassPrev); len(prev) > 0 {
		c.prevControl = prev[0]
	}
	if next := ElementsByClass(container, ClassNext); len(next) > 0 {
		c.nextControl = next[0]
	}

	c.mu.Lock()
	c.total = len(c.slides)
	c.current = c.opts.StartSlide
	c.ready = true
	c.showSlide(c.current)
	if c.opts.AutoAdvance {
		c.startAutoAdvanceLocked()
	}
	c.mu.Unlock()

	capitan.Emit(context.Background(), CarouselConstructed,
		KeyCarouselID.Field(c.id),
		KeySlides.Field(c.total),
		KeyInterval.Field(c.opts.AutoAdvanceTime),
	)
	return c
}

// ID returns the instance identifier: the container's data-carousel
// attribute when present, otherwise a generated one.
func (c *Carousel) ID() string { return c.id }

// Ready reports whether construction succeeded.
func (c *Carousel) Ready() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.ready
}

// Current returns the current slide index.
func (c *Carousel) Current() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.current
}

// Total returns the slide count fixed at construction.
func (c *Carousel) Total() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.total
}

// Container returns the root element the carousel owns.
func (c *Carousel) Container() *html.Node { return c.container }

// Slides returns the slide elements captured at construction.
func (c *Carousel) Slides() []*html.Node { return c.slides }

// Indicators returns the indicator elements captured at construction.
func (c *Carousel) Indicators() []*html.Node { return c.indicators }

// Controls returns the previous/next navigation elements, either of
// which may be nil when the container declares none. Front-ends bind
// them to Prev and Next.
func (c *Carousel) Controls() (prev, next *html.Node) {
	return c.prevControl, c.nextControl
}

// Options returns the resolved configuration snapshot.
func (c *Carousel) Options() Options { return c.opts }

// Next advances one slide forward.
func (c *Carousel) Next() { c.change(1) }

// Prev moves one slide backward.
func (c *Carousel) Prev() { c.change(-1) }

// GoTo jumps to an absolute slide index. Out-of-range input is
// silently ignored.
func (c *Carousel) GoTo(index int) {
	c.mu.Lock()
	if !c.ready || index < 0 || index >= c.total {
		c.mu.Unlock()
		return
	}
	c.current = index
	c.showSlide(index)
	if c.opts.AutoAdvance {
		c.startAutoAdvanceLocked()
	}
	c.mu.Unlock()
	c.emitChange(index)
}

func (c *Carousel) change(direction int) {
	c.mu.Lock()
	if !c.ready {
		c.mu.Unlock()
		return
	}
	c.changeLocked(direction)
	idx := c.current
	c.mu.Unlock()
	c.emitChange(idx)
}

// changeLocked applies a relative step, wrapping or clamping at the
// boundaries, then re-renders and re-arms the timer.
func (c *Carousel) changeLocked(direction int) {
	c.current += direction
	if c.opts.Loop {
		if c.current >= c.total {
			c.current = 0
		}
		if c.current < 0 {
			c.current = c.total - 1
		}
	} else {
		if c.current >= c.total {
			c.current = c.total - 1
		}
		if c.current < 0 {
			c.current = 0
		}
	}
	c.showSlide(c.current)
	if c.opts.AutoAdvance {
		c.startAutoAdvanceLocked()
	}
}

// showSlide clears the active token everywhere, then marks the slide
// at index and, when the indicator list covers it, the matching
// indicator. Out-of-range indices degrade to nothing shown.
func (c *Carousel) showSlide(index int) {
	for _, s := range c.slides {
		RemoveClass(s, ClassActive)
	}
	for _, d := range c.indicators {
		RemoveClass(d, ClassActive)
	}
	if index < 0 || index >= len(c.slides) {
		return
	}
	AddClass(c.slides[index], ClassActive)
	if index < len(c.indicators) {
		AddClass(c.indicators[index], ClassActive)
	}
}

// HandleKey reacts to a directional key name ("left" or "right").
// Returns whether the key was handled.
func (c *Carousel) HandleKey(key string) bool {
	c.mu.Lock()
	if !c.ready || !c.opts.EnableKeyboard {
		c.mu.Unlock()
		return false
	}
	switch key {
	case "left":
		c.changeLocked(-1)
	case "right":
		c.changeLocked(1)
	default:
		c.mu.Unlock()
		return false
	}
	idx := c.current
	c.mu.Unlock()
	c.emitChange(idx)
	return true
}

// TouchStart records the horizontal coordinate at gesture start.
func (c *Carousel) TouchStart(x int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.ready || !c.opts.EnableTouch {
		return
	}
	c.touchStartX = x
}

// TouchEnd records the gesture end coordinate and fires a transition
// when the horizontal travel exceeds SwipeThreshold. Sub-threshold
// gestures are ignored.
func (c *Carousel) TouchEnd(x int) {
	c.mu.Lock()
	if !c.ready || !c.opts.EnableTouch {
		c.mu.Unlock()
		return
	}
	c.touchEndX = x
	delta := c.touchStartX - c.touchEndX
	switch {
	case delta > SwipeThreshold:
		c.changeLocked(1)
	case delta < -SwipeThreshold:
		c.changeLocked(-1)
	default:
		c.mu.Unlock()
		return
	}
	idx := c.current
	c.mu.Unlock()
	c.emitChange(idx)
}

// Pause cancels the auto-advance timer, typically on pointer enter.
func (c *Carousel) Pause() {
	c.mu.Lock()
	had := c.timerStop != nil
	c.stopAutoAdvanceLocked()
	c.mu.Unlock()
	if had {
		capitan.Emit(context.Background(), AutoAdvanceStopped,
			KeyCarouselID.Field(c.id),
		)
	}
}

// Resume re-arms the auto-advance timer after a Pause. It does nothing
// unless auto-advance is configured on.
func (c *Carousel) Resume() {
	c.mu.Lock()
	if !c.ready || !c.opts.AutoAdvance {
		c.mu.Unlock()
		return
	}
	c.startAutoAdvanceLocked()
	interval := c.opts.AutoAdvanceTime
	c.mu.Unlock()
	capitan.Emit(context.Background(), AutoAdvanceStarted,
		KeyCarouselID.Field(c.id),
		KeyInterval.Field(interval),
	)
}

// Destroy cancels the auto-advance timer. Front-end input routing is
// torn down by the front-end itself, not here.
func (c *Carousel) Destroy() {
	c.mu.Lock()
	c.stopAutoAdvanceLocked()
	c.mu.Unlock()
	capitan.Emit(context.Background(), CarouselDestroyed,
		KeyCarouselID.Field(c.id),
	)
}

// startAutoAdvanceLocked arms the recurring timer, cancelling any
// previous one first so at most one is ever live.
func (c *Carousel) startAutoAdvanceLocked() {
	c.stopAutoAdvanceLocked()
	stop := make(chan struct{})
	t := c.clock.NewTimer(c.opts.AutoAdvanceTime)
	c.timer = t
	c.timerStop = stop
	go c.runTimer(t, stop)
}

func (c *Carousel) stopAutoAdvanceLocked() {
	if c.timerStop != nil {
		close(c.timerStop)
		c.timerStop = nil
		c.timer = nil
	}
}

// runTimer waits for one fire or a cancel. A tick re-arms under a
// fresh generation, so either way this goroutine is done.
func (c *Carousel) runTimer(t clockz.Timer, stop chan struct{}) {
	select {
	case <-stop:
		t.Stop()
	case <-t.C():
		c.tick(stop)
	}
}

// tick advances one slide if this timer generation is still current.
// A stale fire racing a manual navigation is dropped.
func (c *Carousel) tick(stop chan struct{}) {
	c.mu.Lock()
	if c.timerStop != stop {
		c.mu.Unlock()
		return
	}
	c.changeLocked(1)
	idx := c.current
	c.mu.Unlock()
	c.emitChange(idx)
}

func (c *Carousel) emitChange(index int) {
	capitan.Emit(context.Background(), SlideChanged,
		KeyCarouselID.Field(c.id),
		KeyIndex.Field(index),
		KeySlides.Field(c.total),
	)
	if c.onChange != nil {
		c.onChange(index)
	}
}
