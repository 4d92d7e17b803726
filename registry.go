package carousel

import "sync"

// DefaultID is the identifier used when a call site or container does
// not name one.
const DefaultID = "default"

// Registry owns the id-to-carousel mapping for a document. Entries are
// added during bootstrap and read thereafter.
type Registry struct {
	mu    sync.RWMutex
	items map[string]*Carousel
	order []string
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{items: make(map[string]*Carousel)}
}

// Register adds a carousel under id, replacing any previous entry.
func (r *Registry) Register(id string, c *Carousel) {
	if c == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.items[id]; !exists {
		r.order = append(r.order, id)
	}
	r.items[id] = c
}

// Lookup returns the carousel registered under id.
func (r *Registry) Lookup(id string) (*Carousel, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.items[id]
	return c, ok
}

// IDs returns the registered identifiers in registration order.
func (r *Registry) IDs() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// All returns the registered carousels in registration order.
func (r *Registry) All() []*Carousel {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*Carousel, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.items[id])
	}
	return out
}

// ChangeSlide steps the carousel registered under id by direction.
// A lookup miss is silently ignored.
func (r *Registry) ChangeSlide(direction int, id ...string) {
	if c, ok := r.Lookup(optionalID(id)); ok {
		c.change(direction)
	}
}

// CurrentSlide jumps the carousel registered under id to the 1-based
// slide n. A lookup miss or out-of-range n is silently ignored.
func (r *Registry) CurrentSlide(n int, id ...string) {
	if c, ok := r.Lookup(optionalID(id)); ok {
		c.GoTo(n - 1)
	}
}

// HandleKey fans a directional key out to every registered carousel.
// Instances with keyboard navigation disabled ignore it; with several
// keyboard-enabled instances each one reacts, matching the historical
// document-level listener behavior.
func (r *Registry) HandleKey(key string) bool {
	handled := false
	for _, c := range r.All() {
		if c.HandleKey(key) {
			handled = true
		}
	}
	return handled
}

// Destroy tears down every registered carousel.
func (r *Registry) Destroy() {
	for _, c := range r.All() {
		c.Destroy()
	}
}

func optionalID(id []string) string {
	if len(id) > 0 && id[0] != "" {
		return id[0]
	}
	return DefaultID
}

// defaultRegistry backs the package-level legacy functions, mirroring
// the process-wide mapping older call sites expect.
var defaultRegistry = NewRegistry()

// Default returns the process-wide registry used by Bootstrap and the
// legacy navigation functions.
func Default() *Registry { return defaultRegistry }

// ChangeSlide is the legacy relative-step entry point against the
// default registry.
func ChangeSlide(direction int, id ...string) {
	defaultRegistry.ChangeSlide(direction, id...)
}

// CurrentSlide is the legacy absolute entry point against the default
// registry. n is 1-based.
func CurrentSlide(n int, id ...string) {
	defaultRegistry.CurrentSlide(n, id...)
}
