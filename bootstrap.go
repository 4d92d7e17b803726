package carousel

import (
	"strings"

	"golang.org/x/net/html"
)

// Bootstrap scans a parsed document once, builds one carousel per
// container, and registers each in reg.
//
// Pass 1 handles every container carrying the data-carousel attribute:
// the identifier comes from the attribute (empty falls back to
// DefaultID) and per-container overrides come from the data-autoplay,
// data-interval, data-loop and data-start attributes. Pass 2 registers
// one additional default-configured carousel under DefaultID for the
// first container with no identifier attribute, for call sites that
// predate identified containers.
func Bootstrap(doc *html.Node, reg *Registry, opts ...Option) {
	if doc == nil || reg == nil {
		return
	}
	containers := ElementsByClass(doc, ClassContainer)

	for _, el := range containers {
		v, ok := Attr(el, AttrCarouselID)
		if !ok {
			continue
		}
		id := strings.TrimSpace(v)
		if id == "" {
			id = DefaultID
		}
		reg.Register(id, New(el, OverridesFromAttrs(AttrMap(el)), opts...))
	}

	for _, el := range containers {
		if _, ok := Attr(el, AttrCarouselID); ok {
			continue
		}
		reg.Register(DefaultID, New(el, Overrides{}, opts...))
		break
	}
}
