// Package carousel implements a slide carousel over an HTML element tree.
//
// A Carousel owns a container element and cycles an "active" class token
// across its slide and indicator children, driven by navigation calls,
// keyboard input, pointer swipes, or a recurring auto-advance timer.
// Bootstrap scans a parsed document for containers and builds one
// Carousel per container, registered by id so legacy call sites can
// navigate without holding a reference.
//
// The package is UI-agnostic: it mutates class attributes and emits
// capitan signals, leaving rendering to a front-end such as the tui
// subpackage.
package carousel
