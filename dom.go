package carousel

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
)

// Class tokens the carousel reads and writes. Styling driven by the
// active token is the renderer's concern.
const (
	ClassContainer = "carousel"
	ClassSlide     = "slide"
	ClassIndicator = "indicator"
	ClassPrev      = "prev"
	ClassNext      = "next"
	ClassActive    = "active"
)

// ParseDeck parses an HTML document containing carousel containers.
func ParseDeck(r io.Reader) (*html.Node, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse deck: %w", err)
	}
	return doc, nil
}

// ElementsByClass returns every element under root carrying the class
// token, in document order. Root itself is included when it matches.
func ElementsByClass(root *html.Node, class string) []*html.Node {
	var out []*html.Node
	walk(root, func(n *html.Node) {
		if HasClass(n, class) {
			out = append(out, n)
		}
	})
	return out
}

func walk(n *html.Node, fn func(*html.Node)) {
	if n == nil {
		return
	}
	if n.Type == html.ElementNode {
		fn(n)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walk(c, fn)
	}
}

// Attr returns the value of the named attribute and whether it is set.
func Attr(n *html.Node, name string) (string, bool) {
	if n == nil {
		return "", false
	}
	for _, a := range n.Attr {
		if a.Key == name {
			return a.Val, true
		}
	}
	return "", false
}

// AttrMap snapshots an element's attributes as a string-keyed bag.
func AttrMap(n *html.Node) map[string]string {
	if n == nil {
		return nil
	}
	out := make(map[string]string, len(n.Attr))
	for _, a := range n.Attr {
		out[a.Key] = a.Val
	}
	return out
}

// HasClass reports whether the element's class attribute contains the
// token.
func HasClass(n *html.Node, class string) bool {
	v, ok := Attr(n, "class")
	if !ok {
		return false
	}
	for _, t := range strings.Fields(v) {
		if t == class {
			return true
		}
	}
	return false
}

// AddClass appends the token to the element's class attribute if not
// already present.
func AddClass(n *html.Node, class string) {
	if n == nil || HasClass(n, class) {
		return
	}
	for i, a := range n.Attr {
		if a.Key == "class" {
			if a.Val == "" {
				n.Attr[i].Val = class
			} else {
				n.Attr[i].Val = a.Val + " " + class
			}
			return
		}
	}
	n.Attr = append(n.Attr, html.Attribute{Key: "class", Val: class})
}

// RemoveClass strips the token from the element's class attribute.
func RemoveClass(n *html.Node, class string) {
	if n == nil {
		return
	}
	for i, a := range n.Attr {
		if a.Key != "class" {
			continue
		}
		fields := strings.Fields(a.Val)
		kept := fields[:0]
		for _, t := range fields {
			if t != class {
				kept = append(kept, t)
			}
		}
		n.Attr[i].Val = strings.Join(kept, " ")
		return
	}
}

// Text returns the concatenated text content of the element, with
// per-text-node whitespace trimmed and nodes joined by newlines.
func Text(n *html.Node) string {
	if n == nil {
		return ""
	}
	var parts []string
	var visit func(*html.Node)
	visit = func(c *html.Node) {
		if c.Type == html.TextNode {
			if t := strings.TrimSpace(c.Data); t != "" {
				parts = append(parts, t)
			}
		}
		for k := c.FirstChild; k != nil; k = k.NextSibling {
			visit(k)
		}
	}
	visit(n)
	return strings.Join(parts, "\n")
}
