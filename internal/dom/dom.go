// Package dom is the read-only tree-query capability the detector runs on.
//
// The detector never touches *html.Node or goquery directly: it sees Node and
// Document, so any host able to answer selector queries can feed it.
package dom

import "strings"

// Node is one element of a document. Implementations must be comparable so
// callers can key maps by node identity.
type Node interface {
	Tag() string
	ID() string
	Attr(name string) (string, bool)
	Classes() []string
	// Text is the raw text content of the element and its descendants.
	Text() string
	// Find returns matching descendants in document order.
	Find(selector string) []Node
	// FindFirst returns the first matching descendant or nil.
	FindFirst(selector string) Node
	// Closest returns the element itself or its nearest ancestor matching
	// selector, or nil.
	Closest(selector string) Node
	// Parent returns the parent element, or nil at the top of the tree.
	Parent() Node
	// NextSibling returns the next element sibling or nil.
	NextSibling() Node
	Children() []Node
}

// Document is a rendered page.
type Document interface {
	// Body returns the body element, or nil when the page has none.
	Body() Node
	Find(selector string) []Node
	FindFirst(selector string) Node
}

// Snapshotter is implemented by documents whose content changes over time.
// Snapshot freezes the current state so one sample sees one consistent tree.
type Snapshotter interface {
	Snapshot() Document
}

// Snapshot returns a stable view of doc.
func Snapshot(doc Document) Document {
	if s, ok := doc.(Snapshotter); ok {
		if snap := s.Snapshot(); snap != nil {
			return snap
		}
	}
	return doc
}

// Class returns the lowercased class attribute, or "".
func Class(n Node) string {
	value, _ := n.Attr("class")
	return strings.ToLower(value)
}

// AttrOr returns the attribute value or fallback when it is missing.
func AttrOr(n Node, name, fallback string) string {
	if value, ok := n.Attr(name); ok {
		return value
	}
	return fallback
}
