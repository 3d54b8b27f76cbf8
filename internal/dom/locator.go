package dom

import "strings"

const locatorDepth = 4

// Locator describes where n sits in the tree, e.g. "main > header.top > h1".
// The walk stops at the first ancestor carrying an id.
func Locator(n Node) string {
	var segments []string
	for current := n; current != nil && len(segments) < locatorDepth; current = current.Parent() {
		segment := current.Tag()
		if id := current.ID(); id != "" {
			segments = append(segments, segment+"#"+id)
			break
		}
		if classes := current.Classes(); len(classes) > 0 {
			if len(classes) > 2 {
				classes = classes[:2]
			}
			segment += "." + strings.Join(classes, ".")
		}
		segments = append(segments, segment)
	}
	for i, j := 0, len(segments)-1; i < j; i, j = i+1, j-1 {
		segments[i], segments[j] = segments[j], segments[i]
	}
	return strings.Join(segments, " > ")
}
