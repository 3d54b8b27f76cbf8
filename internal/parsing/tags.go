package parsing

import (
	"strings"

	"github.com/JeyZu/FreelanceFinder/internal/dom"
	"github.com/JeyZu/FreelanceFinder/internal/normalize"
)

const maxTagLength = 40

var tagSelectors = []string{".tag", "[class*='tag']", "[class*='skill']", "[class*='stack']", "[data-tag]"}

// CollectTags returns the short labels rendered as tags under root. Tag
// containers and the bare word "tag" are skipped.
func CollectTags(root dom.Node) []string {
	if root == nil {
		return []string{}
	}
	tags := normalize.NewOrderedSet()
	for _, selector := range tagSelectors {
		for _, element := range root.Find(selector) {
			text := normalize.Text(element.Text())
			if text == "" || normalize.Len(text) > maxTagLength {
				continue
			}
			if isTagContainer(element) || strings.EqualFold(text, "tag") {
				continue
			}
			tags.Add(text)
		}
	}
	return tags.Values()
}

func isTagContainer(element dom.Node) bool {
	for _, class := range strings.Fields(dom.Class(element)) {
		switch class {
		case "tags", "tags-list", "tag-list":
			return true
		}
	}
	for _, child := range element.Children() {
		if strings.Contains(dom.Class(child), "tag") {
			return true
		}
	}
	return false
}

func lowerAttr(n dom.Node, name string) string {
	return strings.ToLower(dom.AttrOr(n, name, ""))
}
