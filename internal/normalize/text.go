package normalize

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Ellipsis marks a truncated snippet.
const Ellipsis = "…"

// Text composes accents and collapses every whitespace run into a single space.
func Text(value string) string {
	if value == "" {
		return ""
	}
	return strings.Join(strings.Fields(norm.NFC.String(value)), " ")
}

// Truncate cuts value to max characters and appends Ellipsis when it had to cut.
func Truncate(value string, max int) string {
	if max <= 0 {
		return value
	}
	runes := []rune(value)
	if len(runes) <= max {
		return value
	}
	return strings.TrimRightFunc(string(runes[:max]), unicode.IsSpace) + Ellipsis
}

// Len counts characters, not bytes.
func Len(value string) int {
	return len([]rune(value))
}

// Unique drops empty and repeated values, keeping the first occurrence.
func Unique(values ...[]string) []string {
	seen := map[string]struct{}{}
	out := []string{}
	for _, group := range values {
		for _, value := range group {
			if value == "" {
				continue
			}
			if _, ok := seen[value]; ok {
				continue
			}
			seen[value] = struct{}{}
			out = append(out, value)
		}
	}
	return out
}

// OrderedSet accumulates strings in insertion order without duplicates.
type OrderedSet struct {
	items []string
	seen  map[string]struct{}
}

func NewOrderedSet(values ...string) *OrderedSet {
	s := &OrderedSet{seen: map[string]struct{}{}}
	for _, value := range values {
		s.Add(value)
	}
	return s
}

func (s *OrderedSet) Add(value string) {
	if value == "" {
		return
	}
	if _, ok := s.seen[value]; ok {
		return
	}
	s.seen[value] = struct{}{}
	s.items = append(s.items, value)
}

func (s *OrderedSet) Len() int {
	return len(s.items)
}

// Values returns a copy, never nil.
func (s *OrderedSet) Values() []string {
	out := make([]string, len(s.items))
	copy(out, s.items)
	return out
}
