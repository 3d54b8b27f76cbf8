// Package parsing holds the field heuristics shared by the detail and list
// extractors.
package parsing

import (
	"regexp"
	"strings"

	"github.com/JeyZu/FreelanceFinder/internal/dom"
	"github.com/JeyZu/FreelanceFinder/internal/normalize"
)

const maxMetaLength = 140

var metaSelectors = []string{".meta", "[class*='meta']", "[class*='info']", "header", "ul", "dl"}

var (
	startDateLabel    = regexp.MustCompile(`(?i)(d[eé]marrage|d[eé]but|start)`)
	durationLabel     = regexp.MustCompile(`(?i)dur[eé]e`)
	experiencePattern = regexp.MustCompile(`(?i)exp[eé]rience|junior|senior|\b\d+\s*(ans|years)`)
	postedAtPattern   = regexp.MustCompile(`(?i)publi[eé]e?|post[eé]e?|il y a`)
	labelSeparators   = regexp.MustCompile(`[:-]`)
)

// CollectMetaTexts gathers the short texts of root that usually carry offer
// metadata, in document order and without duplicates.
func CollectMetaTexts(root dom.Node) []string {
	if root == nil {
		return []string{}
	}
	collected := normalize.NewOrderedSet()
	add := func(n dom.Node) {
		text := normalize.Text(n.Text())
		if text == "" || normalize.Len(text) > maxMetaLength {
			return
		}
		collected.Add(text)
	}

	for _, selector := range metaSelectors {
		for _, scope := range root.Find(selector) {
			for _, child := range scope.Find("span, div, li, dt, dd, p") {
				add(child)
			}
		}
	}
	for _, inline := range root.Find("span, li, p") {
		add(inline)
	}
	return collected.Values()
}

// FindByLabel returns the value of the first text matching label, e.g.
// "6 mois" for "Durée : 6 mois".
func FindByLabel(texts []string, label *regexp.Regexp) string {
	for _, text := range texts {
		loc := label.FindStringIndex(text)
		if loc == nil {
			continue
		}
		if parts := labelSeparators.Split(text, -1); len(parts) > 1 {
			return normalize.Text(strings.Join(parts[1:], ":"))
		}
		if after := strings.TrimSpace(text[loc[1]:]); after != "" {
			return normalize.Text(after)
		}
		return text
	}
	return ""
}

func FindStartDate(texts []string) string {
	return FindByLabel(texts, startDateLabel)
}

func FindDuration(texts []string) string {
	return FindByLabel(texts, durationLabel)
}

// FindExperience returns the whole first text mentioning a seniority.
func FindExperience(texts []string) string {
	return firstMatch(texts, experiencePattern)
}

// FindPostedAt returns the whole first text mentioning a publication.
func FindPostedAt(texts []string) string {
	return firstMatch(texts, postedAtPattern)
}

func firstMatch(texts []string, pattern *regexp.Regexp) string {
	for _, text := range texts {
		if pattern.MatchString(text) {
			return text
		}
	}
	return ""
}
