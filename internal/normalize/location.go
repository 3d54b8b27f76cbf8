package normalize

import (
	"regexp"
	"strings"
)

var locationKeywords = []string{
	"paris",
	"lyon",
	"marseille",
	"toulouse",
	"bordeaux",
	"nantes",
	"lille",
	"rennes",
	"grenoble",
	"strasbourg",
	"montpellier",
	"nice",
	"sophia",
	"niort",
	"brest",
	"dijon",
	"tours",
	"angers",
	"rouen",
	"saint",
	"télétravail",
	"remote",
	"hybride",
	"france",
	"idf",
}

var (
	scheduleVocabulary = regexp.MustCompile(`(?i)dur[eé]e|d[eé]marrage|exp[eé]rience`)
	contractVocabulary = regexp.MustCompile(`freelance|cdi|cdd|stage|alternance|portage`)
	postalCodePattern  = regexp.MustCompile(`\d{5}`)
	latinLetterPattern = regexp.MustCompile(`[A-Za-z]`)
	segmentSeparators  = regexp.MustCompile(`[,•-]`)
	placeNamePattern   = regexp.MustCompile(`^[a-zéèêàùâûç\s]+$`)
)

// LocationOptions tunes FindLocation.
type LocationOptions struct {
	// IncludeRemote accepts remote snippets such as "Full remote" as locations.
	IncludeRemote bool
}

// FindLocation returns the first text that reads like a place.
func FindLocation(texts []string, opts LocationOptions) string {
	for _, text := range texts {
		if text == "" {
			continue
		}
		if !opts.IncludeRemote && IsRemoteText(text) {
			continue
		}
		if LooksLikeRate(text) || scheduleVocabulary.MatchString(text) {
			continue
		}
		lower := strings.ToLower(text)
		if contractVocabulary.MatchString(lower) {
			continue
		}
		if containsAny(lower, locationKeywords) {
			return text
		}
		if postalCodePattern.MatchString(text) && latinLetterPattern.MatchString(text) {
			return text
		}
		if hasPlaceSegment(lower) {
			return text
		}
	}
	return ""
}

// hasPlaceSegment accepts short alphabetic segments like "la défense".
func hasPlaceSegment(lower string) bool {
	for _, part := range segmentSeparators.Split(lower, -1) {
		word := strings.TrimSpace(part)
		if Len(word) < 3 || !placeNamePattern.MatchString(word) {
			continue
		}
		if len(strings.Split(word, " ")) > 3 {
			continue
		}
		if LooksLikeRate(word) || scheduleVocabulary.MatchString(word) {
			continue
		}
		return true
	}
	return false
}

func containsAny(value string, keywords []string) bool {
	for _, keyword := range keywords {
		if strings.Contains(value, keyword) {
			return true
		}
	}
	return false
}
