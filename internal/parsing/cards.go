package parsing

import (
	"regexp"
	"strings"

	"github.com/JeyZu/FreelanceFinder/internal/dom"
	"github.com/JeyZu/FreelanceFinder/internal/normalize"
)

const MaxSnippetLength = 320

var segmentSeparators = regexp.MustCompile(`\n|•|\||,|;`)

// SplitSegments cuts a card text on the separators listing pages use between
// fields ("Paris • 550 € / jour | Freelance").
func SplitSegments(text string) []string {
	segments := []string{}
	for _, part := range segmentSeparators.Split(text, -1) {
		if segment := normalize.Text(part); segment != "" {
			segments = append(segments, segment)
		}
	}
	return segments
}

// CardSnippet is the card text without its title, cut to MaxSnippetLength.
func CardSnippet(card dom.Node, title string) string {
	text := normalize.Text(card.Text())
	if text == "" {
		return ""
	}
	snippet := text
	if title != "" {
		snippet = strings.TrimSpace(strings.Replace(text, title, "", 1))
	}
	if snippet == "" {
		snippet = text
	}
	return normalize.Truncate(snippet, MaxSnippetLength)
}
