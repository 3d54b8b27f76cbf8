package parsing

import (
	"regexp"

	"github.com/JeyZu/FreelanceFinder/internal/dom"
	"github.com/JeyZu/FreelanceFinder/internal/normalize"
)

const (
	MaxDescriptionLength = 900

	minCandidateLength = 80
	minFallbackLength  = 120
	sectionBonus       = 250
	paragraphBonus     = 50
)

var descriptionSection = regexp.MustCompile(`description|mission|detail|content|job-body|presentation`)

// ExtractDescription picks the block of container most likely to hold the
// offer body. Longer blocks win; blocks named like a description section or
// holding paragraphs get a bonus. It returns "" when nothing is long enough.
func ExtractDescription(container dom.Node) string {
	if container == nil {
		return ""
	}

	best, bestScore := "", 0
	for _, candidate := range container.Find("article, section, div") {
		text := normalize.Text(candidate.Text())
		length := normalize.Len(text)
		if length < minCandidateLength {
			continue
		}

		score := length
		section := dom.Class(candidate) + lowerAttr(candidate, "data-section")
		if descriptionSection.MatchString(section) {
			score += sectionBonus
		}
		if candidate.FindFirst("p") != nil {
			score += paragraphBonus
		}
		if score > bestScore {
			best, bestScore = text, score
		}
	}

	if best == "" {
		if fallback := normalize.Text(container.Text()); normalize.Len(fallback) >= minFallbackLength {
			best = fallback
		}
	}
	return normalize.Truncate(best, MaxDescriptionLength)
}
