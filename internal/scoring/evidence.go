package scoring

import (
	"strings"

	"github.com/JeyZu/FreelanceFinder/internal/dom"
	"github.com/JeyZu/FreelanceFinder/internal/models"
	"github.com/JeyZu/FreelanceFinder/internal/normalize"
)

const (
	maxEvidenceSnippet    = 220
	maxDescriptionExcerpt = 180
	maxContextExcerpt     = 160
	minEvidence           = 3
	maxEvidenceTags       = 3
)

// EvidenceParts are the raw texts an extractor matched, before normalization
// into the offer.
type EvidenceParts struct {
	RateText      string
	Location      string
	ContractType  string
	StartDate     string
	Duration      string
	Experience    string
	PostedAt      string
	RemoteSnippet string
	Description   string
	Tags          []string
}

type evidenceList []models.Evidence

func (l *evidenceList) push(label, snippet, selector string) {
	if snippet == "" {
		return
	}
	*l = append(*l, models.Evidence{
		Label:    label,
		Snippet:  normalize.Truncate(snippet, maxEvidenceSnippet),
		Selector: selector,
	})
}

func (l evidenceList) has(label string) bool {
	for _, item := range l {
		if item.Label == label {
			return true
		}
	}
	return false
}

// backfill adds a generic entry while fewer than minEvidence were found,
// unless label or the field it stands for (covered) is already listed.
func (l *evidenceList) backfill(label, covered, snippet string) {
	if len(*l) >= minEvidence || l.has(label) || l.has(covered) {
		return
	}
	l.push(label, snippet, "")
}

// BuildEvidence lists, in a fixed order, the snippets supporting offer. The
// title entry carries a locator for titleNode when it is known.
func BuildEvidence(offer models.Offer, titleNode dom.Node, parts EvidenceParts) []models.Evidence {
	list := evidenceList{}

	locator := ""
	if titleNode != nil {
		locator = dom.Locator(titleNode)
	}
	list.push(models.EvidenceTitle, offer.Title, locator)
	list.push(models.EvidenceRate, parts.RateText, "")
	list.push(models.EvidenceLocation, parts.Location, "")
	if offer.Rate != nil && parts.RateText == "" {
		list.push(models.EvidenceRate, offer.Rate.Raw, "")
	}
	list.push(models.EvidenceContract, parts.ContractType, "")
	list.push(models.EvidenceStartDate, parts.StartDate, "")
	list.push(models.EvidenceDuration, parts.Duration, "")
	list.push(models.EvidenceExperience, parts.Experience, "")
	list.push(models.EvidencePostedAt, parts.PostedAt, "")
	list.push(models.EvidenceRemote, parts.RemoteSnippet, "")
	list.push(models.EvidenceDescription, normalize.Truncate(parts.Description, maxDescriptionExcerpt), "")
	if len(parts.Tags) > 0 {
		tags := parts.Tags
		if len(tags) > maxEvidenceTags {
			tags = tags[:maxEvidenceTags]
		}
		list.push(models.EvidenceTags, strings.Join(tags, ", "), "")
	}

	list.backfill(models.EvidenceContext, models.EvidenceDescription, normalize.Truncate(offer.Description, maxContextExcerpt))
	if offer.Rate != nil {
		list.backfill(models.EvidencePricing, models.EvidenceRate, offer.Rate.Raw)
	}
	list.backfill(models.EvidenceGeo, models.EvidenceLocation, offer.Location)

	return []models.Evidence(list)
}
