package freework

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/JeyZu/FreelanceFinder/internal/dom"
	"github.com/JeyZu/FreelanceFinder/internal/models"
	"github.com/JeyZu/FreelanceFinder/internal/normalize"
)

const (
	MessageOutOfScope = "Page hors périmètre FreeWork"
	MessageDetail     = "Offre détectée (détail)"

	minListCards       = 2
	minSettledBodyText = 12
)

var loadingKeywords = []string{"chargement", "loading", "patientez", "veuillez patienter", "en cours"}

// loadingMarkers are placeholders a page renders while its content is on the way.
const loadingMarkers = `[data-testid*="skeleton" i], [class*="skeleton" i], [aria-busy="true"]`

// analysis is what one sample of the document yielded.
type analysis struct {
	pageType models.PageType
	offers   []models.Offer
	message  string
	reason   string
}

func (a analysis) ready() bool {
	return len(a.offers) > 0
}

func listMessage(count int) string {
	return fmt.Sprintf("Liste détectée : %d offres", count)
}

func analyse(doc dom.Document, pageURL *url.URL, legacyFallback bool) analysis {
	detail := extractDetail(doc, pageURL)
	if detail.offer != nil && detail.ready {
		return analysis{
			pageType: models.PageDetail,
			offers:   []models.Offer{*detail.offer},
			message:  MessageDetail,
		}
	}

	// One card alone is too easily a navigation widget to call the page a list.
	list := extractList(doc, pageURL)
	if len(list) >= minListCards {
		return analysis{
			pageType: models.PageList,
			offers:   list,
			message:  listMessage(len(list)),
		}
	}

	if detail.offer != nil {
		reason := detail.reason
		if reason == "" {
			reason = models.ReasonPartial
		}
		return analysis{pageType: models.PageDetail, reason: reason}
	}
	if len(list) == 1 {
		return analysis{pageType: models.PageList, reason: models.ReasonSingleCard}
	}
	return analysis{pageType: models.PageUnknown, reason: unknownReason(doc, legacyFallback)}
}

// unknownReason tells a page that rendered something unexpected from one that
// is still loading.
func unknownReason(doc dom.Document, legacy bool) string {
	if doc.FindFirst("h1, h2") != nil {
		return models.ReasonAtypical
	}
	if legacy {
		return models.ReasonDelayed
	}
	if doc.FindFirst(loadingMarkers) != nil {
		return models.ReasonDelayed
	}
	body := doc.Body()
	if body == nil {
		return models.ReasonDelayed
	}
	text := normalize.Text(body.Text())
	if normalize.Len(text) >= minSettledBodyText && !isLoading(text) {
		return models.ReasonAtypical
	}
	return models.ReasonDelayed
}

func isLoading(text string) bool {
	lower := strings.ToLower(text)
	for _, keyword := range loadingKeywords {
		if strings.Contains(lower, keyword) {
			return true
		}
	}
	return false
}
