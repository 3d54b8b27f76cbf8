package export

import (
	"fmt"
	"strings"

	"github.com/JeyZu/FreelanceFinder/internal/models"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	listPreviewLimit  = 3
	stackPreviewLimit = 6
)

// Report kinds, the way a reader would describe the page.
const (
	KindDetail     = "detail"
	KindList       = "list"
	KindPending    = "pending"
	KindNone       = "none"
	KindOutOfScope = "out_of_scope"
)

// SummaryItem is one labelled line of a human summary.
type SummaryItem struct {
	Label string `json:"label" yaml:"label"`
	Value string `json:"value" yaml:"value"`
}

// Report is the human reading of an outcome.
type Report struct {
	Kind     string        `json:"kind" yaml:"kind"`
	Reason   string        `json:"reason,omitempty" yaml:"reason,omitempty"`
	Summary  []SummaryItem `json:"summary,omitempty" yaml:"summary,omitempty"`
	Evidence []string      `json:"evidence" yaml:"evidence"`
}

// BuildReport maps an outcome to what should be shown to a person.
func BuildReport(outcome models.Outcome, pageURL string) Report {
	reason := ""
	if outcome.Diagnostics != nil {
		reason = outcome.Diagnostics.Reason
	}

	switch outcome.Status {
	case models.StatusOutOfScope:
		return Report{Kind: KindOutOfScope, Evidence: []string{"URL analysée : " + pageURL}}
	case models.StatusOK:
		kind := KindList
		if outcome.PageType == models.PageDetail {
			kind = KindDetail
		}
		return Report{
			Kind:     kind,
			Summary:  Summarize(outcome.PageType, outcome.Offers),
			Evidence: FlattenEvidence(outcome.Offers),
		}
	case models.StatusContentDelayed:
		if reason == "" {
			reason = models.ReasonDelayed
		}
		return Report{
			Kind:     KindPending,
			Reason:   reason,
			Evidence: []string{"Contenu encore en chargement détecté par le moteur FreeWork."},
		}
	}

	report := Report{Kind: KindNone, Reason: reason, Evidence: []string{}}
	if reason != "" {
		report.Evidence = append(report.Evidence, fmt.Sprintf("Motif : %s.", reason))
	}
	return report
}

// Summarize describes a detail offer field by field, or previews the first
// offers of a list.
func Summarize(pageType models.PageType, offers []models.Offer) []SummaryItem {
	if pageType == models.PageDetail && len(offers) > 0 {
		return detailSummary(offers[0])
	}
	if len(offers) > listPreviewLimit {
		offers = offers[:listPreviewLimit]
	}
	items := make([]SummaryItem, 0, len(offers))
	for i, offer := range offers {
		parts := nonEmpty(offer.Title, formatLocation(offer), rateRaw(offer))
		value := strings.Join(parts, " — ")
		if value == "" {
			value = "Offre détectée"
		}
		items = append(items, SummaryItem{Label: fmt.Sprintf("%d.", i+1), Value: value})
	}
	return items
}

func detailSummary(offer models.Offer) []SummaryItem {
	var items []SummaryItem
	add := func(label, value string) {
		if value != "" {
			items = append(items, SummaryItem{Label: label, Value: value})
		}
	}
	add("Titre", offer.Title)
	add("Lieu / Remote", formatLocation(offer))
	add("Contrat", offer.ContractType)
	add("Taux", rateRaw(offer))
	stack := offer.Stack
	if len(stack) > stackPreviewLimit {
		stack = stack[:stackPreviewLimit]
	}
	add("Stack", strings.Join(stack, " · "))
	return items
}

func formatLocation(offer models.Offer) string {
	var parts []string
	if offer.Location != "" {
		parts = append(parts, offer.Location)
	}
	if offer.IsRemote && !strings.Contains(strings.ToLower(offer.Location), "remote") {
		policy := offer.RemotePolicy
		if policy == "" {
			policy = "Remote"
		}
		parts = append(parts, policy)
	}
	return strings.Join(parts, " — ")
}

func rateRaw(offer models.Offer) string {
	if offer.Rate == nil {
		return ""
	}
	return offer.Rate.Raw
}

// FlattenEvidence renders every evidence entry as "Label — snippet", numbered
// by offer when there are several.
func FlattenEvidence(offers []models.Offer) []string {
	lines := []string{}
	caser := cases.Title(language.Und, cases.NoLower)
	for i, offer := range offers {
		prefix := ""
		if len(offers) > 1 {
			prefix = fmt.Sprintf("%d. ", i+1)
		}
		for _, entry := range offer.Evidence {
			lines = append(lines, fmt.Sprintf("%s%s — %s", prefix, caser.String(entry.Label), entry.Snippet))
		}
	}
	return lines
}

func nonEmpty(values ...string) []string {
	out := make([]string, 0, len(values))
	for _, value := range values {
		if value != "" {
			out = append(out, value)
		}
	}
	return out
}
