package freework

import (
	"net/url"
	"regexp"

	"github.com/JeyZu/FreelanceFinder/internal/dom"
	"github.com/JeyZu/FreelanceFinder/internal/models"
	"github.com/JeyZu/FreelanceFinder/internal/normalize"
	"github.com/JeyZu/FreelanceFinder/internal/parsing"
	"github.com/JeyZu/FreelanceFinder/internal/scoring"
)

const minCardTitleLength = 5

var (
	jobHref     = regexp.MustCompile(`(?i)\bjob\b`)
	applyAnchor = regexp.MustCompile(`(?i)postuler`)
)

type card struct {
	root   dom.Node
	anchor dom.Node
	title  string
}

// findCards returns one card per offer link, keyed by the closest block
// container so several links inside one card count once.
func findCards(doc dom.Document) []card {
	seen := map[dom.Node]struct{}{}
	var cards []card
	for _, anchor := range doc.Find("a[href]") {
		href, _ := anchor.Attr("href")
		if href == "" || !jobHref.MatchString(href) {
			continue
		}

		titleNode := anchor.FindFirst("h1, h2, h3, h4, h5")
		if titleNode == nil {
			titleNode = anchor
		}
		title := normalize.Text(titleNode.Text())
		if normalize.Len(title) < minCardTitleLength || applyAnchor.MatchString(title) {
			continue
		}

		root := anchor.Closest("article, li, section, div")
		if root == nil {
			root = anchor
		}
		if _, ok := seen[root]; ok {
			continue
		}
		seen[root] = struct{}{}
		cards = append(cards, card{root: root, anchor: anchor, title: title})
	}
	return cards
}

func extractList(doc dom.Document, pageURL *url.URL) []models.Offer {
	offers := []models.Offer{}
	for _, c := range findCards(doc) {
		if offer, ok := offerFromCard(c, pageURL); ok {
			offers = append(offers, offer)
		}
	}
	return offers
}

func offerFromCard(c card, pageURL *url.URL) (models.Offer, bool) {
	href, _ := c.anchor.Attr("href")
	ref, err := url.Parse(href)
	if err != nil {
		return models.Offer{}, false
	}

	segments := normalize.Unique(
		parsing.SplitSegments(normalize.Text(c.root.Text())),
		parsing.CollectMetaTexts(c.root),
	)

	rateText := ""
	var rate *models.Rate
	for _, segment := range segments {
		if normalize.LooksLikeRate(segment) {
			rateText = segment
			rate = normalize.ParseRate(segment)
			break
		}
	}
	location := normalize.FindLocation(segments, normalize.LocationOptions{IncludeRemote: true})
	remote := normalize.DetectRemote(segments)
	if location == "" {
		location = remote.Snippet
	}

	tags := parsing.CollectTags(c.root)
	stack := normalize.NewOrderedSet()
	parsing.DetectTechnologies(append([]string{c.title}, segments...), stack)
	for _, tag := range tags {
		stack.Add(tag)
	}
	snippet := parsing.CardSnippet(c.root, c.title)

	offer := models.Offer{
		Source:       models.SourceFreeWork,
		URL:          pageURL.ResolveReference(ref).String(),
		Title:        c.title,
		Location:     location,
		IsRemote:     remote.IsRemote,
		RemotePolicy: remote.Policy,
		ContractType: parsing.FindContractType(segments),
		Rate:         rate,
		Stack:        stack.Values(),
		Description:  snippet,
	}
	offer.Tags = normalize.Unique(tags, offer.Stack)
	offer.Confidence = scoring.Confidence(offer)
	offer.Evidence = scoring.BuildEvidence(offer, c.anchor, scoring.EvidenceParts{
		RateText:      rateText,
		Location:      location,
		ContractType:  offer.ContractType,
		RemoteSnippet: remote.Snippet,
		Description:   snippet,
		Tags:          offer.Tags,
	})
	return offer, true
}
