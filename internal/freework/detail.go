package freework

import (
	"net/url"

	"github.com/JeyZu/FreelanceFinder/internal/dom"
	"github.com/JeyZu/FreelanceFinder/internal/models"
	"github.com/JeyZu/FreelanceFinder/internal/normalize"
	"github.com/JeyZu/FreelanceFinder/internal/parsing"
	"github.com/JeyZu/FreelanceFinder/internal/scoring"
)

const (
	minTitleLength      = 6
	minReadyDescription = 120
	richDescription     = 150
	minReadySignals     = 2
)

type detailResult struct {
	offer  *models.Offer
	ready  bool
	reason string
}

// detailMeta holds what the meta texts of a detail page revealed.
type detailMeta struct {
	texts      []string
	rateText   string
	rate       *models.Rate
	contract   string
	location   string
	remote     normalize.RemoteInfo
	startDate  string
	duration   string
	experience string
	postedAt   string
}

func extractDetail(doc dom.Document, pageURL *url.URL) detailResult {
	root := doc.FindFirst("main")
	if root == nil {
		root = doc.Body()
	}
	if root == nil {
		return detailResult{reason: models.ReasonNoStructure}
	}

	heading := parsing.MainHeading(root)
	title := ""
	if heading != nil {
		title = normalize.Text(heading.Text())
	}
	if normalize.Len(title) < minTitleLength {
		return detailResult{reason: models.ReasonNoTitle}
	}

	meta := readDetailMeta(root)
	description := parsing.ExtractDescription(root)
	tags := parsing.CollectTags(root)

	stack := normalize.NewOrderedSet(tags...)
	parsing.DetectTechnologies(append(append([]string{}, meta.texts...), description), stack)

	offer := models.Offer{
		Source:          models.SourceFreeWork,
		URL:             pageURL.String(),
		Title:           title,
		Company:         parsing.ExtractCompany(root),
		Location:        meta.location,
		IsRemote:        meta.remote.IsRemote,
		RemotePolicy:    meta.remote.Policy,
		ContractType:    meta.contract,
		Rate:            meta.rate,
		StartDate:       meta.startDate,
		Duration:        meta.duration,
		ExperienceLevel: meta.experience,
		Stack:           stack.Values(),
		Description:     description,
		PostedAt:        meta.postedAt,
		Tags:            tags,
	}
	offer.Confidence = scoring.Confidence(offer)
	offer.Evidence = scoring.BuildEvidence(offer, heading, scoring.EvidenceParts{
		RateText:      meta.rateText,
		Location:      meta.location,
		ContractType:  meta.contract,
		StartDate:     meta.startDate,
		Duration:      meta.duration,
		Experience:    meta.experience,
		PostedAt:      meta.postedAt,
		RemoteSnippet: meta.remote.Snippet,
		Description:   description,
		Tags:          tags,
	})

	if !detailReady(offer) {
		return detailResult{offer: &offer, reason: models.ReasonPartial}
	}
	return detailResult{offer: &offer, ready: true}
}

func readDetailMeta(root dom.Node) detailMeta {
	texts := parsing.CollectMetaTexts(root)
	meta := detailMeta{
		texts:      texts,
		contract:   parsing.FindContractType(texts),
		startDate:  parsing.FindStartDate(texts),
		duration:   parsing.FindDuration(texts),
		experience: parsing.FindExperience(texts),
		postedAt:   parsing.FindPostedAt(texts),
	}
	for _, text := range texts {
		if normalize.LooksLikeRate(text) {
			meta.rateText = text
			meta.rate = normalize.ParseRate(text)
			break
		}
	}

	meta.location = normalize.FindLocation(texts, normalize.LocationOptions{})
	meta.remote = normalize.DetectRemote(append(append([]string{}, texts...), meta.location))
	if meta.location == "" {
		meta.location = meta.remote.Snippet
	}
	return meta
}

// detailReady requires a substantial description plus two of the essential
// signals: rate, place, a stack of two or more, a rich description.
func detailReady(offer models.Offer) bool {
	descLength := normalize.Len(offer.Description)
	if descLength < minReadyDescription {
		return false
	}
	signals := 0
	for _, ok := range []bool{
		offer.Rate != nil,
		offer.Location != "" || offer.IsRemote,
		len(offer.Stack) >= 2,
		descLength >= richDescription,
	} {
		if ok {
			signals++
		}
	}
	return signals >= minReadySignals
}
