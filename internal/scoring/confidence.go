// Package scoring rates extracted offers and records the evidence behind them.
package scoring

import (
	"math"

	"github.com/JeyZu/FreelanceFinder/internal/models"
	"github.com/JeyZu/FreelanceFinder/internal/normalize"
)

const (
	baseConfidence = 0.25

	titleWeight       = 0.20
	rateWeight        = 0.15
	locationWeight    = 0.15
	stackWeight       = 0.10
	singleStackWeight = 0.05
	longDescription   = 180
	longDescWeight    = 0.10
	shortDescription  = 60
	shortDescWeight   = 0.05
	contractWeight    = 0.05
)

// Confidence scores how completely offer was recovered, in [0, 1]. It only
// grows when a field is filled in.
func Confidence(offer models.Offer) float64 {
	score := baseConfidence
	if offer.Title != "" {
		score += titleWeight
	}
	if offer.Rate != nil {
		score += rateWeight
	}
	if offer.Location != "" || offer.IsRemote {
		score += locationWeight
	}
	switch stack := len(offer.Stack); {
	case stack >= 2:
		score += stackWeight
	case stack == 1:
		score += singleStackWeight
	}
	switch length := normalize.Len(offer.Description); {
	case length >= longDescription:
		score += longDescWeight
	case length >= shortDescription:
		score += shortDescWeight
	}
	if offer.ContractType != "" {
		score += contractWeight
	}
	return clamp(math.Round(score*100) / 100)
}

func clamp(score float64) float64 {
	return math.Min(1, math.Max(0, score))
}
