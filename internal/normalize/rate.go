package normalize

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"github.com/JeyZu/FreelanceFinder/internal/models"
)

var (
	rateMarkerPattern  = regexp.MustCompile(`(?i)€|eur|\beuros?|\btjm`)
	digitPattern       = regexp.MustCompile(`\d`)
	rateNumericPattern = regexp.MustCompile(`\d+[\d\s,.]*`)
	leadingFloat       = regexp.MustCompile(`^\d+(?:\.\d+)?`)
	ratePeriodPattern  = regexp.MustCompile(`(?i)jour|day|mois|month|an|year|semaine|week|heure|hour`)
	chfPattern         = regexp.MustCompile(`(?i)\bchf\b`)
	usdPattern         = regexp.MustCompile(`(?i)\busd\b|\$`)
)

// LooksLikeRate reports whether text carries a currency marker and a digit.
func LooksLikeRate(text string) bool {
	return rateMarkerPattern.MatchString(text) && digitPattern.MatchString(text)
}

// ParseRate normalizes a rate string. It returns nil only for blank input; a
// string without any number keeps Raw and leaves Value unset.
func ParseRate(text string) *models.Rate {
	raw := Text(text)
	if raw == "" {
		return nil
	}

	rate := &models.Rate{Raw: raw}
	if match := rateNumericPattern.FindString(raw); match != "" {
		if value, ok := parseAmount(match); ok {
			rate.Value = &value
		}
	}

	switch {
	case strings.Contains(raw, "€"):
		rate.Currency = "EUR"
	case chfPattern.MatchString(raw):
		rate.Currency = "CHF"
	case usdPattern.MatchString(raw):
		rate.Currency = "USD"
	}

	if token := ratePeriodPattern.FindString(raw); token != "" {
		rate.Period = ratePeriod(token)
	}
	return rate
}

// parseAmount reads "1 200,50" style numbers: spaces are thousands separators
// and a comma is a decimal point. Trailing garbage after the first decimal
// number is ignored.
func parseAmount(match string) (float64, bool) {
	var b strings.Builder
	for _, r := range match {
		switch {
		case r == ',':
			b.WriteByte('.')
		case unicode.IsSpace(r):
		default:
			b.WriteRune(r)
		}
	}
	numeric := leadingFloat.FindString(b.String())
	if numeric == "" {
		return 0, false
	}
	value, err := strconv.ParseFloat(numeric, 64)
	if err != nil {
		return 0, false
	}
	return math.Round(value*100) / 100, true
}

func ratePeriod(token string) models.RatePeriod {
	token = strings.ToLower(token)
	switch {
	case strings.HasPrefix(token, "jour"), strings.HasPrefix(token, "day"):
		return models.PeriodDay
	case strings.HasPrefix(token, "mois"), strings.HasPrefix(token, "month"):
		return models.PeriodMonth
	case strings.HasPrefix(token, "semaine"), strings.HasPrefix(token, "week"):
		return models.PeriodWeek
	case strings.Contains(token, "heure"), strings.Contains(token, "hour"):
		return models.PeriodHour
	default:
		return models.PeriodYear
	}
}
