// Package freework detects job offers on rendered FreeWork pages.
package freework

import (
	"context"
	"fmt"
	"time"

	"github.com/JeyZu/FreelanceFinder/internal/dom"
	"github.com/JeyZu/FreelanceFinder/internal/models"
	"github.com/JeyZu/FreelanceFinder/internal/poll"
	"github.com/rs/zerolog"
)

const (
	DefaultMaxWait      = 1800 * time.Millisecond
	DefaultPollInterval = poll.DefaultInterval
)

// Options configure one detection run.
type Options struct {
	URL string
	// MaxWait bounds how long the page may keep rendering. Zero takes
	// DefaultMaxWait; a negative value samples the document once.
	MaxWait      time.Duration
	PollInterval time.Duration
	Clock        poll.Clock
	Logger       *zerolog.Logger
	// LegacyFallback classifies unknown pages on heading presence alone.
	LegacyFallback bool
}

func (o Options) maxWait() time.Duration {
	switch {
	case o.MaxWait == 0:
		return DefaultMaxWait
	case o.MaxWait < 0:
		return 0
	}
	return o.MaxWait
}

func (o Options) pollInterval() time.Duration {
	if o.PollInterval <= 0 {
		return DefaultPollInterval
	}
	return o.PollInterval
}

func (o Options) logger() zerolog.Logger {
	if o.Logger == nil {
		return zerolog.Nop()
	}
	return *o.Logger
}

// Detect samples doc until it shows at least one offer or the wait budget is
// spent. It never fails: every verdict is encoded in the returned Outcome.
func Detect(ctx context.Context, doc dom.Document, opts Options) models.Outcome {
	logger := opts.logger().With().Str("url", opts.URL).Logger()

	pageURL, ok := InScope(opts.URL)
	if !ok {
		logger.Debug().Msg("url out of scope")
		return models.Outcome{
			Status:   models.StatusOutOfScope,
			Message:  MessageOutOfScope,
			PageType: models.PageUnknown,
			Offers:   []models.Offer{},
		}
	}

	res := poll.Until(ctx, poll.Options{
		MaxWait:  opts.maxWait(),
		Interval: opts.pollInterval(),
		Clock:    opts.Clock,
	}, func(attempt int) (analysis, bool) {
		sample := analyse(dom.Snapshot(doc), pageURL, opts.LegacyFallback)
		logger.Debug().
			Int("attempt", attempt).
			Str("page_type", string(sample.pageType)).
			Int("offers", len(sample.offers)).
			Str("reason", sample.reason).
			Msg("document sampled")
		return sample, sample.ready()
	})

	return finalize(res)
}

func finalize(res poll.Result[analysis]) models.Outcome {
	diagnostics := &models.Diagnostics{
		Attempts: res.Attempts,
		WaitedMS: res.Waited.Milliseconds(),
	}
	sample := res.Value

	if sample.ready() {
		message := sample.message
		if message == "" {
			message = successMessage(sample.pageType, len(sample.offers))
		}
		return models.Outcome{
			Status:      models.StatusOK,
			Message:     message,
			PageType:    sample.pageType,
			Offers:      sample.offers,
			Diagnostics: diagnostics,
		}
	}

	reason := sample.reason
	if reason == "" {
		reason = models.ReasonInsufficient
	}
	status := models.StatusNoOffers
	if reason == models.ReasonDelayed {
		status = models.StatusContentDelayed
	}
	diagnostics.Reason = reason
	return models.Outcome{
		Status:      status,
		Message:     fmt.Sprintf("Aucune offre détectable (%s)", reason),
		PageType:    sample.pageType,
		Offers:      []models.Offer{},
		Diagnostics: diagnostics,
	}
}

func successMessage(pageType models.PageType, count int) string {
	switch pageType {
	case models.PageList:
		return listMessage(count)
	case models.PageDetail:
		return MessageDetail
	}
	return "Détection FreeWork"
}
