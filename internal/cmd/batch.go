package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/JeyZu/FreelanceFinder/internal/export"
	"github.com/JeyZu/FreelanceFinder/internal/freework"
	"github.com/JeyZu/FreelanceFinder/internal/models"
	"github.com/yosuke-furukawa/json5/encoding/json5"
	"golang.org/x/sync/errgroup"
)

type BatchCmd struct {
	Manifest       string `arg:"" help:"JSON5 array of {url, file} entries; files are relative to the manifest."`
	Concurrency    int    `help:"Pages analysed at once (default from config)."`
	LegacyFallback bool   `help:"Classify unrecognized pages on heading presence alone."`
	OutputOptions
}

type manifestEntry struct {
	URL  string `json:"url"`
	File string `json:"file"`
}

func (b *BatchCmd) Run(ctx *Context) error {
	entries, err := loadManifest(b.Manifest)
	if err != nil {
		return err
	}

	runCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	opts := freework.Options{
		MaxWait:        -1,
		Logger:         &ctx.Logger,
		LegacyFallback: b.LegacyFallback,
	}
	results, err := runBatch(runCtx, entries, defaultInt(b.Concurrency, ctx.Config.Concurrency), opts)
	if err != nil {
		return err
	}

	if err := writeDetection(ctx, b.OutputOptions, func(w *outputTarget) error {
		return export.WriteEntries(w.writer, results, w.format, w.options)
	}); err != nil {
		return err
	}

	printBatchSummary(ctx, results)
	return nil
}

func loadManifest(path string) ([]manifestEntry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read manifest %q: %w", path, err)
	}

	var entries []manifestEntry
	if err := json5.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parse manifest %q: %w", path, err)
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("manifest %q has no entries", path)
	}

	base := filepath.Dir(path)
	for idx := range entries {
		entry := &entries[idx]
		entry.URL = strings.TrimSpace(entry.URL)
		entry.File = strings.TrimSpace(entry.File)
		if entry.File == "" {
			return nil, fmt.Errorf("invalid manifest %q: entry %d has no file", path, idx+1)
		}
		if !filepath.IsAbs(entry.File) {
			entry.File = filepath.Join(base, entry.File)
		}
	}
	return entries, nil
}

// runBatch detects every entry independently, at most limit at a time.
// Results keep manifest order.
func runBatch(ctx context.Context, entries []manifestEntry, limit int, opts freework.Options) ([]export.Entry, error) {
	if limit <= 0 {
		limit = 1
	}
	results := make([]export.Entry, len(entries))

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(limit)
	for idx, entry := range entries {
		idx, entry := idx, entry
		group.Go(func() error {
			doc, err := parseFile(entry.File)
			if err != nil {
				return fmt.Errorf("entry %d (%s): %w", idx+1, entry.File, err)
			}
			entryOpts := opts
			entryOpts.URL = entry.URL
			results[idx] = export.Entry{
				URL:     entry.URL,
				File:    entry.File,
				Outcome: freework.Detect(groupCtx, doc, entryOpts),
			}
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func printBatchSummary(ctx *Context, results []export.Entry) {
	if ctx == nil || ctx.Err == nil {
		return
	}
	_, _ = fmt.Fprintf(ctx.Err, "%s\n", formatBatchSummary(results))
}

func formatBatchSummary(results []export.Entry) string {
	counts := make(map[models.Status]int, 4)
	for _, result := range results {
		counts[result.Outcome.Status]++
	}
	return fmt.Sprintf("summary: entries=%d ok=%d no_offers=%d content_delayed=%d out_of_scope=%d",
		len(results),
		counts[models.StatusOK],
		counts[models.StatusNoOffers],
		counts[models.StatusContentDelayed],
		counts[models.StatusOutOfScope],
	)
}

func defaultInt(value, fallback int) int {
	if value == 0 {
		return fallback
	}
	return value
}
