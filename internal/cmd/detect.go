package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/JeyZu/FreelanceFinder/internal/dom"
	"github.com/JeyZu/FreelanceFinder/internal/export"
	"github.com/JeyZu/FreelanceFinder/internal/freework"
	"github.com/JeyZu/FreelanceFinder/internal/models"
	"github.com/JeyZu/FreelanceFinder/internal/ui"
)

var ErrNoInput = errors.New("no input document: pass FILE or pipe HTML on stdin")

type DetectCmd struct {
	File           string        `arg:"" optional:"" help:"Rendered HTML file (default: stdin)."`
	URL            string        `name:"url" required:"" help:"URL the document was loaded from."`
	MaxWait        time.Duration `help:"How long to keep sampling a watched file (default from config)."`
	PollInterval   time.Duration `help:"Delay between samples (default from config)."`
	Watch          bool          `help:"Re-read FILE between samples until offers appear or the wait budget is spent."`
	LegacyFallback bool          `help:"Classify unrecognized pages on heading presence alone."`
	OutputOptions
}

func (d *DetectCmd) Run(ctx *Context) error {
	if d.Watch && strings.TrimSpace(d.File) == "" {
		return fmt.Errorf("--watch requires FILE")
	}

	doc, err := d.document(ctx)
	if err != nil {
		return err
	}

	runCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	outcome := freework.Detect(runCtx, doc, d.options(ctx))
	entry := export.Entry{URL: d.URL, File: d.File, Outcome: outcome}

	if err := writeDetection(ctx, d.OutputOptions, func(w *outputTarget) error {
		return export.WriteOutcome(w.writer, entry, w.format, w.options)
	}); err != nil {
		return err
	}

	reportOutcome(ctx, entry)
	return nil
}

func (d *DetectCmd) options(ctx *Context) freework.Options {
	opts := freework.Options{
		URL:            d.URL,
		MaxWait:        -1,
		PollInterval:   firstDuration(d.PollInterval, ctx.Config.PollInterval()),
		Logger:         &ctx.Logger,
		LegacyFallback: d.LegacyFallback,
	}
	if d.Watch {
		if wait := firstDuration(d.MaxWait, ctx.Config.MaxWait()); wait > 0 {
			opts.MaxWait = wait
		}
	}
	return opts
}

func (d *DetectCmd) document(ctx *Context) (dom.Document, error) {
	if d.Watch {
		logger := ctx.Logger.With().Str("file", d.File).Logger()
		doc, err := dom.OpenFile(d.File, logger)
		if err != nil {
			return nil, fmt.Errorf("open FILE: %w", err)
		}
		return doc, nil
	}
	if strings.TrimSpace(d.File) != "" {
		return parseFile(d.File)
	}
	if ctx.In == nil {
		return nil, ErrNoInput
	}
	doc, err := dom.Parse(ctx.In)
	if err != nil {
		return nil, fmt.Errorf("read stdin: %w", err)
	}
	return doc, nil
}

func parseFile(path string) (dom.Document, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	doc, err := dom.Parse(file)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return doc, nil
}

type outputTarget struct {
	writer  io.Writer
	format  export.Format
	options export.WriteOptions
}

func writeDetection(ctx *Context, opts OutputOptions, write func(*outputTarget) error) error {
	outputPath := strings.TrimSpace(opts.Output)
	format, err := resolveFormat(ctx, opts, outputPath)
	if err != nil {
		return err
	}

	writer, closeOutput, err := openOutput(ctx, outputPath)
	if err != nil {
		return err
	}
	target := &outputTarget{writer: writer, format: format, options: writeOptions(ctx, opts, writer)}
	if err := write(target); err != nil {
		closeOutput()
		return err
	}
	if err := closeOutput(); err != nil {
		return err
	}
	if outputPath != "" && ctx.UI != nil {
		ctx.UI.Successf("Wrote %s", outputPath)
	}
	return nil
}

// reportOutcome prints the verdict and the human reading of the outcome on
// stderr.
func reportOutcome(ctx *Context, entry export.Entry) {
	if ctx == nil || ctx.UI == nil {
		return
	}
	outcome := entry.Outcome
	ctx.UI.Statusf(statusTone(outcome.Status), "%s: %s", outcome.Status, outcome.Message)
	if outcome.Status == models.StatusOK {
		return
	}
	for _, line := range export.BuildReport(outcome, entry.URL).Evidence {
		ctx.UI.Warnf("  %s", line)
	}
}

func statusTone(status models.Status) ui.Tone {
	switch status {
	case models.StatusOK:
		return ui.ToneSuccess
	case models.StatusContentDelayed:
		return ui.TonePending
	case models.StatusNoOffers:
		return ui.ToneFailure
	}
	return ui.ToneNeutral
}

func firstDuration(values ...time.Duration) time.Duration {
	for _, value := range values {
		if value != 0 {
			return value
		}
	}
	return 0
}
