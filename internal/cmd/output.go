package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/JeyZu/FreelanceFinder/internal/export"
	"github.com/muesli/termenv"
)

type OutputOptions struct {
	Format string `help:"Output format: json, yaml, md, table, csv, tsv." enum:",json,yaml,md,table,csv,tsv" default:""`
	Links  string `help:"Table link display: short or full." enum:"short,full" default:"full"`
	Output string `name:"output" short:"o" help:"Write output to a file."`
}

// resolveFormat picks the output format. Global --json/--plain win, then
// --format, then the configured format, then the file extension or terminal.
func resolveFormat(ctx *Context, opts OutputOptions, outputPath string) (export.Format, error) {
	if ctx.JSONOutput {
		return export.FormatJSON, nil
	}
	if ctx.PlainText {
		return export.FormatTSV, nil
	}
	if opts.Format != "" {
		return parseFormat(opts.Format)
	}
	if ctx.Config.Format != "" {
		return parseFormat(ctx.Config.Format)
	}

	if outputPath != "" {
		if format, ok := formatFromExtension(outputPath); ok {
			return format, nil
		}
		return export.FormatJSON, nil
	}
	if isTTY(ctx.Out) {
		return export.FormatTable, nil
	}
	return export.FormatJSON, nil
}

func parseFormat(value string) (export.Format, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "csv":
		return export.FormatCSV, nil
	case "json":
		return export.FormatJSON, nil
	case "yaml", "yml":
		return export.FormatYAML, nil
	case "md", "markdown":
		return export.FormatMarkdown, nil
	case "tsv":
		return export.FormatTSV, nil
	case "table", "":
		return export.FormatTable, nil
	default:
		return "", fmt.Errorf("unknown format: %s", value)
	}
}

func formatFromExtension(path string) (export.Format, bool) {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	switch ext {
	case "json", "yaml", "yml", "md", "markdown", "csv", "tsv":
		format, err := parseFormat(ext)
		return format, err == nil
	}
	return "", false
}

// openOutput returns stdout, or a created file with its closer.
func openOutput(ctx *Context, path string) (io.Writer, func() error, error) {
	if path == "" {
		return ctx.Out, func() error { return nil }, nil
	}
	file, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("create --output: %w", err)
	}
	return file, file.Close, nil
}

func writeOptions(ctx *Context, opts OutputOptions, writer io.Writer) export.WriteOptions {
	colorEnabled := ctx.UI != nil && ctx.UI.ColorEnabled
	linkStyle := export.LinkStyleShort
	if strings.EqualFold(opts.Links, string(export.LinkStyleFull)) {
		linkStyle = export.LinkStyleFull
	}
	return export.WriteOptions{
		ColorEnabled: colorEnabled,
		Hyperlinks:   colorEnabled && isTTY(writer),
		LinkStyle:    linkStyle,
	}
}

func isTTY(out io.Writer) bool {
	output := termenv.NewOutput(out)
	return output.ColorProfile() != termenv.Ascii
}
