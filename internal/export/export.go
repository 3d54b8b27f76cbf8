package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"net/url"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/JeyZu/FreelanceFinder/internal/models"
	"github.com/JeyZu/FreelanceFinder/internal/ui"
	"github.com/muesli/termenv"
	"gopkg.in/yaml.v3"
)

type Format string

const (
	FormatTable    Format = "table"
	FormatCSV      Format = "csv"
	FormatJSON     Format = "json"
	FormatYAML     Format = "yaml"
	FormatMarkdown Format = "md"
	FormatTSV      Format = "tsv"
)

type WriteOptions struct {
	ColorEnabled bool
	Hyperlinks   bool
	LinkStyle    LinkStyle
}

type LinkStyle string

const (
	LinkStyleShort LinkStyle = "short"
	LinkStyleFull  LinkStyle = "full"
)

// Entry is one analysed page.
type Entry struct {
	URL     string         `json:"url" yaml:"url"`
	File    string         `json:"file,omitempty" yaml:"file,omitempty"`
	Outcome models.Outcome `json:"outcome" yaml:"outcome"`
}

// WriteOutcome renders a single detection. JSON and YAML carry the bare
// outcome.
func WriteOutcome(w io.Writer, entry Entry, format Format, opts WriteOptions) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, entry.Outcome)
	case FormatYAML:
		return writeYAML(w, entry.Outcome)
	}
	return WriteEntries(w, []Entry{entry}, format, opts)
}

// WriteEntries renders several detections, keeping their order.
func WriteEntries(w io.Writer, entries []Entry, format Format, opts WriteOptions) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, entries)
	case FormatYAML:
		return writeYAML(w, entries)
	case FormatCSV:
		return writeCSV(w, entries, ',')
	case FormatTSV:
		return writeCSV(w, entries, '\t')
	case FormatMarkdown:
		return writeMarkdown(w, entries)
	default:
		return writeTable(w, entries, opts)
	}
}

func writeJSON(w io.Writer, value any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(value)
}

func writeYAML(w io.Writer, value any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(value); err != nil {
		return err
	}
	return enc.Close()
}

func writeCSV(w io.Writer, entries []Entry, delim rune) error {
	writer := csv.NewWriter(w)
	writer.Comma = delim
	if err := writer.Write(csvHeader()); err != nil {
		return err
	}
	for _, entry := range entries {
		for _, row := range csvRows(entry) {
			if err := writer.Write(row); err != nil {
				return err
			}
		}
	}
	writer.Flush()
	return writer.Error()
}

func writeTable(w io.Writer, entries []Entry, opts WriteOptions) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(tableHeader(), "\t"))
	output := termenv.NewOutput(w)
	for _, entry := range entries {
		if len(entry.Outcome.Offers) == 0 {
			fmt.Fprintln(tw, strings.Join(emptyTableRow(entry, output, opts), "\t"))
			continue
		}
		for _, offer := range entry.Outcome.Offers {
			fmt.Fprintln(tw, strings.Join(tableRow(entry.Outcome.Status, offer, output, opts), "\t"))
		}
	}
	return tw.Flush()
}

func writeMarkdown(w io.Writer, entries []Entry) error {
	if len(entries) == 0 {
		_, err := fmt.Fprintln(w, "No results.")
		return err
	}
	for i, entry := range entries {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		report := BuildReport(entry.Outcome, entry.URL)
		lines := []string{
			fmt.Sprintf("## %s", safe(entry.Outcome.Message)),
			fmt.Sprintf("- URL: [%s](<%s>)", shortURLLabel(entry.URL), safe(entry.URL)),
			fmt.Sprintf("- Status: `%s` (%s)", entry.Outcome.Status, entry.Outcome.PageType),
		}
		if report.Reason != "" {
			lines = append(lines, fmt.Sprintf("- Reason: %s", report.Reason))
		}
		if d := entry.Outcome.Diagnostics; d != nil {
			lines = append(lines, fmt.Sprintf("- Attempts: %d, waited %d ms", d.Attempts, d.WaitedMS))
		}
		for _, item := range report.Summary {
			lines = append(lines, fmt.Sprintf("- **%s** %s", item.Label, safe(item.Value)))
		}
		if len(report.Evidence) > 0 {
			lines = append(lines, "", "### Evidence")
			for _, line := range report.Evidence {
				lines = append(lines, "- "+safe(line))
			}
		}
		for _, line := range lines {
			if _, err := fmt.Fprintln(w, line); err != nil {
				return err
			}
		}
	}
	return nil
}

func csvHeader() []string {
	return []string{
		"page_url",
		"status",
		"page_type",
		"reason",
		"title",
		"company",
		"location",
		"remote",
		"remote_policy",
		"contract",
		"rate",
		"rate_value",
		"currency",
		"period",
		"start_date",
		"duration",
		"experience",
		"stack",
		"posted_at",
		"confidence",
		"url",
	}
}

func csvRows(entry Entry) [][]string {
	outcome := entry.Outcome
	reason := ""
	if outcome.Diagnostics != nil {
		reason = outcome.Diagnostics.Reason
	}
	prefix := []string{entry.URL, string(outcome.Status), string(outcome.PageType), reason}

	if len(outcome.Offers) == 0 {
		row := append(prefix, make([]string, len(csvHeader())-len(prefix))...)
		return [][]string{row}
	}

	rows := make([][]string, 0, len(outcome.Offers))
	for _, offer := range outcome.Offers {
		rate, value, currency, period := "", "", "", ""
		if offer.Rate != nil {
			rate, currency, period = offer.Rate.Raw, offer.Rate.Currency, string(offer.Rate.Period)
			if offer.Rate.Value != nil {
				value = strconv.FormatFloat(*offer.Rate.Value, 'f', -1, 64)
			}
		}
		row := append(append([]string{}, prefix...),
			offer.Title,
			offer.Company,
			offer.Location,
			boolString(offer.IsRemote),
			offer.RemotePolicy,
			offer.ContractType,
			rate,
			value,
			currency,
			period,
			offer.StartDate,
			offer.Duration,
			offer.ExperienceLevel,
			strings.Join(offer.Stack, "|"),
			offer.PostedAt,
			strconv.FormatFloat(offer.Confidence, 'f', 2, 64),
			offer.URL,
		)
		rows = append(rows, row)
	}
	return rows
}

func boolString(value bool) string {
	if value {
		return "true"
	}
	return "false"
}

func safe(value string) string {
	return strings.TrimSpace(value)
}

func tableHeader() []string {
	return []string{
		"status",
		"title",
		"location",
		"rate",
		"contract",
		"confidence",
		"url",
	}
}

func tableRow(status models.Status, offer models.Offer, output *termenv.Output, opts WriteOptions) []string {
	return []string{
		string(status),
		dash(safe(offer.Title)),
		dash(formatLocation(offer)),
		dash(rateRaw(offer)),
		dash(offer.ContractType),
		strconv.FormatFloat(offer.Confidence, 'f', 2, 64),
		displayURL(offer.URL, output, opts),
	}
}

func emptyTableRow(entry Entry, output *termenv.Output, opts WriteOptions) []string {
	return []string{
		string(entry.Outcome.Status),
		dash(safe(entry.Outcome.Message)),
		"-",
		"-",
		"-",
		"-",
		displayURL(entry.URL, output, opts),
	}
}

func displayURL(raw string, output *termenv.Output, opts WriteOptions) string {
	url := safe(raw)
	if url == "" {
		return "-"
	}
	display := url
	if opts.LinkStyle == LinkStyleShort && opts.Hyperlinks {
		display = shortURLLabel(url)
	}
	display = ui.ColorizeLink(output, opts.ColorEnabled, display)
	if opts.Hyperlinks {
		display = hyperlink(url, display)
	}
	return display
}

func dash(value string) string {
	if value == "" {
		return "-"
	}
	return value
}

func hyperlink(url string, text string) string {
	const esc = "\x1b"
	return esc + "]8;;" + url + esc + "\\" + text + esc + "]8;;" + esc + "\\"
}

func shortURLLabel(raw string) string {
	const maxLen = 60
	label := strings.TrimSpace(raw)
	if parsed, err := url.Parse(raw); err == nil {
		host := strings.TrimPrefix(parsed.Host, "www.")
		if host != "" {
			label = host + parsed.Path
		}
	}
	label = strings.TrimSpace(label)
	if label == "" {
		label = raw
	}
	if len(label) > maxLen {
		label = label[:maxLen-3] + "..."
	}
	return label
}
