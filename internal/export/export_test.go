package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"

	"github.com/JeyZu/FreelanceFinder/internal/models"
	"gopkg.in/yaml.v3"
)

func rate(raw string, value float64) *models.Rate {
	return &models.Rate{Raw: raw, Value: &value, Currency: "EUR", Period: models.PeriodDay}
}

func detailEntry() Entry {
	return Entry{
		URL: "https://www.free-work.com/fr/tech-it/job/dev-go",
		Outcome: models.Outcome{
			Status:   models.StatusOK,
			Message:  "Offre détectée (détail)",
			PageType: models.PageDetail,
			Offers: []models.Offer{{
				Source:       models.SourceFreeWork,
				URL:          "https://www.free-work.com/fr/tech-it/job/dev-go",
				Title:        "Développeur Go",
				Location:     "Paris",
				IsRemote:     true,
				RemotePolicy: "hybrid",
				ContractType: "Freelance",
				Rate:         rate("600 € / jour", 600),
				Stack:        []string{"Go", "AWS", "Docker", "Kafka", "Redis", "Terraform", "Kubernetes"},
				Tags:         []string{},
				Confidence:   0.95,
				Evidence: []models.Evidence{
					{Label: models.EvidenceTitle, Snippet: "Développeur Go", Selector: "main > h1"},
					{Label: models.EvidenceStartDate, Snippet: "ASAP"},
				},
			}},
			Diagnostics: &models.Diagnostics{Attempts: 1},
		},
	}
}

func delayedEntry() Entry {
	return Entry{
		URL: "https://www.free-work.com/fr/tech-it/job/x",
		Outcome: models.Outcome{
			Status:      models.StatusContentDelayed,
			Message:     "Aucune offre détectable (contenu tardif)",
			PageType:    models.PageUnknown,
			Offers:      []models.Offer{},
			Diagnostics: &models.Diagnostics{Attempts: 4, WaitedMS: 60, Reason: models.ReasonDelayed},
		},
	}
}

func TestWriteOutcomeJSONIsBareOutcome(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteOutcome(&buf, detailEntry(), FormatJSON, WriteOptions{}); err != nil {
		t.Fatalf("WriteOutcome() error = %v", err)
	}

	var decoded map[string]any
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if decoded["status"] != "ok" || decoded["pageType"] != "detail" {
		t.Fatalf("unexpected outcome %v", decoded)
	}
	offers := decoded["offers"].([]any)
	offer := offers[0].(map[string]any)
	if offer["isRemote"] != true || offer["contractType"] != "Freelance" {
		t.Fatalf("unexpected offer %v", offer)
	}
}

func TestWriteEntriesYAML(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteEntries(&buf, []Entry{detailEntry(), delayedEntry()}, FormatYAML, WriteOptions{}); err != nil {
		t.Fatalf("WriteEntries() error = %v", err)
	}

	var decoded []struct {
		URL     string `yaml:"url"`
		Outcome struct {
			Status      string `yaml:"status"`
			Diagnostics struct {
				Reason string `yaml:"reason"`
			} `yaml:"diagnostics"`
		} `yaml:"outcome"`
	}
	if err := yaml.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("invalid yaml: %v", err)
	}
	if len(decoded) != 2 {
		t.Fatalf("len(decoded) = %d, want 2", len(decoded))
	}
	if decoded[1].Outcome.Status != "content_delayed" || decoded[1].Outcome.Diagnostics.Reason != "contenu tardif" {
		t.Fatalf("unexpected second entry %+v", decoded[1])
	}
}

func TestWriteEntriesCSV(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteEntries(&buf, []Entry{detailEntry(), delayedEntry()}, FormatCSV, WriteOptions{}); err != nil {
		t.Fatalf("WriteEntries() error = %v", err)
	}

	records, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("invalid csv: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("len(records) = %d, want 3", len(records))
	}
	header := records[0]
	for _, row := range records[1:] {
		if len(row) != len(header) {
			t.Fatalf("row has %d columns, header %d", len(row), len(header))
		}
	}
	if records[1][10] != "600 € / jour" || records[1][11] != "600" {
		t.Fatalf("unexpected rate columns %q %q", records[1][10], records[1][11])
	}
	if records[2][1] != "content_delayed" || records[2][3] != "contenu tardif" {
		t.Fatalf("unexpected empty row %v", records[2])
	}
}

func TestWriteEntriesMarkdown(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteEntries(&buf, []Entry{detailEntry()}, FormatMarkdown, WriteOptions{}); err != nil {
		t.Fatalf("WriteEntries() error = %v", err)
	}
	out := buf.String()
	for _, want := range []string{
		"## Offre détectée (détail)",
		"- **Lieu / Remote** Paris — hybrid",
		"- **Stack** Go · AWS · Docker · Kafka · Redis · Terraform",
		"- Title — Développeur Go",
		"- StartDate — ASAP",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("markdown missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "Kubernetes") {
		t.Fatalf("stack preview should stop at six entries:\n%s", out)
	}
}

func TestWriteTableShowsEmptyOutcomes(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteEntries(&buf, []Entry{delayedEntry()}, FormatTable, WriteOptions{}); err != nil {
		t.Fatalf("WriteEntries() error = %v", err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected header and one row, got %q", buf.String())
	}
	if !strings.HasPrefix(lines[1], "content_delayed") {
		t.Fatalf("unexpected row %q", lines[1])
	}
}

func TestShortURLLabel(t *testing.T) {
	got := shortURLLabel("https://www.free-work.com/fr/tech-it/job/dev-go")
	if got != "free-work.com/fr/tech-it/job/dev-go" {
		t.Fatalf("shortURLLabel() = %q", got)
	}
}
