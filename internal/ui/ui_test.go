package ui

import (
	"bytes"
	"testing"
)

func TestNormalizeColorMode(t *testing.T) {
	cases := map[string]ColorMode{
		"always":  ColorAlways,
		" NEVER ": ColorNever,
		"":        ColorAuto,
		"rainbow": ColorAuto,
	}
	for in, want := range cases {
		if got := NormalizeColorMode(in); got != want {
			t.Fatalf("NormalizeColorMode(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestStatusfWritesPlainLineWithoutColor(t *testing.T) {
	var out, errOut bytes.Buffer
	u := New(&out, &errOut, ColorAlways, true)

	u.Statusf(TonePending, "content_delayed: %s\n", "Aucune offre détectable (contenu tardif)")

	if out.Len() != 0 {
		t.Fatalf("expected nothing on stdout, got %q", out.String())
	}
	want := "content_delayed: Aucune offre détectable (contenu tardif)\n"
	if errOut.String() != want {
		t.Fatalf("Statusf() wrote %q, want %q", errOut.String(), want)
	}
}

func TestColorizeLinkDisabled(t *testing.T) {
	if got := ColorizeLink(nil, true, "https://www.free-work.com"); got != "https://www.free-work.com" {
		t.Fatalf("ColorizeLink() = %q", got)
	}
}

func TestPrintersPickStreams(t *testing.T) {
	var out, errOut bytes.Buffer
	u := New(&out, &errOut, ColorNever, false)

	u.Infof("created %s", "config.json")
	u.Successf("wrote %d", 2)
	u.Warnf("  Motif : %s.", "structure atypique")
	u.Errorf("boom\n")

	if want := "created config.json\nwrote 2\n"; out.String() != want {
		t.Fatalf("stdout = %q, want %q", out.String(), want)
	}
	if want := "  Motif : structure atypique.\nboom\n"; errOut.String() != want {
		t.Fatalf("stderr = %q, want %q", errOut.String(), want)
	}
}
