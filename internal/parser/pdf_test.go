package parser

import (
	"strings"
	"testing"
)

func TestPDFParser_InvalidInput(t *testing.T) {
	_, err := (&PDFParser{}).Parse(strings.NewReader("not a pdf"), "broken.pdf")
	if err == nil {
		t.Fatal("expected error for non-PDF input")
	}
	if !strings.Contains(err.Error(), "extract pdf text") {
		t.Errorf("expected wrapped extract error, got %v", err)
	}
}

func TestSplitPages(t *testing.T) {
	got := splitPages("one\ftwo\f")
	if len(got) != 3 || got[0] != "one" || got[1] != "two" || got[2] != "" {
		t.Fatalf("unexpected pages %q", got)
	}
}

func TestPageParagraphs(t *testing.T) {
	page := "The results were inter-\nesting and clear.\n\n  12  \n\nA second para-\ngraph wraps\nacross lines.\nPage 3 of 9\n"

	got, err := pageParagraphs(page)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{
		"The results were interesting and clear.",
		"A second paragraph wraps across lines.",
	}
	if strings.Join(got, "|") != strings.Join(want, "|") {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestPageParagraphs_KeepsRealHyphens(t *testing.T) {
	got, err := pageParagraphs("A well-known\nPhrase-\nBased method.")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || got[0] != "A well-known Phrase- Based method." {
		t.Fatalf("unexpected paragraphs %q", got)
	}
}

func TestForFile_PDFFallbackOption(t *testing.T) {
	p, err := ForFile("report.PDF", Options{PDFFallbackPdftotext: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	pp, ok := p.(*PDFParser)
	if !ok {
		t.Fatalf("expected *PDFParser, got %T", p)
	}
	if !pp.FallbackPdftotext {
		t.Error("expected fallback to be enabled")
	}
}
