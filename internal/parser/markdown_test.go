package parser

import (
	"strings"
	"testing"
)

func TestMarkdownParser_HeadingsAreNotProse(t *testing.T) {
	input := `# Title

Intro text.

## Section A

Section A content
wraps here.

### Subsection A1

Subsection A1 content.
`
	p := &MarkdownParser{}
	doc, err := p.Parse(strings.NewReader(input), "doc.md")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if doc.Title != "Title" {
		t.Errorf("expected title %q, got %q", "Title", doc.Title)
	}

	want := []string{"Intro text.", "Section A content wraps here.", "Subsection A1 content."}
	if strings.Join(doc.Paragraphs, "|") != strings.Join(want, "|") {
		t.Fatalf("expected %q, got %q", want, doc.Paragraphs)
	}
}

func TestMarkdownParser_NoHeadings(t *testing.T) {
	input := `Just some plain text.

Another paragraph here.`

	p := &MarkdownParser{}
	doc, err := p.Parse(strings.NewReader(input), "plain.md")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if doc.Title != "plain" {
		t.Errorf("expected title %q, got %q", "plain", doc.Title)
	}
	if len(doc.Paragraphs) != 2 {
		t.Fatalf("expected 2 paragraphs, got %d", len(doc.Paragraphs))
	}
	if doc.Text() != "Just some plain text.\n\nAnother paragraph here." {
		t.Errorf("unexpected text %q", doc.Text())
	}
}

func TestMarkdownParser_SkipsCodeAndKeepsInlineText(t *testing.T) {
	input := "# API Reference\n\nSome *emphasized* intro with `code` and a [link](http://x.test).\n\n" +
		"```\nGET /api/users\nPOST /api/users\n```\n\n    indented code\n\n" +
		"<div>raw html</div>\n\n- first item\n- second item\n\nMore text after code.\n"

	p := &MarkdownParser{}
	doc, err := p.Parse(strings.NewReader(input), "api.md")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	text := doc.Text()
	if strings.Contains(text, "GET /api/users") || strings.Contains(text, "indented code") {
		t.Errorf("expected code blocks to be dropped, got %q", text)
	}
	if strings.Contains(text, "raw html") {
		t.Errorf("expected html blocks to be dropped, got %q", text)
	}
	if !strings.Contains(text, "Some emphasized intro with code and a link.") {
		t.Errorf("expected rendered inline text, got %q", text)
	}
	if !strings.Contains(text, "first item") || !strings.Contains(text, "second item") {
		t.Errorf("expected list items, got %q", text)
	}
	if !strings.Contains(text, "More text after code.") {
		t.Errorf("expected post-code text, got %q", text)
	}
}

func TestMarkdownParser_EmptyInput(t *testing.T) {
	p := &MarkdownParser{}
	doc, err := p.Parse(strings.NewReader(""), "empty.md")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(doc.Paragraphs) != 0 {
		t.Errorf("expected 0 paragraphs for empty input, got %d", len(doc.Paragraphs))
	}
}

func TestMarkdownParser_TitleStripping(t *testing.T) {
	tests := []struct {
		filename string
		want     string
	}{
		{"readme.md", "readme"},
		{"notes.markdown", "notes"},
		{"docs/plain.md", "plain"},
	}
	p := &MarkdownParser{}
	for _, tt := range tests {
		doc, err := p.Parse(strings.NewReader("text"), tt.filename)
		if err != nil {
			t.Fatalf("unexpected error for %s: %v", tt.filename, err)
		}
		if doc.Title != tt.want {
			t.Errorf("filename=%q: expected title %q, got %q", tt.filename, tt.want, doc.Title)
		}
	}
}
