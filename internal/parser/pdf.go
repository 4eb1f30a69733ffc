package parser

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"os/exec"
	"regexp"
	"strings"

	"github.com/dgallion1/clearprose/internal/doctree"
	pdflib "github.com/ledongthuc/pdf"
)

// PDFParser handles PDF files. Text comes from the Go reader; when that
// fails and FallbackPdftotext is set, pdftotext is tried instead.
type PDFParser struct {
	FallbackPdftotext bool
}

func (p *PDFParser) Parse(r io.Reader, filename string) (*doctree.Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read pdf: %w", err)
	}

	doc := &doctree.Document{Title: titleFromFilename(filename)}

	text, title, err := extractPDFText(data)
	if err != nil && p.FallbackPdftotext {
		text, err = extractPdftotext(data)
	}
	if err != nil {
		return nil, fmt.Errorf("extract pdf text: %w", err)
	}
	if title != "" {
		doc.Title = title
	}

	for _, page := range splitPages(text) {
		paras, err := pageParagraphs(page)
		if err != nil {
			return nil, fmt.Errorf("split pdf page: %w", err)
		}
		doc.Paragraphs = append(doc.Paragraphs, paras...)
	}
	return doc, nil
}

// extractPDFText returns the plain text of every page, separated by form
// feeds, and the title from the document info dictionary if present.
func extractPDFText(data []byte) (text, title string, err error) {
	reader, err := pdflib.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", "", err
	}
	title = strings.TrimSpace(reader.Trailer().Key("Info").Key("Title").Text())

	var buf strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		pageText, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		if i > 1 {
			buf.WriteString("\f")
		}
		buf.WriteString(pageText)
	}
	return buf.String(), title, nil
}

// extractPdftotext shells out to poppler's pdftotext, which reads a path.
func extractPdftotext(data []byte) (string, error) {
	tmp, err := os.CreateTemp("", "clearprose-pdf-*.pdf")
	if err != nil {
		return "", fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return "", fmt.Errorf("write temp file: %w", err)
	}
	tmp.Close()

	out, err := exec.Command("pdftotext", "-layout", tmp.Name(), "-").Output()
	if err != nil {
		return "", fmt.Errorf("pdftotext: %w", err)
	}
	return string(out), nil
}

// splitPages splits on form feeds, which both extractors use between pages.
func splitPages(text string) []string {
	return strings.Split(text, "\f")
}

var (
	pageNumberLine = regexp.MustCompile(`(?i)^\s*(?:page\s+)?\d+(?:\s+of\s+\d+)?\s*$`)
	hyphenBreak    = regexp.MustCompile(`(\p{L})-\r?\n[ \t]*(\p{Ll})`)
)

// pageParagraphs drops page-number lines, rejoins words hyphenated across
// line breaks and groups the rest into paragraphs.
func pageParagraphs(page string) ([]string, error) {
	lines := strings.Split(page, "\n")
	kept := lines[:0]
	for _, line := range lines {
		if pageNumberLine.MatchString(line) {
			continue
		}
		kept = append(kept, line)
	}
	text := hyphenBreak.ReplaceAllString(strings.Join(kept, "\n"), "$1$2")
	return scanParagraphs(strings.NewReader(text))
}
