// Package report renders analysis results for the command line.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/dgallion1/clearprose/internal/doctree"
	"github.com/dgallion1/clearprose/internal/scoring"
)

// Format selects an output encoding.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat accepts text, json, yaml or yml.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "text":
		return FormatText, nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("unknown format %q (want text, json or yaml)", s)
}

// Finding is an issue placed in its document.
type Finding struct {
	doctree.Issue `yaml:",inline"`
	Paragraph     int `json:"paragraph" yaml:"paragraph"` // 1-based
	Sentence      int `json:"sentence" yaml:"sentence"`   // 1-based within the paragraph
	Offset        int `json:"offset" yaml:"offset"`       // Byte offset within the analyzed text
}

// File is the report for one analyzed input.
type File struct {
	Path     string         `json:"path" yaml:"path"`
	Title    string         `json:"title,omitempty" yaml:"title,omitempty"`
	Stats    doctree.Stats  `json:"stats" yaml:"stats"`
	Scores   scoring.Scores `json:"scores" yaml:"scores"`
	Findings []Finding      `json:"findings" yaml:"findings"`
	Error    string         `json:"error,omitempty" yaml:"error,omitempty"`
}

// New flattens doc into a File report.
func New(path, title string, doc *doctree.Block, scores scoring.Scores) File {
	f := File{Path: path, Title: title, Scores: scores, Findings: []Finding{}}
	if doc == nil {
		return f
	}
	f.Stats = doc.Stats
	for pi, p := range doc.Children {
		for si, s := range p.Children {
			base := doc.OffsetInBlock + p.OffsetInBlock + s.OffsetInBlock
			for _, is := range s.Issues {
				f.Findings = append(f.Findings, Finding{
					Issue:     is,
					Paragraph: pi + 1,
					Sentence:  si + 1,
					Offset:    base + is.Start,
				})
			}
		}
	}
	return f
}

// Failed reports an input that could not be analyzed.
func Failed(path string, err error) File {
	return File{Path: path, Findings: []Finding{}, Error: err.Error()}
}

// Write renders files to w in the given format.
func Write(w io.Writer, format Format, files []File) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(files)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(files); err != nil {
			return err
		}
		return enc.Close()
	case FormatText, "":
		return writeText(w, files)
	}
	return fmt.Errorf("unknown format %q", format)
}

func writeText(w io.Writer, files []File) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for i, f := range files {
		if i > 0 {
			fmt.Fprintln(tw)
		}
		if f.Error != "" {
			fmt.Fprintf(tw, "%s: error: %s\n", f.Path, f.Error)
			continue
		}
		st := f.Stats
		fmt.Fprintf(tw, "%s: grade %d (%s), %d words, %d sentences, %d paragraphs, %s to read\n",
			f.Path, st.ReadingLevel, st.Readability, st.Words, st.Sentences, st.Paragraphs,
			readingTime(st.ReadingTimeInSecs))
		for _, fd := range f.Findings {
			line := fmt.Sprintf("  %d:%d\t%s\t%q", fd.Paragraph, fd.Sentence, fd.Category, excerpt(fd.Text))
			if len(fd.Suggestions) > 0 {
				line += "\t-> " + strings.Join(fd.Suggestions, ", ")
			}
			fmt.Fprintln(tw, line)
		}
		h := st.Highlights
		fmt.Fprintf(tw, "  adverbs %d, passive %d, weak %d, wordy %d, hard %d, very hard %d\n",
			h.Adverbs, h.PassiveVoices, h.Qualifiers, h.ComplexWords, h.HardSentences, h.VeryHardSentences)
		sc := f.Scores
		fmt.Fprintf(tw, "  score %.2f (readability %.2f, conciseness %.2f, active voice %.2f, paragraphs %.2f)\n",
			sc.Total, sc.Readability, sc.Conciseness, sc.ActiveVoice, sc.ParagraphStructure)
	}
	return tw.Flush()
}

// excerpt shortens long sentence-level findings.
func excerpt(s string) string {
	const max = 60
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-3]) + "..."
}

func readingTime(secs float64) string {
	d := time.Duration(secs * float64(time.Second)).Round(time.Second)
	if d < time.Second {
		return "<1s"
	}
	return d.String()
}
