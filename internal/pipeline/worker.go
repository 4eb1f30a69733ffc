package pipeline

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"

	"github.com/dgallion1/clearprose/internal/parser"
)

// Worker processes a single document job.
type Worker struct {
	runner     *Runner
	log        *slog.Logger
	parserOpts parser.Options
}

func NewWorker(runner *Runner, log *slog.Logger, parserOpts parser.Options) *Worker {
	return &Worker{
		runner:     runner,
		log:        log,
		parserOpts: parserOpts,
	}
}

// Process parses the uploaded file, analyzes its prose and stores the
// result on the job.
func (w *Worker) Process(ctx context.Context, job *Job) {
	log := w.log.With("job_id", job.ID, "filename", job.Filename)

	// Phase 1: Parse
	job.SetStatus(StatusParsing, "parsing")
	p, err := parser.ForFile(job.Filename, w.parserOpts)
	if err != nil {
		log.Error("unsupported format", "error", err)
		job.AddError(err.Error())
		job.SetStatus(StatusFailed, "parsing")
		return
	}

	doc, err := p.Parse(bytes.NewReader(job.FileData()), job.Filename)
	// The raw upload is no longer needed once parsed.
	job.SetFileData(nil)
	if err != nil {
		log.Error("parse failed", "error", err)
		job.AddError(fmt.Sprintf("parse: %s", err))
		job.SetStatus(StatusFailed, "parsing")
		return
	}

	title := job.Title
	if title == "" {
		title = doc.Title
	}

	text := doc.Text()
	if text == "" {
		log.Warn("no prose extracted")
		job.AddError("no extractable prose")
		job.SetStatus(StatusFailed, "parsing")
		return
	}
	job.mu.Lock()
	job.Title = title
	job.ContentHash = ContentHashHex([]byte(text))
	job.mu.Unlock()

	// Phase 2: Analyze
	job.SetStatus(StatusAnalyzing, "analyzing")
	source := job.Source
	if source == "" {
		source = SourceUpload
	}
	res, err := w.runner.Analyze(ctx, text, job.Settings, source)
	if err != nil {
		log.Error("analysis failed", "error", err)
		job.AddError(fmt.Sprintf("analyze: %s", err))
		job.SetStatus(StatusFailed, "analyzing")
		return
	}
	res.Title = title
	job.SetResult(res)

	log.Info("analysis complete",
		"paragraphs", res.Document.Stats.Paragraphs,
		"words", res.Document.Stats.Words,
		"reading_level", res.Document.Stats.ReadingLevel,
		"cached", res.Cached,
	)
	job.SetStatus(StatusCompleted, "done")
}
