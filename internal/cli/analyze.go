package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/dgallion1/clearprose/internal/cache"
	"github.com/dgallion1/clearprose/internal/doctree"
	"github.com/dgallion1/clearprose/internal/logging"
	"github.com/dgallion1/clearprose/internal/parser"
	"github.com/dgallion1/clearprose/internal/pipeline"
	"github.com/dgallion1/clearprose/internal/readability"
	"github.com/dgallion1/clearprose/internal/report"
)

// ErrFindings is returned when an input failed or exceeded --max-grade, so
// scripts can tell a clean run from a dirty one by exit status.
var ErrFindings = errors.New("documents failed checks")

type analyzeOptions struct {
	Target      string
	Format      string
	Concurrency int
	MaxGrade    int
	Ignore      []string
	Watch       bool
	Stdin       bool
	PDFFallback bool
}

func newAnalyzeCmd(root *rootOptions) *cobra.Command {
	opts := &analyzeOptions{}

	cmd := &cobra.Command{
		Use:   "analyze [paths or globs...]",
		Short: "Analyze documents and report readability issues",
		Example: `  clearprose analyze README.md
  clearprose analyze 'docs/**/*.md' --target technical --format json
  cat draft.txt | clearprose analyze --stdin`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAnalyze(cmd, root, opts, args)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.Target, "target", "t", "", "reading level target: accessible, normal or technical")
	f.StringVarP(&opts.Format, "format", "f", "", "output format: text, json or yaml")
	f.IntVarP(&opts.Concurrency, "concurrency", "j", 0, "files analyzed in parallel (default: number of CPUs)")
	f.IntVar(&opts.MaxGrade, "max-grade", 0, "exit non-zero when a document's grade exceeds this (0 disables)")
	f.StringSliceVar(&opts.Ignore, "ignore", nil, "glob patterns of files to skip (repeatable)")
	f.BoolVarP(&opts.Watch, "watch", "w", false, "re-analyze files when they change")
	f.BoolVar(&opts.Stdin, "stdin", false, "read plain text from standard input")
	f.BoolVar(&opts.PDFFallback, "pdftotext", true, "fall back to pdftotext for PDFs the built-in reader cannot handle")
	return cmd
}

// session holds what one analyze invocation needs.
type session struct {
	runner      *pipeline.Runner
	settings    doctree.Settings
	format      report.Format
	concurrency int
	maxGrade    int
	parserOpts  parser.Options
	log         *slog.Logger
	out         io.Writer
}

func runAnalyze(cmd *cobra.Command, root *rootOptions, opts *analyzeOptions, args []string) error {
	log := slog.New(logging.NewHandler(cmd.ErrOrStderr(), logging.Options{Level: root.LogLevel, Format: "text"}))

	fileCfg, cfgPath, err := resolveConfig(root.ConfigPath, ".")
	if err != nil {
		return err
	}
	if cfgPath != "" {
		log.Debug("loaded config", "path", cfgPath)
	}

	s, err := newSession(cmd, opts, fileCfg, log)
	if err != nil {
		return err
	}
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	if opts.Stdin {
		if opts.Watch {
			return fmt.Errorf("--watch cannot be used with --stdin")
		}
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("reading stdin: %w", err)
		}
		files := []report.File{s.analyzeText(ctx, "-", string(data))}
		return s.emit(files)
	}

	if len(args) == 0 {
		return fmt.Errorf("no input: pass files, directories or globs, or use --stdin")
	}
	paths, err := ResolveFiles(args, append(fileCfg.Ignore, opts.Ignore...))
	if err != nil {
		return err
	}
	if len(paths) == 0 {
		return fmt.Errorf("no supported documents matched %v", args)
	}
	log.Debug("resolved inputs", "files", len(paths))

	files, err := s.analyzeFiles(ctx, paths)
	if err != nil {
		return err
	}
	emitErr := s.emit(files)
	if !opts.Watch || (emitErr != nil && !errors.Is(emitErr, ErrFindings)) {
		return emitErr
	}
	return s.watch(ctx, paths)
}

func newSession(cmd *cobra.Command, opts *analyzeOptions, fileCfg *FileConfig, log *slog.Logger) (*session, error) {
	target := fileCfg.Target
	if cmd.Flags().Changed("target") {
		target = opts.Target
	}
	formatName := fileCfg.Format
	if cmd.Flags().Changed("format") {
		formatName = opts.Format
	}
	format, err := report.ParseFormat(formatName)
	if err != nil {
		return nil, err
	}
	concurrency := fileCfg.Concurrency
	if cmd.Flags().Changed("concurrency") {
		concurrency = opts.Concurrency
	}
	if concurrency <= 0 {
		concurrency = runtime.NumCPU()
	}
	maxGrade := fileCfg.MaxGrade
	if cmd.Flags().Changed("max-grade") {
		maxGrade = opts.MaxGrade
	}

	return &session{
		runner: pipeline.NewRunner(pipeline.RunnerOptions{
			Cache:    cache.NewMemory(256, time.Hour),
			CacheTTL: time.Hour,
			Log:      log,
		}),
		settings:    doctree.Settings{ReadingLevelTarget: readability.ParseTarget(target)},
		format:      format,
		concurrency: concurrency,
		maxGrade:    maxGrade,
		parserOpts:  parser.Options{PDFFallbackPdftotext: opts.PDFFallback},
		log:         log,
		out:         cmd.OutOrStdout(),
	}, nil
}

// analyzeFiles analyzes paths with bounded parallelism, keeping input order.
// A file that fails to parse becomes an error entry, not a failed run.
func (s *session) analyzeFiles(ctx context.Context, paths []string) ([]report.File, error) {
	files := make([]report.File, len(paths))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)
	for i, path := range paths {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			files[i] = s.analyzeFile(gctx, path)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return files, nil
}

func (s *session) analyzeFile(ctx context.Context, path string) report.File {
	p, err := parser.ForFile(path, s.parserOpts)
	if err != nil {
		return report.Failed(path, err)
	}
	f, err := os.Open(path)
	if err != nil {
		return report.Failed(path, err)
	}
	defer f.Close()

	doc, err := p.Parse(f, path)
	if err != nil {
		s.log.Warn("parse failed", "path", path, "error", err)
		return report.Failed(path, fmt.Errorf("parse: %w", err))
	}
	file := s.analyzeText(ctx, path, doc.Text())
	file.Title = doc.Title
	return file
}

func (s *session) analyzeText(ctx context.Context, name, text string) report.File {
	res, err := s.runner.Analyze(ctx, text, s.settings, pipeline.SourceCLI)
	if err != nil {
		return report.Failed(name, err)
	}
	return report.New(name, "", res.Document, res.Scores)
}

// emit writes files and reports whether any of them failed a check.
func (s *session) emit(files []report.File) error {
	if err := report.Write(s.out, s.format, files); err != nil {
		return err
	}
	for _, f := range files {
		if f.Error != "" {
			return ErrFindings
		}
		if s.maxGrade > 0 && f.Stats.ReadingLevel > s.maxGrade {
			return ErrFindings
		}
	}
	return nil
}
