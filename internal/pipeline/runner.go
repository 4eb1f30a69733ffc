package pipeline

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/dgallion1/clearprose/internal/analyzer"
	"github.com/dgallion1/clearprose/internal/cache"
	"github.com/dgallion1/clearprose/internal/doctree"
	"github.com/dgallion1/clearprose/internal/idgen"
	"github.com/dgallion1/clearprose/internal/scoring"
	"github.com/dgallion1/clearprose/internal/telemetry"
)

// Sources label where an analysis request came from.
const (
	SourceText   = "text"
	SourceUpload = "upload"
	SourceBatch  = "batch"
	SourceCLI    = "cli"
)

// Result is a finished analysis as served to clients and cached.
type Result struct {
	Title    string         `json:"title,omitempty"`
	Document *doctree.Block `json:"document"`
	Scores   scoring.Scores `json:"scores"`
	Cached   bool           `json:"cached"`
}

// RunnerOptions configure NewRunner. Only Analyzer-independent fields are
// optional; nil values fall back to no-op implementations.
type RunnerOptions struct {
	Analyzer *analyzer.Analyzer
	Cache    cache.Cache
	CacheTTL time.Duration
	IDs      idgen.Func
	Metrics  *telemetry.Metrics
	Latency  *telemetry.Latency
	Log      *slog.Logger
}

// Runner analyzes text, memoizing results by content hash and collapsing
// concurrent requests for the same text into one analysis.
type Runner struct {
	analyzer *analyzer.Analyzer
	cache    cache.Cache
	ttl      time.Duration
	ids      idgen.Func
	metrics  *telemetry.Metrics
	latency  *telemetry.Latency
	log      *slog.Logger

	group singleflight.Group
}

func NewRunner(opts RunnerOptions) *Runner {
	r := &Runner{
		analyzer: opts.Analyzer,
		cache:    opts.Cache,
		ttl:      opts.CacheTTL,
		ids:      opts.IDs,
		metrics:  opts.Metrics,
		latency:  opts.Latency,
		log:      opts.Log,
	}
	if r.analyzer == nil {
		r.analyzer = analyzer.New(nil)
	}
	if r.cache == nil {
		r.cache = cache.Nop{}
	}
	if r.ids == nil {
		r.ids = idgen.ULID()
	}
	if r.log == nil {
		r.log = slog.New(slog.DiscardHandler)
	}
	return r
}

// CacheKey identifies text analyzed under settings.
func CacheKey(text string, settings doctree.Settings) string {
	return ContentHashHex([]byte(string(settings.Target()) + "\x00" + text))
}

// Analyze returns the analysis of text. source labels metrics and is one of
// the Source constants. Cache failures are logged and never fail the call.
func (r *Runner) Analyze(ctx context.Context, text string, settings doctree.Settings, source string) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	key := CacheKey(text, settings)
	log := r.log.With("key", key[:12], "source", source)

	if res, ok := r.lookup(ctx, key, log); ok {
		return res, nil
	}

	v, err, shared := r.group.Do(key, func() (any, error) {
		start := time.Now()
		doc := r.analyzer.Analyze(text, settings, r.ids)
		res := &Result{Document: doc, Scores: scoring.Score(doc)}
		elapsed := time.Since(start)

		if r.metrics != nil {
			r.metrics.ObserveAnalysis(source, doc, elapsed)
		}
		if r.latency != nil {
			r.latency.Observe(elapsed)
		}
		log.Debug("analyzed", "words", doc.Stats.Words, "duration_ms", elapsed.Milliseconds())

		r.store(ctx, key, res, log)
		return res, nil
	})
	if err != nil {
		return nil, err
	}
	res := *v.(*Result)
	if shared {
		log.Debug("shared in-flight analysis")
	}
	return &res, nil
}

func (r *Runner) lookup(ctx context.Context, key string, log *slog.Logger) (*Result, bool) {
	data, err := r.cache.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, cache.ErrMiss) {
			log.Warn("cache get failed", "error", err)
		}
		r.cacheLookup(false)
		return nil, false
	}
	var res Result
	if err := json.Unmarshal(data, &res); err != nil || res.Document == nil {
		log.Warn("discarding corrupt cache entry", "error", err)
		r.cacheLookup(false)
		return nil, false
	}
	r.cacheLookup(true)
	res.Cached = true
	return &res, true
}

func (r *Runner) store(ctx context.Context, key string, res *Result, log *slog.Logger) {
	data, err := json.Marshal(res)
	if err != nil {
		log.Error("marshal result", "error", err)
		return
	}
	err = withRetry(ctx, func() error {
		return r.cache.Set(ctx, key, data, r.ttl)
	})
	if err != nil {
		log.Warn("cache set failed", "error", err)
	}
}

func (r *Runner) cacheLookup(hit bool) {
	if r.metrics != nil {
		r.metrics.CacheLookup(hit)
	}
}
