// Package pipeline orchestrates the four matching stages: parse the resume,
// select a job posting, extract it, analyze and write. Stages run strictly
// sequentially; a wall-clock budget is checked at every stage boundary and
// budget exhaustion routes to the canned fallback record.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jonathan/jobmatch/internal/analyzer"
	"github.com/jonathan/jobmatch/internal/extractor"
	"github.com/jonathan/jobmatch/internal/fetch"
	"github.com/jonathan/jobmatch/internal/llm"
	"github.com/jonathan/jobmatch/internal/parser"
	"github.com/jonathan/jobmatch/internal/registry"
	"github.com/jonathan/jobmatch/internal/schemas"
	"github.com/jonathan/jobmatch/internal/selector"
	"github.com/jonathan/jobmatch/internal/types"
)

// DefaultBudget is the wall-clock limit for one pipeline run. The budget is
// cooperative: it gates stage entry, it does not interrupt in-flight calls.
const DefaultBudget = 55 * time.Second

// Options configures a Pipeline. Client is required; everything else has a
// usable default.
type Options struct {
	Client   llm.Client
	Fetcher  fetch.Fetcher
	Registry *registry.Registry
	Budget   time.Duration
	Logger   *zap.Logger
	Now      func() time.Time
}

// Pipeline runs resume-to-job matching end to end.
type Pipeline struct {
	parser    *parser.Parser
	extractor *extractor.Extractor
	analyzer  *analyzer.Analyzer
	registry  *registry.Registry
	budget    time.Duration
	logger    *zap.Logger
	now       func() time.Time
}

// New builds a Pipeline from options, filling in defaults for the fetcher,
// registry, budget, logger and clock.
func New(opts Options) (*Pipeline, error) {
	if opts.Client == nil {
		return nil, errors.New("pipeline: LLM client is required")
	}
	if opts.Fetcher == nil {
		opts.Fetcher = fetch.NewClient(nil)
	}
	if opts.Registry == nil {
		reg, err := registry.LoadEmbedded()
		if err != nil {
			return nil, fmt.Errorf("pipeline: load job registry: %w", err)
		}
		opts.Registry = reg
	}
	if opts.Budget <= 0 {
		opts.Budget = DefaultBudget
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Pipeline{
		parser:    parser.New(opts.Client),
		extractor: extractor.New(opts.Fetcher),
		analyzer:  analyzer.New(opts.Client),
		registry:  opts.Registry,
		budget:    opts.Budget,
		logger:    opts.Logger,
		now:       opts.Now,
	}, nil
}

// Run executes the full pipeline for one request. The returned record is
// always well formed: a complete FinalRecord, an error record on terminal
// parse failure, or the canned fallback. _debug is stripped before return.
func (p *Pipeline) Run(ctx context.Context, resumeText, jobQuery string) (rec *types.FinalRecord) {
	start := p.now()
	runID := uuid.NewString()
	log := p.logger.With(zap.String("run_id", runID))

	defer func() {
		if r := recover(); r != nil {
			log.Error("pipeline panic", zap.Any("panic", r))
			rec = schemas.StripDebug(FallbackRecord(ReasonExecutionError, fmt.Sprint(r)))
		}
	}()

	timings := map[string]any{}

	// PARSE
	if p.overBudget(start) {
		log.Warn("budget exhausted before parse stage")
		return schemas.StripDebug(FallbackRecord(ReasonTimeout, ""))
	}
	stageStart := p.now()
	resume, err := p.parser.Parse(ctx, resumeText)
	timings["parse_ms"] = p.now().Sub(stageStart).Milliseconds()
	if err != nil {
		log.Error("resume parsing failed", zap.Error(err))
		return schemas.StripDebug(parser.NewErrorRecord(err))
	}
	log.Info("resume parsed", zap.String("name", resume.Name), zap.Int("skills", len(resume.Skills)))

	// SELECT
	if p.overBudget(start) {
		log.Warn("budget exhausted before select stage")
		return schemas.StripDebug(FallbackRecord(ReasonTimeout, ""))
	}
	query := strings.TrimSpace(jobQuery)
	if query == "" {
		query = selector.InferCategoryFromResume(resume, p.registry)
	}
	primaryURL, backupURL := selector.SelectJob(query, p.registry)
	log.Info("job selected", zap.String("query", query), zap.String("url", primaryURL))

	// EXTRACT
	if p.overBudget(start) {
		log.Warn("budget exhausted before extract stage")
		return schemas.StripDebug(FallbackRecord(ReasonTimeout, ""))
	}
	stageStart = p.now()
	job, err := p.extractor.Extract(ctx, primaryURL, backupURL)
	timings["extract_ms"] = p.now().Sub(stageStart).Milliseconds()
	if err != nil {
		log.Error("job extraction failed for all candidates", zap.Error(err))
		return schemas.StripDebug(FallbackRecord(ReasonExtractionFailure, err.Error()))
	}
	log.Info("job extracted", zap.String("title", job.JobTitle), zap.String("company", job.Company))

	// ANALYZE
	if p.overBudget(start) {
		log.Warn("budget exhausted before analyze stage")
		return schemas.StripDebug(FallbackRecord(ReasonTimeout, ""))
	}
	stageStart = p.now()
	final, err := p.analyzer.Analyze(ctx, resume, job)
	timings["analyze_ms"] = p.now().Sub(stageStart).Milliseconds()
	if err != nil {
		log.Error("analysis failed", zap.Error(err))
		return schemas.StripDebug(FallbackRecord(ReasonExecutionError, err.Error()))
	}

	if final.Debug == nil {
		final.Debug = map[string]any{}
	}
	timings["total_ms"] = p.now().Sub(start).Milliseconds()
	final.Debug["run_id"] = runID
	final.Debug["selected_url"] = primaryURL
	final.Debug["timings"] = timings

	if final.MatchScore != nil {
		log.Info("pipeline complete", zap.Int("match_score", *final.MatchScore))
	}
	return schemas.StripDebug(final)
}

func (p *Pipeline) overBudget(start time.Time) bool {
	return p.now().Sub(start) > p.budget
}
