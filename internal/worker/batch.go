package worker

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/ppiankov/atomlogic/internal/pipeline"
)

// Translator defines the interface for translating a relation
type Translator interface {
	Translate(ctx context.Context, relation string) (*pipeline.TranslateResult, error)
}

// TranslateJob represents the translation of one relation of a batch
type TranslateJob struct {
	Index      int
	Relation   string
	Translator Translator
	Progress   *Progress
}

// Execute executes the translation job
func (j *TranslateJob) Execute(ctx context.Context) Result {
	result, err := j.Translator.Translate(ctx, j.Relation)
	if j.Progress != nil {
		j.Progress.Record(err)
	}
	if err != nil {
		return &TranslateResult{
			Index:    j.Index,
			Relation: j.Relation,
			Error:    err,
		}
	}
	return &TranslateResult{
		Index:    j.Index,
		Relation: j.Relation,
		Formula:  result.Formula,
		Cached:   result.Cached,
	}
}

// TranslateResult represents the result of a translation job
type TranslateResult struct {
	Index    int
	Relation string
	Formula  string
	Cached   bool
	Error    error
}

// GetError returns the error from the translation result
func (r *TranslateResult) GetError() error {
	return r.Error
}

// BatchProcessor translates many relations concurrently
type BatchProcessor struct {
	translator  Translator
	concurrency int
	interval    time.Duration
	logger      *zap.Logger
}

// NewBatchProcessor creates a new batch processor. Progress is logged at
// most once per interval.
func NewBatchProcessor(translator Translator, concurrency int, interval time.Duration, logger *zap.Logger) *BatchProcessor {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &BatchProcessor{
		translator:  translator,
		concurrency: concurrency,
		interval:    interval,
		logger:      logger,
	}
}

// ProcessRelations translates relations concurrently. The returned results
// line up one to one with the input. Relations that were never run because
// ctx was cancelled carry the context error.
func (b *BatchProcessor) ProcessRelations(ctx context.Context, relations []string) []*TranslateResult {
	if len(relations) == 0 {
		return []*TranslateResult{}
	}

	progress := NewProgress(b.logger, len(relations), b.interval)

	pool := NewPool(ctx, b.concurrency)
	pool.Start()

	for i, relation := range relations {
		job := &TranslateJob{
			Index:      i,
			Relation:   relation,
			Translator: b.translator,
			Progress:   progress,
		}
		if !pool.Submit(job) {
			break
		}
	}

	results := pool.Wait()

	ordered := make([]*TranslateResult, len(relations))
	for _, result := range results {
		r := result.(*TranslateResult)
		ordered[r.Index] = r
	}

	for i, r := range ordered {
		if r == nil {
			err := ctx.Err()
			if err == nil {
				err = context.Canceled
			}
			ordered[i] = &TranslateResult{Index: i, Relation: relations[i], Error: err}
		}
	}

	b.logger.Debug("Batch translated",
		zap.Int("relations", len(relations)),
		zap.Int64("failed", progress.Failed()))

	return ordered
}

// Formulas translates relations and returns their formulas in input order.
// The first failing relation, by position, aborts the batch.
func (b *BatchProcessor) Formulas(ctx context.Context, relations []string) ([]string, error) {
	results := b.ProcessRelations(ctx, relations)

	formulas := make([]string, len(results))
	for _, r := range results {
		if r.Error != nil {
			return nil, fmt.Errorf("relation %d: %w", r.Index, r.Error)
		}
		formulas[r.Index] = r.Formula
	}

	return formulas, nil
}

// FailedResults returns the failed results, keeping their order
func FailedResults(results []*TranslateResult) []*TranslateResult {
	var failed []*TranslateResult
	for _, r := range results {
		if r.Error != nil {
			failed = append(failed, r)
		}
	}
	return failed
}
