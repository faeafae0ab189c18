package pipeline

import (
	"context"
	"fmt"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/ppiankov/atomlogic/internal/cache"
	"github.com/ppiankov/atomlogic/internal/logic"
	"github.com/ppiankov/atomlogic/internal/model"
)

// Pipeline translates relations with an optional formula cache in front of
// the logifier. Pipelines derived with WithOptions share the cache.
type Pipeline struct {
	logifier *logic.Logifier
	formulas cache.Cache // nil when caching is disabled
	save     func() error
	logger   *zap.Logger
	stats    *stats
}

type stats struct {
	hits   atomic.Int64
	misses atomic.Int64
}

// Stats reports cache effectiveness
type Stats struct {
	Hits    int64
	Misses  int64
	Entries int // formulas held by the cache
}

// TranslateResult contains a translated relation
type TranslateResult struct {
	Relation string
	Formula  string
	Cached   bool
}

// NewPipeline creates a new pipeline with the given configuration
func NewPipeline(cfg *model.Config, logger *zap.Logger) *Pipeline {
	if logger == nil {
		logger = zap.NewNop()
	}

	p := &Pipeline{
		logifier: logic.NewLogifier(logic.Options{Quantifiers: cfg.Logic.Quantifiers}),
		logger:   logger,
		stats:    &stats{},
	}

	if cfg.Cache.Enabled {
		memory := cache.NewMemoryCache(cfg.Cache.TTL)
		p.formulas = memory

		if path := cfg.Cache.Snapshot; path != "" {
			n, err := cache.LoadSnapshot(memory, path)
			if err != nil {
				// a bad snapshot only costs speed
				logger.Warn("Ignoring formula cache snapshot", zap.String("path", path), zap.Error(err))
			} else {
				logger.Debug("Loaded formula cache snapshot", zap.String("path", path), zap.Int("entries", n))
			}

			p.save = func() error {
				if err := cache.SaveSnapshot(memory, path); err != nil {
					return fmt.Errorf("save cache snapshot: %w", err)
				}
				logger.Debug("Saved formula cache snapshot", zap.String("path", path), zap.Int("entries", memory.Len()))
				return nil
			}
		}
	}

	return p
}

// WithOptions returns a pipeline rendering with different options that
// shares this pipeline's cache, logger and stats.
func (p *Pipeline) WithOptions(opts logic.Options) *Pipeline {
	clone := *p
	clone.logifier = logic.NewLogifier(opts)
	return &clone
}

// Options returns the rendering options of the pipeline
func (p *Pipeline) Options() logic.Options {
	return p.logifier.Options()
}

// Translate converts a single relation into a formula
func (p *Pipeline) Translate(ctx context.Context, relation string) (*TranslateResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var key string
	if p.formulas != nil {
		key = cache.Key(p.Options().Quantifiers, relation)
		if formula, ok := p.formulas.Get(key); ok {
			p.stats.hits.Add(1)
			return &TranslateResult{Relation: relation, Formula: formula, Cached: true}, nil
		}
	}

	formula, err := p.logifier.Translate(relation)
	if err != nil {
		return nil, fmt.Errorf("translate: %w", err)
	}
	p.stats.misses.Add(1)

	if p.formulas != nil {
		p.formulas.Set(key, formula)
	}

	return &TranslateResult{Relation: relation, Formula: formula}, nil
}

// Stats returns cache hit and miss counts so far
func (p *Pipeline) Stats() Stats {
	st := Stats{
		Hits:   p.stats.hits.Load(),
		Misses: p.stats.misses.Load(),
	}
	if p.formulas != nil {
		st.Entries = p.formulas.Len()
	}
	return st
}

// Close persists the formula cache when a snapshot path is configured
func (p *Pipeline) Close() error {
	if p.save == nil {
		return nil
	}
	return p.save()
}
