package dataset

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"github.com/ppiankov/atomlogic/internal/logic"
	"github.com/ppiankov/atomlogic/internal/model"
	"github.com/ppiankov/atomlogic/internal/pipeline"
	"github.com/ppiankov/atomlogic/internal/worker"
)

const (
	allDataset        = "all"
	datasetSuffix     = "_dataset"
	unquantifiedTag   = "_wo_q"
	datasetExtension  = ".csv"
	manifestFile      = "manifest.yaml"
	maxParallelWrites = 4
)

// Manifest describes one generation run
type Manifest struct {
	RunID     string        `yaml:"run_id"`
	CreatedAt time.Time     `yaml:"created_at"`
	Input     string        `yaml:"input,omitempty"`
	Relations int           `yaml:"relations"`
	Excluded  int           `yaml:"excluded"`
	Datasets  []DatasetInfo `yaml:"datasets"`
	Cache     CacheInfo     `yaml:"cache"`
}

// DatasetInfo describes one written dataset file
type DatasetInfo struct {
	Name        string `yaml:"name"`
	Path        string `yaml:"path"`
	Rows        int    `yaml:"rows"`
	Quantifiers bool   `yaml:"quantifiers"`
}

// CacheInfo records how many formulas came from the cache
type CacheInfo struct {
	Hits   int64 `yaml:"hits"`
	Misses int64 `yaml:"misses"`
}

// Generator writes the all/category datasets for a list of relations
type Generator struct {
	pipeline           *pipeline.Pipeline
	outDir             string
	workers            int
	interval           time.Duration
	withoutQuantifiers bool
	logger             *zap.Logger
}

// NewGenerator creates a dataset generator. Quantified datasets follow the
// pipeline's options; unquantified "_wo_q" datasets are added when
// cfg.Logic.WithoutQuantifiers is set.
func NewGenerator(p *pipeline.Pipeline, cfg *model.Config, logger *zap.Logger) *Generator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Generator{
		pipeline:           p,
		outDir:             cfg.Output.Dir,
		workers:            cfg.Concurrency.Workers,
		interval:           cfg.Progress.Interval,
		withoutQuantifiers: cfg.Logic.WithoutQuantifiers,
		logger:             logger,
	}
}

type relationGroup struct {
	name      string
	relations []string
}

type pendingDataset struct {
	info     DatasetInfo
	contexts []string
	targets  []string
}

// Generate translates the relations and writes one dataset for all of them
// plus one per category. Excluded relations (open events, PersonZ, empty or
// "none" inferences) are skipped. input is only recorded in the manifest.
func (g *Generator) Generate(ctx context.Context, input string, all []string) (*Manifest, error) {
	relations, excluded, err := model.FilterRelations(all)
	if err != nil {
		return nil, fmt.Errorf("filter relations: %w", err)
	}
	if excluded > 0 {
		g.logger.Info("Excluded relations", zap.Int("excluded", excluded), zap.Int("kept", len(relations)))
	}

	split, err := model.SplitByCategory(relations)
	if err != nil {
		return nil, fmt.Errorf("split categories: %w", err)
	}

	variants := []*pipeline.Pipeline{g.pipeline}
	if g.withoutQuantifiers && g.pipeline.Options().Quantifiers {
		variants = append(variants, g.pipeline.WithOptions(logic.Options{Quantifiers: false}))
	}

	groups := []relationGroup{{allDataset, relations}}
	for _, c := range model.Categories {
		groups = append(groups, relationGroup{string(c), split[c]})
	}

	var pending []pendingDataset
	for _, p := range variants {
		processor := worker.NewBatchProcessor(p, g.workers, g.interval, g.logger)
		quantified := p.Options().Quantifiers

		for _, group := range groups {
			formulas, err := processor.Formulas(ctx, group.relations)
			if err != nil {
				return nil, fmt.Errorf("%s dataset: %w", group.name, err)
			}

			name := group.name + datasetSuffix
			if !quantified {
				name += unquantifiedTag
			}

			contexts := make([]string, len(group.relations))
			for i, r := range group.relations {
				contexts[i] = Untag(r)
			}

			pending = append(pending, pendingDataset{
				info: DatasetInfo{
					Name:        name,
					Path:        filepath.Join(g.outDir, name+datasetExtension),
					Rows:        len(formulas),
					Quantifiers: quantified,
				},
				contexts: contexts,
				targets:  formulas,
			})
			g.logger.Info("Translated dataset", zap.String("dataset", name), zap.Int("rows", len(formulas)))
		}
	}

	if err := g.write(ctx, pending); err != nil {
		return nil, err
	}

	stats := g.pipeline.Stats()
	manifest := &Manifest{
		RunID:     uuid.NewString(),
		CreatedAt: time.Now().UTC(),
		Input:     input,
		Relations: len(all),
		Excluded:  excluded,
		Cache:     CacheInfo{Hits: stats.Hits, Misses: stats.Misses},
	}
	for _, d := range pending {
		manifest.Datasets = append(manifest.Datasets, d.info)
	}

	if err := WriteManifest(filepath.Join(g.outDir, manifestFile), manifest); err != nil {
		return nil, err
	}

	return manifest, nil
}

func (g *Generator) write(ctx context.Context, pending []pendingDataset) error {
	if err := os.MkdirAll(g.outDir, 0755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(maxParallelWrites)

	for _, d := range pending {
		d := d
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := WriteDataset(d.info.Path, d.contexts, d.targets); err != nil {
				return fmt.Errorf("%s: %w", d.info.Name, err)
			}
			g.logger.Debug("Wrote dataset", zap.String("path", d.info.Path), zap.Int("rows", d.info.Rows))
			return nil
		})
	}

	return eg.Wait()
}

// WriteManifest writes a run manifest as YAML
func WriteManifest(path string, m *Manifest) error {
	data, err := yaml.Marshal(m)
	if err != nil {
		return fmt.Errorf("marshal manifest: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write manifest: %w", err)
	}
	return nil
}

// ReadManifest reads a run manifest written by WriteManifest
func ReadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("unmarshal manifest: %w", err)
	}
	return &m, nil
}
