package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/ppiankov/atomlogic/internal/dataset"
	"github.com/ppiankov/atomlogic/internal/pipeline"
)

var generateTimeout time.Duration

// generateCmd represents the generate command
var generateCmd = &cobra.Command{
	Use:   "generate <file>",
	Short: "Generate text-to-logic datasets from a file of relations",
	Long: `Generate reads tagged relations (one per line) and writes:
- all_dataset.csv with every relation
- persona_dataset.csv, mental_dataset.csv and event_dataset.csv
- *_wo_q.csv variants without quantifiers (unless disabled)
- manifest.yaml describing the run

Each dataset row is "<untagged relation>\t<formula>".

Example:
  atomlogic generate relations.txt
  atomlogic generate relations.txt --out-dir ./datasets --workers 8
  atomlogic generate relations.txt --without-quantifiers=false`,
	Args: cobra.ExactArgs(1),
	RunE: runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().String("out-dir", "./atomic_datasets", "output directory for datasets")
	generateCmd.Flags().Int("workers", 0, "number of concurrent workers (default: number of CPUs)")
	generateCmd.Flags().Bool("without-quantifiers", true, "also write *_wo_q datasets")
	generateCmd.Flags().DurationVar(&generateTimeout, "timeout", 0, "total timeout for generation (0 = none)")

	_ = viper.BindPFlag("output.dir", generateCmd.Flags().Lookup("out-dir"))
	_ = viper.BindPFlag("logic.without_quantifiers", generateCmd.Flags().Lookup("without-quantifiers"))
}

func runGenerate(cmd *cobra.Command, args []string) error {
	file := args[0]

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	// zero keeps the configured worker count
	if w, _ := cmd.Flags().GetInt("workers"); w > 0 {
		cfg.Concurrency.Workers = w
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if generateTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, generateTimeout)
		defer cancel()
	}

	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "═══════════════════════════════════════════════════════════\n")
	fmt.Fprintf(os.Stderr, "  atomlogic dataset generation\n")
	fmt.Fprintf(os.Stderr, "═══════════════════════════════════════════════════════════\n")
	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "  Input file:   %s\n", file)
	fmt.Fprintf(os.Stderr, "  Workers:      %d\n", cfg.Concurrency.Workers)
	fmt.Fprintf(os.Stderr, "  Output dir:   %s\n", cfg.Output.Dir)
	fmt.Fprintf(os.Stderr, "  Quantifiers:  %v (without: %v)\n", cfg.Logic.Quantifiers, cfg.Logic.WithoutQuantifiers)
	fmt.Fprintf(os.Stderr, "\n")

	relations, err := dataset.ReadRelations(file)
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "✓ Loaded %d relations\n", len(relations))

	p := pipeline.NewPipeline(cfg, logger)
	defer func() {
		if cerr := p.Close(); cerr != nil {
			logger.Warn("Failed to persist formula cache", zap.Error(cerr))
		}
	}()

	start := time.Now()
	manifest, err := dataset.NewGenerator(p, cfg, logger).Generate(ctx, file, relations)
	if err != nil {
		return fmt.Errorf("generate datasets: %w", err)
	}

	for _, d := range manifest.Datasets {
		fmt.Fprintf(os.Stderr, "✓ %-24s %6d rows  %s\n", d.Name, d.Rows, d.Path)
	}

	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "═══════════════════════════════════════════════════════════\n")
	fmt.Fprintf(os.Stderr, "  Generation Complete\n")
	fmt.Fprintf(os.Stderr, "═══════════════════════════════════════════════════════════\n")
	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "  Run:        %s\n", manifest.RunID)
	fmt.Fprintf(os.Stderr, "  Relations:  %d (%d excluded)\n", manifest.Relations, manifest.Excluded)
	fmt.Fprintf(os.Stderr, "  Datasets:   %d\n", len(manifest.Datasets))
	fmt.Fprintf(os.Stderr, "  Cache:      %d hits, %d misses\n", manifest.Cache.Hits, manifest.Cache.Misses)
	fmt.Fprintf(os.Stderr, "  Elapsed:    %v\n", time.Since(start).Round(time.Millisecond))
	fmt.Fprintf(os.Stderr, "\n")

	return nil
}
