package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ppiankov/atomlogic/internal/pipeline"
)

var translateCmd = &cobra.Command{
	Use:   "translate <relation>...",
	Short: "Translate tagged relations and print their formulas",
	Long: `Translate prints one formula per relation, in argument order.

Example:
  atomlogic translate "PersonX/IND runs/VB,xIntent,to/TO win/VB a/DT race/NN"
  atomlogic translate --quantifiers=false "PersonX/IND helps/VB PersonY/IND,oReact,grateful/JJ"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runTranslate,
}

func init() {
	rootCmd.AddCommand(translateCmd)
}

func runTranslate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	p := pipeline.NewPipeline(cfg, logger)
	defer func() {
		if cerr := p.Close(); cerr != nil {
			logger.Warn("Failed to persist formula cache", zap.Error(cerr))
		}
	}()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	out := cmd.OutOrStdout()
	for _, relation := range args {
		result, err := p.Translate(ctx, relation)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, result.Formula)
	}
	return nil
}
