package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ppiankov/atomlogic/internal/dket"
)

var dketOutDir string

var dketCmd = &cobra.Command{
	Use:   "dket <file>...",
	Short: "Clean DKET text/logic files into datasets",
	Long: `Dket strips POS tags and <EOS> markers from DKET text and resolves the
LOC#<index> references in its logic. Each input writes dket_<name>.csv.

Example:
  atomlogic dket train_2k.tsv test_2k.tsv --out-dir ./dket`,
	Args: cobra.MinimumNArgs(1),
	RunE: runDket,
}

func init() {
	rootCmd.AddCommand(dketCmd)
	dketCmd.Flags().StringVar(&dketOutDir, "out-dir", "./dket_datasets", "output directory for cleaned datasets")
}

func runDket(cmd *cobra.Command, args []string) error {
	for _, in := range args {
		name := strings.TrimSuffix(filepath.Base(in), filepath.Ext(in))
		out := filepath.Join(dketOutDir, "dket_"+name+".csv")

		n, err := dket.Convert(in, out)
		if err != nil {
			return fmt.Errorf("%s: %w", in, err)
		}

		logger.Debug("Converted DKET file", zap.String("input", in), zap.String("output", out), zap.Int("rows", n))
		fmt.Fprintf(os.Stderr, "✓ %s (%d rows) -> %s\n", in, n, out)
	}
	return nil
}
