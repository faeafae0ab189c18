// Package dataset reads tagged relations and writes the text/formula
// datasets used for training.
package dataset

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ppiankov/atomlogic/internal/tagged"
)

// ErrLengthMismatch is returned when contexts and targets differ in length
var ErrLengthMismatch = errors.New("contexts and targets differ in length")

// maxLineSize bounds a single relation line
const maxLineSize = 1 << 20

// ReadRelations reads tagged relations from a file (one per line).
// Blank lines are skipped; order and duplicates are kept.
func ReadRelations(filePath string) ([]string, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var relations []string

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 64*1024), maxLineSize)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		relations = append(relations, line)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan file: %w", err)
	}

	return relations, nil
}

// Untag turns a tagged relation into the plain text used as a dataset
// context: lower-cased, commas replaced by spaces, tags removed.
// Tokens without a tag are kept as they are.
func Untag(relation string) string {
	return strings.Join(tagged.StripTags(strings.ReplaceAll(strings.ToLower(relation), ",", " ")), " ")
}

// WriteDataset writes context/target pairs as tab separated rows
func WriteDataset(path string, contexts, targets []string) (err error) {
	if len(contexts) != len(targets) {
		return fmt.Errorf("%w: %d contexts, %d targets", ErrLengthMismatch, len(contexts), len(targets))
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create dataset: %w", err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close dataset: %w", closeErr)
		}
	}()

	w := csv.NewWriter(f)
	w.Comma = '\t'
	for i := range contexts {
		if err := w.Write([]string{contexts[i], targets[i]}); err != nil {
			return fmt.Errorf("write row %d: %w", i, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush dataset: %w", err)
	}

	return nil
}

// ReadPairs reads a tab separated file of two column rows
func ReadPairs(path string) ([][2]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer func() { _ = f.Close() }()

	r := csv.NewReader(f)
	r.Comma = '\t'
	r.FieldsPerRecord = 2
	r.LazyQuotes = true

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read pairs: %w", err)
	}

	pairs := make([][2]string, len(records))
	for i, rec := range records {
		pairs[i] = [2]string{rec[0], rec[1]}
	}
	return pairs, nil
}
