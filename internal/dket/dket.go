// Package dket cleans DKET text/logic pairs into the plain format used
// alongside the generated datasets.
//
// DKET text is POS-tagged and ends in an <EOS> marker. Its logic refers to
// words of the text by position, as LOC#<index> tokens.
package dket

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/ppiankov/atomlogic/internal/dataset"
	"github.com/ppiankov/atomlogic/internal/tagged"
)

// ErrIndexOutOfRange is returned when the logic refers past the end of the text
var ErrIndexOutOfRange = errors.New("logic index out of range")

const (
	taggedEOS      = "<EOS>/<EOS>"
	eos            = "<EOS>"
	locationPrefix = "LOC#"
)

// Clean strips tags and markers from text and resolves the word indices
// used in logic.
func Clean(text, logic string) (string, string, error) {
	words := tagged.StripTags(strings.ReplaceAll(text, taggedEOS, ""))

	logic = strings.ReplaceAll(logic, locationPrefix, "")
	logic = strings.ReplaceAll(logic, eos, "")

	tokens := strings.Fields(logic)
	for i, tok := range tokens {
		if !isDigits(tok) {
			continue
		}
		idx, err := strconv.Atoi(tok)
		if err != nil || idx >= len(words) {
			return "", "", fmt.Errorf("%w: %s (text has %d words)", ErrIndexOutOfRange, tok, len(words))
		}
		tokens[i] = words[idx]
	}

	return strings.Join(words, " "), strings.Join(tokens, " "), nil
}

// Convert cleans every pair of a tab separated DKET file and writes the
// result as a dataset.
func Convert(inPath, outPath string) (int, error) {
	pairs, err := dataset.ReadPairs(inPath)
	if err != nil {
		return 0, err
	}

	texts := make([]string, len(pairs))
	logics := make([]string, len(pairs))
	for i, p := range pairs {
		texts[i], logics[i], err = Clean(p[0], p[1])
		if err != nil {
			return 0, fmt.Errorf("row %d: %w", i, err)
		}
	}

	if err := dataset.WriteDataset(outPath, texts, logics); err != nil {
		return 0, err
	}
	return len(pairs), nil
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
