package tagged

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMissingSeparator is returned when a token has no "/" between word and tag
var ErrMissingSeparator = errors.New("token missing tag separator")

// Separator splits a token's surface form from its POS tag
const Separator = "/"

// Tags the logifiers care about. Everything else is treated as content.
const (
	TagIndividual  = "IND"
	TagDeterminer  = "DT"
	TagConjunction = "CC"
	TagPronoun     = "PRP"
	TagPossessive  = "PRP$"
	TagPeriod      = "."
)

// Token is a single word/TAG pair from a tagged clause
type Token struct {
	Word string
	Tag  string
}

// IsIndividual reports whether the token is a person placeholder
func (t Token) IsIndividual() bool {
	return t.Tag == TagIndividual
}

// IsDeterminer reports whether the token is a determiner
func (t Token) IsDeterminer() bool {
	return t.Tag == TagDeterminer
}

// IsPunctuation reports whether the token is sentence-final punctuation
func (t Token) IsPunctuation() bool {
	return t.Tag == TagPeriod
}

// StartsObject reports whether the tag is a noun or adjective that can open
// an object phrase directly after a verb.
func (t Token) StartsObject() bool {
	switch t.Tag {
	case "NN", "NNS", "JJ", "JJS":
		return true
	}
	return false
}

// IsConceptBoundary reports whether the token separates concepts in an
// inference clause.
func (t Token) IsConceptBoundary() bool {
	switch t.Tag {
	case TagIndividual, TagDeterminer, TagConjunction, TagPronoun, TagPossessive:
		return true
	}
	return false
}

// String renders the token back into word/TAG form
func (t Token) String() string {
	return t.Word + Separator + t.Tag
}

// Parse splits a whitespace-tokenized, POS-tagged clause into tokens.
// The tag is everything after the last "/" and is upper-cased.
func Parse(clause string) ([]Token, error) {
	fields := strings.Fields(clause)
	tokens := make([]Token, 0, len(fields))

	for _, field := range fields {
		idx := strings.LastIndex(field, Separator)
		if idx < 0 {
			return nil, fmt.Errorf("%w: %q", ErrMissingSeparator, field)
		}
		tokens = append(tokens, Token{
			Word: field[:idx],
			Tag:  strings.ToUpper(field[idx+1:]),
		})
	}

	return tokens, nil
}

// StripTags returns the words of a tagged text, dropping everything from
// the last "/" of each token. Tokens without a tag are kept as they are.
func StripTags(text string) []string {
	fields := strings.Fields(text)
	words := make([]string, len(fields))
	for i, f := range fields {
		if idx := strings.LastIndex(f, Separator); idx >= 0 {
			f = f[:idx]
		}
		words[i] = f
	}
	return words
}
