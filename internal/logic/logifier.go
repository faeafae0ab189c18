package logic

import (
	"fmt"

	"github.com/ppiankov/atomlogic/internal/model"
	"github.com/ppiankov/atomlogic/internal/tagged"
)

// Logifier translates tagged if-then relations into formulas.
// It holds no state besides its options and is safe for concurrent use.
type Logifier struct {
	opts Options
}

// NewLogifier creates a logifier with the given options
func NewLogifier(opts Options) *Logifier {
	return &Logifier{opts: opts}
}

// Options returns the rendering options of the logifier
func (l *Logifier) Options() Options {
	return l.opts
}

// Translate converts one "event,dimension,inference" relation into a formula.
// It fails only on a relation without exactly three fields or on a token
// without a tag separator.
func (l *Logifier) Translate(relation string) (string, error) {
	rel, err := model.ParseRelation(relation)
	if err != nil {
		return "", err
	}
	return l.TranslateRelation(rel)
}

// TranslateRelation converts an already split relation into a formula
func (l *Logifier) TranslateRelation(rel model.Relation) (string, error) {
	eventTokens, err := tagged.Parse(rel.Event)
	if err != nil {
		return "", fmt.Errorf("event: %w", err)
	}
	inferenceTokens, err := tagged.Parse(rel.Inference)
	if err != nil {
		return "", fmt.Errorf("inference: %w", err)
	}

	ev := EventToLogic(eventTokens)
	inf := InferenceToLogic(inferenceTokens, ev, rel.Subject())

	return Assemble(ev, inf, l.opts), nil
}

// TranslateAll converts relations in order. It stops at the first relation
// that cannot be translated and reports its position.
func (l *Logifier) TranslateAll(relations []string) ([]string, error) {
	formulas := make([]string, 0, len(relations))
	for i, r := range relations {
		f, err := l.Translate(r)
		if err != nil {
			return nil, fmt.Errorf("relation %d: %w", i, err)
		}
		formulas = append(formulas, f)
	}
	return formulas, nil
}
