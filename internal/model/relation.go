package model

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ppiankov/atomlogic/internal/tagged"
)

// ErrMalformedRelation is returned when a relation does not have exactly
// three comma separated fields.
var ErrMalformedRelation = errors.New("malformed relation")

// Relation is an if-then relation: an event, the dimension relating it to
// the inference, and the inference itself. Event and inference are tagged.
type Relation struct {
	Event     string
	Dimension Dimension
	Inference string
}

// ParseRelation splits "event,dimension,inference"
func ParseRelation(s string) (Relation, error) {
	fields := strings.Split(s, ",")
	if len(fields) != 3 {
		return Relation{}, fmt.Errorf("%w: expected 3 fields, got %d: %q", ErrMalformedRelation, len(fields), s)
	}
	return Relation{
		Event:     fields[0],
		Dimension: Dimension(fields[1]),
		Inference: fields[2],
	}, nil
}

// String joins the relation back into its comma separated form
func (r Relation) String() string {
	return strings.Join([]string{r.Event, string(r.Dimension), r.Inference}, ",")
}

// Subject returns the perspective marker of the relation: the first
// character of its dimension ("x" or "o"), or "" for an empty dimension.
func (r Relation) Subject() string {
	if r.Dimension == "" {
		return ""
	}
	return string(r.Dimension)[:1]
}

const (
	excludedIndividual = "personz"
	noneInference      = "none"
	openSlot           = "___"
)

// Open reports whether the event has an unfilled "___" slot
func (r Relation) Open() bool {
	return strings.Contains(r.Event, openSlot)
}

// Excluded reports whether the relation is kept out of datasets: it is open,
// involves PersonZ, or its inference is empty or "none".
func (r Relation) Excluded() bool {
	if r.Open() {
		return true
	}
	if strings.Contains(strings.ToLower(r.Event), excludedIndividual) ||
		strings.Contains(strings.ToLower(r.Inference), excludedIndividual) {
		return true
	}
	inference := strings.ToLower(strings.Join(tagged.StripTags(r.Inference), " "))
	return inference == "" || inference == noneInference
}

// FilterRelations drops excluded relations, keeping input order, and
// reports how many were dropped.
func FilterRelations(relations []string) ([]string, int, error) {
	kept := make([]string, 0, len(relations))
	for i, r := range relations {
		rel, err := ParseRelation(r)
		if err != nil {
			return nil, 0, fmt.Errorf("relation %d: %w", i, err)
		}
		if !rel.Excluded() {
			kept = append(kept, r)
		}
	}
	return kept, len(relations) - len(kept), nil
}

// Dimension names the kind of inference drawn from an event
type Dimension string

const (
	DimOEffect Dimension = "oEffect" // Effect on others
	DimOReact  Dimension = "oReact"  // How others feel
	DimOWant   Dimension = "oWant"   // What others want
	DimXAttr   Dimension = "xAttr"   // How PersonX is seen
	DimXEffect Dimension = "xEffect" // Effect on PersonX
	DimXIntent Dimension = "xIntent" // Why PersonX does it
	DimXNeed   Dimension = "xNeed"   // What PersonX needs first
	DimXReact  Dimension = "xReact"  // How PersonX feels
	DimXWant   Dimension = "xWant"   // What PersonX wants after
)

// Dimensions lists every known dimension in dataset column order
var Dimensions = []Dimension{
	DimOEffect, DimOReact, DimOWant,
	DimXAttr, DimXEffect, DimXIntent, DimXNeed, DimXReact, DimXWant,
}

// Category groups dimensions into datasets
type Category string

const (
	CategoryPersona Category = "persona"
	CategoryMental  Category = "mental"
	CategoryEvent   Category = "event"
)

// Categories lists the categories in the order datasets are generated
var Categories = []Category{CategoryPersona, CategoryMental, CategoryEvent}

var categoryDimensions = map[Category][]Dimension{
	CategoryPersona: {DimXAttr},
	CategoryMental:  {DimXIntent, DimXReact, DimOReact},
	CategoryEvent:   {DimXEffect, DimOEffect, DimXNeed, DimXWant, DimOWant},
}

// CategoryOf returns the category of a dimension
func CategoryOf(d Dimension) (Category, bool) {
	for _, c := range Categories {
		for _, cd := range categoryDimensions[c] {
			if cd == d {
				return c, true
			}
		}
	}
	return "", false
}

// SplitByCategory groups relations by the category of their dimension,
// keeping input order. Relations with an unknown dimension are left out;
// malformed relations are an error.
func SplitByCategory(relations []string) (map[Category][]string, error) {
	split := make(map[Category][]string, len(Categories))
	for _, c := range Categories {
		split[c] = []string{}
	}

	for i, r := range relations {
		rel, err := ParseRelation(r)
		if err != nil {
			return nil, fmt.Errorf("relation %d: %w", i, err)
		}
		if c, ok := CategoryOf(rel.Dimension); ok {
			split[c] = append(split[c], r)
		}
	}

	return split, nil
}
