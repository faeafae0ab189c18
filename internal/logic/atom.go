// Package logic turns tagged if-then relations into first-order-logic
// formulas. Events become the body of an implication, inferences its head.
package logic

import "strings"

// Variable names with a fixed meaning in generated formulas
const (
	VarSubject = "x"
	VarOther   = "y"
	VarObject  = "z"
	VarFresh   = "u"

	// firstConcept is the variable given to the first concept of an inference
	firstConcept = 'a'
)

// PersonPredicate is the predicate of the atom emitted for each individual
const PersonPredicate = "person"

// Atom is a predicate applied to an ordered tuple of variables
type Atom struct {
	Predicate string
	Args      []string
}

// NewAtom creates an atom
func NewAtom(predicate string, args ...string) Atom {
	return Atom{Predicate: predicate, Args: args}
}

// String renders the atom as "predicate (a,b,c)"
func (a Atom) String() string {
	return a.Predicate + " (" + strings.Join(a.Args, ",") + ")"
}

// Atoms is an ordered list of atoms
type Atoms []Atom

// Contains reports whether an atom with the given rendering is in the list.
// Comparison is textual on purpose: the redundancy checks work on renderings.
func (as Atoms) Contains(rendered string) bool {
	for _, a := range as {
		if a.String() == rendered {
			return true
		}
	}
	return false
}

// Strings renders every atom
func (as Atoms) Strings() []string {
	out := make([]string, len(as))
	for i, a := range as {
		out[i] = a.String()
	}
	return out
}

// Conjunction joins the rendered atoms with " & "
func (as Atoms) Conjunction() string {
	return strings.Join(as.Strings(), " & ")
}

func personAtom(variable string) Atom {
	return NewAtom(PersonPredicate, variable)
}
