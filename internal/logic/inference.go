package logic

import (
	"strings"

	"github.com/ppiankov/atomlogic/internal/tagged"
)

// objectMatchPrefix is how many leading characters of a rendered concept atom
// are compared against the event's object atom.
// Predicates sharing a four character prefix always match.
const objectMatchPrefix = 4

// Inference is the logic of an inference clause: the head of an if-then formula
type Inference struct {
	Atoms Atoms
	// Variables introduced by the inference, existentially quantified
	Variables []string
}

// referent decides who the inference is about and which participant
// is bound as the last argument of its verb atom.
type referent struct {
	subject string
	other   string
	// individual count of the inference at which other is bound
	pairBinds      int
	redundantBinds int
	// fresh subjects are introduced by the inference itself
	fresh bool
}

func resolveReferent(subject string, ev Event) referent {
	switch {
	case subject == VarSubject:
		return referent{subject: VarSubject, other: VarOther, pairBinds: 2, redundantBinds: 2}
	case ev.HasOther():
		return referent{subject: VarOther, other: VarSubject, pairBinds: 2, redundantBinds: 2}
	default:
		return referent{subject: VarFresh, other: VarSubject, pairBinds: 1, redundantBinds: 2, fresh: true}
	}
}

func (r referent) args(bindOther bool, middle ...string) []string {
	args := append([]string{r.subject}, middle...)
	if bindOther {
		args = append(args, r.other)
	}
	return args
}

// InferenceToLogic converts a tagged inference clause into atoms, resolving
// its participants against the already converted event. subject is the
// perspective marker of the relation dimension: "x" for relations about
// PersonX, anything else for relations about the other participant.
func InferenceToLogic(tokens []tagged.Token, ev Event, subject string) Inference {
	var inf Inference

	individuals := tagged.Individuals(tokens)
	for _, ind := range individuals {
		atom := personAtom(ind.Variable)
		if ev.Atoms.Contains(atom.String()) {
			continue
		}
		inf.Atoms = append(inf.Atoms, atom)
		inf.Variables = append(inf.Variables, ind.Variable)
	}

	scan := newConceptScanner()
	for _, tok := range tokens {
		scan.step(tok)
	}
	scan.finish()
	inf.Variables = append(inf.Variables, scan.vars...)

	redundant := false
	if len(scan.verb) > 0 {
		verb := strings.Join(scan.verb, " ")
		ref := resolveReferent(subject, ev)
		n := len(individuals)

		switch {
		case len(scan.concepts) == 0:
			inf.Atoms = append(inf.Atoms, NewAtom(verb, ref.args(n == ref.pairBinds)...))

		case len(scan.concepts) == 1 && refersToObject(scan.concepts[0], ev):
			redundant = true
			inf.Atoms = append(inf.Atoms, NewAtom(verb, ref.args(n == ref.redundantBinds, VarObject)...))
			inf.Variables = nil

		default:
			for _, v := range inf.Variables {
				inf.Atoms = append(inf.Atoms, NewAtom(verb, ref.args(n == ref.pairBinds, v)...))
			}
		}

		if ref.fresh && !redundant {
			inf.Variables = append(inf.Variables, VarFresh)
		}
	}

	if !redundant {
		for _, c := range scan.concepts {
			if !ev.Atoms.Contains(c.String()) {
				inf.Atoms = append(inf.Atoms, c)
			}
		}
	}

	return inf
}

// refersToObject reports whether a concept is the event's object under
// another variable, compared by the leading characters of its rendering.
func refersToObject(concept Atom, ev Event) bool {
	rendered := []rune(concept.String())
	if len(rendered) > objectMatchPrefix {
		rendered = rendered[:objectMatchPrefix]
	}
	return ev.Atoms.Contains(string(rendered) + " (" + VarObject + ")")
}
