package logic

import (
	"strings"

	"github.com/ppiankov/atomlogic/internal/tagged"
)

// Event is the logic of an event clause: the body of an if-then formula
type Event struct {
	Atoms     Atoms
	Variables []string
}

// EventToLogic converts a tagged event clause into atoms.
//
// Every individual yields a person atom. The first token is the subject and
// is skipped; the rest is segmented into a verb phrase and an optional object
// phrase. The verb atom is ternary when a second individual is present.
// The object variable z is always reserved.
func EventToLogic(tokens []tagged.Token) Event {
	var ev Event

	individuals := tagged.Individuals(tokens)
	for _, ind := range individuals {
		ev.Variables = append(ev.Variables, ind.Variable)
		ev.Atoms = append(ev.Atoms, personAtom(ind.Variable))
	}

	seg := &eventSegmenter{}
	if len(tokens) > 0 {
		for _, tok := range tokens[1:] {
			seg.step(tok)
		}
	}

	verb := strings.Join(seg.verb, " ")
	if len(individuals) == 2 {
		ev.Atoms = append(ev.Atoms, NewAtom(verb, VarSubject, VarObject, VarOther))
	} else {
		ev.Atoms = append(ev.Atoms, NewAtom(verb, VarSubject, VarObject))
	}

	if len(seg.object) > 0 {
		ev.Atoms = append(ev.Atoms, NewAtom(strings.Join(seg.object, " "), VarObject))
	}
	ev.Variables = append(ev.Variables, VarObject)

	return ev
}

// HasOther reports whether the event mentions a second individual
func (e Event) HasOther() bool {
	return e.Atoms.Contains(personAtom(VarOther).String())
}
