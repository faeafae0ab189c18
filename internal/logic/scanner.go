package logic

import (
	"strings"

	"github.com/ppiankov/atomlogic/internal/tagged"
)

// phase is the position of a scanner within a clause
type phase int

const (
	beforeVerb phase = iota
	inVerb
	inObject  // event clauses
	inConcept // inference clauses
)

func (p phase) String() string {
	switch p {
	case beforeVerb:
		return "before-verb"
	case inVerb:
		return "in-verb"
	case inObject:
		return "in-object"
	case inConcept:
		return "in-concept"
	default:
		return "unknown"
	}
}

// eventSegmenter splits the words after an event's subject into a verb
// phrase and an object phrase.
type eventSegmenter struct {
	state  phase
	verb   []string
	object []string
}

func (s *eventSegmenter) step(tok tagged.Token) {
	if tok.IsPunctuation() {
		return
	}
	word := strings.ToLower(tok.Word)

	switch s.state {
	case beforeVerb:
		if tok.IsIndividual() || tok.IsDeterminer() {
			s.state = inObject
			return
		}
		s.verb = append(s.verb, word)
		s.state = inVerb

	case inVerb:
		switch {
		case tok.IsIndividual() || tok.IsDeterminer():
			s.state = inObject
		case tok.StartsObject():
			// the tagger often leaves the object's noun untouched by a determiner
			s.object = append(s.object, word)
			s.state = inObject
		default:
			s.verb = append(s.verb, word)
		}

	case inObject:
		if tok.IsIndividual() || tok.IsDeterminer() {
			return
		}
		s.object = append(s.object, word)
	}
}

// conceptScanner splits an inference clause into a verb phrase followed by
// concept phrases separated by boundary tokens.
type conceptScanner struct {
	state    phase
	verb     []string
	current  []string
	next     rune
	concepts Atoms
	vars     []string
}

func newConceptScanner() *conceptScanner {
	return &conceptScanner{next: firstConcept}
}

func (s *conceptScanner) step(tok tagged.Token) {
	if tok.IsPunctuation() {
		return
	}
	word := strings.ToLower(tok.Word)

	switch s.state {
	case beforeVerb:
		if tok.IsConceptBoundary() {
			return
		}
		s.verb = append(s.verb, word)
		s.state = inVerb

	case inVerb:
		if tok.IsConceptBoundary() {
			s.state = inConcept
			return
		}
		s.verb = append(s.verb, word)

	case inConcept:
		if tok.IsConceptBoundary() {
			if len(s.current) > 0 {
				s.close()
				s.next++
			}
			return
		}
		s.current = append(s.current, word)
	}
}

// close turns the open concept buffer into an atom on the current variable
func (s *conceptScanner) close() {
	v := string(s.next)
	s.concepts = append(s.concepts, NewAtom(strings.Join(s.current, " "), v))
	s.vars = append(s.vars, v)
	s.current = nil
}

// finish flushes the last open concept without advancing the variable
func (s *conceptScanner) finish() {
	if len(s.current) > 0 {
		s.close()
	}
}
