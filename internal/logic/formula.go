package logic

import "strings"

// Options controls how formulas are rendered
type Options struct {
	// Quantifiers wraps formulas in universal and existential quantifiers
	Quantifiers bool
}

// Assemble renders an event and an inference as "body -> head".
//
// With quantifiers enabled the event variables are universally quantified
// over the whole implication, and the inference variables, if any,
// existentially over the head:
//
//	A x z ( ( body ) -> E a ( head ) )
func Assemble(ev Event, inf Inference, opts Options) string {
	body := ev.Atoms.Conjunction()
	head := inf.Atoms.Conjunction()

	if !opts.Quantifiers {
		return body + " -> " + head
	}

	if len(inf.Variables) > 0 {
		head = "E " + strings.Join(inf.Variables, " ") + " ( " + head + " )"
	}
	return "A " + strings.Join(ev.Variables, " ") + " ( ( " + body + " ) -> " + head + " )"
}
