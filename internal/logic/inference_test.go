package logic

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestInferenceToLogic(t *testing.T) {
	tests := []struct {
		name      string
		event     string
		inference string
		subject   string
		atoms     []string
		vars      []string
	}{
		{
			name:      "single concept",
			event:     "PersonX/IND runs/VB",
			inference: "to/TO win/VB a/DT race/NN",
			subject:   "x",
			atoms:     []string{"to win (x,a)", "race (a)"},
			vars:      []string{"a"},
		},
		{
			name:      "concept letters advance",
			event:     "PersonX/IND runs/VB",
			inference: "to/TO buy/VB the/DT food/NN and/CC the/DT drink/NN",
			subject:   "x",
			atoms:     []string{"to buy (x,a)", "to buy (x,b)", "food (a)", "drink (b)"},
			vars:      []string{"a", "b"},
		},
		{
			name:      "three concepts",
			event:     "PersonX/IND runs/VB",
			inference: "to/TO get/VB the/DT cake/NN and/CC the/DT milk/NN and/CC a/DT pen/NN",
			subject:   "x",
			atoms:     []string{"to get (x,a)", "to get (x,b)", "to get (x,c)", "cake (a)", "milk (b)", "pen (c)"},
			vars:      []string{"a", "b", "c"},
		},
		{
			name:      "redundant object concept reuses z",
			event:     "PersonX/IND gives/VB PersonY/IND the/DT book/NN",
			inference: "to/TO read/VB the/DT book/NN",
			subject:   "x",
			atoms:     []string{"to read (x,z)"},
			vars:      nil,
		},
		{
			name:      "prefix match counts as redundant",
			event:     "PersonX/IND buys/VBZ a/DT book/NN",
			inference: "to/TO fill/VB the/DT bookshelf/NN",
			subject:   "x",
			atoms:     []string{"to fill (x,z)"},
			vars:      nil,
		},
		{
			name:      "longer predicate is not matched by prefix",
			event:     "PersonX/IND eats/VBZ pizza/NN",
			inference: "to/TO share/VB the/DT pizza/NN",
			subject:   "x",
			atoms:     []string{"to share (x,a)", "pizza (a)"},
			vars:      []string{"a"},
		},
		{
			name:      "both individuals known, no concepts",
			event:     "PersonX/IND helps/VB PersonY/IND",
			inference: "PersonX/IND hugs/VBZ PersonY/IND",
			subject:   "x",
			atoms:     []string{"hugs (x,y)"},
			vars:      nil,
		},
		{
			name:      "unary verb",
			event:     "PersonX/IND runs/VB",
			inference: "tired/JJ",
			subject:   "x",
			atoms:     []string{"tired (x)"},
			vars:      nil,
		},
		{
			name:      "boundary before verb is dropped",
			event:     "PersonX/IND runs/VB",
			inference: "his/PRP$ friends/NNS",
			subject:   "x",
			atoms:     []string{"friends (x)"},
			vars:      nil,
		},
		{
			name:      "new individual is introduced",
			event:     "PersonX/IND runs/VB",
			inference: "to/TO meet/VB PersonY/IND",
			subject:   "x",
			atoms:     []string{"person (y)", "to meet (x)"},
			vars:      []string{"y"},
		},
		{
			name:      "other perspective with known other",
			event:     "PersonX/IND helps/VB PersonY/IND",
			inference: "grateful/JJ",
			subject:   "o",
			atoms:     []string{"grateful (y)"},
			vars:      nil,
		},
		{
			name:      "other perspective binds x",
			event:     "PersonX/IND helps/VB PersonY/IND",
			inference: "PersonY/IND thanks/VBZ PersonX/IND",
			subject:   "o",
			atoms:     []string{"thanks (y,x)"},
			vars:      nil,
		},
		{
			name:      "other perspective redundant concept",
			event:     "PersonX/IND gives/VB PersonY/IND the/DT book/NN",
			inference: "to/TO read/VB the/DT book/NN",
			subject:   "o",
			atoms:     []string{"to read (y,z)"},
			vars:      nil,
		},
		{
			name:      "other perspective with concept",
			event:     "PersonX/IND helps/VB PersonY/IND",
			inference: "to/TO repay/VB the/DT favor/NN",
			subject:   "o",
			atoms:     []string{"to repay (y,a)", "favor (a)"},
			vars:      []string{"a"},
		},
		{
			name:      "fresh subject binds x",
			event:     "PersonX/IND sleeps/VB",
			inference: "thanks/VB PersonX/IND",
			subject:   "o",
			atoms:     []string{"thanks (u,x)"},
			vars:      []string{"u"},
		},
		{
			name:      "fresh subject alone",
			event:     "PersonX/IND sleeps/VB",
			inference: "happy/JJ",
			subject:   "o",
			atoms:     []string{"happy (u)"},
			vars:      []string{"u"},
		},
		{
			name:      "fresh subject with concept",
			event:     "PersonX/IND runs/VB",
			inference: "to/TO watch/VB the/DT race/NN",
			subject:   "o",
			atoms:     []string{"to watch (u,a)", "race (a)"},
			vars:      []string{"a", "u"},
		},
		{
			name:      "fresh subject redundant concept",
			event:     "PersonX/IND bakes/VBZ a/DT cake/NN",
			inference: "to/TO eat/VB the/DT cake/NN",
			subject:   "o",
			atoms:     []string{"to eat (u,z)"},
			vars:      nil,
		},
		{
			name:      "redundant concept binds other",
			event:     "PersonX/IND gives/VB PersonY/IND the/DT book/NN",
			inference: "PersonX/IND reads/VBZ PersonY/IND the/DT book/NN",
			subject:   "x",
			atoms:     []string{"reads (x,z,y)"},
			vars:      nil,
		},
		{
			name:      "other perspective redundant concept binds x",
			event:     "PersonX/IND gives/VB PersonY/IND the/DT book/NN",
			inference: "PersonY/IND reads/VBZ PersonX/IND the/DT book/NN",
			subject:   "o",
			atoms:     []string{"reads (y,z,x)"},
			vars:      nil,
		},
		{
			name:      "fresh subject redundant concept binds x",
			event:     "PersonX/IND bakes/VBZ a/DT cake/NN",
			inference: "PersonX/IND eats/VBZ the/DT cake/NN with/IN PersonY/IND",
			subject:   "o",
			atoms:     []string{"person (y)", "eats (u,z,x)"},
			vars:      nil,
		},
		{
			name:      "concept with other bound",
			event:     "PersonX/IND helps/VB PersonY/IND",
			inference: "PersonX/IND gives/VBZ PersonY/IND a/DT gift/NN",
			subject:   "x",
			atoms:     []string{"gives (x,a,y)", "gift (a)"},
			vars:      []string{"a"},
		},
		{
			name:      "other perspective concept binds x",
			event:     "PersonX/IND helps/VB PersonY/IND",
			inference: "PersonY/IND pays/VBZ PersonX/IND a/DT visit/NN",
			subject:   "o",
			atoms:     []string{"pays (y,a,x)", "visit (a)"},
			vars:      []string{"a"},
		},
		{
			name:      "fresh subject concept binds x",
			event:     "PersonX/IND sleeps/VB",
			inference: "to/TO wake/VB PersonX/IND the/DT alarm/NN",
			subject:   "o",
			atoms:     []string{"to wake (u,a,x)", "alarm (a)"},
			vars:      []string{"a", "u"},
		},
		{
			name:      "new individual joins concept variables",
			event:     "PersonX/IND runs/VB",
			inference: "PersonX/IND thanks/VBZ PersonY/IND the/DT help/NN",
			subject:   "x",
			atoms:     []string{"person (y)", "thanks (x,y,y)", "thanks (x,a,y)", "help (a)"},
			vars:      []string{"y", "a"},
		},
		{
			name:      "empty inference",
			event:     "PersonX/IND runs/VB",
			inference: "",
			subject:   "x",
			atoms:     nil,
			vars:      nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ev := EventToLogic(mustParse(t, tt.event))
			inf := InferenceToLogic(mustParse(t, tt.inference), ev, tt.subject)

			if diff := cmp.Diff(tt.atoms, inf.Atoms.Strings(), cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("atoms mismatch (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(tt.vars, inf.Variables, cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("variables mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestInferenceToLogic_RedundantConceptNotRepeated(t *testing.T) {
	ev := EventToLogic(mustParse(t, "PersonX/IND gives/VB PersonY/IND the/DT book/NN"))
	inf := InferenceToLogic(mustParse(t, "to/TO read/VB the/DT book/NN"), ev, "x")

	for _, a := range inf.Atoms {
		if a.Predicate == "book" {
			t.Errorf("Expected no book atom in inference, got %s", a)
		}
	}
}

func TestConceptScanner_States(t *testing.T) {
	scan := newConceptScanner()
	if scan.state != beforeVerb {
		t.Fatalf("initial state = %s", scan.state)
	}

	steps := []struct {
		token string
		state phase
	}{
		{"the/DT", beforeVerb},
		{"to/TO", inVerb},
		{"buy/VB", inVerb},
		{"a/DT", inConcept},
		{"new/JJ", inConcept},
		{"car/NN", inConcept},
		{"and/CC", inConcept},
	}

	for _, s := range steps {
		scan.step(mustParse(t, s.token)[0])
		if scan.state != s.state {
			t.Errorf("after %s: state = %s, want %s", s.token, scan.state, s.state)
		}
	}

	if diff := cmp.Diff([]string{"new car (a)"}, scan.concepts.Strings()); diff != "" {
		t.Errorf("concepts mismatch (-want +got):\n%s", diff)
	}
	if scan.next != 'b' {
		t.Errorf("next variable = %c, want b", scan.next)
	}

	scan.finish()
	if len(scan.concepts) != 1 {
		t.Errorf("finish with empty buffer added a concept: %v", scan.concepts.Strings())
	}
}
