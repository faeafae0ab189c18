package tagged

import "strings"

// normalizedLength is the length of "personx", the normalized placeholder form
const normalizedLength = 7

// Individual is a distinct person placeholder found in a clause
type Individual struct {
	Name     string // lowercased surface truncated to 7 characters, e.g. "personx"
	Variable string // last character of Name, e.g. "x"
}

// Individuals returns the distinct individuals of a clause in first-seen order.
// PersonX, PersonX's and personx all normalize to the same individual.
func Individuals(tokens []Token) []Individual {
	var individuals []Individual
	seen := make(map[string]bool)

	for _, t := range tokens {
		if !t.IsIndividual() {
			continue
		}

		runes := normalize(t.Word)
		if len(runes) == 0 {
			continue
		}

		name := string(runes)
		if seen[name] {
			continue
		}
		seen[name] = true

		individuals = append(individuals, Individual{
			Name:     name,
			Variable: string(runes[len(runes)-1]),
		})
	}

	return individuals
}

func normalize(word string) []rune {
	runes := []rune(strings.ToLower(word))
	if len(runes) > normalizedLength {
		runes = runes[:normalizedLength]
	}
	return runes
}
