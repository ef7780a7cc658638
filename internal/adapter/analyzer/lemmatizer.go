package analyzer

import "strings"

// DictLemmatizer derives the canonical form of a word using a small
// dictionary of irregular forms plus plural suffix rules. It is a
// dictionary-based alternative to stemming: "women" becomes "woman"
// where a stemmer would leave it untouched.
type DictLemmatizer struct {
	irregular map[string]string
}

func NewDictLemmatizer() *DictLemmatizer {
	return &DictLemmatizer{irregular: irregularForms()}
}

// Lemma returns the canonical form of a word.
func (l *DictLemmatizer) Lemma(word string) string {
	word = strings.ToLower(word)

	if lemma, ok := l.irregular[word]; ok {
		return lemma
	}

	switch {
	case strings.HasSuffix(word, "ies") && len(word) > 4:
		return word[:len(word)-3] + "y"
	case strings.HasSuffix(word, "sses"):
		return word[:len(word)-2]
	case strings.HasSuffix(word, "xes"), strings.HasSuffix(word, "zes"),
		strings.HasSuffix(word, "ches"), strings.HasSuffix(word, "shes"):
		return word[:len(word)-2]
	case strings.HasSuffix(word, "ss"), strings.HasSuffix(word, "us"),
		strings.HasSuffix(word, "is"):
		return word
	case strings.HasSuffix(word, "s") && len(word) > 3:
		return word[:len(word)-1]
	}

	return word
}

func irregularForms() map[string]string {
	return map[string]string{
		"children": "child",
		"feet":     "foot",
		"geese":    "goose",
		"lice":     "louse",
		"men":      "man",
		"mice":     "mouse",
		"oxen":     "ox",
		"people":   "person",
		"teeth":    "tooth",
		"women":    "woman",
		"wives":    "wife",
		"knives":   "knife",
		"leaves":   "leaf",
		"lives":    "life",
		"selves":   "self",
		"wolves":   "wolf",
		"data":     "datum",
		"criteria": "criterion",
		"analyses": "analysis",
		"indices":  "index",
		"matrices": "matrix",
	}
}
