package analyzer

import (
	"strings"
	"unicode"

	"textlab/internal/domain"
	"textlab/internal/port"
)

// RuleTagger extracts named entities with a capitalization heuristic:
// runs of capitalized words are collected per sentence and labeled using
// small gazetteers. It trades recall for zero training data.
type RuleTagger struct {
	sentences  port.SentenceTokenizer
	honorifics map[string]struct{}
	orgSuffix  map[string]struct{}
	locations  map[string]struct{}
}

func NewRuleTagger(sentences port.SentenceTokenizer) *RuleTagger {
	return &RuleTagger{
		sentences:  sentences,
		honorifics: wordSet("mr", "mrs", "ms", "dr", "prof", "sir", "president", "senator"),
		orgSuffix: wordSet(
			"inc", "corp", "ltd", "llc", "co", "company", "corporation",
			"assembly", "university", "institute", "college", "association",
			"committee", "council", "agency", "bank", "group", "press",
		),
		locations: wordSet(
			"washington", "d.c", "london", "paris", "berlin", "tokyo",
			"york", "angeles", "francisco", "chicago", "boston", "seattle",
			"america", "england", "france", "germany", "japan", "china",
			"europe", "asia", "africa", "california", "texas", "virginia",
		),
	}
}

// Entities extracts labeled entities from text, sentence by sentence, in
// order of appearance.
func (t *RuleTagger) Entities(text string) []domain.Entity {
	var entities []domain.Entity

	for _, sentence := range t.sentences.Sentences(text) {
		words := strings.Fields(sentence)

		for i := 0; i < len(words); i++ {
			word := trimPunct(words[i])
			if !isCapitalized(word) {
				continue
			}

			start := i
			run := []string{word}
			for i+1 < len(words) {
				next := trimPunct(words[i+1])
				if !isCapitalized(next) {
					break
				}
				i++
				run = append(run, next)
			}

			if start == 0 && len(run) == 1 && t.isCommonWord(run[0]) {
				continue
			}

			// A capitalized honorific opens the run: the rest is a name.
			first := strings.ToLower(strings.TrimSuffix(run[0], "."))
			if _, ok := t.honorifics[first]; ok && len(run) > 1 {
				entities = append(entities, domain.Entity{
					Label: "PERSON",
					Text:  strings.Join(run[1:], " "),
				})
				continue
			}

			entities = append(entities, domain.Entity{
				Label: t.label(run, prevWord(words, start)),
				Text:  strings.Join(run, " "),
			})
		}
	}

	return entities
}

// label classifies a capitalized run. Organization suffixes win over
// location gazetteer hits; honorifics force PERSON.
func (t *RuleTagger) label(run []string, preceding string) string {
	last := strings.ToLower(strings.TrimSuffix(run[len(run)-1], "."))
	if _, ok := t.orgSuffix[last]; ok {
		return "ORGANIZATION"
	}

	if _, ok := t.honorifics[strings.ToLower(strings.TrimSuffix(preceding, "."))]; ok {
		return "PERSON"
	}

	for _, w := range run {
		if _, ok := t.locations[strings.ToLower(strings.TrimSuffix(w, "."))]; ok {
			return "LOCATION"
		}
	}

	if len(run) == 1 {
		return "PERSON"
	}
	return "ORGANIZATION"
}

// isCommonWord reports whether a sentence-initial capitalized word is
// just an ordinary word rather than a name.
func (t *RuleTagger) isCommonWord(word string) bool {
	lower := strings.ToLower(word)
	for _, stop := range englishStopwords() {
		if lower == stop {
			return true
		}
	}
	return false
}

func isCapitalized(word string) bool {
	for _, r := range word {
		return unicode.IsUpper(r)
	}
	return false
}

func trimPunct(word string) string {
	return strings.TrimFunc(word, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '.'
	})
}

func prevWord(words []string, i int) string {
	if i == 0 {
		return ""
	}
	return words[i-1]
}

func wordSet(words ...string) map[string]struct{} {
	m := make(map[string]struct{}, len(words))
	for _, w := range words {
		m[w] = struct{}{}
	}
	return m
}
