package analyzer

import (
	"strings"
	"unicode"
)

// SentenceSplitter splits raw text into sentences. It scans for sentence
// terminators (. ! ?) and avoids breaking on common abbreviations,
// initials and decimal numbers. Whitespace inside a sentence is collapsed
// to single spaces.
type SentenceSplitter struct {
	abbreviations map[string]struct{}
}

func NewSentenceSplitter() *SentenceSplitter {
	abbrevs := []string{
		"mr", "mrs", "ms", "dr", "prof", "rev", "gen", "sen", "rep",
		"st", "jr", "sr", "vs", "etc", "inc", "ltd", "co", "corp",
		"dept", "approx", "est", "fig", "vol", "pp",
		"e.g", "i.e", "u.s", "u.k", "d.c", "a.m", "p.m",
	}
	m := make(map[string]struct{}, len(abbrevs))
	for _, a := range abbrevs {
		m[a] = struct{}{}
	}
	return &SentenceSplitter{abbreviations: m}
}

// Sentences splits text into an ordered sequence of sentences.
func (s *SentenceSplitter) Sentences(text string) []string {
	var sentences []string
	var current strings.Builder

	flush := func() {
		sentence := strings.Join(strings.Fields(current.String()), " ")
		if sentence != "" {
			sentences = append(sentences, sentence)
		}
		current.Reset()
	}

	runes := []rune(text)
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		current.WriteRune(r)

		switch r {
		case '!', '?':
			i = s.consumeClosers(runes, i, &current)
			flush()
		case '.':
			// Decimal number, e.g. "3.5 stars".
			if i+1 < len(runes) && unicode.IsDigit(runes[i+1]) {
				continue
			}
			if s.isAbbreviation(current.String()) {
				continue
			}
			i = s.consumeClosers(runes, i, &current)
			if s.isBoundary(runes, i) {
				flush()
			}
		}
	}
	flush()

	return sentences
}

// consumeClosers pulls trailing quotes and brackets into the current
// sentence so they stay attached to the terminator.
func (s *SentenceSplitter) consumeClosers(runes []rune, i int, current *strings.Builder) int {
	for i+1 < len(runes) {
		switch runes[i+1] {
		case '"', '\'', ')', ']', '”', '’':
			i++
			current.WriteRune(runes[i])
		default:
			return i
		}
	}
	return i
}

// isBoundary reports whether the period at position i ends a sentence:
// either end of input, or whitespace followed by an uppercase letter,
// digit or opening quote.
func (s *SentenceSplitter) isBoundary(runes []rune, i int) bool {
	j := i + 1
	for j < len(runes) && unicode.IsSpace(runes[j]) {
		j++
	}
	if j >= len(runes) {
		return true
	}
	if j == i+1 {
		// No whitespace after the period, e.g. "example.com".
		return false
	}
	r := runes[j]
	return unicode.IsUpper(r) || unicode.IsDigit(r) || r == '"' || r == '“'
}

// isAbbreviation checks whether the text ends in a known abbreviation or
// a single-letter initial such as "J.".
func (s *SentenceSplitter) isAbbreviation(text string) bool {
	text = strings.TrimSuffix(text, ".")

	start := len(text)
	for start > 0 {
		r := text[start-1]
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || r == '.' {
			start--
			continue
		}
		break
	}
	word := strings.ToLower(text[start:])
	if word == "" {
		return false
	}
	if len(word) == 1 {
		return true
	}
	_, ok := s.abbreviations[word]
	return ok
}
