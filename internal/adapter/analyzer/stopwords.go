package analyzer

// Stopwords returns the stopword list for a language. The empty string
// and "none" disable stopword removal. Only English is shipped.
func Stopwords(language string) []string {
	switch language {
	case "english":
		return englishStopwords()
	default:
		return nil
	}
}

// englishStopwords returns common English stopwords.
func englishStopwords() []string {
	return []string{
		"a", "about", "above", "after", "again", "against", "all", "am",
		"an", "and", "any", "are", "as", "at", "be", "because", "been",
		"before", "being", "below", "between", "both", "but", "by",
		"can", "could", "did", "do", "does", "doing", "down", "during",
		"each", "few", "for", "from", "further", "had", "has", "have",
		"having", "he", "her", "here", "hers", "herself", "him",
		"himself", "his", "how", "i", "if", "in", "into", "is", "it",
		"its", "itself", "just", "me", "might", "more", "most", "must",
		"my", "myself", "no", "nor", "not", "now", "of", "off", "on",
		"once", "only", "or", "other", "our", "ours", "ourselves",
		"out", "over", "own", "same", "shall", "she", "should", "so",
		"some", "such", "than", "that", "the", "their", "theirs",
		"them", "themselves", "then", "there", "these", "they", "this",
		"those", "through", "to", "too", "under", "until", "up",
		"very", "was", "we", "were", "what", "when", "where", "which",
		"while", "who", "whom", "why", "will", "with", "would", "you",
		"your", "yours", "yourself", "yourselves",
	}
}

// StopwordSet builds a lookup set from a stopword list.
func StopwordSet(words []string) map[string]struct{} {
	m := make(map[string]struct{}, len(words))
	for _, w := range words {
		m[w] = struct{}{}
	}
	return m
}
