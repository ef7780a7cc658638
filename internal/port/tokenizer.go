package port

type SentenceTokenizer interface {
	Sentences(text string) []string
}

type WordTokenizer interface {
	Tokenize(text string) []string
}
