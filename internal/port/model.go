package port

// TermWeightModel is a fitted document-term weight model. The vocabulary
// and weights are read-only after fitting: the column count equals the
// vocabulary size and every term index returned by TermIndex is valid for
// Weight lookups.
type TermWeightModel interface {
	// Vocabulary returns the sorted vocabulary terms.
	Vocabulary() []string

	// TermIndex returns the column index for a term, if present.
	TermIndex(term string) (int, bool)

	// Weight returns the weight at (document row, term column).
	// Zero where the term does not occur in the document.
	Weight(docIndex, termIndex int) float64

	// NumDocs returns the number of documents the model was built from.
	NumDocs() int
}
