package domain

import "time"

type Document struct {
	ID      string
	Path    string
	Index   int
	ModTime time.Time
}

// SentenceScore pairs a sentence with its average term weight.
// Position is the sentence's original position within the document.
type SentenceScore struct {
	Score    float64 `json:"score"`
	Sentence string  `json:"sentence"`
	Position int     `json:"position"`
}

// Summary holds the lowest- and highest-scoring sentences of one document.
type Summary struct {
	DocIndex int             `json:"doc_index"`
	Lowest   []SentenceScore `json:"lowest"`
	Highest  []SentenceScore `json:"highest"`
}

type TermCount struct {
	Term  string `json:"term"`
	Count int    `json:"count"`
}

type Entity struct {
	Label string `json:"label"`
	Text  string `json:"text"`
}

// TermWeights is a fitted document-term weight model snapshot.
// Terms is the sorted vocabulary; Rows holds one sparse weight row per
// document, keyed by term index.
type TermWeights struct {
	Terms []string          `json:"terms"`
	Rows  []map[int]float64 `json:"rows"`
}

type Stats struct {
	TotalDocs int
	VocabSize int
	AvgDocLen float64
}
