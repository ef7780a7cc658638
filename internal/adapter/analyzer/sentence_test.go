package analyzer

import (
	"reflect"
	"testing"
)

func TestSentences_Basic(t *testing.T) {
	splitter := NewSentenceSplitter()

	got := splitter.Sentences("This is one. This is two! Is this three?")
	want := []string{"This is one.", "This is two!", "Is this three?"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestSentences_Abbreviations(t *testing.T) {
	splitter := NewSentenceSplitter()

	got := splitter.Sentences("Dr. Smith lives on Main St. near the park. He is retired.")
	want := []string{
		"Dr. Smith lives on Main St. near the park.",
		"He is retired.",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestSentences_Decimals(t *testing.T) {
	splitter := NewSentenceSplitter()

	got := splitter.Sentences("The wine scored 8.5 points. Very good.")
	want := []string{"The wine scored 8.5 points.", "Very good."}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestSentences_CollapsesWhitespace(t *testing.T) {
	splitter := NewSentenceSplitter()

	got := splitter.Sentences("Line one\ncontinues here.  Second   sentence.")
	want := []string{"Line one continues here.", "Second sentence."}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestSentences_TrailingTextWithoutTerminator(t *testing.T) {
	splitter := NewSentenceSplitter()

	got := splitter.Sentences("Complete sentence. And a trailing fragment")
	want := []string{"Complete sentence.", "And a trailing fragment"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestSentences_Empty(t *testing.T) {
	splitter := NewSentenceSplitter()

	if got := splitter.Sentences(""); len(got) != 0 {
		t.Errorf("expected no sentences for empty input, got %v", got)
	}
	if got := splitter.Sentences("   \n\t  "); len(got) != 0 {
		t.Errorf("expected no sentences for whitespace input, got %v", got)
	}
}

func TestSentences_QuotesStayAttached(t *testing.T) {
	splitter := NewSentenceSplitter()

	got := splitter.Sentences(`He said "stop!" Then he left.`)
	want := []string{`He said "stop!"`, "Then he left."}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}
