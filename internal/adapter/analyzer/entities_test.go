package analyzer

import (
	"testing"

	"textlab/internal/domain"
)

func TestEntities_DemoSentence(t *testing.T) {
	tagger := NewRuleTagger(NewSentenceSplitter())

	got := tagger.Entities("Kevin and Josiah are instructors for General Assembly in Washington, D.C.")

	want := []domain.Entity{
		{Label: "PERSON", Text: "Kevin"},
		{Label: "PERSON", Text: "Josiah"},
		{Label: "ORGANIZATION", Text: "General Assembly"},
		{Label: "LOCATION", Text: "Washington D.C."},
	}

	if len(got) != len(want) {
		t.Fatalf("expected %d entities, got %d: %v", len(want), len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("entity %d: expected %v, got %v", i, want[i], got[i])
		}
	}
}

func TestEntities_Honorific(t *testing.T) {
	tagger := NewRuleTagger(NewSentenceSplitter())

	got := tagger.Entities("The patient saw Dr. Grant yesterday.")

	var found bool
	for _, e := range got {
		if e.Text == "Grant" && e.Label == "PERSON" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected PERSON Grant, got %v", got)
	}
}

func TestEntities_SentenceInitialCommonWord(t *testing.T) {
	tagger := NewRuleTagger(NewSentenceSplitter())

	got := tagger.Entities("The movie was long. It dragged on.")
	if len(got) != 0 {
		t.Errorf("expected no entities from common words, got %v", got)
	}
}

func TestEntities_Empty(t *testing.T) {
	tagger := NewRuleTagger(NewSentenceSplitter())

	if got := tagger.Entities(""); len(got) != 0 {
		t.Errorf("expected no entities for empty input, got %v", got)
	}
}
