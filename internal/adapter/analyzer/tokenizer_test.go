package analyzer

import (
	"reflect"
	"testing"
)

func TestTokenize_Basic(t *testing.T) {
	tok := NewWordTokenizer(nil)

	got := tok.Tokenize("Bob likes sports")
	want := []string{"bob", "likes", "sports"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestTokenize_DropsNoise(t *testing.T) {
	tok := NewWordTokenizer(nil)

	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "punctuation and numbers",
			input: "It's 2024, really -- wow!",
			want:  []string{"it", "really", "wow"},
		},
		{
			name:  "single letters dropped",
			input: "a I x ok",
			want:  []string{"ok"},
		},
		{
			name:  "digit-led tokens dropped",
			input: "42nd 3rd street",
			want:  []string{"street"},
		},
		{
			name:  "empty input",
			input: "",
			want:  []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tok.Tokenize(tt.input)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestTokenize_WithStemming(t *testing.T) {
	tok := NewWordTokenizer(NewSnowballStemmer())

	got := tok.Tokenize("running cats liked")
	want := []string{"run", "cat", "like"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestSnowballStemmer(t *testing.T) {
	stemmer := NewSnowballStemmer()

	tests := []struct {
		word string
		want string
	}{
		{"running", "run"},
		{"cats", "cat"},
		{"likes", "like"},
		{"trees", "tree"},
	}

	for _, tt := range tests {
		if got := stemmer.Stem(tt.word); got != tt.want {
			t.Errorf("Stem(%q) = %q, want %q", tt.word, got, tt.want)
		}
	}
}

func TestStopwords(t *testing.T) {
	english := Stopwords("english")
	if len(english) == 0 {
		t.Fatal("expected english stopwords")
	}

	set := StopwordSet(english)
	for _, w := range []string{"the", "and", "is"} {
		if _, ok := set[w]; !ok {
			t.Errorf("expected %q in english stopwords", w)
		}
	}

	if got := Stopwords("none"); got != nil {
		t.Errorf("expected nil stopwords for 'none', got %v", got)
	}
}
