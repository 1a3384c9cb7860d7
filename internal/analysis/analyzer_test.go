package analysis

import (
	"reflect"
	"testing"

	"wordmill/internal/stopwords"
)

func TestAnalyzeTopWord(t *testing.T) {
	opts := DefaultOptions()
	opts.TopN = 1

	res := Analyze("kata kata kata lain", opts)
	if len(res.Ranked) != 1 {
		t.Fatalf("expected a single ranked entry, got %v", res.Ranked)
	}
	if res.Ranked[0].Token != "kata" || res.Ranked[0].Count != 3 {
		t.Fatalf("top entry = %v, want (kata, 3)", res.Ranked[0])
	}
	if res.WordCount != 4 {
		t.Errorf("word count = %d, want 4", res.WordCount)
	}
	if res.CharCount != len("kata kata kata lain") {
		t.Errorf("char count = %d, want %d", res.CharCount, len("kata kata kata lain"))
	}
	if res.TopN != 1 {
		t.Errorf("top_n = %d, want 1", res.TopN)
	}
}

func TestAnalyzeEmptyInput(t *testing.T) {
	res := Analyze("", DefaultOptions())
	if res.CharCount != 0 || res.WordCount != 0 {
		t.Errorf("empty input counts = (%d, %d), want (0, 0)", res.CharCount, res.WordCount)
	}
	if len(res.Ranked) != 0 {
		t.Errorf("empty input ranked = %v, want empty", res.Ranked)
	}
	if len(res.Frequencies) != 0 {
		t.Errorf("empty input frequencies = %v, want empty", res.Frequencies)
	}
}

func TestAnalyzeCharCountIsRunes(t *testing.T) {
	// Multibyte input: character count follows code points, not bytes.
	text := "héllo wörld"
	res := Analyze(text, DefaultOptions())
	if res.CharCount != 11 {
		t.Fatalf("char count = %d, want 11", res.CharCount)
	}
}

func TestAnalyzeIdempotent(t *testing.T) {
	text := "Dan kata itu diulang, kata itu diulang lagi; kata terakhir."
	opts := DefaultOptions()

	first := Analyze(text, opts)
	second := Analyze(text, opts)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("analysis is not deterministic:\nfirst  %+v\nsecond %+v", first, second)
	}
}

func TestAnalyzeWithStemmer(t *testing.T) {
	stemmer, err := NewStemmer("english")
	if err != nil {
		t.Fatalf("NewStemmer: %v", err)
	}
	opts := Options{
		TopN:           5,
		MinTokenLength: DefaultMinTokenLength,
		Stopwords:      stopwords.New(),
		Stemmer:        stemmer,
	}

	res := Analyze("running runs runner", opts)
	// "running" and "runs" share the stem "run"; "runner" stems separately.
	if res.Frequencies["run"] != 2 {
		t.Fatalf("expected stemmed count run=2, got %v", res.Frequencies)
	}
	if res.Ranked[0].Token != "run" || res.Ranked[0].Count != 2 {
		t.Fatalf("top stemmed entry = %v, want (run, 2)", res.Ranked[0])
	}
}

func TestNewStemmerRejectsUnknownLanguage(t *testing.T) {
	if _, err := NewStemmer("indonesian"); err == nil {
		t.Fatal("expected error for unsupported stemmer language")
	}
}
