package analysis

import (
	"testing"
)

func TestRankOrdersByCountDescending(t *testing.T) {
	tokens := []string{"beta", "alpha", "beta", "gamma", "beta", "alpha"}
	ranked, freqs := Rank(tokens, 10)

	want := []Entry{
		{Token: "beta", Count: 3},
		{Token: "alpha", Count: 2},
		{Token: "gamma", Count: 1},
	}
	if len(ranked) != len(want) {
		t.Fatalf("ranked length = %d, want %d", len(ranked), len(want))
	}
	for i, entry := range want {
		if ranked[i] != entry {
			t.Errorf("ranked[%d] = %v, want %v", i, ranked[i], entry)
		}
	}
	if freqs["beta"] != 3 || freqs["alpha"] != 2 || freqs["gamma"] != 1 {
		t.Errorf("unexpected frequency table: %v", freqs)
	}
}

func TestRankTieBreakByFirstAppearance(t *testing.T) {
	// zebra appears before apple; with equal counts zebra must rank first
	// even though apple sorts first lexically.
	tokens := []string{"zebra", "apple", "zebra", "apple", "mango"}
	ranked, _ := Rank(tokens, 3)

	want := []string{"zebra", "apple", "mango"}
	for i, token := range want {
		if ranked[i].Token != token {
			t.Fatalf("tie-break order %v, want %v", ranked, want)
		}
	}
}

func TestRankTopNClamping(t *testing.T) {
	tokens := []string{"one", "two", "two"}

	if ranked, _ := Rank(tokens, 0); len(ranked) != 0 {
		t.Errorf("n=0 should yield empty list, got %v", ranked)
	}
	if ranked, _ := Rank(tokens, -5); len(ranked) != 0 {
		t.Errorf("negative n should yield empty list, got %v", ranked)
	}
	if ranked, _ := Rank(tokens, 100); len(ranked) != 2 {
		t.Errorf("n beyond distinct count should yield all entries, got %v", ranked)
	}
	if ranked, _ := Rank(nil, 5); len(ranked) != 0 {
		t.Errorf("no tokens should yield empty list, got %v", ranked)
	}
}

func TestRankDeterministic(t *testing.T) {
	tokens := Tokenize("merah kuning hijau merah biru kuning merah ungu biru kuning")
	first, _ := Rank(tokens, 5)
	for i := 0; i < 20; i++ {
		again, _ := Rank(tokens, 5)
		for j := range first {
			if first[j] != again[j] {
				t.Fatalf("run %d diverged: %v vs %v", i, again, first)
			}
		}
	}
}
