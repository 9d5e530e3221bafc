package words_test

import (
	"testing"

	"gloss/internal/words"
)

func TestWordAt(t *testing.T) {
	cases := []struct {
		name      string
		line      string
		offset    int
		wantWord  string
		wantStart int
	}{
		{"middle of word", "hello world", 8, "world", 6},
		{"start of word", "hello world", 6, "world", 6},
		{"end of word", "hello", 5, "hello", 0},
		{"end of line", "say hi", 6, "hi", 4},
		{"whole line", "word", 2, "word", 0},
		{"after word boundary", "a b", 1, "a", 0},
		{"between punctuation", "!!!???", 3, "", 3},
		{"inside digits", "abc123def", 4, "", 4},
		{"digits bound the word", "x42word42y", 7, "word", 3},
		{"empty line", "", 0, "", 0},
		{"offset clamped past end", "tail", 99, "tail", 0},
		{"negative offset clamped", "head rest", -1, "head", 0},
		{"non ascii neighbours", "фыab", 4, "ab", 4},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			word, start := words.WordAt(tc.line, tc.offset)
			if word != tc.wantWord || start != tc.wantStart {
				t.Errorf("WordAt(%q, %d) = (%q, %d), want (%q, %d)",
					tc.line, tc.offset, word, start, tc.wantWord, tc.wantStart)
			}
		})
	}
}

func TestPrefixBefore(t *testing.T) {
	cases := []struct {
		name       string
		line       string
		offset     int
		wantPrefix string
		wantStart  int
		wantOK     bool
	}{
		{"three letter prefix", "the cat", 7, "cat", 4, true},
		{"longer prefix is maximal", "a catalog", 9, "catalog", 2, true},
		{"partial run before cursor", "hello", 3, "hel", 0, true},
		{"two letters is too short", "hi ab", 5, "", 0, false},
		{"single letter is too short", "x", 1, "", 0, false},
		{"cursor after space", "abc ", 4, "", 0, false},
		{"digit cuts the run", "a1bcd", 5, "bcd", 2, true},
		{"digit leaves short run", "word1ab", 7, "", 0, false},
		{"start of line", "testing", 0, "", 0, false},
		{"offset clamped past end", "testing", 99, "testing", 0, true},
		{"empty line", "", 0, "", 0, false},
		{"non ascii byte cuts the run", "héllo", 6, "llo", 3, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			prefix, start, ok := words.PrefixBefore(tc.line, tc.offset)
			if prefix != tc.wantPrefix || start != tc.wantStart || ok != tc.wantOK {
				t.Errorf("PrefixBefore(%q, %d) = (%q, %d, %v), want (%q, %d, %v)",
					tc.line, tc.offset, prefix, start, ok,
					tc.wantPrefix, tc.wantStart, tc.wantOK)
			}
		})
	}
}
