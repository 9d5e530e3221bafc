package translate_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gloss/internal/store"
	"gloss/internal/translate"
)

// countingFetcher hands out a fixed body and counts how often it is asked.
type countingFetcher struct {
	body  []byte
	err   error
	calls int
}

func (f *countingFetcher) Lookup(ctx context.Context, word string) ([]byte, error) {
	f.calls++
	return f.body, f.err
}

type testHelper struct {
	store *store.Store
	dir   string
}

func setupTest(t *testing.T) *testHelper {
	t.Helper()

	tmpDir, err := os.MkdirTemp("", "translate_test_*")
	if err != nil {
		t.Fatalf("Failed to create temp directory: %v", err)
	}

	s, err := store.Open(filepath.Join(tmpDir, "definitions.db"))
	if err != nil {
		os.RemoveAll(tmpDir)
		t.Fatalf("Failed to open test store: %v", err)
	}

	return &testHelper{store: s, dir: tmpDir}
}

func (h *testHelper) cleanup(t *testing.T) {
	t.Helper()
	if err := h.store.Close(); err != nil {
		t.Errorf("Failed to close store: %v", err)
	}
	if err := os.RemoveAll(h.dir); err != nil {
		t.Errorf("Failed to remove test directory: %v", err)
	}
}

var testEntry = []byte(`{
	"word_name": "test",
	"symbols": [{
		"ph_am": "tɛst",
		"ph_en": "test",
		"parts": [{"part": "n.", "means": ["a trial"]}]
	}],
	"exchange": {"word_pl": ["tests"]},
	"sent": [{"orig": "This is a test.", "trans": "这是一个测试。"}]
}`)

func TestTranslateFetchesOnceThenHitsCache(t *testing.T) {
	h := setupTest(t)
	defer h.cleanup(t)

	fetcher := &countingFetcher{body: testEntry}
	tr := translate.New(h.store, fetcher)

	first := tr.Translate(context.Background(), "Test")
	if first == "" {
		t.Fatal("Expected a rendered definition on the first call")
	}
	if !strings.Contains(first, "### test") {
		t.Errorf("Expected the headword heading, got:\n%s", first)
	}

	second := tr.Translate(context.Background(), "test")
	if second != first {
		t.Errorf("Second call differs from first:\nfirst:\n%s\nsecond:\n%s", first, second)
	}
	if fetcher.calls != 1 {
		t.Errorf("Expected exactly one fetch across both calls, got %d", fetcher.calls)
	}
}

func TestTranslateNotFound(t *testing.T) {
	h := setupTest(t)
	defer h.cleanup(t)

	fetcher := &countingFetcher{body: []byte(`{}`)}
	tr := translate.New(h.store, fetcher)

	if got := tr.Translate(context.Background(), "nonsenseword"); got != "" {
		t.Errorf("Expected no result, got %q", got)
	}
	if fetcher.calls != 1 {
		t.Errorf("Expected one fetch, got %d", fetcher.calls)
	}
	if _, err := h.store.Get("nonsenseword"); err != store.ErrNotFound {
		t.Errorf("Nothing should be cached for a miss, got %v", err)
	}
}

func TestTranslateFetchFailure(t *testing.T) {
	h := setupTest(t)
	defer h.cleanup(t)

	fetcher := &countingFetcher{err: errors.New("connection refused")}
	tr := translate.New(h.store, fetcher)

	if got := tr.Translate(context.Background(), "word"); got != "" {
		t.Errorf("Expected no result on fetch failure, got %q", got)
	}
}

func TestTranslateMalformedResponse(t *testing.T) {
	h := setupTest(t)
	defer h.cleanup(t)

	fetcher := &countingFetcher{body: []byte(`<html>error</html>`)}
	tr := translate.New(h.store, fetcher)

	if got := tr.Translate(context.Background(), "word"); got != "" {
		t.Errorf("Expected no result for a malformed response, got %q", got)
	}
}

func TestTranslateWritesBackUnderCanonicalHeadword(t *testing.T) {
	h := setupTest(t)
	defer h.cleanup(t)

	// The service answers the inflected lookup with the base form.
	fetcher := &countingFetcher{body: testEntry}
	tr := translate.New(h.store, fetcher)

	if got := tr.Translate(context.Background(), "tests"); got == "" {
		t.Fatal("Expected a rendered definition")
	}

	if _, err := h.store.Get("test"); err != nil {
		t.Errorf("Expected the canonical headword to be cached, got %v", err)
	}
	if _, err := h.store.Get("tests"); err != store.ErrNotFound {
		t.Errorf("The lookup key itself should not be cached, got %v", err)
	}

	// The original lookup key never hits cache, so it fetches again.
	tr.Translate(context.Background(), "tests")
	if fetcher.calls != 2 {
		t.Errorf("Expected a second fetch for the uncached lookup key, got %d", fetcher.calls)
	}
}

func TestTranslateRecoversFromCorruptCacheEntry(t *testing.T) {
	h := setupTest(t)
	defer h.cleanup(t)

	if err := h.store.Put("test", []byte("garbage")); err != nil {
		t.Fatalf("Failed to seed corrupt entry: %v", err)
	}

	fetcher := &countingFetcher{body: testEntry}
	tr := translate.New(h.store, fetcher)

	got := tr.Translate(context.Background(), "test")
	if !strings.Contains(got, "### test") {
		t.Errorf("Expected a fresh fetch to replace the corrupt entry, got:\n%s", got)
	}
	if fetcher.calls != 1 {
		t.Errorf("Expected one fetch, got %d", fetcher.calls)
	}
}
