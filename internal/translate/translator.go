// Package translate resolves words to rendered definitions through the
// persistent cache, fetching from the dictionary service and writing back
// on misses.
package translate

import (
	"context"
	"errors"
	"log"
	"strings"

	"gloss/internal/dictionary"
	"gloss/internal/store"
)

// Fetcher is the remote lookup the pipeline falls back to on a cache miss.
type Fetcher interface {
	Lookup(ctx context.Context, word string) ([]byte, error)
}

// Translator is safe for concurrent use; it keeps no per-request state.
type Translator struct {
	store   *store.Store
	fetcher Fetcher
}

func New(s *store.Store, f Fetcher) *Translator {
	return &Translator{store: s, fetcher: f}
}

// Translate returns the rendered definition for word, or "" when there is
// none. Every failure along the way degrades to "" and is logged here;
// nothing propagates to the caller.
func (t *Translator) Translate(ctx context.Context, word string) string {
	word = strings.ToLower(word)

	cached, err := t.store.Get(word)
	if err == nil {
		r, err := dictionary.Decode(cached)
		if err == nil {
			return dictionary.Render(r)
		}
		// Undecodable entries fall through to a fresh fetch.
		log.Printf("Discarding unreadable cache entry for %q: %v", word, err)
	} else if !errors.Is(err, store.ErrNotFound) {
		log.Printf("Cache read for %q failed: %v", word, err)
	}

	body, err := t.fetcher.Lookup(ctx, word)
	if err != nil {
		log.Printf("Lookup for %q failed: %v", word, err)
		return ""
	}

	r, err := dictionary.Decode(body)
	if err != nil {
		log.Printf("Unusable response for %q: %v", word, err)
		return ""
	}
	if r.WordName == "" {
		return ""
	}

	// The write key is the canonical headword, which can differ from the
	// lookup key when the service normalizes the input.
	key := strings.ToLower(r.WordName)
	if err := t.store.Put(key, body); err != nil {
		log.Printf("Cache write for %q failed: %v", key, err)
	}

	return dictionary.Render(r)
}
