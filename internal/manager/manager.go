package manager

import (
	"fmt"
	"sync"
)

// DocumentManager holds the current text of each open document.
type DocumentManager struct {
	mu   sync.Mutex
	docs map[string]string
}

// NewDocumentManager creates an initialized DocumentManager.
func NewDocumentManager() *DocumentManager {
	return &DocumentManager{
		docs: make(map[string]string),
	}
}

// GetDocument returns the current text for a URI.
func (dm *DocumentManager) GetDocument(uri string) (string, error) {
	dm.mu.Lock()
	defer dm.mu.Unlock()

	doc, ok := dm.docs[uri]
	if !ok {
		return "", fmt.Errorf("document not loaded for %s", uri)
	}
	return doc, nil
}

// UpdateDocument replaces the text for a URI.
func (dm *DocumentManager) UpdateDocument(uri string, content string) {
	dm.mu.Lock()
	defer dm.mu.Unlock()
	dm.docs[uri] = content
}

// Release frees the document for a URI.
func (dm *DocumentManager) Release(uri string) {
	dm.mu.Lock()
	defer dm.mu.Unlock()
	delete(dm.docs, uri)
}
