// Package server implements the language server: document sync plus hover,
// completion and completion resolve backed by the dictionary cache and the
// look word list.
package server

import (
	"gloss/internal/config"
	"gloss/internal/manager"
	"gloss/internal/store"
	"gloss/internal/translate"
	"gloss/internal/wordlist"

	protocol "github.com/tliron/glsp/protocol_3_16"
	glspserver "github.com/tliron/glsp/server"
)

const lsName = "gloss"

type Server struct {
	handler *protocol.Handler
	config  config.Config
	version string

	manager    *manager.DocumentManager
	store      *store.Store
	translator *translate.Translator
	searcher   wordlist.Searcher
}

// NewServer wires the protocol handlers. The dictionary client, cache and
// word list searcher are set up in initialize once the client's
// initializationOptions are known.
func NewServer(cfg config.Config, version string) (*glspserver.Server, error) {
	ls := &Server{
		config:  cfg,
		version: version,
		manager: manager.NewDocumentManager(),
	}

	ls.handler = &protocol.Handler{
		Initialize:             ls.initialize,
		Initialized:            ls.initialized,
		TextDocumentDidOpen:    ls.textDocumentDidOpen,
		TextDocumentDidChange:  ls.textDocumentDidChange,
		TextDocumentDidSave:    ls.textDocumentDidSave,
		TextDocumentDidClose:   ls.textDocumentDidClose,
		TextDocumentHover:      ls.textDocumentHover,
		TextDocumentCompletion: ls.textDocumentCompletion,
		CompletionItemResolve:  ls.completionItemResolve,
		SetTrace:               ls.setTrace,
		Shutdown:               ls.shutdown,
	}

	return glspserver.NewServer(ls.handler, lsName, false), nil
}
