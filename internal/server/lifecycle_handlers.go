package server

import (
	"fmt"
	"log"
	"path/filepath"

	"gloss/internal/dictionary"
	"gloss/internal/store"
	"gloss/internal/translate"
	"gloss/internal/wordlist"

	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

func (s *Server) initialize(
	context *glsp.Context,
	params *protocol.InitializeParams,
) (any, error) {
	// Config
	cfg, err := s.config.Merge(params.InitializationOptions)
	if err != nil {
		return nil, err
	}
	s.config = cfg
	log.Printf("Config: %+v", cfg)

	// State paths
	stateDir, err := getXDGStateHome(lsName)
	if err != nil {
		return nil, err
	}
	if s.config.CachePath == "" {
		s.config.CachePath = filepath.Join(stateDir, "definitions.db")
	}
	if s.config.WordList == "" {
		s.config.WordList = filepath.Join(stateDir, "words.txt")
	}

	// Definition cache + lookup pipeline
	db, err := store.Open(s.config.CachePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open definition cache: %w", err)
	}
	s.store = db
	s.translator = translate.New(db, dictionary.NewClient(s.config.Endpoint, s.config.APIKey))
	s.searcher = &wordlist.LookSearcher{ListPath: s.config.WordList}

	syncKind := protocol.TextDocumentSyncKindFull

	capabilities := s.handler.CreateServerCapabilities()
	capabilities.TextDocumentSync = &protocol.TextDocumentSyncOptions{
		OpenClose: &protocol.True,
		Change:    &syncKind,
		Save:      &protocol.SaveOptions{IncludeText: &protocol.True},
	}
	capabilities.CompletionProvider = &protocol.CompletionOptions{
		ResolveProvider: &protocol.True,
	}

	return protocol.InitializeResult{
		Capabilities: capabilities,
		ServerInfo: &protocol.InitializeResultServerInfo{
			Name:    lsName,
			Version: &s.version,
		},
	}, nil
}

func (s *Server) initialized(
	context *glsp.Context,
	params *protocol.InitializedParams,
) error {
	log.Println("Client initialized.")
	return nil
}

func (s *Server) shutdown(context *glsp.Context) error {
	log.Println("Server shutting down")
	protocol.SetTraceValue(protocol.TraceValueOff)
	if s.store != nil {
		if err := s.store.Close(); err != nil {
			log.Printf("Error closing definition cache: %v", err)
		}
		s.store = nil
	}
	return nil
}

func (s *Server) setTrace(context *glsp.Context, params *protocol.SetTraceParams) error {
	protocol.SetTraceValue(params.Value)
	return nil
}
