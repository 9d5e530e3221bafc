package server

import (
	con "context"
	"log"

	"gloss/internal/position"
	"gloss/internal/words"

	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

func (s *Server) textDocumentCompletion(
	context *glsp.Context,
	params *protocol.CompletionParams,
) (any, error) {
	line, offset, ok := s.documentLine(params.TextDocument.URI, params.Position)
	if !ok {
		return nil, nil
	}

	prefix, start, ok := words.PrefixBefore(line, offset)
	if !ok {
		return nil, nil
	}

	candidates, err := s.searcher.Search(con.Background(), prefix)
	if err != nil {
		log.Printf("Word list search failed: %v", err)
		candidates = nil
	}

	// Replace exactly the typed prefix, in client offsets.
	editRange := protocol.Range{
		Start: protocol.Position{
			Line:      params.Position.Line,
			Character: uint32(position.ToUTF16Offset(line, start)),
		},
		End: protocol.Position{
			Line:      params.Position.Line,
			Character: uint32(position.ToUTF16Offset(line, offset)),
		},
	}

	kind := protocol.CompletionItemKindText
	format := protocol.InsertTextFormatPlainText

	items := make([]protocol.CompletionItem, 0, len(candidates))
	for _, candidate := range candidates {
		items = append(items, protocol.CompletionItem{
			Label:            candidate,
			Kind:             &kind,
			InsertTextFormat: &format,
			TextEdit: protocol.TextEdit{
				Range:   editRange,
				NewText: candidate,
			},
		})
	}

	return protocol.CompletionList{
		IsIncomplete: false,
		Items:        items,
	}, nil
}

func (s *Server) completionItemResolve(
	context *glsp.Context,
	params *protocol.CompletionItem,
) (*protocol.CompletionItem, error) {
	content := s.translator.Translate(con.Background(), params.Label)
	if content == "" {
		return params, nil
	}

	params.Documentation = protocol.MarkupContent{
		Kind:  protocol.MarkupKindMarkdown,
		Value: content,
	}
	return params, nil
}
