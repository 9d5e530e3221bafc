package server

import (
	con "context"

	"gloss/internal/position"
	"gloss/internal/words"

	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

func (s *Server) textDocumentHover(
	context *glsp.Context,
	params *protocol.HoverParams,
) (*protocol.Hover, error) {
	line, offset, ok := s.documentLine(params.TextDocument.URI, params.Position)
	if !ok {
		return nil, nil
	}

	word, start := words.WordAt(line, offset)
	if word == "" {
		return nil, nil
	}

	content := s.translator.Translate(con.Background(), word)
	if content == "" {
		return nil, nil
	}

	wordRange := protocol.Range{
		Start: protocol.Position{
			Line:      params.Position.Line,
			Character: uint32(position.ToUTF16Offset(line, start)),
		},
		End: protocol.Position{
			Line:      params.Position.Line,
			Character: uint32(position.ToUTF16Offset(line, start+len(word))),
		},
	}

	return &protocol.Hover{
		Contents: protocol.MarkupContent{
			Kind:  protocol.MarkupKindMarkdown,
			Value: content,
		},
		Range: &wordRange,
	}, nil
}
