package server

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"gloss/internal/position"

	protocol "github.com/tliron/glsp/protocol_3_16"
)

func getXDGStateHome(appName string) (string, error) {
	xdgStateHome := os.Getenv("XDG_STATE_HOME")
	if xdgStateHome == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get user home directory: %w", err)
		}
		xdgStateHome = filepath.Join(homeDir, ".local", "state")
	}

	// Final path for your app
	appStateDir := filepath.Join(xdgStateHome, appName)

	// Create it if it doesn't exist
	if err := os.MkdirAll(appStateDir, 0700); err != nil {
		return "", fmt.Errorf("failed to create state directory: %w", err)
	}

	return appStateDir, nil
}

// documentLine fetches the line the position points at and converts the
// character offset to a byte offset. ok is false for unknown documents and
// positions past the last line.
func (s *Server) documentLine(uri string, pos protocol.Position) (string, int, bool) {
	content, err := s.manager.GetDocument(uri)
	if err != nil {
		log.Printf("Request for unknown document: %v", err)
		return "", 0, false
	}

	lines := strings.Split(content, "\n")
	if int(pos.Line) >= len(lines) {
		return "", 0, false
	}

	line := lines[pos.Line]
	return line, position.ToByteOffset(line, int(pos.Character)), true
}
