// Package wordlist produces prefix completions from a sorted word list by
// shelling out to look(1).
package wordlist

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// Searcher yields the candidate words for a prefix, in dictionary order.
// Implementations keep no state between calls.
type Searcher interface {
	Search(ctx context.Context, prefix string) ([]string, error)
}

// LookSearcher searches ListPath when it exists as a regular file, and
// falls back to look's own default word list otherwise.
type LookSearcher struct {
	ListPath string
}

// Search runs one independent look invocation. A run that finds nothing
// exits nonzero; that is an empty result, not an error. Only failing to
// run the tool at all is an error.
func (l *LookSearcher) Search(ctx context.Context, prefix string) ([]string, error) {
	args := []string{prefix}
	if l.ListPath != "" {
		if info, err := os.Stat(l.ListPath); err == nil && info.Mode().IsRegular() {
			args = []string{"-bdf", prefix, l.ListPath}
		}
	}

	out, err := exec.CommandContext(ctx, "look", args...).Output()
	if err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			return nil, fmt.Errorf("failed to run look: %w", err)
		}
	}

	var words []string
	for _, line := range strings.Split(string(out), "\n") {
		if line != "" {
			words = append(words, line)
		}
	}
	return words, nil
}
