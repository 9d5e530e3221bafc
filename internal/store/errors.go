package store

import "fmt"

var (
	// ErrNotFound is returned when a word has no cached definition
	ErrNotFound = fmt.Errorf("definition not found")
)
