package usecase

import "errors"

var (
	// ErrEmptyHomepage is returned when an empty homepage URL is submitted.
	ErrEmptyHomepage = errors.New("homepage URL is empty")

	// ErrInvalidHomepage is returned when a homepage URL cannot be parsed
	// into an absolute URL.
	ErrInvalidHomepage = errors.New("invalid homepage URL")

	// ErrNotFromTab is returned for page messages that carry no sender tab.
	ErrNotFromTab = errors.New("not called from a tab")
)
