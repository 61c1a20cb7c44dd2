package domain

import "errors"

var (
	// ErrEmptyQuery is returned when a search is submitted without input.
	ErrEmptyQuery = errors.New("empty repository query")

	// ErrSearchFailed wraps any failure of the repository lookup on search.
	ErrSearchFailed = errors.New("repository search failed")

	// ErrDetailFailed wraps any failure while loading the detail screen.
	ErrDetailFailed = errors.New("repository detail lookup failed")
)

// User-facing messages shown by the search screen.
const (
	MsgEmptyQuery   = "Enter the repository author/name"
	MsgSearchFailed = "Error searching for that repository"
)
