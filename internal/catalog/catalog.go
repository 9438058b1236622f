package catalog

import "errors"

var (
	// ErrMissing marks a catalog source file that does not exist.
	ErrMissing = errors.New("catalog: source file missing")
	// ErrUnreadable marks a catalog source file that exists but cannot be
	// read or parsed.
	ErrUnreadable = errors.New("catalog: source file unreadable")
)
