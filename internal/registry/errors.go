package registry

import "errors"

// Registry errors. Every failing operation logs and returns one of these
// (wrapped with context); none of them is ever escalated as fatal. A
// dispatch-table miss is the one programming error in the package and
// panics instead; see CopyTable.
var (
	ErrNotFound        = errors.New("managed object not found")
	ErrNilObject       = errors.New("managed object cannot be nil")
	ErrInvalidHandle   = errors.New("managed object handle cannot be empty")
	ErrUndeletable     = errors.New("managed object is required and undeletable")
	ErrUserLocked      = errors.New("managed object is user-locked, unlock it first")
	ErrNoDefaultObject = errors.New("no default managed object installed")
	ErrParseFailure    = errors.New("document unreadable or malformed")
)
