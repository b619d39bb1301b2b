package entry

import "errors"

var (
	ErrIncomplete       = errors.New("incomplete container identity")
	ErrIdentityMismatch = errors.New("container identity mismatch")
)
