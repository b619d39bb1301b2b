package config

import "errors"

var (
	ErrMalformed           = errors.New("malformed environment description")
	ErrUnknownTarget       = errors.New("unknown target")
	ErrTierViolation       = errors.New("tier violation")
	ErrUnfilledPlaceholder = errors.New("unfilled placeholder")
	ErrUnsupported         = errors.New("unsupported value")
)
