package models

import "errors"

// ErrInvalidInput marks a request rejected by a service-level rule.
var ErrInvalidInput = errors.New("invalid input")
