package storage

import "errors"

var (
	ErrUserExists   = errors.New("user already exists")
	ErrUserNotFound = errors.New("user not found")
)

var (
	ErrNotFound             = errors.New("not found")
	ErrDuplicateName        = errors.New("name already exists")
	ErrDuplicateSlug        = errors.New("slug already exists")
	ErrDuplicateExternalID  = errors.New("external post id already imported")
	ErrDuplicateEmail       = errors.New("email already subscribed")
	ErrCapacityExceeded     = errors.New("capacity exceeded")
	ErrReferentialIntegrity = errors.New("record is still referenced")
	ErrInvalidTransition    = errors.New("invalid status transition")
)

var (
	ErrFileTooLarge    = errors.New("file size exceeds limit")
	ErrInvalidFileType = errors.New("invalid file type")
	ErrFileNotFound    = errors.New("file not found")
)
