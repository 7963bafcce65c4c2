package domain

import "errors"

// Domain errors
var (
	ErrInvalidFileType = errors.New("invalid file type")
	ErrQueueFull       = errors.New("thumbnail queue full")
	ErrEmptyDocument   = errors.New("document has no pages")
)
