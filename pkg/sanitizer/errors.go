package sanitizer

import "errors"

var (
	// ErrEmptyFilename is returned when nothing survives sanitization
	ErrEmptyFilename = errors.New("sanitizer: filename is empty after sanitization")
)
