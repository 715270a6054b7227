package services

import "errors"

// Report service errors
var (
	ErrEmptyTable   = errors.New("source file contains no data rows")
	ErrInvalidInput = errors.New("source file could not be read")
)
