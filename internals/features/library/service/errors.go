package service

import "errors"

// Sentinel error untuk dipetakan controller ke status code.
var (
	ErrTitleRequired   = errors.New("title is required")
	ErrBookNotFound    = errors.New("book not found")
	ErrRequestNotFound = errors.New("request not found")
)
