package repository

import "errors"

var (
	ErrFailedToList  = errors.New("failed to list")
	ErrFailedToCount = errors.New("failed to count")
	ErrFailedToScan  = errors.New("failed to scan")
)
