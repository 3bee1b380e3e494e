package service

import "errors"

var (
	ErrSnapshotNotFound = errors.New("no saved courses")
	ErrInvalidProfile   = errors.New("invalid profile")
	ErrNoCourses        = errors.New("no valid courses to save")
	ErrTooManyCourses   = errors.New("too many courses")
	ErrInvalidTotals    = errors.New("invalid totals")
	ErrInvalidTheme     = errors.New("invalid theme")
)
