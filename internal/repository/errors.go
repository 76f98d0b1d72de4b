package repository

import "errors"

var (
	ErrProfileNotFound = errors.New("profile not found")
	ErrGoalsNotFound   = errors.New("goals not found")
)
