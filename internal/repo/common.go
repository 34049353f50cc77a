package repo

import "errors"

var (
	ErrTweetNotFound  = errors.New("tweet not found")
	ErrUnknownDialect = errors.New("unknown sql dialect")
)
