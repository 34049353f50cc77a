package tweetfinder

import "errors"

var (
	ErrInvalidKeyword   = errors.New("invalid keyword")
	ErrNoCredentials    = errors.New("no credentials configured")
	ErrInvalidResponse  = errors.New("invalid response")
	ErrUnexpectedStatus = errors.New("unexpected response status")
)
