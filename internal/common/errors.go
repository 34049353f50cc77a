package common

import (
	"errors"
	"fmt"
)

type Kind uint8

const (
	KindUnknown Kind = iota
	KindAuth
	KindQuery
	KindTransport
	KindPersistence
)

var (
	ErrAuth        = errors.New("auth error")
	ErrQuery       = errors.New("query error")
	ErrTransport   = errors.New("transport error")
	ErrPersistence = errors.New("persistence error")
)

var kindErrors = map[Kind]error{
	KindAuth:        ErrAuth,
	KindQuery:       ErrQuery,
	KindTransport:   ErrTransport,
	KindPersistence: ErrPersistence,
}

func (k Kind) String() string {
	if err, ok := kindErrors[k]; ok {
		return err.Error()
	}

	return "unknown error"
}

// Error tags an underlying failure with its kind and the operation that produced it.
type Error struct {
	Kind Kind
	Op   string
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", e.Op, e.Kind)
	}

	return fmt.Sprintf("%s: %s: %s", e.Op, e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches the kind sentinel, so errors.Is(err, ErrAuth) works through wrapping.
func (e *Error) Is(target error) bool {
	sentinel, ok := kindErrors[e.Kind]

	return ok && target == sentinel
}

func NewError(kind Kind, op string, err error) error {
	return &Error{Kind: kind, Op: op, Err: err}
}

// KindOf returns the kind of the first Error in the chain.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}

	return KindUnknown
}
