package pkg

import (
	"errors"
	"fmt"
)

// error

type Error struct {
	orig error
	msg  string
	code error
}

func (e *Error) Error() string {
	if e.orig != nil {
		return fmt.Sprintf("%s", e.msg)
	}

	return e.msg
}

func (e *Error) Unwrap() error {
	return e.orig
}

func WrapErrorf(orig error, code error, format string, a ...interface{}) error {
	return &Error{
		code: code,
		orig: orig,
		msg:  fmt.Sprintf(format, a...),
	}
}

func (e *Error) Code() error {
	return e.code
}

func (e *Error) Is(target error) bool {
	return e.code == target
}

var (
	ErrInternalServerError = errors.New("internal Server Error")
	ErrNotFound            = errors.New("your requested Item is not found")
	ErrBadParamInput       = errors.New("given Param is not valid")

	// ErrNotInitialized is returned by every frequency-model query that runs
	// before the first successful corpus build.
	ErrNotInitialized = errors.New("frequency model is not initialized, build the corpus first")

	// ErrCorpusLoad wraps I/O failures while reading a corpus source. It is
	// raised by the corpus loader, never by the model itself.
	ErrCorpusLoad = errors.New("failed to load corpus")
)

var MessageInternalServerError string = "internal server error"
