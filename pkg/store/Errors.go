package store

import (
	"fmt"
	"github.com/pkg/errors"
)

var (
	ErrIO             = errors.New("store io error")
	ErrParse          = errors.New("store parse error")
	ErrNotInitialized = errors.New("store file is not initialized")
)

func newError(op string, path string, err error, kinds ...error) *Error {
	return &Error{
		Op:    op,
		Path:  path,
		Kinds: kinds,
		Err:   err,
	}
}

func (e *Error) Error() string {
	if len(e.Kinds) == 0 {
		return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
	}

	return fmt.Sprintf("%s %s: %v: %v", e.Op, e.Path, e.Kinds[0], e.Err)
}

func (e *Error) Unwrap() []error {
	return append(append([]error{}, e.Kinds...), e.Err)
}
