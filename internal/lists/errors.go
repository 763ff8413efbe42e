package lists

import (
	"errors"
	"fmt"
)

// The message holding a list is unreachable: never created, deleted,
// or the platform could not serve it
var ErrNotFound = errors.New("list message not found")

// FetchError is returned by the locator when the platform fails to
// serve a message it was asked for
type FetchError struct {
	Ref Ref
	Err error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("could not fetch message %s: %v", e.Ref, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}
