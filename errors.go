package yso

import (
	"errors"
	"fmt"
	"reflect"
)

// ErrNotFound is matched by every *LookupError.
var ErrNotFound = errors.New("yso: not found")

// A LookupError reports a read of a scope or key that does not exist. Key
// is empty when the scope itself is missing.
type LookupError struct {
	Scope string
	Key   string
}

func (e *LookupError) Error() string {
	if e.Key == "" {
		return fmt.Sprintf("yso: scope %q not found", e.Scope)
	}
	if e.Scope == Global {
		return fmt.Sprintf("yso: key %q not found in global scope", e.Key)
	}
	return fmt.Sprintf("yso: key %q not found in scope %q", e.Key, e.Scope)
}

func (e *LookupError) Unwrap() error { return ErrNotFound }

// A BindError represents an error from a SectionUnmarshaler or
// SectionMarshaler.
type BindError struct {
	Scope string
	Type  reflect.Type
	Err   error
}

func (e *BindError) Error() string {
	return fmt.Sprintf("yso: error binding scope %q to type %s: %s", e.Scope, e.Type, e.Err)
}

func (e *BindError) Unwrap() error { return e.Err }

// A ValueError reports a value that could not be converted by one of the
// typed Section accessors.
type ValueError struct {
	Scope string
	Key   string
	Value string
	Err   error
}

func (e *ValueError) Error() string {
	return fmt.Sprintf("yso: invalid value %q for key %q in scope %q: %s", e.Value, e.Key, e.Scope, e.Err)
}

func (e *ValueError) Unwrap() error { return e.Err }
