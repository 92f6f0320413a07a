package outcome

import (
	"context"
	"errors"
	"reflect"
)

// IsNil reports whether v is nil at the interface level or a nil
// pointer, map, slice, channel or function inside one.
func IsNil(v any) bool {
	if v == nil {
		return true
	}
	switch rv := reflect.ValueOf(v); rv.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.Interface:
		return rv.IsNil()
	}
	return false
}

// IsErrorValue reports whether v's dynamic value is a usable error.
func IsErrorValue(v any) bool {
	_, ok := v.(error)
	return ok && !IsNil(v)
}

// IsFunc reports whether v is callable.
func IsFunc(v any) bool {
	return v != nil && reflect.TypeOf(v).Kind() == reflect.Func
}

// Is reports whether v's dynamic type is (or implements) U.
func Is[U any](v any) bool {
	_, ok := v.(U)
	return ok
}

// JoinedErrors splits an error produced by errors.Join into its parts; a
// plain error comes back as a single-element slice.
func JoinedErrors(err error) []error {
	if IsNil(err) {
		return []error{}
	}

	e, ok := err.(interface{ Unwrap() []error })
	if ok {
		return e.Unwrap()
	}

	return []error{err}
}

// IsCancellation reports whether err stems from context cancellation or
// deadline expiry.
func IsCancellation(err error) bool {
	return errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled)
}
