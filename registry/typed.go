package registry

import (
	"reflect"
	"strconv"
)

// WrongTypeError is returned when a key is registered but the stored value is
// not the requested type.
//
// It is used by TryAs to distinguish "missing" from "wrong type".
type WrongTypeError struct {
	// Key is the key requested.
	Key string

	// GotType is reflect.TypeOf(raw).String() for the stored value.
	GotType string
}

// Error implements the error interface.
func (e WrongTypeError) Error() string {
	// Example: registry: service "db" has wrong type (*mypkg.Logger)
	return "registry: service " + strconv.Quote(e.Key) + " has wrong type (" + e.GotType + ")"
}

// As returns the instance under key typed as T.
//
// ok is false if the key is missing or the stored value is not a T.
func As[T any](r *Registry, key string) (T, bool) {
	var zero T
	raw, ok := r.Lookup(key)
	if !ok {
		return zero, false
	}
	v, ok := raw.(T)
	if !ok {
		return zero, false
	}
	return v, true
}

// TryAs returns the instance under key typed as T.
//
// It returns:
//   - NotFoundError if the key has no registration
//   - WrongTypeError if the key exists but the stored value is not a T
//
// Failure paths avoid fmt.Errorf so callers can use TryAs for control flow
// without paying formatting costs per call.
func TryAs[T any](r *Registry, key string) (T, error) {
	var zero T
	raw, ok := r.Lookup(key)
	if !ok {
		return zero, NotFoundError{Key: key}
	}
	v, ok := raw.(T)
	if !ok {
		return zero, WrongTypeError{
			Key:     key,
			GotType: reflect.TypeOf(raw).String(),
		}
	}
	return v, nil
}

// MustAs returns the instance under key typed as T or panics.
//
// It panics with NotFoundError if the key is missing and with WrongTypeError
// if the stored value is not a T.
func MustAs[T any](r *Registry, key string) T {
	v, err := TryAs[T](r, key)
	if err != nil {
		panic(err)
	}
	return v
}
