package shape

import (
	"errors"
	"fmt"
)

type ErrorKind string

const (
	// UnimplementedOperation is returned for shape types that have no metrics implementation.
	UnimplementedOperation ErrorKind = "unimplemented shape"
	InvalidGeometry        ErrorKind = "invalid geometry"
	InvalidTriangle        ErrorKind = "invalid triangle"
	InvalidVariant         ErrorKind = "invalid variant"
	InvalidRectangle       ErrorKind = "invalid rectangle"
	InvalidSquare          ErrorKind = "invalid square"
)

type Error struct {
	Kind    ErrorKind `json:"kind"`
	Type    string    `json:"type"`
	Message string    `json:"errmsg"`
}

func (e Error) Error() string {
	return e.Message
}

func errorf(kind ErrorKind, shapeType string, f string, v ...interface{}) error {
	return Error{
		Kind:    kind,
		Type:    shapeType,
		Message: fmt.Sprintf(f, v...),
	}
}

// Is matches any Error of the same kind, so errors.Is(err, Error{Kind: k}) works
// through wrapping and multierr combinations.
func (e Error) Is(target error) bool {
	t, ok := target.(Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind && (t.Type == "" || t.Type == e.Type)
}

// IsKind reports whether err is, wraps, or combines a shape Error of kind.
func IsKind(err error, kind ErrorKind) bool {
	return errors.Is(err, Error{Kind: kind})
}
