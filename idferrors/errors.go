// Package idferrors provides the tagged error type used across the
// idfgen pipeline stages.
package idferrors

import (
	"fmt"
	"time"

	"go.uber.org/zap"
)

// Kind identifies which pipeline stage raised an error.
type Kind string

const (
	// Resolve marks a failure in parameter resolution (C3).
	Resolve Kind = "resolve"
	// Geometry marks a failure in footprint/zoning generation (C4).
	Geometry Kind = "geometry"
	// Topology marks an HVAC graph wiring failure (C6).
	Topology Kind = "topology"
	// Reference marks a dangling name reference between objects.
	Reference Kind = "reference"
	// Field marks an invalid or out-of-range IDF field value.
	Field Kind = "field"
	// Emit marks a failure while serializing the object model to text.
	Emit Kind = "emit"
)

// Error is the single error type raised by every pipeline stage.
type Error struct {
	Kind      Kind
	Code      string
	Object    string
	Field     string
	Message   string
	Cause     error
	Timestamp time.Time
}

// Error implements the error interface.
func (e *Error) Error() string {
	switch {
	case e.Object != "" && e.Field != "":
		return fmt.Sprintf("[%s] %s.%s: %s", e.Kind, e.Object, e.Field, e.Message)
	case e.Object != "":
		return fmt.Sprintf("[%s] %s: %s", e.Kind, e.Object, e.Message)
	default:
		return fmt.Sprintf("[%s] %s", e.Kind, e.Message)
	}
}

// Unwrap returns the underlying cause, if any.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target is an *Error of the same Kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}

// WithCause attaches an underlying cause and returns the same error.
func (e *Error) WithCause(cause error) *Error {
	e.Cause = cause
	return e
}

func newError(kind Kind, object, field, message string) *Error {
	return &Error{
		Kind:      kind,
		Object:    object,
		Field:     field,
		Message:   message,
		Timestamp: time.Now(),
	}
}

// NewResolveError reports a parameter resolution failure.
func NewResolveError(object, message string) *Error {
	return newError(Resolve, object, "", message)
}

// NewGeometryError reports a footprint/zoning generation failure.
func NewGeometryError(object, message string) *Error {
	return newError(Geometry, object, "", message)
}

// NewTopologyError reports an HVAC graph wiring failure.
func NewTopologyError(object, message string) *Error {
	return newError(Topology, object, "", message)
}

// NewReferenceError reports a dangling reference between named objects.
func NewReferenceError(object, field, message string) *Error {
	return newError(Reference, object, field, message)
}

// NewFieldError reports an invalid or out-of-range field value.
func NewFieldError(object, field, message string) *Error {
	return newError(Field, object, field, message)
}

// NewEmitError reports a serialization failure.
func NewEmitError(object, message string) *Error {
	return newError(Emit, object, "", message)
}

// Warning is a non-blocking finding surfaced by the validator; unlike
// Error it never aborts the pipeline.
type Warning struct {
	Code    string
	Object  string
	Message string
}

func (w Warning) String() string {
	if w.Object == "" {
		return w.Message
	}
	return fmt.Sprintf("%s: %s", w.Object, w.Message)
}

// Log writes err to logger at a level chosen by its Kind. Reference and
// Field errors are usually caller-input mistakes and are logged at Warn;
// the rest indicate a broken invariant inside the pipeline and are
// logged at Error.
func Log(logger *zap.Logger, err error) {
	if err == nil {
		return
	}
	e, ok := err.(*Error)
	if !ok {
		logger.Error("unhandled error", zap.Error(err))
		return
	}
	fields := []zap.Field{
		zap.String("kind", string(e.Kind)),
		zap.String("object", e.Object),
		zap.String("field", e.Field),
	}
	if e.Cause != nil {
		fields = append(fields, zap.Error(e.Cause))
	}
	switch e.Kind {
	case Reference, Field:
		logger.Warn(e.Message, fields...)
	default:
		logger.Error(e.Message, fields...)
	}
}
