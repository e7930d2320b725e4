package gateway

import "github.com/wassaf/wassaf-cli/internal/content"

// ErrorType categorizes generation failures. Every failure of an invocation
// is terminal for that invocation; the caller decides whether to re-trigger.
type ErrorType int

const (
	// ErrTypeTransport indicates the external call itself could not complete.
	ErrTypeTransport ErrorType = iota
	// ErrTypeMalformed indicates the reply could not be parsed or violated
	// the declared response schema.
	ErrTypeMalformed
	// ErrTypeEmpty indicates a well-formed reply carrying no usable content.
	ErrTypeEmpty
)

func (t ErrorType) String() string {
	switch t {
	case ErrTypeTransport:
		return "transport"
	case ErrTypeMalformed:
		return "malformed"
	case ErrTypeEmpty:
		return "empty"
	}
	return "unknown"
}

// GenerationError is the typed failure of one gateway invocation. The
// original cause is preserved for logs; user-facing surfaces show only a
// generic message per operation.
type GenerationError struct {
	Type ErrorType
	Kind content.Kind
	Err  error
}

func (e *GenerationError) Error() string {
	msg := "generation failed (" + string(e.Kind) + ", " + e.Type.String() + ")"
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *GenerationError) Unwrap() error {
	return e.Err
}
