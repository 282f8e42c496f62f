package remote

import "errors"

// Protocol errors.
var (
	// ErrUnsupportedMediaType is returned for requests without a JSON body.
	ErrUnsupportedMediaType = errors.New("unsupported media type")

	// ErrInvalidRequest is returned when the request body cannot be decoded.
	ErrInvalidRequest = errors.New("invalid validation request")

	// ErrNilModelFactory is returned when a handler is built without a model
	// factory.
	ErrNilModelFactory = errors.New("nil model factory")
)
