package llm

import "errors"

var (
	// ErrNoJSON indicates the generator output contained no JSON object at all.
	ErrNoJSON = errors.New("no JSON object in generator output")

	// ErrInvalidOutput indicates the generator output could not be decoded
	// into the expected structure.
	ErrInvalidOutput = errors.New("invalid generator output")
)
