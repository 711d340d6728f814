package datastructure

import "errors"

var (
	// ErrUnknownLabel is returned when a label has no index in a LabelRegistry.
	ErrUnknownLabel = errors.New("datastructure: unknown label")

	// ErrIndexOutOfRange is returned when an index is outside 0..n-1.
	ErrIndexOutOfRange = errors.New("datastructure: index out of range")

	// ErrStaleMapping is returned when a LabelRegistry is used after the
	// GraphModel it was built from has been mutated.
	ErrStaleMapping = errors.New("datastructure: label registry is stale")

	// ErrDuplicateLabel is returned when a registry is built from a label
	// sequence that contains the same label twice.
	ErrDuplicateLabel = errors.New("datastructure: duplicate label")

	// ErrMalformedGraphFile is returned by the graph file readers.
	ErrMalformedGraphFile = errors.New("datastructure: malformed graph file")
)
