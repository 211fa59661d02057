package vocabulary

import "errors"

var (
	// ErrNilItem is returned when a nil item is added to the store.
	ErrNilItem = errors.New("vocabulary item cannot be nil")

	// ErrItemNotFound is returned when an update targets an unknown item.
	ErrItemNotFound = errors.New("vocabulary item not found")

	// ErrMalformedData is returned when serialized store data cannot be decoded.
	ErrMalformedData = errors.New("malformed vocabulary data")
)
