package domain

import "errors"

// ErrNotFound is returned when a named document does not exist in a blob store.
var ErrNotFound = errors.New("document not found")

// ErrCollectionNotFound is returned when a collection name is not registered.
var ErrCollectionNotFound = errors.New("collection not found")

// ErrInvalidName is returned when a collection name fails the legality check.
var ErrInvalidName = errors.New("invalid collection name")
