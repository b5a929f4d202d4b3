package ports

import "context"

// BlobStore defines the interface for persisting named byte documents.
// Names are logical collection names; adapters own the physical mapping
// (file extension, key prefix).
type BlobStore interface {
	// Read returns the document bytes for a name.
	// Returns domain.ErrNotFound if the document does not exist.
	Read(ctx context.Context, name string) ([]byte, error)

	// Write stores the document bytes for a name, overwriting in full.
	// An empty (or nil) data slice writes an empty placeholder document.
	Write(ctx context.Context, name string, data []byte) error

	// Delete removes the document. Deleting a missing document is not an error.
	Delete(ctx context.Context, name string) error

	// Exists reports whether a document with the given name is present.
	Exists(ctx context.Context, name string) (bool, error)

	// List returns the names of all stored documents in lexical order.
	List(ctx context.Context) ([]string, error)
}
