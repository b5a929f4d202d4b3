package schema

import (
	"context"
	"encoding/json"
)

// Node is one typed, versioned unit of the collection document tree.
//
// A node is bound to exactly one live collaborator at construction time; no
// two node kinds write the same collaborator. Save and Load recurse into
// children, so invoking them on the root covers the whole tree.
type Node interface {
	// TypeTag identifies the node kind in serialized form.
	TypeTag() string

	// Version is the current schema version written by this build.
	Version() int

	// Save pulls the node's slice of live state into its payload and
	// (re)builds its children, recursing into them.
	Save(ctx context.Context) error

	// Load pushes the node's recorded payload back into live state, replacing
	// whatever is there, after migrating the payload to the current version.
	// It recurses into children.
	Load(ctx context.Context) error

	// Payload returns the kind-specific serializable data populated by Save.
	Payload() (json.RawMessage, error)

	// Restore installs a recorded payload and schema version read from a
	// document. It performs no interpretation; Load does.
	Restore(version int, payload json.RawMessage)

	// Children returns the node's owned children in order.
	Children() []Node

	// Adopt attaches parsed children. Kinds that own no children reject a
	// non-empty list.
	Adopt(children []Node) error
}
