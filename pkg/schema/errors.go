package schema

import "fmt"

// UnknownNodeTypeError is returned when a serialized node carries a typeTag
// that is not present in the registry.
type UnknownNodeTypeError struct {
	TypeTag string
}

func (e *UnknownNodeTypeError) Error() string {
	return fmt.Sprintf("unknown node type %q", e.TypeTag)
}

// ForwardIncompatibleError is returned when a recorded schema version exceeds
// the version supported by this build (older software reading a newer
// document).
type ForwardIncompatibleError struct {
	TypeTag   string
	Recorded  int
	Supported int
}

func (e *ForwardIncompatibleError) Error() string {
	return fmt.Sprintf("node %q: recorded schema version %d exceeds supported version %d",
		e.TypeTag, e.Recorded, e.Supported)
}

// MigrationError wraps a failure inside a node kind's migration chain.
type MigrationError struct {
	TypeTag string
	From    int
	Err     error
}

func (e *MigrationError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("node %q: no migration step from version %d", e.TypeTag, e.From)
	}
	return fmt.Sprintf("node %q: migration from version %d failed: %v", e.TypeTag, e.From, e.Err)
}

func (e *MigrationError) Unwrap() error { return e.Err }
