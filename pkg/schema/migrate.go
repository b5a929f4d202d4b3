package schema

import "encoding/json"

// MigrateFunc transforms a payload recorded at version v into the shape of
// version v+1.
type MigrateFunc func(payload json.RawMessage) (json.RawMessage, error)

// Chain maps a source version to the step that brings a payload one version
// forward. A kind at version N with recorded documents back to version 1
// carries steps for 1..N-1.
type Chain map[int]MigrateFunc

// Upgrade brings a recorded payload up to the current version of a node kind,
// applying the chain one step at a time.
//
// A recorded version above current fails with ForwardIncompatibleError. A
// missing or failing step fails with MigrationError.
func Upgrade(tag string, recorded, current int, chain Chain, payload json.RawMessage) (json.RawMessage, error) {
	if recorded > current {
		return nil, &ForwardIncompatibleError{TypeTag: tag, Recorded: recorded, Supported: current}
	}

	for v := recorded; v < current; v++ {
		step, ok := chain[v]
		if !ok {
			return nil, &MigrationError{TypeTag: tag, From: v}
		}
		next, err := step(payload)
		if err != nil {
			return nil, &MigrationError{TypeTag: tag, From: v, Err: err}
		}
		payload = next
	}
	return payload, nil
}
