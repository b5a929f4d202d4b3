package schema

import (
	"encoding/json"
	"fmt"
)

// RawNode is the serialized envelope of one node. The envelope is fixed; the
// payload shape is owned by the node kind.
type RawNode struct {
	TypeTag       string          `json:"typeTag"`
	SchemaVersion int             `json:"schemaVersion"`
	Payload       json.RawMessage `json:"payload,omitempty"`
	Children      []*RawNode      `json:"children,omitempty"`
}

// Stringify serializes a node tree to pretty-printed JSON. The output is
// stable for a given live state, so two saves of identical state are
// byte-identical (used by the duplication guarantee).
func Stringify(root Node) ([]byte, error) {
	raw, err := flatten(root)
	if err != nil {
		return nil, err
	}
	data, err := json.MarshalIndent(raw, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("stringify document: %w", err)
	}
	return data, nil
}

func flatten(n Node) (*RawNode, error) {
	payload, err := n.Payload()
	if err != nil {
		return nil, fmt.Errorf("node %q: payload: %w", n.TypeTag(), err)
	}

	raw := &RawNode{
		TypeTag:       n.TypeTag(),
		SchemaVersion: n.Version(),
		Payload:       payload,
	}
	for _, child := range n.Children() {
		flat, err := flatten(child)
		if err != nil {
			return nil, err
		}
		raw.Children = append(raw.Children, flat)
	}
	return raw, nil
}

// Parse reconstructs a live node tree from serialized document bytes,
// resolving each typeTag through the registry. It fails with
// UnknownNodeTypeError for tags outside the registered set and never mutates
// live state; that only happens when Load is invoked on the returned tree.
func Parse(data []byte, reg *Registry) (Node, error) {
	var raw RawNode
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse document: %w", err)
	}
	return hydrate(&raw, reg)
}

func hydrate(raw *RawNode, reg *Registry) (Node, error) {
	node, err := reg.New(raw.TypeTag)
	if err != nil {
		return nil, err
	}
	node.Restore(raw.SchemaVersion, raw.Payload)

	if len(raw.Children) > 0 {
		children := make([]Node, 0, len(raw.Children))
		for _, rc := range raw.Children {
			child, err := hydrate(rc, reg)
			if err != nil {
				return nil, err
			}
			children = append(children, child)
		}
		if err := node.Adopt(children); err != nil {
			return nil, fmt.Errorf("node %q: %w", raw.TypeTag, err)
		}
	}
	return node, nil
}
