package schema_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/castkit/scenevault/pkg/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeNode is a minimal kind used to exercise the codec without dragging in
// live collaborators.
type fakeNode struct {
	tag      string
	version  int
	recorded int
	payload  json.RawMessage
	children []schema.Node
	loaded   *[]string // records load order across the tree
}

func (f *fakeNode) TypeTag() string { return f.tag }
func (f *fakeNode) Version() int    { return f.version }

func (f *fakeNode) Save(ctx context.Context) error { return nil }

func (f *fakeNode) Load(ctx context.Context) error {
	if f.loaded != nil {
		*f.loaded = append(*f.loaded, f.tag)
	}
	for _, c := range f.children {
		if err := c.Load(ctx); err != nil {
			return err
		}
	}
	return nil
}

func (f *fakeNode) Payload() (json.RawMessage, error) { return f.payload, nil }

func (f *fakeNode) Restore(version int, payload json.RawMessage) {
	f.recorded = version
	f.payload = payload
}

func (f *fakeNode) Children() []schema.Node { return f.children }

func (f *fakeNode) Adopt(children []schema.Node) error {
	f.children = children
	return nil
}

func testRegistry() *schema.Registry {
	reg := schema.NewRegistry()
	reg.Register("branch", func() schema.Node { return &fakeNode{tag: "branch", version: 2} })
	reg.Register("leaf", func() schema.Node { return &fakeNode{tag: "leaf", version: 1} })
	return reg
}

func TestStringifyParse_RoundTrip(t *testing.T) {
	root := &fakeNode{
		tag:     "branch",
		version: 2,
		payload: json.RawMessage(`{"label":"root"}`),
		children: []schema.Node{
			&fakeNode{tag: "leaf", version: 1, payload: json.RawMessage(`{"n":1}`)},
			&fakeNode{tag: "leaf", version: 1, payload: json.RawMessage(`{"n":2}`)},
		},
	}

	data, err := schema.Stringify(root)
	require.NoError(t, err)

	parsed, err := schema.Parse(data, testRegistry())
	require.NoError(t, err)

	got := parsed.(*fakeNode)
	assert.Equal(t, "branch", got.tag)
	assert.Equal(t, 2, got.recorded, "recorded version comes from the document")
	assert.JSONEq(t, `{"label":"root"}`, string(got.payload))
	require.Len(t, got.children, 2)
	assert.JSONEq(t, `{"n":2}`, string(got.children[1].(*fakeNode).payload))
}

func TestStringify_Deterministic(t *testing.T) {
	root := &fakeNode{
		tag:     "branch",
		version: 2,
		payload: json.RawMessage(`{"b":1,"a":2}`),
	}

	first, err := schema.Stringify(root)
	require.NoError(t, err)
	second, err := schema.Stringify(root)
	require.NoError(t, err)

	assert.Equal(t, first, second, "identical trees must serialize to identical bytes")
}

func TestParse_UnknownNodeType(t *testing.T) {
	doc := []byte(`{
	  "typeTag": "branch",
	  "schemaVersion": 2,
	  "children": [
	    {"typeTag": "mystery", "schemaVersion": 1}
	  ]
	}`)

	_, err := schema.Parse(doc, testRegistry())
	require.Error(t, err)

	var unknown *schema.UnknownNodeTypeError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "mystery", unknown.TypeTag)
}

func TestParse_RecordsOlderVersion(t *testing.T) {
	doc := []byte(`{"typeTag": "branch", "schemaVersion": 1, "payload": {"label":"old"}}`)

	parsed, err := schema.Parse(doc, testRegistry())
	require.NoError(t, err)

	got := parsed.(*fakeNode)
	assert.Equal(t, 1, got.recorded)
	assert.Equal(t, 2, got.Version(), "current version is owned by the kind, not the document")
}

func TestParse_InvalidJSON(t *testing.T) {
	_, err := schema.Parse([]byte("{truncated"), testRegistry())
	assert.Error(t, err)
}
