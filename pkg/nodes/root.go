package nodes

import (
	"context"
	"encoding/json"

	"github.com/castkit/scenevault/pkg/ports"
	"github.com/castkit/scenevault/pkg/schema"
)

// RootTag identifies the document root.
const RootTag = "root"

const rootVersion = 1

// Root is the single rooted entry of a collection document. It owns the five
// fixed child kinds and carries no payload of its own.
type Root struct {
	recorded int
	children []schema.Node
}

// NewRoot builds a save-ready root with its children bound to the live
// services. Sources precede scenes so that restored scene items always refer
// to sources that already exist.
func NewRoot(scenes ports.SceneService, sources ports.SourceService, transition ports.TransitionService, hotkeys ports.HotkeyService) *Root {
	return &Root{
		recorded: rootVersion,
		children: []schema.Node{
			NewSources(sources),
			NewScenes(scenes),
			NewTransition(transition),
			NewHotkeys(hotkeys),
		},
	}
}

func newEmptyRoot() *Root {
	return &Root{recorded: rootVersion}
}

func (n *Root) TypeTag() string { return RootTag }
func (n *Root) Version() int    { return rootVersion }

func (n *Root) Save(ctx context.Context) error {
	for _, child := range n.children {
		if err := child.Save(ctx); err != nil {
			return err
		}
	}
	return nil
}

func (n *Root) Load(ctx context.Context) error {
	if _, err := schema.Upgrade(RootTag, n.recorded, rootVersion, nil, nil); err != nil {
		return err
	}
	for _, child := range n.children {
		if err := child.Load(ctx); err != nil {
			return err
		}
	}
	return nil
}

func (n *Root) Payload() (json.RawMessage, error) { return nil, nil }

func (n *Root) Restore(version int, payload json.RawMessage) {
	n.recorded = version
}

func (n *Root) Children() []schema.Node { return n.children }

func (n *Root) Adopt(children []schema.Node) error {
	n.children = children
	return nil
}
