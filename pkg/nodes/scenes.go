package nodes

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/castkit/scenevault/pkg/domain"
	"github.com/castkit/scenevault/pkg/ports"
	"github.com/castkit/scenevault/pkg/schema"
)

// Tags of the scene tree nodes.
const (
	ScenesTag     = "scenes"
	SceneItemsTag = "scene-items"
)

const (
	scenesVersion     = 2
	sceneItemsVersion = 1
)

type scenesPayload struct {
	Items    []domain.SceneRecord `json:"items"`
	ActiveID string               `json:"activeId"`
}

// Scenes snapshots the live scene list and active selection, owning one
// SceneItems child per scene.
type Scenes struct {
	svc      ports.SceneService
	recorded int
	raw      json.RawMessage
	payload  scenesPayload
	children []schema.Node
}

// NewScenes binds a scenes node to the live scene service.
func NewScenes(svc ports.SceneService) *Scenes {
	return &Scenes{svc: svc, recorded: scenesVersion}
}

func (n *Scenes) TypeTag() string { return ScenesTag }
func (n *Scenes) Version() int    { return scenesVersion }

func (n *Scenes) Save(ctx context.Context) error {
	scenes := n.svc.Scenes()
	n.payload = scenesPayload{Items: scenes, ActiveID: n.svc.ActiveSceneID()}

	n.children = n.children[:0]
	for _, sc := range scenes {
		child := NewSceneItems(n.svc, sc.ID)
		if err := child.Save(ctx); err != nil {
			return err
		}
		n.children = append(n.children, child)
	}
	return nil
}

func (n *Scenes) Load(ctx context.Context) error {
	data, err := schema.Upgrade(ScenesTag, n.recorded, scenesVersion, scenesMigrations, n.raw)
	if err != nil {
		return err
	}

	var p scenesPayload
	if len(data) > 0 {
		if err := json.Unmarshal(data, &p); err != nil {
			return fmt.Errorf("node %q: decode payload: %w", ScenesTag, err)
		}
	}
	n.svc.ReplaceScenes(p.Items, p.ActiveID)

	// Items load after the scene list so they land in existing scenes.
	for _, child := range n.children {
		if err := child.Load(ctx); err != nil {
			return err
		}
	}
	return nil
}

func (n *Scenes) Payload() (json.RawMessage, error) {
	return json.Marshal(n.payload)
}

func (n *Scenes) Restore(version int, payload json.RawMessage) {
	n.recorded = version
	n.raw = payload
}

func (n *Scenes) Children() []schema.Node { return n.children }

func (n *Scenes) Adopt(children []schema.Node) error {
	for _, child := range children {
		if _, ok := child.(*SceneItems); !ok {
			return fmt.Errorf("unexpected child node %q", child.TypeTag())
		}
	}
	n.children = children
	return nil
}

var scenesMigrations = schema.Chain{
	1: migrateScenesV1,
}

// migrateScenesV1 supplies the "activeId" field version 1 documents lacked,
// selecting the first scene.
func migrateScenesV1(payload json.RawMessage) (json.RawMessage, error) {
	if len(payload) == 0 {
		return payload, nil
	}

	var doc map[string]any
	if err := json.Unmarshal(payload, &doc); err != nil {
		return nil, err
	}
	if _, ok := doc["activeId"]; !ok {
		if items, ok := doc["items"].([]any); ok && len(items) > 0 {
			if first, ok := items[0].(map[string]any); ok {
				doc["activeId"] = first["id"]
			}
		}
	}
	return json.Marshal(doc)
}

type sceneItemsPayload struct {
	SceneID string                   `json:"sceneId"`
	Items   []domain.SceneItemRecord `json:"items"`
}

// SceneItems snapshots the item list of one scene.
type SceneItems struct {
	svc      ports.SceneService
	sceneID  string
	recorded int
	raw      json.RawMessage
	payload  sceneItemsPayload
}

// NewSceneItems binds a scene-items node to one scene. When reconstructing
// from a document the scene ID comes from the recorded payload and may be
// left empty here.
func NewSceneItems(svc ports.SceneService, sceneID string) *SceneItems {
	return &SceneItems{svc: svc, sceneID: sceneID, recorded: sceneItemsVersion}
}

func (n *SceneItems) TypeTag() string { return SceneItemsTag }
func (n *SceneItems) Version() int    { return sceneItemsVersion }

func (n *SceneItems) Save(ctx context.Context) error {
	n.payload = sceneItemsPayload{SceneID: n.sceneID, Items: n.svc.Items(n.sceneID)}
	return nil
}

func (n *SceneItems) Load(ctx context.Context) error {
	data, err := schema.Upgrade(SceneItemsTag, n.recorded, sceneItemsVersion, nil, n.raw)
	if err != nil {
		return err
	}

	var p sceneItemsPayload
	if len(data) > 0 {
		if err := json.Unmarshal(data, &p); err != nil {
			return fmt.Errorf("node %q: decode payload: %w", SceneItemsTag, err)
		}
	}
	if p.SceneID == "" {
		return nil
	}
	n.sceneID = p.SceneID
	n.svc.ReplaceItems(p.SceneID, p.Items)
	return nil
}

func (n *SceneItems) Payload() (json.RawMessage, error) {
	return json.Marshal(n.payload)
}

func (n *SceneItems) Restore(version int, payload json.RawMessage) {
	n.recorded = version
	n.raw = payload
}

func (n *SceneItems) Children() []schema.Node { return nil }

func (n *SceneItems) Adopt(children []schema.Node) error {
	if len(children) > 0 {
		return fmt.Errorf("scene-items node owns no children")
	}
	return nil
}
