package nodes_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/castkit/scenevault/pkg/domain"
	"github.com/castkit/scenevault/pkg/nodes"
	"github.com/castkit/scenevault/pkg/schema"
	"github.com/castkit/scenevault/pkg/state"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func registryFor(app *state.App) *schema.Registry {
	return nodes.NewRegistry(app.Scenes, app.Sources, app.Transition, app.Hotkeys)
}

func TestRootNode_RoundTripThroughDocument(t *testing.T) {
	ctx := context.Background()

	live := state.NewApp()
	intro := live.Scenes.CreateScene("Intro")
	game := live.Scenes.CreateScene("Game")
	live.Scenes.SetActiveScene(game.ID)

	cam, err := live.Sources.CreateSource("Cam", "video_capture", nil, 0)
	require.NoError(t, err)
	_, err = live.Sources.CreateSource("Mic", domain.KindAudioInputCapture,
		map[string]any{"device_id": "usb-1"}, domain.ChannelMicAux)
	require.NoError(t, err)

	live.Scenes.AddItem(game.ID, cam.ID)
	live.Transition.SetTransition(domain.TransitionRecord{Kind: "fade", DurationMs: 450})
	live.Hotkeys.Bind("scene.next", []string{"Ctrl", "Tab"})

	root := nodes.NewRoot(live.Scenes, live.Sources, live.Transition, live.Hotkeys)
	require.NoError(t, root.Save(ctx))

	data, err := schema.Stringify(root)
	require.NoError(t, err)

	// Restore into a completely fresh live state.
	fresh := state.NewApp()
	parsed, err := schema.Parse(data, registryFor(fresh))
	require.NoError(t, err)
	require.NoError(t, parsed.Load(ctx))

	scenes := fresh.Scenes.Scenes()
	require.Len(t, scenes, 2)
	assert.Equal(t, "Intro", scenes[0].Name)
	assert.Equal(t, intro.ID, scenes[0].ID)
	assert.Equal(t, game.ID, fresh.Scenes.ActiveSceneID())

	items := fresh.Scenes.Items(game.ID)
	require.Len(t, items, 1)
	assert.Equal(t, cam.ID, items[0].SourceID)

	sources := fresh.Sources.Sources()
	require.Len(t, sources, 2)
	assert.Equal(t, "Cam", sources[0].Name)
	assert.Equal(t, domain.ChannelMicAux, sources[1].Channel)

	assert.Equal(t, "fade", fresh.Transition.Transition().Kind)

	bindings := fresh.Hotkeys.Bindings()
	require.Len(t, bindings, 1)
	assert.Equal(t, "scene.next", bindings[0].Action)
}

func TestRootNode_LoadReplacesExistingState(t *testing.T) {
	ctx := context.Background()

	live := state.NewApp()
	live.Scenes.CreateScene("Old A")
	live.Scenes.CreateScene("Old B")

	saved := state.NewApp()
	kept := saved.Scenes.CreateScene("Kept")
	saved.Scenes.SetActiveScene(kept.ID)

	root := nodes.NewRoot(saved.Scenes, saved.Sources, saved.Transition, saved.Hotkeys)
	require.NoError(t, root.Save(ctx))
	data, err := schema.Stringify(root)
	require.NoError(t, err)

	parsed, err := schema.Parse(data, registryFor(live))
	require.NoError(t, err)
	require.NoError(t, parsed.Load(ctx))

	assert.Equal(t, 1, live.Scenes.Count(), "load replaces, it never merges")
	assert.Equal(t, "Kept", live.Scenes.Scenes()[0].Name)
}

func TestSourcesNode_MigratesV1MixerChannel(t *testing.T) {
	doc := []byte(`{
	  "typeTag": "sources",
	  "schemaVersion": 1,
	  "payload": {"items": [{"id": "source-1", "name": "Mic", "kind": "audio_input_capture", "mixerChannel": 3}]}
	}`)

	live := state.NewApp()
	parsed, err := schema.Parse(doc, registryFor(live))
	require.NoError(t, err)
	require.NoError(t, parsed.Load(context.Background()))

	got := live.Sources.Sources()
	require.Len(t, got, 1)
	assert.Equal(t, 3, got[0].Channel)
}

func TestScenesNode_MigratesV1ActiveSelection(t *testing.T) {
	doc := []byte(`{
	  "typeTag": "scenes",
	  "schemaVersion": 1,
	  "payload": {"items": [{"id": "scene-1", "name": "First"}, {"id": "scene-2", "name": "Second"}]}
	}`)

	live := state.NewApp()
	parsed, err := schema.Parse(doc, registryFor(live))
	require.NoError(t, err)
	require.NoError(t, parsed.Load(context.Background()))

	assert.Equal(t, "scene-1", live.Scenes.ActiveSceneID(),
		"v1 documents had no active selection; the first scene wins")
}

func TestNode_ForwardIncompatibleVersionFailsLoad(t *testing.T) {
	doc := []byte(`{
	  "typeTag": "root",
	  "schemaVersion": 1,
	  "children": [{"typeTag": "hotkeys", "schemaVersion": 99, "payload": {"bindings": []}}]
	}`)

	live := state.NewApp()
	parsed, err := schema.Parse(doc, registryFor(live))
	require.NoError(t, err, "forward incompatibility surfaces at load, not parse")

	err = parsed.Load(context.Background())
	var fwd *schema.ForwardIncompatibleError
	require.ErrorAs(t, err, &fwd)
	assert.Equal(t, nodes.HotkeysTag, fwd.TypeTag)
	assert.Equal(t, 99, fwd.Recorded)
}

func TestScenesNode_RejectsForeignChildren(t *testing.T) {
	doc := []byte(`{
	  "typeTag": "scenes",
	  "schemaVersion": 2,
	  "payload": {"items": [], "activeId": ""},
	  "children": [{"typeTag": "hotkeys", "schemaVersion": 1}]
	}`)

	live := state.NewApp()
	_, err := schema.Parse(doc, registryFor(live))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected child")
}

func TestStringify_StableAcrossRepeatedSaves(t *testing.T) {
	ctx := context.Background()

	live := state.NewApp()
	sc := live.Scenes.CreateScene("Only")
	live.Scenes.SetActiveScene(sc.ID)

	root := nodes.NewRoot(live.Scenes, live.Sources, live.Transition, live.Hotkeys)
	require.NoError(t, root.Save(ctx))
	first, err := schema.Stringify(root)
	require.NoError(t, err)

	require.NoError(t, root.Save(ctx))
	second, err := schema.Stringify(root)
	require.NoError(t, err)

	assert.Equal(t, string(first), string(second))
}

func TestRootNode_ChildrenEnumerateFixedKinds(t *testing.T) {
	live := state.NewApp()
	root := nodes.NewRoot(live.Scenes, live.Sources, live.Transition, live.Hotkeys)

	var tags []string
	for _, child := range root.Children() {
		tags = append(tags, child.TypeTag())
	}
	assert.Equal(t,
		[]string{nodes.SourcesTag, nodes.ScenesTag, nodes.TransitionTag, nodes.HotkeysTag},
		tags, fmt.Sprintf("unexpected child set: %v", tags))
}
