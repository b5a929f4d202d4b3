package nodes

import (
	"github.com/castkit/scenevault/pkg/ports"
	"github.com/castkit/scenevault/pkg/schema"
)

// NewRegistry builds the closed node type registry for one deployment, with
// every factory bound to its live service. Tags outside this set fail at
// parse time.
func NewRegistry(scenes ports.SceneService, sources ports.SourceService, transition ports.TransitionService, hotkeys ports.HotkeyService) *schema.Registry {
	reg := schema.NewRegistry()
	reg.Register(RootTag, func() schema.Node { return newEmptyRoot() })
	reg.Register(SourcesTag, func() schema.Node { return NewSources(sources) })
	reg.Register(ScenesTag, func() schema.Node { return NewScenes(scenes) })
	reg.Register(SceneItemsTag, func() schema.Node { return NewSceneItems(scenes, "") })
	reg.Register(TransitionTag, func() schema.Node { return NewTransition(transition) })
	reg.Register(HotkeysTag, func() schema.Node { return NewHotkeys(hotkeys) })
	return reg
}
