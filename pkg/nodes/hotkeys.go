package nodes

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/castkit/scenevault/pkg/domain"
	"github.com/castkit/scenevault/pkg/ports"
	"github.com/castkit/scenevault/pkg/schema"
)

// HotkeysTag identifies the hotkeys node.
const HotkeysTag = "hotkeys"

const hotkeysVersion = 1

type hotkeysPayload struct {
	Bindings []domain.HotkeyRecord `json:"bindings"`
}

// Hotkeys snapshots the live hotkey bindings.
type Hotkeys struct {
	svc      ports.HotkeyService
	recorded int
	raw      json.RawMessage
	payload  hotkeysPayload
}

// NewHotkeys binds a hotkeys node to the live hotkey service.
func NewHotkeys(svc ports.HotkeyService) *Hotkeys {
	return &Hotkeys{svc: svc, recorded: hotkeysVersion}
}

func (n *Hotkeys) TypeTag() string { return HotkeysTag }
func (n *Hotkeys) Version() int    { return hotkeysVersion }

func (n *Hotkeys) Save(ctx context.Context) error {
	n.payload = hotkeysPayload{Bindings: n.svc.Bindings()}
	return nil
}

func (n *Hotkeys) Load(ctx context.Context) error {
	data, err := schema.Upgrade(HotkeysTag, n.recorded, hotkeysVersion, nil, n.raw)
	if err != nil {
		return err
	}

	var p hotkeysPayload
	if len(data) > 0 {
		if err := json.Unmarshal(data, &p); err != nil {
			return fmt.Errorf("node %q: decode payload: %w", HotkeysTag, err)
		}
	}
	n.svc.ReplaceBindings(p.Bindings)
	return nil
}

func (n *Hotkeys) Payload() (json.RawMessage, error) {
	return json.Marshal(n.payload)
}

func (n *Hotkeys) Restore(version int, payload json.RawMessage) {
	n.recorded = version
	n.raw = payload
}

func (n *Hotkeys) Children() []schema.Node { return nil }

func (n *Hotkeys) Adopt(children []schema.Node) error {
	if len(children) > 0 {
		return fmt.Errorf("hotkeys node owns no children")
	}
	return nil
}
