package nodes

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/castkit/scenevault/pkg/domain"
	"github.com/castkit/scenevault/pkg/ports"
	"github.com/castkit/scenevault/pkg/schema"
)

// TransitionTag identifies the transition node.
const TransitionTag = "transition"

const transitionVersion = 1

// Transition snapshots the scene transition in effect.
type Transition struct {
	svc      ports.TransitionService
	recorded int
	raw      json.RawMessage
	payload  domain.TransitionRecord
}

// NewTransition binds a transition node to the live transition service.
func NewTransition(svc ports.TransitionService) *Transition {
	return &Transition{svc: svc, recorded: transitionVersion}
}

func (n *Transition) TypeTag() string { return TransitionTag }
func (n *Transition) Version() int    { return transitionVersion }

func (n *Transition) Save(ctx context.Context) error {
	n.payload = n.svc.Transition()
	return nil
}

func (n *Transition) Load(ctx context.Context) error {
	data, err := schema.Upgrade(TransitionTag, n.recorded, transitionVersion, nil, n.raw)
	if err != nil {
		return err
	}

	var rec domain.TransitionRecord
	if len(data) > 0 {
		if err := json.Unmarshal(data, &rec); err != nil {
			return fmt.Errorf("node %q: decode payload: %w", TransitionTag, err)
		}
	}
	if rec.Kind == "" {
		rec = domain.TransitionRecord{
			Kind:       domain.DefaultTransitionKind,
			DurationMs: domain.DefaultTransitionDurationMs,
		}
	}
	n.svc.SetTransition(rec)
	return nil
}

func (n *Transition) Payload() (json.RawMessage, error) {
	return json.Marshal(n.payload)
}

func (n *Transition) Restore(version int, payload json.RawMessage) {
	n.recorded = version
	n.raw = payload
}

func (n *Transition) Children() []schema.Node { return nil }

func (n *Transition) Adopt(children []schema.Node) error {
	if len(children) > 0 {
		return fmt.Errorf("transition node owns no children")
	}
	return nil
}
