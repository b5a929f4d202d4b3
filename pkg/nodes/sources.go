package nodes

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/castkit/scenevault/pkg/domain"
	"github.com/castkit/scenevault/pkg/ports"
	"github.com/castkit/scenevault/pkg/schema"
)

// SourcesTag identifies the sources node.
const SourcesTag = "sources"

const sourcesVersion = 2

type sourcesPayload struct {
	Items []domain.SourceRecord `json:"items"`
}

// Sources snapshots the live source list.
type Sources struct {
	svc      ports.SourceService
	recorded int
	raw      json.RawMessage
	payload  sourcesPayload
}

// NewSources binds a sources node to the live source service.
func NewSources(svc ports.SourceService) *Sources {
	return &Sources{svc: svc, recorded: sourcesVersion}
}

func (n *Sources) TypeTag() string { return SourcesTag }
func (n *Sources) Version() int    { return sourcesVersion }

func (n *Sources) Save(ctx context.Context) error {
	n.payload = sourcesPayload{Items: n.svc.Sources()}
	return nil
}

func (n *Sources) Load(ctx context.Context) error {
	data, err := schema.Upgrade(SourcesTag, n.recorded, sourcesVersion, sourcesMigrations, n.raw)
	if err != nil {
		return err
	}

	var p sourcesPayload
	if len(data) > 0 {
		if err := json.Unmarshal(data, &p); err != nil {
			return fmt.Errorf("node %q: decode payload: %w", SourcesTag, err)
		}
	}
	n.svc.ReplaceSources(p.Items)
	return nil
}

func (n *Sources) Payload() (json.RawMessage, error) {
	return json.Marshal(n.payload)
}

func (n *Sources) Restore(version int, payload json.RawMessage) {
	n.recorded = version
	n.raw = payload
}

func (n *Sources) Children() []schema.Node { return nil }

func (n *Sources) Adopt(children []schema.Node) error {
	if len(children) > 0 {
		return fmt.Errorf("sources node owns no children")
	}
	return nil
}

var sourcesMigrations = schema.Chain{
	1: migrateSourcesV1,
}

// migrateSourcesV1 renames the per-item "mixerChannel" field of version 1
// documents to "channel".
func migrateSourcesV1(payload json.RawMessage) (json.RawMessage, error) {
	if len(payload) == 0 {
		return payload, nil
	}

	var doc struct {
		Items []map[string]any `json:"items"`
	}
	if err := json.Unmarshal(payload, &doc); err != nil {
		return nil, err
	}
	for _, item := range doc.Items {
		if ch, ok := item["mixerChannel"]; ok {
			item["channel"] = ch
			delete(item, "mixerChannel")
		}
	}
	return json.Marshal(doc)
}
