/*
Package scenevault persists versioned scene collections for a broadcast
compositor.

A collection is the complete live configuration of one compositor process:
its scenes, the items placed in each scene, the sources they reference, the
active transition and the hotkey bindings. Collections are serialized as a
tree of typed nodes, each carrying its own schema version, so every part of a
document can migrate forward independently when its on-disk shape changes.

# Concept

Live state stays in memory, owned by small services under pkg/state. The
persistence orchestrator snapshots those services into a node tree, debounces
writes so bursts of edits collapse into a single save, and restores documents
destructively on load: what was live is replaced, never merged. This
Hexagonal Architecture keeps the document format and the storage backend
(filesystem, Redis, in-memory) decoupled from the domain.

# Key Features

  - Per-node schema versions: each subtree migrates forward on its own.
  - Deterministic serialization: saving the same state yields the same bytes.
  - Debounced single-writer saves: frequent edits cost one write.
  - Pluggable blob stores behind a small port, with a shared contract suite.

# Usage

Open a vault over a data directory, load a collection, edit the live state
and let the vault persist it.

	package main

	import (
		"context"
		"log"

		"github.com/castkit/scenevault"
	)

	func main() {
		ctx := context.Background()

		vault, err := scenevault.Open(ctx, "./data")
		if err != nil {
			log.Fatal(err)
		}
		defer vault.Close(ctx)

		// Load the active collection; on first run this bootstraps the
		// default one with a known-good scene and audio sources.
		if err := vault.Load(ctx, ""); err != nil {
			log.Fatal(err)
		}

		// Edit the live state and schedule a save. Repeated saves within
		// the quiescence window collapse into one write.
		vault.Scenes().CreateScene("Game Capture")
		vault.Save()
	}
*/
package scenevault
