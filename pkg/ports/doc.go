/*
Package ports defines the driven ports (interfaces) for the scenevault core.

These interfaces decouple the persistence orchestrator from external
implementations, allowing it to work with various storage backends and with
the live compositor services it snapshots.

# Key Interfaces

  - BlobStore: named byte documents in one logical directory (file, memory, redis).
  - SceneService / SourceService / TransitionService / HotkeyService: the live
    state collaborators each schema node owns a disjoint slice of.
  - NameSuggester: produces an unused collection name from a base.
*/
package ports
