/*
Package state holds the live, in-memory application configuration the
persistence layer snapshots and restores: scenes with their items, sources,
the active transition and hotkey bindings.

Each service owns its slice of state behind a mutex and hands out copies, so
callers can never mutate live state through a returned slice. Replace
operations are destructive by design: restoring a collection replaces whatever
is live, it never merges.
*/
package state
