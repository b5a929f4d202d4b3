/*
Package domain holds the core entities of the scenevault system.

A "collection" is a named, durable snapshot of the live compositor
configuration: scenes, scene items, sources, the active transition and hotkey
bindings. The records in this package are the serializable slices of that live
state; the sentinel errors are the shared vocabulary between the storage
adapters and the persistence orchestrator.
*/
package domain
