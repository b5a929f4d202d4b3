/*
Package nodes provides the concrete schema node kinds of a collection
document: root, sources, scenes (owning one scene-items child per scene),
transition and hotkeys.

Each kind is bound to exactly one live service and owns a disjoint slice of
live state. Kinds carry their own schema version and migration chain; older
recorded payloads are brought forward step by step before they are pushed into
live state.
*/
package nodes
