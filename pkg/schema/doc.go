/*
Package schema defines the versioned document tree a collection serializes to.

Every node in the tree is a typed, independently-versioned unit that knows how
to pull its slice of live state into a payload (Save) and push a recorded
payload back into live state (Load). On disk each node is the envelope

	{typeTag, schemaVersion, payload, children}

Parsing resolves typeTag through a closed Registry; a tag outside the
registered set fails with UnknownNodeTypeError rather than being skipped.
Parsing never touches live state — only a subsequent Load on the parsed tree
does.

Recorded schema versions older than the node kind's current version are
brought forward one step at a time through the kind's migration Chain before
the payload is interpreted. A recorded version newer than the current one
fails with ForwardIncompatibleError: older software never silently truncates
a newer document.
*/
package schema
