/*
Package persistence composes the storage port, the schema codec and the live
services into the collection lifecycle: save, load, create, duplicate, rename
and remove.

Saves are coalesced with a trailing debounce: repeated Save calls inside one
quiescence window collapse into a single write carrying the live state present
when the window expires. Loads are immediate and destructive by replacement.
The orchestrator assumes a single command issuer; it serializes raw writes but
does not guard overlapping loads against each other.
*/
package persistence
