// Package journal provides a SQLite-backed append-only log of task
// mutations.
//
// Every successful mutating command (add, edit) appends one entry:
// a UUIDv7 token, the operation name, the affected task id, and the JSON
// payload of the task after the mutation. Entries carry a monotonic seq
// assigned by SQLite; all reads order by seq so history listings are
// deterministic.
//
// The journal is advisory. The JSON tasks file is the source of truth and
// is always written first; a journal failure is reported but never unwinds
// a mutation.
package journal
