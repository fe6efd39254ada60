// Package task defines the task list data model.
//
// A Document holds the full persisted state: the ordered task collection
// plus the auto-increment counter. All mutations go through Document
// methods so the invariants hold everywhere:
//
//   - next_id is strictly greater than every existing task id
//   - ids are assigned from the counter only and never reused
//   - descriptions are non-empty and NFC-normalized
//   - estimates are never negative
//
// The document is a plain value: callers load it, mutate it through one
// command, and persist it. There is no hidden global state.
package task
