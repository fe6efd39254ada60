// Package store persists the task document to a single JSON file.
//
// The persisted format is a UTF-8 JSON object with two top-level keys:
//
//	{
//	    "tasks": [{"id": 1, "description": "...", "estimate": 3}],
//	    "next_id": 2
//	}
//
// Load fails over to an empty document when the file does not exist and
// returns a DataCorruptionError when the content cannot be decoded. Save
// rewrites the whole file; there is no partial-write protection because
// the system targets a single interactive user in a single process.
package store
