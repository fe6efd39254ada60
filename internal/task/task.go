package task

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Task is a single to-do item.
type Task struct {
	ID          int    `json:"id"`
	Description string `json:"description"`
	Estimate    int    `json:"estimate"` // hours, never negative
}

// Document is the full persisted state: the task collection in insertion
// order plus the id counter.
type Document struct {
	Tasks  []Task `json:"tasks"`
	NextID int    `json:"next_id"`
}

// NewDocument returns an empty document with the counter at 1.
func NewDocument() *Document {
	return &Document{Tasks: []Task{}, NextID: 1}
}

// Add validates the inputs, assigns the next id, appends the new task,
// and advances the counter. The description is NFC-normalized so the
// stored form is canonical regardless of how the input was composed.
//
// On validation failure the document is left unchanged.
func (d *Document) Add(description string, estimate int) (Task, error) {
	description = norm.NFC.String(description)
	if strings.TrimSpace(description) == "" {
		return Task{}, &ValidationError{Field: "description", Message: "task description is required"}
	}
	if estimate < 0 {
		return Task{}, &ValidationError{Field: "estimate", Message: "estimate cannot be negative"}
	}

	t := Task{ID: d.NextID, Description: description, Estimate: estimate}
	d.Tasks = append(d.Tasks, t)
	d.NextID++
	return t, nil
}

// List returns the tasks in insertion order. An empty document yields an
// empty (non-nil) slice.
func (d *Document) List() []Task {
	if d.Tasks == nil {
		return []Task{}
	}
	return d.Tasks
}

// Get returns the task with the given id.
func (d *Document) Get(id int) (Task, error) {
	for _, t := range d.Tasks {
		if t.ID == id {
			return t, nil
		}
	}
	return Task{}, &NotFoundError{ID: id}
}

// Update describes a partial edit. Nil fields keep their prior value.
type Update struct {
	Description *string
	Estimate    *int
}

// Edit applies a partial update to the task with the given id and returns
// the updated task. All validation runs before any field is written, so a
// failed edit leaves the document unchanged.
func (d *Document) Edit(id int, up Update) (Task, error) {
	idx := -1
	for i, t := range d.Tasks {
		if t.ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return Task{}, &NotFoundError{ID: id}
	}

	var description string
	if up.Description != nil {
		description = norm.NFC.String(*up.Description)
		if strings.TrimSpace(description) == "" {
			return Task{}, &ValidationError{Field: "description", Message: "task description is required"}
		}
	}
	if up.Estimate != nil && *up.Estimate < 0 {
		return Task{}, &ValidationError{Field: "estimate", Message: "estimate cannot be negative"}
	}

	if up.Description != nil {
		d.Tasks[idx].Description = description
	}
	if up.Estimate != nil {
		d.Tasks[idx].Estimate = *up.Estimate
	}
	return d.Tasks[idx], nil
}
