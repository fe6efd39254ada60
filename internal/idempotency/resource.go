// Package idempotency is a small illustrative module contrasting
// idempotent and non-idempotent operations on a mutable resource.
//
// An idempotent operation produces the same observable state whether it is
// applied once or many times with identical inputs. The functions here are
// sample code, not part of the task list system.
package idempotency

// Resource is a mutable value cell.
type Resource struct {
	Value int
}

// CreateResource returns a new resource holding initial.
//
// Not idempotent: every call creates a distinct resource, even for the
// same initial value.
func CreateResource(initial int) *Resource {
	return &Resource{Value: initial}
}

// EnsureResourceExists returns current when it already holds initial,
// otherwise a new resource holding initial.
//
// Idempotent: repeated calls with the same initial value and the
// previously returned resource keep returning that same resource.
func EnsureResourceExists(initial int, current *Resource) *Resource {
	if current != nil && current.Value == initial {
		return current
	}
	return &Resource{Value: initial}
}

// IncrementResourceValue adds one to the resource's value.
//
// Not idempotent: every call changes the observable state.
func IncrementResourceValue(r *Resource) *Resource {
	r.Value++
	return r
}

// SetResourceValue sets the resource's value.
//
// Idempotent: repeated calls with the same value leave the state
// identical to a single call.
func SetResourceValue(r *Resource, value int) *Resource {
	r.Value = value
	return r
}
