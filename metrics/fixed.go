// SPDX-License-Identifier: MIT

package metrics

import (
	"fmt"
	"sync/atomic"
)

// Fixed is a Registry whose names are declared once at construction.
// The map itself is never written after NewFixed, so lookups need no lock;
// each value is an independent atomic counter.
type Fixed struct {
	data map[string]*atomic.Int64
}

// NewFixed registers names, each starting at zero. Duplicate names collapse
// into one counter.
func NewFixed(names ...string) *Fixed {
	data := make(map[string]*atomic.Int64, len(names))
	for _, name := range names {
		if _, ok := data[name]; !ok {
			data[name] = new(atomic.Int64)
		}
	}

	return &Fixed{data: data}
}

// Inc adds one to name.
// Errors: ErrKeyNotFound when name was not registered.
func (f *Fixed) Inc(name string) error {
	c, ok := f.data[name]
	if !ok {
		return fmt.Errorf("Inc(%q): %w", name, ErrKeyNotFound)
	}
	c.Add(1)

	return nil
}

// Len returns the number of registered counters.
func (f *Fixed) Len() int { return len(f.data) }

// Snapshot loads every counter.
func (f *Fixed) Snapshot() map[string]int64 {
	out := make(map[string]int64, len(f.data))
	for k, c := range f.data {
		out[k] = c.Load()
	}

	return out
}

// String implements fmt.Stringer.
func (f *Fixed) String() string { return render(f.Snapshot()) }
