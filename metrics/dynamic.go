// SPDX-License-Identifier: MIT

package metrics

import "sync"

// Dynamic is a Registry with an open key set.
// The zero value is not usable; construct with NewDynamic.
type Dynamic struct {
	mu   sync.RWMutex
	data map[string]int64
}

// NewDynamic returns an empty Dynamic registry.
func NewDynamic() *Dynamic {
	return &Dynamic{data: make(map[string]int64)}
}

// Inc adds one to name, creating the counter on first use. It never fails.
// Complexity: O(1) amortized under the write lock.
func (d *Dynamic) Inc(name string) error {
	d.mu.Lock()
	d.data[name]++
	d.mu.Unlock()

	return nil
}

// Snapshot copies the map under the read lock.
func (d *Dynamic) Snapshot() map[string]int64 {
	d.mu.RLock()
	defer d.mu.RUnlock()

	out := make(map[string]int64, len(d.data))
	for k, v := range d.data {
		out[k] = v
	}

	return out
}

// String implements fmt.Stringer.
func (d *Dynamic) String() string { return render(d.Snapshot()) }
