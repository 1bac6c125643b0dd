// SPDX-License-Identifier: MIT

// Package metrics provides named counters behind a single Registry interface
// with two interchangeable backends:
//
//   - Dynamic: open key set. Any name may be incremented; the first Inc
//     creates the counter. A map guarded by a sync.RWMutex.
//   - Fixed: key set declared at construction. Each counter is an
//     atomic.Int64, so Inc takes no lock. Unknown names fail with
//     ErrKeyNotFound.
//
// Pick Dynamic when names are built at run time and Fixed when the universe
// of names is known up front (for example matrix.CounterNames).
//
// Both backends are safe for concurrent Inc from any number of goroutines.
// Snapshot returns a point-in-time copy; across keys it is consistent but
// not linearizable for Fixed (each counter is loaded independently).
package metrics
