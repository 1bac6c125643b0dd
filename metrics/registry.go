// SPDX-License-Identifier: MIT

package metrics

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrKeyNotFound is returned by Fixed.Inc for a name that was not registered.
var ErrKeyNotFound = errors.New("metrics: key not found")

// Registry is a set of named monotonically increasing counters.
type Registry interface {
	// Inc adds one to the named counter.
	Inc(name string) error

	// Snapshot returns a copy of every counter value keyed by name.
	Snapshot() map[string]int64

	// String renders one "name: value" line per counter, sorted by name.
	String() string
}

// Compile-time assertions.
var (
	_ Registry = (*Dynamic)(nil)
	_ Registry = (*Fixed)(nil)
)

// render formats a snapshot deterministically.
func render(snap map[string]int64) string {
	names := make([]string, 0, len(snap))
	for name := range snap {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	for _, name := range names {
		fmt.Fprintf(&b, "%s: %d\n", name, snap[name])
	}

	return b.String()
}
