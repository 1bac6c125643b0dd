// SPDX-License-Identifier: MIT
package matrix_test

import (
	"testing"
	"time"

	"github.com/katalvlaran/concurrency/logging"
	"github.com/katalvlaran/concurrency/matrix"
	"github.com/katalvlaran/concurrency/metrics"
	"github.com/stretchr/testify/require"
)

// 1) TestDefaultOptions_Documented verifies that the zero-option engine uses documented defaults.
func TestDefaultOptions_Documented(t *testing.T) {
	o := matrix.GatherOptionsSnapshot_TestOnly()

	require.Equal(t, matrix.DefaultWorkers, o.Workers)
	require.Equal(t, matrix.DefaultQueueDepth, o.QueueDepth)
	require.Equal(t, matrix.DefaultReplyTimeout, o.ReplyTimeout)
	require.Equal(t, matrix.DefaultMaxInFlight, o.MaxInFlight)
	require.True(t, o.HasLogger, "a no-op logger is always installed")
	require.False(t, o.HasCounters)

	require.Equal(t, 4, matrix.NewEngine().Workers())
}

// 2) TestOptions_LastWriterWins ensures repeated options resolve to the last value.
func TestOptions_LastWriterWins(t *testing.T) {
	o := matrix.GatherOptionsSnapshot_TestOnly(
		matrix.WithWorkers(2), matrix.WithWorkers(8),
		matrix.WithQueueDepth(0),
		matrix.WithReplyTimeout(time.Second),
		matrix.WithMaxInFlight(3),
		matrix.WithLogger(logging.NoopLogger()), matrix.WithLogger(nil),
		matrix.WithCounters(metrics.NewDynamic()),
		nil, // ignored
	)
	require.Equal(t, 8, o.Workers)
	require.Equal(t, 0, o.QueueDepth)
	require.Equal(t, time.Second, o.ReplyTimeout)
	require.Equal(t, int64(3), o.MaxInFlight)
	require.True(t, o.HasLogger, "nil logger falls back to no-op")
	require.True(t, o.HasCounters)
}

// 3) TestOptions_PanicOnInvalid checks the stable panic messages.
func TestOptions_PanicOnInvalid(t *testing.T) {
	require.PanicsWithValue(t, matrix.PanicWorkersInvalid_TestOnly, func() { matrix.WithWorkers(0) })
	require.PanicsWithValue(t, matrix.PanicQueueDepthInvalid_TestOnly, func() { matrix.WithQueueDepth(-1) })
	require.PanicsWithValue(t, matrix.PanicReplyTimeoutInvalid_TestOnly, func() { matrix.WithReplyTimeout(-time.Second) })
	require.PanicsWithValue(t, matrix.PanicMaxInFlightInvalid_TestOnly, func() { matrix.WithMaxInFlight(-1) })
}
