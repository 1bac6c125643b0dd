// SPDX-License-Identifier: MIT
package config_test

import (
	"testing"
	"time"

	"github.com/katalvlaran/concurrency/config"
	"github.com/katalvlaran/concurrency/logging"
	"github.com/katalvlaran/concurrency/matrix"
	"github.com/katalvlaran/concurrency/metrics"
	"github.com/stretchr/testify/require"
)

func TestLoadFrom_Defaults(t *testing.T) {
	cfg, err := config.LoadFrom(map[string]string{})
	require.NoError(t, err)
	require.Equal(t, config.Config{
		Workers:      matrix.DefaultWorkers,
		QueueDepth:   matrix.DefaultQueueDepth,
		ReplyTimeout: 0,
		MaxInFlight:  0,
		LogLevel:     "info",
		LogFormat:    config.FormatText,
	}, cfg)
}

func TestLoadFrom_Overrides(t *testing.T) {
	cfg, err := config.LoadFrom(map[string]string{
		"CONCURRENCY_WORKERS":       "8",
		"CONCURRENCY_QUEUE_DEPTH":   "0",
		"CONCURRENCY_REPLY_TIMEOUT": "250ms",
		"CONCURRENCY_MAX_IN_FLIGHT": "2",
		"CONCURRENCY_LOG_LEVEL":     "debug",
		"CONCURRENCY_LOG_FORMAT":    "json",
	})
	require.NoError(t, err)
	require.Equal(t, 8, cfg.Workers)
	require.Equal(t, 0, cfg.QueueDepth)
	require.Equal(t, 250*time.Millisecond, cfg.ReplyTimeout)
	require.Equal(t, int64(2), cfg.MaxInFlight)

	reg := metrics.NewDynamic()
	e := matrix.NewEngine(cfg.EngineOptions(logging.NoopLogger(), reg)...)
	require.Equal(t, 8, e.Workers())

	a := matrix.MustNew([]int{1, 2, 3, 4}, 2, 2)
	_, err = matrix.MultiplyWith(t.Context(), e, a, a)
	require.NoError(t, err)
	require.Equal(t, int64(1), reg.Snapshot()[matrix.CounterMultiplyCalls])
}

func TestLoadFrom_Invalid(t *testing.T) {
	cases := map[string]map[string]string{
		"zero workers":   {"CONCURRENCY_WORKERS": "0"},
		"negative depth": {"CONCURRENCY_QUEUE_DEPTH": "-1"},
		"neg timeout":    {"CONCURRENCY_REPLY_TIMEOUT": "-1s"},
		"neg in flight":  {"CONCURRENCY_MAX_IN_FLIGHT": "-3"},
		"bad level":      {"CONCURRENCY_LOG_LEVEL": "loud"},
		"bad format":     {"CONCURRENCY_LOG_FORMAT": "xml"},
	}
	for name, environ := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := config.LoadFrom(environ)
			require.ErrorIs(t, err, config.ErrInvalidConfig)
		})
	}

	_, err := config.LoadFrom(map[string]string{"CONCURRENCY_WORKERS": "many"})
	require.ErrorIs(t, err, config.ErrInvalidConfig)
	require.Contains(t, err.Error(), "parse env")

	_, err = config.LoadFrom(map[string]string{"CONCURRENCY_REPLY_TIMEOUT": "soon"})
	require.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestLoad_ProcessEnv(t *testing.T) {
	t.Setenv("CONCURRENCY_WORKERS", "3")
	cfg, err := config.Load()
	require.NoError(t, err)
	require.Equal(t, 3, cfg.Workers)
	require.NotNil(t, cfg.Logger())
}
