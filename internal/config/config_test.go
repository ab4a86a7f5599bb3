package config

import (
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iw2rmb/waypoint/navhistory"
)

func writeFile(t *testing.T, path, data string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(data), 0o600))
}

func TestLoadMissingFileYieldsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, navhistory.DefaultLimits(), cfg.Limits())
}

func TestLoadOverridesHistory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	writeFile(t, path, "history:\n  space_barrier: 5\n  limit: 3\nlogging:\n  level: debug\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, navhistory.Limits{SpaceBarrier: 5, HistoryLimit: 3}, cfg.Limits())
	require.NotNil(t, cfg.Logging.Level)
	assert.Equal(t, "debug", *cfg.Logging.Level)
}

func TestLoadPartialKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	writeFile(t, path, "history:\n  limit: 50\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, navhistory.Limits{SpaceBarrier: navhistory.DefaultSpaceBarrier, HistoryLimit: 50}, cfg.Limits())
}

func TestParseRejectsInvalidValues(t *testing.T) {
	cases := map[string]string{
		"negative barrier": "history:\n  space_barrier: -1\n",
		"zero limit":       "history:\n  limit: 0\n",
		"bad log level":    "logging:\n  level: chatty\n",
	}
	for name, data := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(data))
			require.ErrorIs(t, err, ErrInvalid)
		})
	}

	_, err := Parse([]byte("history: [not, a, map]"))
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalid)
}

func TestWithEnvOverridesFile(t *testing.T) {
	t.Setenv(EnvSpaceBarrier, "7")
	t.Setenv(EnvHistoryLimit, "garbage")

	cfg := Default().WithEnv()
	assert.Equal(t, navhistory.Limits{SpaceBarrier: 7, HistoryLimit: navhistory.DefaultHistoryLimit}, cfg.Limits())
}

func TestDefaultPathHonoursEnv(t *testing.T) {
	t.Setenv(EnvConfigPath, "/tmp/custom.yaml")
	p, err := DefaultPath()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/custom.yaml", p)
}

func TestLiveSwapsLimits(t *testing.T) {
	live := NewLive(Default())
	assert.Equal(t, navhistory.DefaultLimits(), live.Limits())

	barrier, limit := 1, 2
	live.Store(Config{History: History{SpaceBarrier: &barrier, Limit: &limit}})
	assert.Equal(t, navhistory.Limits{SpaceBarrier: 1, HistoryLimit: 2}, live.Limits())

	var zero Live
	assert.Equal(t, navhistory.DefaultLimits(), zero.Limits())
}

func TestWatchReloadsOnWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	writeFile(t, path, "history:\n  limit: 3\n")

	var (
		mu   sync.Mutex
		last Config
		seen bool
	)
	w, err := Watch(t.Context(), path, func(cfg Config, err error) {
		if err != nil {
			return
		}
		mu.Lock()
		defer mu.Unlock()
		last, seen = cfg, true
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = w.Close() })

	writeFile(t, path, "history:\n  limit: 9\n")

	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return seen && last.Limits().HistoryLimit == 9
	}, 5*time.Second, 20*time.Millisecond)
}

func TestWatchCoalescesTruncateThenWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	writeFile(t, path, "history:\n  limit: 3\n")

	var (
		mu    sync.Mutex
		seen  []int
		calls int
	)
	w, err := WatchDebounced(t.Context(), path, 300*time.Millisecond, func(cfg Config, err error) {
		mu.Lock()
		defer mu.Unlock()
		calls++
		if err == nil {
			seen = append(seen, cfg.Limits().HistoryLimit)
		}
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = w.Close() })

	// An empty file parses as defaults; it must never be reported on its own.
	writeFile(t, path, "")
	writeFile(t, path, "history:\n  limit: 7\n")

	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(seen) > 0
	}, 5*time.Second, 20*time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, 1, calls)
	assert.Equal(t, []int{7}, seen)
}

func TestWatchIgnoresSiblingFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")

	var (
		mu    sync.Mutex
		calls int
	)
	w, err := Watch(t.Context(), path, func(Config, error) {
		mu.Lock()
		calls++
		mu.Unlock()
	})
	require.NoError(t, err)

	writeFile(t, filepath.Join(dir, "other.yaml"), "x: 1\n")
	time.Sleep(200 * time.Millisecond)
	require.NoError(t, w.Close())
	require.NoError(t, w.Close())

	mu.Lock()
	defer mu.Unlock()
	assert.Zero(t, calls)
}
