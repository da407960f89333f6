package helpers

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLockManager(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", ".lock")

	first := NewLockManager()
	second := NewLockManager()

	status, err := CheckLock(path)
	require.NoError(t, err)
	assert.False(t, status.Exists)

	require.NoError(t, first.Acquire(path))
	require.NoError(t, first.Acquire(path))

	err = second.Acquire(path)
	assert.True(t, errors.Is(err, ErrLockHeld))

	status, err = CheckLock(path)
	require.NoError(t, err)
	assert.True(t, status.Exists)
	assert.True(t, status.Locked)
	assert.Equal(t, os.Getpid(), status.LockedBy)
	assert.False(t, status.Stale)

	require.NoError(t, first.Release(path))
	require.NoError(t, first.Release(path))

	require.NoError(t, second.Acquire(path))
	second.ReleaseAll()

	status, err = CheckLock(path)
	require.NoError(t, err)
	assert.False(t, status.Locked)
}

func TestReleaseAllLocks(t *testing.T) {
	dir := t.TempDir()
	paths := []string{filepath.Join(dir, "backend.lock"), filepath.Join(dir, "master.lock")}

	for _, path := range paths {
		require.NoError(t, AcquireLock(path))
	}

	ReleaseAllLocks()

	other := NewLockManager()

	for _, path := range paths {
		status, err := CheckLock(path)
		require.NoError(t, err)
		assert.False(t, status.Locked)

		require.NoError(t, other.Acquire(path))
	}

	other.ReleaseAll()
	require.NoError(t, ReleaseLock(paths[0]))
}

func TestEnforceWebsocket(t *testing.T) {
	testCases := []struct {
		name     string
		raw      string
		expected string
		wantErr  bool
	}{
		{"Host and port", "127.0.0.1:5180", "ws://127.0.0.1:5180/events", false},
		{"HTTP upgraded", "http://localhost:5180", "ws://localhost:5180/events", false},
		{"HTTPS upgraded", "https://kre8.local/", "wss://kre8.local/events", false},
		{"Path kept", "ws://localhost:5180/custom", "ws://localhost:5180/custom", false},
		{"Unsupported scheme", "ftp://localhost", "", true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			parsed, err := EnforceWebsocket(tc.raw, "/events")

			if tc.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.expected, parsed.String())
		})
	}
}
