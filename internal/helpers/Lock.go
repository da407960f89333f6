package helpers

import (
	"fmt"
	"github.com/pkg/errors"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"syscall"
)

var ErrLockHeld = errors.New("lock already held by another process")

// LockManager keeps advisory flock locks for the lifetime of the process.
type LockManager struct {
	locks map[string]*os.File
	mutex sync.Mutex
}

type LockStatus struct {
	Exists   bool
	Locked   bool
	LockedBy int
	Stale    bool
}

func NewLockManager() *LockManager {
	return &LockManager{
		locks: make(map[string]*os.File),
	}
}

var globalLockManager = NewLockManager()

func AcquireLock(path string) error {
	return globalLockManager.Acquire(path)
}

func ReleaseLock(path string) error {
	return globalLockManager.Release(path)
}

func ReleaseAllLocks() {
	globalLockManager.ReleaseAll()
}

func (lm *LockManager) Acquire(path string) error {
	lm.mutex.Lock()
	defer lm.mutex.Unlock()

	if _, exists := lm.locks[path]; exists {
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create lock directory: %w", err)
	}

	lockFile, err := os.OpenFile(path, os.O_CREATE|os.O_RDWR, 0644)
	if err != nil {
		return fmt.Errorf("failed to open lock file: %w", err)
	}

	err = syscall.Flock(int(lockFile.Fd()), syscall.LOCK_EX|syscall.LOCK_NB)
	if err != nil {
		lockFile.Close()
		if err == syscall.EWOULDBLOCK {
			return fmt.Errorf("%w: %s", ErrLockHeld, path)
		}
		return fmt.Errorf("failed to acquire lock: %w", err)
	}

	if err = lockFile.Truncate(0); err == nil {
		_, err = fmt.Fprintf(lockFile, "%d\n", os.Getpid())
	}

	if err != nil {
		syscall.Flock(int(lockFile.Fd()), syscall.LOCK_UN)
		lockFile.Close()
		return fmt.Errorf("failed to write PID to lock file: %w", err)
	}

	lm.locks[path] = lockFile
	return nil
}

func (lm *LockManager) Release(path string) error {
	lm.mutex.Lock()
	defer lm.mutex.Unlock()

	lockFile, exists := lm.locks[path]
	if !exists {
		return nil
	}

	err := syscall.Flock(int(lockFile.Fd()), syscall.LOCK_UN)
	lockFile.Close()
	delete(lm.locks, path)

	if err != nil {
		return fmt.Errorf("failed to release lock: %w", err)
	}

	return nil
}

func (lm *LockManager) ReleaseAll() {
	lm.mutex.Lock()
	defer lm.mutex.Unlock()

	for path, lockFile := range lm.locks {
		syscall.Flock(int(lockFile.Fd()), syscall.LOCK_UN)
		lockFile.Close()
		delete(lm.locks, path)
	}
}

// CheckLock inspects path without keeping the lock. A lock held by this process reports Locked.
func CheckLock(path string) (LockStatus, error) {
	status := LockStatus{}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return status, nil
		}
		return status, fmt.Errorf("failed to check lock file: %w", err)
	}

	status.Exists = true

	file, err := os.OpenFile(path, os.O_RDWR, 0644)
	if err != nil {
		return status, fmt.Errorf("failed to open lock file: %w", err)
	}
	defer file.Close()

	err = syscall.Flock(int(file.Fd()), syscall.LOCK_EX|syscall.LOCK_NB)
	if err == nil {
		syscall.Flock(int(file.Fd()), syscall.LOCK_UN)
		return status, nil
	}

	if err != syscall.EWOULDBLOCK {
		return status, fmt.Errorf("error checking lock: %w", err)
	}

	status.Locked = true

	if pid, err := strconv.Atoi(strings.TrimSpace(string(data))); err == nil {
		status.LockedBy = pid

		if err := syscall.Kill(pid, 0); err == syscall.ESRCH {
			status.Stale = true
		}
	}

	return status, nil
}
