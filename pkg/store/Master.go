package store

import (
	"fmt"
	"github.com/kre8/kre8/internal/helpers"
	"github.com/kre8/kre8/pkg/configuration"
	"github.com/kre8/kre8/pkg/logger"
	"github.com/kre8/kre8/pkg/static"
	"github.com/r3labs/diff/v3"
	"go.uber.org/zap"
	"os"
)

func NewMaster(configObj *configuration.Configuration, opts ...Option) *Master {
	master := &Master{
		file: newJsonFile(static.STORE_MASTER, configObj.MasterFilePath()),
	}

	for _, opt := range opts {
		opt(master)
	}

	return master
}

// WithLock serialises operations in process and holds an advisory lock beside the file while
// each operation runs.
func WithLock() Option {
	return func(m *Master) {
		m.locked = true
		m.lockPath = fmt.Sprintf("%s%s", m.file.path, static.LOCKFILE)
		m.locks = helpers.NewLockManager()
	}
}

func (m *Master) Path() string {
	return m.file.path
}

// CheckOrCreate reports whether key already holds value. A missing file is created empty and
// reports false; an existing file is never written.
func (m *Master) CheckOrCreate(key string, value interface{}) (bool, error) {
	unlock, err := m.lock()

	if err != nil {
		return false, err
	}

	defer unlock()

	exists, err := m.file.exists()

	if err != nil {
		return false, err
	}

	if !exists {
		return false, m.file.write(map[string]interface{}{})
	}

	parsed, err := m.file.read()

	if err != nil {
		return false, err
	}

	stored, ok := parsed[key]

	if !ok {
		return false, nil
	}

	return equal(stored, value)
}

// AppendFacts overwrites every key of facts in the ledger and returns the merged mapping.
func (m *Master) AppendFacts(facts map[string]interface{}) (map[string]interface{}, error) {
	unlock, err := m.lock()

	if err != nil {
		return nil, err
	}

	defer unlock()

	exists, err := m.file.exists()

	if err != nil {
		return nil, err
	}

	if !exists {
		return nil, m.file.fail("append", os.ErrNotExist, ErrNotInitialized, ErrIO)
	}

	parsed, err := m.file.read()

	if err != nil {
		return nil, err
	}

	before := make(map[string]interface{}, len(parsed))

	for key, value := range parsed {
		before[key] = value
	}

	for key, value := range facts {
		normalized, err := normalize(value)

		if err != nil {
			return nil, m.file.fail("encode", err, ErrParse)
		}

		parsed[key] = normalized
	}

	err = m.file.write(parsed)

	if err != nil {
		return nil, err
	}

	m.changelog(before, parsed)

	return parsed, nil
}

func (m *Master) Facts() (map[string]interface{}, error) {
	exists, err := m.file.exists()

	if err != nil {
		return nil, err
	}

	if !exists {
		return map[string]interface{}{}, nil
	}

	return m.file.read()
}

func (m *Master) changelog(before map[string]interface{}, after map[string]interface{}) {
	changes, err := diff.Diff(before, after)

	if err != nil {
		logger.Log.Debug("master file changelog unavailable", zap.Error(err))
		return
	}

	for _, change := range changes {
		logger.Log.Debug("master file changed",
			zap.String("type", change.Type),
			zap.Strings("path", change.Path),
			zap.Any("from", change.From),
			zap.Any("to", change.To),
		)
	}
}

func (m *Master) lock() (func(), error) {
	if !m.locked {
		return func() {}, nil
	}

	m.mutex.Lock()

	err := m.locks.Acquire(m.lockPath)

	if err != nil {
		m.mutex.Unlock()
		return nil, m.file.fail("lock", err, ErrIO)
	}

	return func() {
		helpers.LogIfError(m.locks.Release(m.lockPath))
		m.mutex.Unlock()
	}, nil
}
