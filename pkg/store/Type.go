package store

import (
	"github.com/kre8/kre8/internal/helpers"
	"sync"
)

// Ledger records provisioned facts keyed by fact name.
type Ledger interface {
	CheckOrCreate(key string, value interface{}) (bool, error)
	AppendFacts(facts map[string]interface{}) (map[string]interface{}, error)
	Facts() (map[string]interface{}, error)
}

type Directory struct {
	base string
}

type jsonFile struct {
	name string
	path string
}

type Credentials struct {
	file *jsonFile
}

type Master struct {
	file     *jsonFile
	locked   bool
	lockPath string
	locks    *helpers.LockManager
	mutex    sync.Mutex
}

type Option func(m *Master)

type MemoryLedger struct {
	facts  map[string]interface{}
	exists bool
	writes int
	mutex  sync.Mutex
}

type Stores struct {
	Directory   *Directory
	Credentials *Credentials
	Master      *Master
}

// Error carries the failed operation and file; Kinds holds the sentinels it matches.
type Error struct {
	Op    string
	Path  string
	Kinds []error
	Err   error
}
