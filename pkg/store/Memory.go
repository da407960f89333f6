package store

import "os"

func NewMemoryLedger() *MemoryLedger {
	return &MemoryLedger{
		facts: make(map[string]interface{}),
	}
}

func (ml *MemoryLedger) CheckOrCreate(key string, value interface{}) (bool, error) {
	ml.mutex.Lock()
	defer ml.mutex.Unlock()

	if !ml.exists {
		ml.exists = true
		ml.writes++
		return false, nil
	}

	stored, ok := ml.facts[key]

	if !ok {
		return false, nil
	}

	return equal(stored, value)
}

func (ml *MemoryLedger) AppendFacts(facts map[string]interface{}) (map[string]interface{}, error) {
	ml.mutex.Lock()
	defer ml.mutex.Unlock()

	if !ml.exists {
		return nil, newError("append", "memory", os.ErrNotExist, ErrNotInitialized, ErrIO)
	}

	for key, value := range facts {
		normalized, err := normalize(value)

		if err != nil {
			return nil, newError("encode", "memory", err, ErrParse)
		}

		ml.facts[key] = normalized
	}

	ml.writes++

	return ml.copy(), nil
}

func (ml *MemoryLedger) Facts() (map[string]interface{}, error) {
	ml.mutex.Lock()
	defer ml.mutex.Unlock()

	return ml.copy(), nil
}

// Writes counts the whole-ledger writes a file backed store would have made.
func (ml *MemoryLedger) Writes() int {
	ml.mutex.Lock()
	defer ml.mutex.Unlock()

	return ml.writes
}

func (ml *MemoryLedger) copy() map[string]interface{} {
	facts := make(map[string]interface{}, len(ml.facts))

	for key, value := range ml.facts {
		facts[key] = value
	}

	return facts
}
