package contract

// MemoryState is the in-memory State used by tests and local debugging.
type MemoryState struct {
	db map[string]string
}

func NewMemoryState() *MemoryState {
	return &MemoryState{db: make(map[string]string)}
}

func (m *MemoryState) Set(key, value string) {
	m.db[key] = value
}

func (m *MemoryState) Get(key string) *string {
	val, ok := m.db[key]
	if !ok {
		return nil
	}
	return &val
}

func (m *MemoryState) Delete(key string) {
	delete(m.db, key)
}

// Len reports how many keys are stored, handy for leak checks in tests.
func (m *MemoryState) Len() int {
	return len(m.db)
}
