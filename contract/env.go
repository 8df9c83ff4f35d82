package contract

import "treasury_dao/sdk"

// Env is the per-call snapshot of the host execution environment.
type Env struct {
	// ContractAddress is the treasury's own address.
	ContractAddress sdk.Address
	// Sender is the authenticated caller of the current operation.
	Sender sdk.Address
	// Timestamp is the current block time in unix seconds.
	Timestamp int64
	TxID      string
}

// ENV hands the engine its execution environment. Implementations must
// return a consistent snapshot for the duration of one operation.
type ENV interface {
	Env() Env
}

// MockENV is the in-memory ENV used by tests and the local debug harness.
// Fields are mutated directly between calls to impersonate callers and
// move the clock, the same way the wasm test harness overrides them.
type MockENV struct {
	ContractAddress sdk.Address
	Sender          sdk.Address
	Timestamp       int64
	TxID            string
}

func (m *MockENV) Env() Env {
	return Env{
		ContractAddress: m.ContractAddress,
		Sender:          m.Sender,
		Timestamp:       m.Timestamp,
		TxID:            m.TxID,
	}
}

// Advance moves the mock clock forward by d seconds.
func (m *MockENV) Advance(d int64) {
	m.Timestamp += d
}
