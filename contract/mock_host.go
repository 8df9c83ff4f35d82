package contract

import (
	"github.com/pkg/errors"

	"treasury_dao/sdk"
)

// MemoryBank is an in-memory Bank for tests and the local debug harness.
type MemoryBank struct {
	Treasury Amount
	Accounts map[sdk.Address]Amount
	// FailTransfers makes every Transfer fail, for refund-fault tests.
	FailTransfers bool
}

func NewMemoryBank(treasury Amount) *MemoryBank {
	return &MemoryBank{
		Treasury: treasury,
		Accounts: map[sdk.Address]Amount{},
	}
}

func (b *MemoryBank) Balance() Amount { return b.Treasury }

func (b *MemoryBank) Draw(from sdk.Address, amount Amount) error {
	if b.Accounts[from] < amount {
		return errors.Errorf("insufficient funds for %s", from)
	}
	b.Accounts[from] -= amount
	b.Treasury += amount
	return nil
}

func (b *MemoryBank) Transfer(to sdk.Address, amount Amount) error {
	if b.FailTransfers {
		return errors.New("transfer disabled")
	}
	if b.Treasury < amount {
		return errors.New("insufficient treasury balance")
	}
	b.Treasury -= amount
	b.Accounts[to] += amount
	return nil
}

// InvokeCall records one external dispatch.
type InvokeCall struct {
	Recipient sdk.Address
	Amount    Amount
	Selector  [4]byte
	Payload   []byte
	GasLimit  uint64
}

// MockInvoker records dispatches and can fail them or run a callback
// first, which is how the reentrancy tests call back into the engine.
type MockInvoker struct {
	Calls    []InvokeCall
	Err      error
	OnInvoke func(call InvokeCall) error
}

func (m *MockInvoker) Invoke(recipient sdk.Address, amount Amount, selector [4]byte, payload []byte, gasLimit uint64) error {
	call := InvokeCall{
		Recipient: recipient,
		Amount:    amount,
		Selector:  selector,
		Payload:   payload,
		GasLimit:  gasLimit,
	}
	m.Calls = append(m.Calls, call)
	if m.OnInvoke != nil {
		if err := m.OnInvoke(call); err != nil {
			return err
		}
	}
	return m.Err
}

// StaticWeightSource serves fixed weights so tests can exercise real
// quorum arithmetic. Addresses missing from Balances weigh one unit.
type StaticWeightSource struct {
	Total    Amount
	Balances map[sdk.Address]Amount
}

func (s StaticWeightSource) TotalWeight() Amount { return s.Total }

func (s StaticWeightSource) BalanceOf(addr sdk.Address) Amount {
	if w, ok := s.Balances[addr]; ok {
		return w
	}
	return 1
}

// RecordingSink buffers emitted events for assertions.
type RecordingSink struct {
	Events []any
}

func (s *RecordingSink) Emit(ev any) {
	s.Events = append(s.Events, ev)
}
