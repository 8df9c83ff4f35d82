package contract

import "treasury_dao/sdk"

// Bank moves treasury funds. Balance is the contract's total holdings
// including escrowed deposits; the engine never spends more than
// Balance minus the deposit sum.
type Bank interface {
	// Balance returns the treasury's total balance.
	Balance() Amount
	// Draw pulls amount from the given account into the treasury.
	Draw(from sdk.Address, amount Amount) error
	// Transfer pays amount out of the treasury.
	Transfer(to sdk.Address, amount Amount) error
}

// Invoker dispatches an approved proposal's payload as a generic external
// call. It forwards the full gas budget and value and is the engine's
// sole reentrancy vector.
type Invoker interface {
	Invoke(recipient sdk.Address, amount Amount, selector [4]byte, payload []byte, gasLimit uint64) error
}

// WeightSource supplies voting weight. The engine never hard-codes
// weights; plug a token contract here to get token-weighted governance.
type WeightSource interface {
	// TotalWeight is the total outstanding voting weight.
	TotalWeight() Amount
	// BalanceOf is the weight one address casts.
	BalanceOf(addr sdk.Address) Amount
}

// UnitWeightSource is the default stub weighting: every address weighs
// exactly one unit and the total supply is one.
type UnitWeightSource struct{}

func (UnitWeightSource) TotalWeight() Amount            { return 1 }
func (UnitWeightSource) BalanceOf(_ sdk.Address) Amount { return 1 }

// EventSink observes the engine's topic-indexed events. A nil sink is
// allowed; emission then only hits the log.
type EventSink interface {
	Emit(ev any)
}
