////////////////////////////////////////////////////////////////////////////////
// Treasury DAO: proposal lifecycle and voting/quorum/execution engine
////////////////////////////////////////////////////////////////////////////////

package contract

import (
	"github.com/rs/zerolog"

	"treasury_dao/sdk"
)

// DAO owns the whole aggregate: the proposal store, deposit ledger,
// quorum knobs, voter registers and the allowed-recipients registry, all
// persisted through the injected State. Every external entry point runs
// serially against it; the one external dispatch inside ExecuteProposal
// is the only re-entry vector and is guarded by the passed flag.
type DAO struct {
	state   State
	env     ENV
	bank    Bank
	invoker Invoker
	weights WeightSource
	events  EventSink
	log     zerolog.Logger
}

// Deps bundles the host capabilities a DAO runs against. State defaults
// to an in-memory store and Weights to the unit stub; Env, Bank and
// Invoker have no sensible default and must be supplied.
type Deps struct {
	State   State
	Env     ENV
	Bank    Bank
	Invoker Invoker
	Weights WeightSource
	Events  EventSink
	Logger  *zerolog.Logger
}

// New builds the engine and, on fresh storage, seeds the aggregate:
// curator and minimum deposit from the arguments, quorum divisor at its
// initial value, the halving clock at now, and the registry pre-allowing
// the contract's own address and the curator. Re-opening existing
// storage leaves the persisted aggregate untouched.
func New(curator sdk.Address, proposalDeposit Amount, deps Deps) *DAO {
	if deps.Env == nil || deps.Bank == nil || deps.Invoker == nil {
		panic("contract: Env, Bank and Invoker deps are required")
	}
	if deps.State == nil {
		deps.State = NewMemoryState()
	}
	if deps.Weights == nil {
		deps.Weights = UnitWeightSource{}
	}
	logger := zerolog.Nop()
	if deps.Logger != nil {
		logger = *deps.Logger
	}

	d := &DAO{
		state:   deps.State,
		env:     deps.Env,
		bank:    deps.Bank,
		invoker: deps.Invoker,
		weights: deps.Weights,
		events:  deps.Events,
		log:     logger,
	}

	if ptr := d.state.Get(daoStateKey()); ptr == nil || *ptr == "" {
		st := &daoState{
			Curator:              curator,
			MinQuorumDivisor:     InitialMinQuorumDivisor,
			LastTimeMinQuorumMet: d.now(),
			ProposalDeposit:      proposalDeposit,
		}
		d.saveDaoState(st)
		d.setAllowed(d.contractAddress(), true)
		d.setAllowed(curator, true)
	}
	return d
}

// caller returns the authenticated sender of the current operation.
func (d *DAO) caller() sdk.Address {
	return d.env.Env().Sender
}

// now returns the host's current timestamp in unix seconds.
func (d *DAO) now() int64 {
	return d.env.Env().Timestamp
}

func (d *DAO) contractAddress() sdk.Address {
	return d.env.Env().ContractAddress
}

// emit forwards a typed event to the sink when one is attached.
func (d *DAO) emit(ev any) {
	if d.events != nil {
		d.events.Emit(ev)
	}
}

// -----------------------------------------------------------------------------
// Read-only aggregate accessors
// -----------------------------------------------------------------------------

// Curator is the privileged address controlling the recipients registry.
func (d *DAO) Curator() sdk.Address {
	return d.loadDaoState().Curator
}

// ProposalDeposit is the current minimum deposit for new proposals.
func (d *DAO) ProposalDeposit() Amount {
	return d.loadDaoState().ProposalDeposit
}

// MinQuorumDivisor is the quorum sensitivity knob (doubles per halving).
func (d *DAO) MinQuorumDivisor() uint64 {
	return d.loadDaoState().MinQuorumDivisor
}

// SumOfProposalDeposits is the total currently escrowed across open proposals.
func (d *DAO) SumOfProposalDeposits() Amount {
	return d.loadDaoState().SumOfProposalDeposits
}
