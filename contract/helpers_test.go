package contract_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"treasury_dao/contract"
	"treasury_dao/sdk"
)

const (
	contractAddr = sdk.Address("contract:treasury")
	curator      = sdk.Address("hive:curator")
	alice        = sdk.Address("hive:alice")
	bob          = sdk.Address("hive:bob")
	charlie      = sdk.Address("hive:charlie")
)

const startTime int64 = 1_700_000_000

type fixture struct {
	dao     *contract.DAO
	env     *contract.MockENV
	bank    *contract.MemoryBank
	invoker *contract.MockInvoker
	sink    *contract.RecordingSink
	state   *contract.MemoryState
}

// setupDAO wires a fresh engine against the in-memory host capabilities.
func setupDAO(t *testing.T) *fixture {
	return setupDAOWith(t, 1, 1_000_000, nil)
}

func setupDAOWith(t *testing.T, minDeposit, treasury contract.Amount, weights contract.WeightSource) *fixture {
	t.Helper()
	env := &contract.MockENV{
		ContractAddress: contractAddr,
		Sender:          curator,
		Timestamp:       startTime,
	}
	bank := contract.NewMemoryBank(treasury)
	for _, acc := range []sdk.Address{alice, bob, charlie} {
		bank.Accounts[acc] = 1_000
	}
	invoker := &contract.MockInvoker{}
	sink := &contract.RecordingSink{}
	state := contract.NewMemoryState()

	dao := contract.New(curator, minDeposit, contract.Deps{
		State:   state,
		Env:     env,
		Bank:    bank,
		Invoker: invoker,
		Weights: weights,
		Events:  sink,
	})
	return &fixture{dao: dao, env: env, bank: bank, invoker: invoker, sink: sink, state: state}
}

// as impersonates a caller for the next operations.
func (f *fixture) as(addr sdk.Address) {
	f.env.Sender = addr
}

// allow puts an address on the recipients registry as the curator.
func (f *fixture) allow(t *testing.T, addr sdk.Address) {
	t.Helper()
	prev := f.env.Sender
	f.as(curator)
	require.NoError(t, f.dao.ChangeAllowedRecipients(addr, true))
	f.as(prev)
}

// create appends a standard two-week proposal from alice to bob.
func (f *fixture) create(t *testing.T, amount contract.Amount, payload []byte, deposit contract.Amount) contract.ProposalID {
	t.Helper()
	f.allow(t, bob)
	f.as(alice)
	id, err := f.dao.NewProposal(bob, amount, []byte("prop 1"), payload, 2*contract.Week, deposit)
	require.NoError(t, err)
	return id
}

// pastDeadline moves the clock just beyond the voting deadline but
// safely inside the execute grace window.
func (f *fixture) pastDeadline() {
	f.env.Advance(2*contract.Week + contract.Hour)
}

// pastGrace moves the clock beyond deadline plus grace period.
func (f *fixture) pastGrace() {
	f.env.Advance(2*contract.Week + 10*contract.Day + contract.Hour)
}
