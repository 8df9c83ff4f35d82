package contract

import (
	"github.com/pkg/errors"

	"treasury_dao/sdk"
)

// -----------------------------------------------------------------------------
// Proposal Creation
// -----------------------------------------------------------------------------

// NewProposal validates and appends a proposal to spend amount on
// recipient, escrowing deposit from the caller. The commitment hash over
// (recipient, amount, payload) is bound here and re-verified at
// execution, so a substituted payload can never run.
func (d *DAO) NewProposal(recipient sdk.Address, amount Amount, description, payload []byte, debatePeriod int64, deposit Amount) (ProposalID, error) {
	st := d.loadDaoState()
	creator := d.caller()
	now := d.now()

	if !d.IsAllowedRecipient(recipient) ||
		debatePeriod < MinProposalDebatePeriod ||
		debatePeriod > MaxProposalDebatePeriod ||
		deposit < st.ProposalDeposit ||
		creator == d.contractAddress() {
		return 0, ErrProposalCreationFailed
	}

	// prevent the curator from halving quorum before the first proposal
	if d.getCount(ProposalsCount) == 0 {
		st.LastTimeMinQuorumMet = now
	}

	if err := d.bank.Draw(creator, deposit); err != nil {
		return 0, errors.Wrapf(ErrProposalCreationFailed, "draw deposit: %v", err)
	}

	p := &Proposal{
		Recipient:       recipient,
		Amount:          amount,
		Description:     description,
		VotingDeadline:  now + debatePeriod,
		Open:            true,
		ProposalHash:    commitmentHash(recipient, amount, payload),
		ProposalDeposit: deposit,
		VotedYes:        map[sdk.Address]bool{},
		VotedNo:         map[sdk.Address]bool{},
		Creator:         creator,
	}

	st.SumOfProposalDeposits += deposit
	d.saveDaoState(st)
	id := d.appendProposal(p)

	d.emitProposalAdded(id, recipient, amount, description)
	return id, nil
}

// CheckProposalCode reports whether (recipient, amount, payload) matches
// the commitment bound at creation time.
func (d *DAO) CheckProposalCode(id ProposalID, recipient sdk.Address, amount Amount, payload []byte) (bool, error) {
	p, err := d.loadProposal(id)
	if err != nil {
		return false, err
	}
	return p.ProposalHash == commitmentHash(recipient, amount, payload), nil
}

// GetProposal returns a copy of the stored record; the store stays the
// single source of truth.
func (d *DAO) GetProposal(id ProposalID) (*Proposal, error) {
	return d.loadProposal(id)
}

// NumberOfProposals counts real proposals, excluding the sentinel.
func (d *DAO) NumberOfProposals() uint64 {
	return d.getCount(ProposalsCount)
}
