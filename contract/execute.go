package contract

import (
	"bytes"

	"github.com/pkg/errors"
)

// -----------------------------------------------------------------------------
// Execution Engine
// -----------------------------------------------------------------------------

// VerifyPreSupport evaluates whether majority support still has enough
// lead time before the deadline to count as stable. It must be called
// while the proposal is in debate; once inside the pre-support window
// the flag evaluates false and execution cannot pass.
func (d *DAO) VerifyPreSupport(id ProposalID) error {
	p, err := d.loadProposal(id)
	if err != nil {
		return err
	}
	p.PreSupport = p.VotingDeadline > PreSupportTime && d.now() < p.VotingDeadline-PreSupportTime
	d.saveProposal(id, p)
	return nil
}

// ExecuteProposal is the single terminal attempt for a proposal:
//
//   - past the grace window it only closes whatever is still open;
//   - the caller-supplied payload must re-derive the committed hash;
//   - a recipient no longer on the registry turns the call into a pure
//     deposit return;
//   - meeting quorum refunds the creator's deposit no matter how the
//     tally ends;
//   - a passing proposal is marked passed in storage BEFORE the external
//     dispatch, so a malicious recipient re-entering here is rejected by
//     the passed check above.
func (d *DAO) ExecuteProposal(id ProposalID, selector [4]byte, payload []byte, gasLimit uint64) error {
	p, err := d.loadProposal(id)
	if err != nil {
		return err
	}
	now := d.now()

	// late cleanup: no execution attempted, just retire the proposal
	if p.Open && now > p.VotingDeadline+ExecuteProposalPeriod {
		d.closeProposal(id)
		return nil
	}

	if now < p.VotingDeadline ||
		!p.Open ||
		p.ProposalPassed ||
		p.ProposalHash != commitmentHash(p.Recipient, p.Amount, payload) {
		return ErrProposalExecutionFailed
	}

	// the recipient dropped off the registry since creation: deposit-only
	// return, nothing is dispatched
	if !d.IsAllowedRecipient(p.Recipient) {
		if err := d.bank.Transfer(p.Creator, p.ProposalDeposit); err != nil {
			fatalf("return deposit", err)
		}
		d.closeProposal(id)
		return nil
	}

	st := d.loadDaoState()

	proposalCheck := true
	if p.Amount > d.spendable(st) || !p.PreSupport {
		proposalCheck = false
	}

	quorum := p.Yea

	// a split/new-DAO payload must clear quorum against the whole
	// spendable balance, not just the proposal amount
	if bytes.HasPrefix(payload, splitSelector[:]) && quorum < d.minQuorum(st, d.spendable(st)) {
		proposalCheck = false
	}

	quorumMet := quorum >= d.minQuorum(st, p.Amount)
	if quorumMet {
		// the deposit comes back as soon as quorum is met, regardless of
		// how the tally ends
		if err := d.bank.Transfer(p.Creator, p.ProposalDeposit); err != nil {
			fatalf("return deposit", err)
		}
		st.LastTimeMinQuorumMet = now
		d.saveDaoState(st)
	}

	passed := quorumMet && p.Yea > p.Nay && proposalCheck
	if passed {
		// commit the passed flag to storage before the one externally
		// observable effect; a reentrant ExecuteProposal for this ID must
		// observe it and fail the state check above
		p.ProposalPassed = true
		d.saveProposal(id, p)

		if err := d.invoker.Invoke(p.Recipient, p.Amount, selector, payload, gasLimit); err != nil {
			return errors.Wrapf(ErrTransactionFailed, "dispatch: %v", err)
		}
	}

	d.closeProposal(id)
	d.emitProposalTallied(id, passed, quorum)
	return nil
}

// CloseProposal retires a proposal that outlived its grace window. The
// regular close is internal to execution; this entry point only exists
// so stale-but-open proposals can be swept without crafting the payload.
func (d *DAO) CloseProposal(id ProposalID) error {
	p, err := d.loadProposal(id)
	if err != nil {
		return err
	}
	if !p.Open || d.now() <= p.VotingDeadline+ExecuteProposalPeriod {
		return ErrProposalExecutionFailed
	}
	d.closeProposal(id)
	return nil
}

// closeProposal releases the escrowed deposit exactly once and retires
// the proposal. It re-reads storage so mutations made by a reentrant
// call during dispatch are not clobbered; a second close never
// double-subtracts from the ledger.
func (d *DAO) closeProposal(id ProposalID) {
	p, err := d.loadProposal(id)
	if err != nil {
		return
	}
	if p.Open {
		st := d.loadDaoState()
		if st.SumOfProposalDeposits >= p.ProposalDeposit {
			st.SumOfProposalDeposits -= p.ProposalDeposit
		} else {
			st.SumOfProposalDeposits = 0
		}
		d.saveDaoState(st)
	}
	p.Open = false
	d.saveProposal(id, p)
}
