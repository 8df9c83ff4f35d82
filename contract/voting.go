package contract

import "treasury_dao/sdk"

// -----------------------------------------------------------------------------
// Voting Engine
// -----------------------------------------------------------------------------

// Vote records the caller's stance on a proposal. A prior vote by the
// same caller is reversed first so repeat votes never double-count; the
// tally always reflects the latest stance only. Votes past the deadline
// or on closed proposals are rejected: a stale vote could never be
// un-voted again and would lock a phantom weight into the tally.
func (d *DAO) Vote(id ProposalID, support bool) error {
	p, err := d.loadProposal(id)
	if err != nil {
		return err
	}
	if !p.Open || d.now() >= p.VotingDeadline {
		return ErrVotingClosed
	}

	voter := d.caller()
	d.revokeVote(p, voter)

	weight := d.weights.BalanceOf(voter)
	if support {
		p.Yea += weight
		p.VotedYes[voter] = true
	} else {
		p.Nay += weight
		p.VotedNo[voter] = true
	}
	d.saveProposal(id, p)

	// the blocked pointer names the vote whose release the voter must
	// wait longest for
	if blocked := d.loadBlocked(voter); blocked == 0 {
		d.saveBlocked(voter, id)
	} else if bp, err := d.loadProposal(blocked); err == nil && p.VotingDeadline > bp.VotingDeadline {
		d.saveBlocked(voter, id)
	}

	register := d.loadVotingRegister(voter)
	register = append(register, id)
	d.saveVotingRegister(voter, register)

	d.emitVoted(id, support, voter)
	return nil
}

// UnVote withdraws the caller's vote on a proposal. Past the deadline
// this is a silent no-op so the bulk sweep below can walk registers that
// contain expired entries; the swallow is logged at debug level.
func (d *DAO) UnVote(id ProposalID) error {
	p, err := d.loadProposal(id)
	if err != nil {
		return err
	}
	voter := d.caller()
	if d.now() >= p.VotingDeadline {
		d.log.Debug().Uint64("id", uint64(id)).Str("voter", voter.String()).Msg("un-vote past deadline ignored")
		return nil
	}
	if d.revokeVote(p, voter) {
		d.saveProposal(id, p)
	}
	return nil
}

// UnVoteAll withdraws every still-open vote the caller has outstanding,
// then clears their voting register and blocked pointer.
func (d *DAO) UnVoteAll() {
	voter := d.caller()
	now := d.now()
	for _, id := range d.loadVotingRegister(voter) {
		p, err := d.loadProposal(id)
		if err != nil {
			continue
		}
		if now < p.VotingDeadline && d.revokeVote(p, voter) {
			d.saveProposal(id, p)
		}
	}
	d.saveVotingRegister(voter, nil)
	d.saveBlocked(voter, 0)
}

// revokeVote reverses a voter's prior contribution in place and reports
// whether anything changed. Never errors on a voter who never voted.
func (d *DAO) revokeVote(p *Proposal, voter sdk.Address) bool {
	changed := false
	weight := d.weights.BalanceOf(voter)
	if p.VotedYes[voter] {
		if p.Yea >= weight {
			p.Yea -= weight
		} else {
			p.Yea = 0
		}
		p.VotedYes[voter] = false
		changed = true
	}
	if p.VotedNo[voter] {
		if p.Nay >= weight {
			p.Nay -= weight
		} else {
			p.Nay = 0
		}
		p.VotedNo[voter] = false
		changed = true
	}
	return changed
}

// UnblockMe resolves the caller's blocked pointer. A pointer at a
// proposal that has since closed is lazily cleared back to the sentinel.
func (d *DAO) UnblockMe() bool {
	return d.isBlocked(d.caller())
}

func (d *DAO) isBlocked(voter sdk.Address) bool {
	id := d.loadBlocked(voter)
	if id == 0 {
		return false
	}
	p, err := d.loadProposal(id)
	if err != nil || !p.Open {
		d.saveBlocked(voter, 0)
		return false
	}
	return true
}
