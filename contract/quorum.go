package contract

// -----------------------------------------------------------------------------
// Quorum Calculator
// -----------------------------------------------------------------------------

// minQuorum computes the affirmative weight a spend of value needs: a
// base quorum of total/divisor plus a surcharge proportional to how big
// the spend is relative to the spendable balance. All weights come from
// the pluggable WeightSource.
func (d *DAO) minQuorum(st *daoState, value Amount) Amount {
	total := d.weights.TotalWeight()
	quorum := total / Amount(st.MinQuorumDivisor)
	if spendable := d.spendable(st); spendable > 0 {
		quorum += value * total / (3 * spendable)
	}
	return quorum
}

// MinQuorum is the exported view of the current quorum requirement.
func (d *DAO) MinQuorum(value Amount) Amount {
	return d.minQuorum(d.loadDaoState(), value)
}

// HalveMinQuorum doubles the quorum divisor, halving the effective
// quorum. Allowed after the halving period has elapsed since quorum was
// last met, or any time for the curator with at least one debate period
// between calls, and never before the first real proposal exists.
func (d *DAO) HalveMinQuorum() error {
	st := d.loadDaoState()
	now := d.now()
	elapsed := now - st.LastTimeMinQuorumMet

	if (elapsed > QuorumHalvingPeriod || d.caller() == st.Curator) &&
		elapsed > MinProposalDebatePeriod &&
		d.getCount(ProposalsCount) > 0 {
		st.LastTimeMinQuorumMet = now
		st.MinQuorumDivisor *= 2
		d.saveDaoState(st)
		d.log.Info().Uint64("divisor", st.MinQuorumDivisor).Msg("quorum halved")
		return nil
	}

	return ErrUnableToHalveQuorum
}
