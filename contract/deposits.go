package contract

// -----------------------------------------------------------------------------
// Deposit Ledger
// -----------------------------------------------------------------------------

// spendable is the only balance figure execution and deposit-size checks
// may use: escrowed deposits never double-count as available funds.
func (d *DAO) spendable(st *daoState) Amount {
	bal := d.bank.Balance()
	if bal < st.SumOfProposalDeposits {
		// the ledger invariant says this cannot happen; fail closed
		return 0
	}
	return bal - st.SumOfProposalDeposits
}

// SpendableBalance is the treasury's total balance minus escrowed deposits.
func (d *DAO) SpendableBalance() Amount {
	return d.spendable(d.loadDaoState())
}

// ChangeProposalDeposit adjusts the minimum deposit for new proposals.
// There is no error channel here: requests from the contract itself or
// above 1% of the spendable balance are silently ignored.
func (d *DAO) ChangeProposalDeposit(proposalDeposit Amount) {
	st := d.loadDaoState()
	if d.caller() == d.contractAddress() || proposalDeposit > d.spendable(st)/MaxDepositDivisor {
		d.log.Debug().
			Uint64("requested", uint64(proposalDeposit)).
			Msg("change proposal deposit ignored")
		return
	}
	st.ProposalDeposit = proposalDeposit
	d.saveDaoState(st)
}
