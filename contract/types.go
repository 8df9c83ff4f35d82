package contract

import "treasury_dao/sdk"

// Amount is an unsigned treasury value in the smallest unit the host bank tracks.
type Amount uint64

// ProposalID indexes the proposal store. IDs start at 1; 0 is the null
// sentinel used by the blocked-voter pointer to mean "no active block".
type ProposalID uint64

// Hash is a keccak-256 digest binding a proposal to its declared
// recipient, amount and call payload.
type Hash [32]byte

// A Proposal with NewCurator == false represents a transaction to be
// issued by the treasury; NewCurator == true is reserved for the
// curator-change category (deposit exempt, not exercised yet).
type Proposal struct {
	// Recipient receives Amount if the proposal is accepted.
	Recipient sdk.Address
	Amount    Amount
	// Description is an opaque human-readable rationale, immutable after creation.
	Description []byte
	// VotingDeadline is the unix timestamp ending the voting period.
	VotingDeadline int64
	// Open stays true until the proposal is closed, exactly once.
	Open bool
	// ProposalPassed flips true right before the single external dispatch
	// and doubles as the reentrancy guard.
	ProposalPassed bool
	// ProposalHash commits (recipient, amount, payload) at creation time.
	ProposalHash Hash
	// ProposalDeposit is the value the creator escrowed on submission.
	ProposalDeposit Amount
	NewCurator      bool
	// PreSupport is true if majority support existed at least the
	// pre-support window before the voting deadline.
	PreSupport bool
	// Yea and Nay are weight tallies in favor of / opposed to the proposal.
	Yea Amount
	Nay Amount
	// VotedYes / VotedNo track per-voter stances so a repeat vote can
	// reverse the prior one before recording the new stance.
	VotedYes map[sdk.Address]bool
	VotedNo  map[sdk.Address]bool
	// Creator submitted the proposal and receives deposit refunds.
	Creator sdk.Address
}

// daoState is the mutable aggregate persisted under the config key.
type daoState struct {
	Curator               sdk.Address
	MinQuorumDivisor      uint64
	LastTimeMinQuorumMet  int64
	ProposalDeposit       Amount
	SumOfProposalDeposits Amount
}
