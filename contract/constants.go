package contract

// -----------------------------------------------------------------------------
// Time Units (seconds)
// -----------------------------------------------------------------------------

const (
	Second int64 = 1
	Minute       = 60 * Second
	Hour         = 60 * Minute
	Day          = 24 * Hour
	Week         = 7 * Day
)

// -----------------------------------------------------------------------------
// Governance Periods & Bounds
// -----------------------------------------------------------------------------

const (
	// MinProposalDebatePeriod is the shortest debate a proposal can have.
	MinProposalDebatePeriod = 2 * Week
	// MaxProposalDebatePeriod caps overly long debates.
	MaxProposalDebatePeriod = 8 * Week
	// QuorumHalvingPeriod rate-limits non-curator quorum halvings.
	QuorumHalvingPeriod = 25 * Week
	// ExecuteProposalPeriod is the grace window after the voting deadline;
	// anything still open past it just gets closed.
	ExecuteProposalPeriod = 10 * Day
	// PreSupportTime is the lead a majority needs before the deadline for
	// support to count as stable.
	PreSupportTime = 2 * Day
)

const (
	// MaxDepositDivisor bounds the minimum-deposit knob to a fraction of
	// the spendable treasury (1/100).
	MaxDepositDivisor = 100
	// InitialMinQuorumDivisor sets the starting quorum to total/7 (~14.3%).
	InitialMinQuorumDivisor uint64 = 7
)

// splitSelector is the leading 4 payload bytes of a split/new-DAO call,
// which must clear quorum against the whole spendable balance.
var splitSelector = [4]byte{0x68, 0x37, 0xff, 0x1e}

// -----------------------------------------------------------------------------
// Counter Keys
// -----------------------------------------------------------------------------

const (
	// ProposalsCount holds an integer counter for proposals (used for generating IDs).
	ProposalsCount = "count:props"
)

// -----------------------------------------------------------------------------
// Storage Key Prefixes
// -----------------------------------------------------------------------------

const (
	// kDaoState stores the encoded daoState aggregate.
	kDaoState byte = 0x01
	// kProposal contains encoded Proposal records keyed by ID.
	kProposal byte = 0x10
	// kAllowedRecipient flags addresses the treasury may pay.
	kAllowedRecipient byte = 0x20
	// kBlocked maps a voter to the proposal ID blocking them.
	kBlocked byte = 0x30
	// kVotingRegister lists the proposal IDs a voter has voted on.
	kVotingRegister byte = 0x31
)
