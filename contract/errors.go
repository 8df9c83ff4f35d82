package contract

import (
	"fmt"

	"github.com/pkg/errors"
)

// Sentinel errors returned by the engine. Callers match with errors.Is.
var (
	// ErrProposalNotFound is returned for IDs outside the 1..count range.
	ErrProposalNotFound = errors.New("proposal not found")
	// ErrProposalCreationFailed covers every new-proposal validation:
	// unauthorized recipient, debate period out of bounds, insufficient
	// deposit, self-targeting calls.
	ErrProposalCreationFailed = errors.New("proposal creation failed")
	// ErrProposalExecutionFailed covers timing, hash and state mismatches
	// during execution.
	ErrProposalExecutionFailed = errors.New("proposal execution failed")
	// ErrTransactionFailed wraps a failed external dispatch; the attempt
	// is not retryable once the proposal is marked passed.
	ErrTransactionFailed = errors.New("transaction failed")
	// ErrCallerIsCurator rejects registry changes from anyone but the curator.
	ErrCallerIsCurator = errors.New("caller is not the curator")
	// ErrUnableToHalveQuorum means the halving rate limit has not elapsed.
	ErrUnableToHalveQuorum = errors.New("unable to halve quorum")
	// ErrVotingClosed rejects votes past the deadline or on closed proposals.
	ErrVotingClosed = errors.New("voting closed")
)

// FatalError signals a consistency violation the engine cannot absorb,
// like a failed deposit refund. It is raised via panic so the host
// transaction aborts as a whole instead of committing half a ledger.
type FatalError struct {
	Op  string
	Err error
}

func (e *FatalError) Error() string {
	return fmt.Sprintf("fatal: %s: %v", e.Op, e.Err)
}

func (e *FatalError) Unwrap() error { return e.Err }

// fatalf aborts the current operation. The ledger cannot remain
// consistent if the wrapped step fails, so this must not be swallowed.
func fatalf(op string, err error) {
	panic(&FatalError{Op: op, Err: err})
}
