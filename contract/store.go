package contract

import (
	"strconv"

	"github.com/pkg/errors"

	"treasury_dao/sdk"
)

// -----------------------------------------------------------------------------
// Counters
// -----------------------------------------------------------------------------

// getCount reads the string counter under the key and defaults to zero, nothing magical here.
func (d *DAO) getCount(key string) uint64 {
	ptr := d.state.Get(key)
	if ptr == nil || *ptr == "" {
		return 0
	}
	n, _ := strconv.ParseUint(*ptr, 10, 64)
	return n
}

// setCount stores uint64 counters back as decimal strings for the host kv.
func (d *DAO) setCount(key string, n uint64) {
	d.state.Set(key, strconv.FormatUint(n, 10))
}

// -----------------------------------------------------------------------------
// Aggregate State
// -----------------------------------------------------------------------------

// loadDaoState pulls the aggregate blob; a missing blob means the
// constructor never ran against this storage, which is unrecoverable.
func (d *DAO) loadDaoState() *daoState {
	ptr := d.state.Get(daoStateKey())
	if ptr == nil || *ptr == "" {
		fatalf("load dao state", errors.New("not initialized"))
	}
	st, err := decodeDaoState([]byte(*ptr))
	if err != nil {
		fatalf("decode dao state", err)
	}
	return st
}

func (d *DAO) saveDaoState(st *daoState) {
	d.state.Set(daoStateKey(), string(encodeDaoState(st)))
}

// -----------------------------------------------------------------------------
// Proposal Store
// -----------------------------------------------------------------------------

// appendProposal assigns the next 1-based ID and persists the record.
// ID 0 stays reserved as the null sentinel.
func (d *DAO) appendProposal(p *Proposal) ProposalID {
	id := ProposalID(d.getCount(ProposalsCount) + 1)
	d.saveProposal(id, p)
	d.setCount(ProposalsCount, uint64(id))
	return id
}

// loadProposal fails closed on the sentinel and anything past the counter.
func (d *DAO) loadProposal(id ProposalID) (*Proposal, error) {
	if id == 0 || uint64(id) > d.getCount(ProposalsCount) {
		return nil, errors.Wrapf(ErrProposalNotFound, "id %d", id)
	}
	ptr := d.state.Get(proposalKey(id))
	if ptr == nil || *ptr == "" {
		return nil, errors.Wrapf(ErrProposalNotFound, "id %d", id)
	}
	p, err := DecodeProposal([]byte(*ptr))
	if err != nil {
		fatalf("decode proposal", err)
	}
	return p, nil
}

func (d *DAO) saveProposal(id ProposalID, p *Proposal) {
	d.state.Set(proposalKey(id), string(EncodeProposal(p)))
}

// -----------------------------------------------------------------------------
// Blocked Pointers & Voting Registers
// -----------------------------------------------------------------------------

// loadBlocked resolves a voter's blocked pointer, sentinel 0 when absent.
func (d *DAO) loadBlocked(addr sdk.Address) ProposalID {
	ptr := d.state.Get(blockedKey(addr))
	if ptr == nil || *ptr == "" {
		return 0
	}
	n, _ := strconv.ParseUint(*ptr, 10, 64)
	return ProposalID(n)
}

// saveBlocked stores the pointer; the sentinel clears the key entirely.
func (d *DAO) saveBlocked(addr sdk.Address, id ProposalID) {
	if id == 0 {
		d.state.Delete(blockedKey(addr))
		return
	}
	d.state.Set(blockedKey(addr), strconv.FormatUint(uint64(id), 10))
}

func (d *DAO) loadVotingRegister(addr sdk.Address) []ProposalID {
	ptr := d.state.Get(votingRegisterKey(addr))
	if ptr == nil || *ptr == "" {
		return nil
	}
	ids, err := decodeIDList([]byte(*ptr))
	if err != nil {
		fatalf("decode voting register", err)
	}
	return ids
}

func (d *DAO) saveVotingRegister(addr sdk.Address, ids []ProposalID) {
	if len(ids) == 0 {
		d.state.Delete(votingRegisterKey(addr))
		return
	}
	d.state.Set(votingRegisterKey(addr), string(encodeIDList(ids)))
}
