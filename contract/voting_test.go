package contract_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"treasury_dao/contract"
)

func TestVoteTallies(t *testing.T) {
	f := setupDAO(t)
	id := f.create(t, 5, nil, 1)

	f.as(alice)
	require.NoError(t, f.dao.Vote(id, true))
	f.as(bob)
	require.NoError(t, f.dao.Vote(id, false))

	p, err := f.dao.GetProposal(id)
	require.NoError(t, err)
	assert.Equal(t, contract.Amount(1), p.Yea)
	assert.Equal(t, contract.Amount(1), p.Nay)
	assert.True(t, p.VotedYes[alice])
	assert.True(t, p.VotedNo[bob])
}

// TestVoteIsIdempotent: repeat votes never double-count, only the
// latest stance survives.
func TestVoteIsIdempotent(t *testing.T) {
	f := setupDAO(t)
	id := f.create(t, 5, nil, 1)
	f.as(alice)

	require.NoError(t, f.dao.Vote(id, true))
	require.NoError(t, f.dao.Vote(id, true))

	p, err := f.dao.GetProposal(id)
	require.NoError(t, err)
	assert.Equal(t, contract.Amount(1), p.Yea)
	assert.Equal(t, contract.Amount(0), p.Nay)
}

func TestVoteSwitchesStance(t *testing.T) {
	f := setupDAO(t)
	id := f.create(t, 5, nil, 1)
	f.as(alice)

	require.NoError(t, f.dao.Vote(id, true))
	require.NoError(t, f.dao.Vote(id, false))

	p, err := f.dao.GetProposal(id)
	require.NoError(t, err)
	assert.Equal(t, contract.Amount(0), p.Yea)
	assert.Equal(t, contract.Amount(1), p.Nay)
	assert.False(t, p.VotedYes[alice])
	assert.True(t, p.VotedNo[alice])
}

func TestVoteRejections(t *testing.T) {
	f := setupDAO(t)
	id := f.create(t, 5, nil, 1)
	f.as(alice)

	require.ErrorIs(t, f.dao.Vote(99, true), contract.ErrProposalNotFound)
	require.ErrorIs(t, f.dao.Vote(0, true), contract.ErrProposalNotFound)

	f.pastDeadline()
	require.ErrorIs(t, f.dao.Vote(id, true), contract.ErrVotingClosed)
}

func TestUnVoteRestoresTally(t *testing.T) {
	f := setupDAO(t)
	id := f.create(t, 5, nil, 1)
	f.as(alice)

	require.NoError(t, f.dao.Vote(id, true))
	require.NoError(t, f.dao.UnVote(id))

	p, err := f.dao.GetProposal(id)
	require.NoError(t, err)
	assert.Equal(t, contract.Amount(0), p.Yea)
	assert.False(t, p.VotedYes[alice])

	// never voted: still fine
	f.as(charlie)
	require.NoError(t, f.dao.UnVote(id))
}

// TestUnVotePastDeadlineIsNoOp: a late un-vote is swallowed so expired
// register entries never wedge the bulk sweep.
func TestUnVotePastDeadlineIsNoOp(t *testing.T) {
	f := setupDAO(t)
	id := f.create(t, 5, nil, 1)
	f.as(alice)
	require.NoError(t, f.dao.Vote(id, true))

	f.pastDeadline()
	require.NoError(t, f.dao.UnVote(id))

	p, err := f.dao.GetProposal(id)
	require.NoError(t, err)
	assert.Equal(t, contract.Amount(1), p.Yea)
	assert.True(t, p.VotedYes[alice])

	require.ErrorIs(t, f.dao.UnVote(99), contract.ErrProposalNotFound)
}

func TestUnVoteAll(t *testing.T) {
	f := setupDAO(t)
	first := f.create(t, 5, nil, 1)
	second := f.create(t, 6, nil, 1)

	f.as(alice)
	require.NoError(t, f.dao.Vote(first, true))
	require.NoError(t, f.dao.Vote(second, false))
	assert.True(t, f.dao.UnblockMe())

	f.dao.UnVoteAll()

	for _, id := range []contract.ProposalID{first, second} {
		p, err := f.dao.GetProposal(id)
		require.NoError(t, err)
		assert.Equal(t, contract.Amount(0), p.Yea)
		assert.Equal(t, contract.Amount(0), p.Nay)
	}
	assert.False(t, f.dao.UnblockMe())
}

// TestBlockedPointerTracksLatestDeadline votes on a long and a short
// proposal, retires the short one and checks the pointer survived at
// the long one.
func TestBlockedPointerTracksLatestDeadline(t *testing.T) {
	f := setupDAO(t)
	short := f.create(t, 5, nil, 1)
	f.as(alice)
	long, err := f.dao.NewProposal(bob, 6, []byte("prop 2"), nil, 3*contract.Week, 1)
	require.NoError(t, err)

	require.NoError(t, f.dao.Vote(long, true))
	require.NoError(t, f.dao.Vote(short, true))
	assert.True(t, f.dao.UnblockMe())

	// past the short proposal's grace window, inside the long one's
	f.pastGrace()
	require.NoError(t, f.dao.CloseProposal(short))
	assert.True(t, f.dao.UnblockMe())
}

// TestUnblockMeClearsStalePointer covers the lazy cleanup when the
// pointed-at proposal is already closed.
func TestUnblockMeClearsStalePointer(t *testing.T) {
	f := setupDAO(t)
	id := f.create(t, 5, nil, 1)
	f.as(alice)
	require.NoError(t, f.dao.Vote(id, true))
	assert.True(t, f.dao.UnblockMe())

	f.pastGrace()
	require.NoError(t, f.dao.CloseProposal(id))

	assert.False(t, f.dao.UnblockMe())
	assert.False(t, f.dao.UnblockMe())

	f.as(charlie)
	assert.False(t, f.dao.UnblockMe())
}

// TestVoteRoundTrip: two voters in, two voters out, the proposal ends
// exactly where it started.
func TestVoteRoundTrip(t *testing.T) {
	f := setupDAOWith(t, 1, 1_000_000, nil)
	id := f.create(t, 5, nil, 2)

	f.as(alice)
	require.NoError(t, f.dao.Vote(id, true))
	f.as(bob)
	require.NoError(t, f.dao.Vote(id, false))

	p, err := f.dao.GetProposal(id)
	require.NoError(t, err)
	assert.Equal(t, contract.Amount(1), p.Yea)
	assert.Equal(t, contract.Amount(1), p.Nay)

	f.as(alice)
	require.NoError(t, f.dao.UnVote(id))
	f.as(bob)
	require.NoError(t, f.dao.UnVote(id))

	p, err = f.dao.GetProposal(id)
	require.NoError(t, err)
	assert.Equal(t, contract.Amount(0), p.Yea)
	assert.Equal(t, contract.Amount(0), p.Nay)
	assert.False(t, p.VotedYes[alice])
	assert.False(t, p.VotedNo[bob])
}

func TestVotedEvent(t *testing.T) {
	f := setupDAO(t)
	id := f.create(t, 5, nil, 1)
	f.as(alice)
	require.NoError(t, f.dao.Vote(id, false))

	var voted []contract.VotedEvent
	for _, ev := range f.sink.Events {
		if e, ok := ev.(contract.VotedEvent); ok {
			voted = append(voted, e)
		}
	}
	require.Len(t, voted, 1)
	assert.Equal(t, id, voted[0].ProposalID)
	assert.False(t, voted[0].Support)
	assert.Equal(t, alice, voted[0].Voter)
}
