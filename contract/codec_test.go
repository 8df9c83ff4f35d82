package contract_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"treasury_dao/contract"
	"treasury_dao/sdk"
)

func TestProposalCodecRoundTrip(t *testing.T) {
	in := &contract.Proposal{
		Recipient:       bob,
		Amount:          42,
		Description:     []byte("fund the relay"),
		VotingDeadline:  startTime + 2*contract.Week,
		Open:            true,
		ProposalPassed:  false,
		ProposalHash:    contract.Hash{0x01, 0x02, 0x03},
		ProposalDeposit: 7,
		NewCurator:      false,
		PreSupport:      true,
		Yea:             31,
		Nay:             12,
		VotedYes: map[sdk.Address]bool{
			alice:   true,
			charlie: true,
		},
		VotedNo: map[sdk.Address]bool{
			bob: true,
			// withdrawn stance, flag flipped back off
			alice: false,
		},
		Creator: alice,
	}

	out, err := contract.DecodeProposal(contract.EncodeProposal(in))
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestProposalCodecZeroValue(t *testing.T) {
	in := &contract.Proposal{
		Description: []byte{},
		VotedYes:    map[sdk.Address]bool{},
		VotedNo:     map[sdk.Address]bool{},
	}
	out, err := contract.DecodeProposal(contract.EncodeProposal(in))
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestDecodeProposalTruncated(t *testing.T) {
	raw := contract.EncodeProposal(&contract.Proposal{
		Recipient:      bob,
		Amount:         42,
		Description:    []byte("fund the relay"),
		VotingDeadline: startTime,
		VotedYes:       map[sdk.Address]bool{alice: true},
		VotedNo:        map[sdk.Address]bool{},
		Creator:        alice,
	})

	for _, n := range []int{0, 1, len(raw) / 2, len(raw) - 1} {
		_, err := contract.DecodeProposal(raw[:n])
		assert.Error(t, err, "prefix of %d bytes", n)
	}
}
