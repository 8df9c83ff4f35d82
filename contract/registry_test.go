package contract_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"treasury_dao/contract"
)

func TestChangeAllowedRecipients(t *testing.T) {
	f := setupDAO(t)

	f.as(alice)
	require.ErrorIs(t, f.dao.ChangeAllowedRecipients(bob, true), contract.ErrCallerIsCurator)
	assert.False(t, f.dao.IsAllowedRecipient(bob))

	f.as(curator)
	require.NoError(t, f.dao.ChangeAllowedRecipients(bob, true))
	assert.True(t, f.dao.IsAllowedRecipient(bob))

	require.NoError(t, f.dao.ChangeAllowedRecipients(bob, false))
	assert.False(t, f.dao.IsAllowedRecipient(bob))

	var changed []contract.AllowedRecipientChangedEvent
	for _, ev := range f.sink.Events {
		if e, ok := ev.(contract.AllowedRecipientChangedEvent); ok {
			changed = append(changed, e)
		}
	}
	require.Len(t, changed, 2)
	assert.Equal(t, bob, changed[0].Recipient)
	assert.True(t, changed[0].Allowed)
	assert.False(t, changed[1].Allowed)
}

// TestRegistrySeeding: the deployment allows the treasury itself and
// the curator, nobody else.
func TestRegistrySeeding(t *testing.T) {
	f := setupDAO(t)
	assert.True(t, f.dao.IsAllowedRecipient(contractAddr))
	assert.True(t, f.dao.IsAllowedRecipient(curator))
	assert.False(t, f.dao.IsAllowedRecipient(alice))
}
