package contract

import "treasury_dao/sdk"

// -----------------------------------------------------------------------------
// Allowed-Recipients Registry
// -----------------------------------------------------------------------------

// IsAllowedRecipient reports whether the treasury may pay this address.
func (d *DAO) IsAllowedRecipient(addr sdk.Address) bool {
	ptr := d.state.Get(allowedRecipientKey(addr))
	return ptr != nil && *ptr == "1"
}

// ChangeAllowedRecipients adds or removes a payable address. Only the
// curator may mutate the registry.
func (d *DAO) ChangeAllowedRecipients(recipient sdk.Address, allowed bool) error {
	st := d.loadDaoState()
	if d.caller() != st.Curator {
		return ErrCallerIsCurator
	}
	d.setAllowed(recipient, allowed)
	d.emitAllowedRecipientChanged(recipient, allowed)
	return nil
}

// setAllowed writes the membership flag; removal drops the key.
func (d *DAO) setAllowed(addr sdk.Address, allowed bool) {
	if allowed {
		d.state.Set(allowedRecipientKey(addr), "1")
		return
	}
	d.state.Delete(allowedRecipientKey(addr))
}
