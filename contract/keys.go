package contract

import "treasury_dao/sdk"

// packU64LEInline sprinkles a uint64 into dst in little-endian order so our keys stay compact.
func packU64LEInline(x uint64, dst []byte) {
	dst[0] = byte(x)
	dst[1] = byte(x >> 8)
	dst[2] = byte(x >> 16)
	dst[3] = byte(x >> 24)
	dst[4] = byte(x >> 32)
	dst[5] = byte(x >> 40)
	dst[6] = byte(x >> 48)
	dst[7] = byte(x >> 56)
}

// daoStateKey holds the single aggregate state blob under prefix 0x01.
func daoStateKey() string {
	return string([]byte{kDaoState})
}

// proposalKey builds a storage key string for a proposal by ID.
func proposalKey(id ProposalID) string {
	var buf [9]byte
	buf[0] = kProposal
	packU64LEInline(uint64(id), buf[1:])
	return string(buf[:])
}

// allowedRecipientKey flags one payable address per key to avoid a nested map.
func allowedRecipientKey(addr sdk.Address) string {
	addrStr := addr.String()
	buf := make([]byte, 0, 1+len(addrStr))
	buf = append(buf, kAllowedRecipient)
	buf = append(buf, addrStr...)
	return string(buf)
}

// blockedKey points a voter at the proposal currently blocking them.
func blockedKey(addr sdk.Address) string {
	addrStr := addr.String()
	buf := make([]byte, 0, 1+len(addrStr))
	buf = append(buf, kBlocked)
	buf = append(buf, addrStr...)
	return string(buf)
}

// votingRegisterKey stores the list of proposal IDs a voter touched.
func votingRegisterKey(addr sdk.Address) string {
	addrStr := addr.String()
	buf := make([]byte, 0, 1+len(addrStr))
	buf = append(buf, kVotingRegister)
	buf = append(buf, addrStr...)
	return string(buf)
}
