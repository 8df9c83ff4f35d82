package contract

import (
	"golang.org/x/crypto/sha3"

	"treasury_dao/sdk"
)

// commitmentHash derives the keccak-256 digest binding a proposal to its
// declared recipient, amount and call payload. The encoding is the same
// deterministic layout the storage codec uses, so any single-byte change
// in any of the three inputs yields a different digest.
func commitmentHash(recipient sdk.Address, amount Amount, payload []byte) Hash {
	w := newWriter()
	w.writeAddress(recipient)
	w.writeAmount(amount)
	w.writeBytes(payload)

	h := sha3.NewLegacyKeccak256()
	h.Write(w.bytes())

	var out Hash
	h.Sum(out[:0])
	return out
}
