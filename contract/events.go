package contract

import "treasury_dao/sdk"

// Typed event records handed to the EventSink. Proposal id, voter and
// recipient are the fields observers index on.

type ProposalAddedEvent struct {
	ProposalID  ProposalID
	Recipient   sdk.Address
	Amount      Amount
	Description []byte
}

type VotedEvent struct {
	ProposalID ProposalID
	Support    bool
	Voter      sdk.Address
}

type ProposalTalliedEvent struct {
	ProposalID ProposalID
	Passed     bool
	Quorum     Amount
}

type AllowedRecipientChangedEvent struct {
	Recipient sdk.Address
	Allowed   bool
}

// emitProposalAdded gives explorers a neat pa ping without scanning full storage diffs.
func (d *DAO) emitProposalAdded(id ProposalID, recipient sdk.Address, amount Amount, description []byte) {
	d.emit(ProposalAddedEvent{ProposalID: id, Recipient: recipient, Amount: amount, Description: description})
	d.log.Info().Msgf("pa|id:%d|to:%s|am:%d|d:%s", id, recipient, amount, description)
}

// emitVoted includes the stance so tallies can be replayed from logs only.
func (d *DAO) emitVoted(id ProposalID, support bool, voter sdk.Address) {
	d.emit(VotedEvent{ProposalID: id, Support: support, Voter: voter})
	d.log.Info().Msgf("v|id:%d|by:%s|y:%t", id, voter, support)
}

// emitProposalTallied leaves the final quorum weight next to the verdict.
func (d *DAO) emitProposalTallied(id ProposalID, passed bool, quorum Amount) {
	d.emit(ProposalTalliedEvent{ProposalID: id, Passed: passed, Quorum: quorum})
	d.log.Info().Msgf("pt|id:%d|p:%t|q:%d", id, passed, quorum)
}

// emitAllowedRecipientChanged spells out registry flips so auditors can track them.
func (d *DAO) emitAllowedRecipientChanged(recipient sdk.Address, allowed bool) {
	d.emit(AllowedRecipientChangedEvent{Recipient: recipient, Allowed: allowed})
	d.log.Info().Msgf("arc|to:%s|ok:%t", recipient, allowed)
}
