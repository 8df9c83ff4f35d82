package contract

import (
	"bytes"
	"encoding/binary"
	"sort"

	"github.com/pkg/errors"

	"treasury_dao/sdk"
)

type binWriter struct {
	buf bytes.Buffer
}

// newWriter spins up a fresh writer so we dont leak old bytes between encodes.
func newWriter() *binWriter { return &binWriter{} }

// bytes returns the accumulated buffer, tiny helper but keeps code tidy.
func (w *binWriter) bytes() []byte { return w.buf.Bytes() }

// writeBool squashes bools into a single byte flag for deterministic blobs.
func (w *binWriter) writeBool(v bool) {
	if v {
		w.buf.WriteByte(1)
	} else {
		w.buf.WriteByte(0)
	}
}

// writeUint64 writes big endian numbers so tooling can read them without guessing.
func (w *binWriter) writeUint64(v uint64) {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], v)
	w.buf.Write(b[:])
}

// writeInt64 reuses the uint routine since casting keeps the sign bits intact.
func (w *binWriter) writeInt64(v int64) {
	w.writeUint64(uint64(v))
}

// writeVarUint uses varints to keep counts and lens compact.
func (w *binWriter) writeVarUint(v uint64) {
	var tmp [binary.MaxVarintLen64]byte
	n := binary.PutUvarint(tmp[:], v)
	w.buf.Write(tmp[:n])
}

// writeAmount keeps treasury values on a single call site.
func (w *binWriter) writeAmount(v Amount) {
	w.writeUint64(uint64(v))
}

// writeBytes prefixes the length then dumps the raw chunk.
func (w *binWriter) writeBytes(b []byte) {
	w.writeVarUint(uint64(len(b)))
	w.buf.Write(b)
}

// writeString shares the writeBytes layout for UTF-8 text.
func (w *binWriter) writeString(s string) {
	w.writeVarUint(uint64(len(s)))
	w.buf.WriteString(s)
}

// writeAddress canonicalizes the address before writing, so later parsing is easy.
func (w *binWriter) writeAddress(a sdk.Address) {
	w.writeString(a.String())
}

// writeVoterMap iterates keys in sorted order so binary blobs are stable.
func (w *binWriter) writeVoterMap(m map[sdk.Address]bool) {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k.String())
	}
	sort.Strings(keys)
	w.writeVarUint(uint64(len(keys)))
	for _, k := range keys {
		w.writeString(k)
		w.writeBool(m[sdk.Address(k)])
	}
}

// ------------------------------------------------------------------
// Decoder helpers
// ------------------------------------------------------------------

type binReader struct {
	data []byte
	pos  int
}

// newReader wraps raw bytes so we can peek sequentially w/out copying.
func newReader(data []byte) *binReader {
	return &binReader{data: data}
}

// readByte grabs the next byte and bumps the cursor, errors on EOF.
func (r *binReader) readByte() (byte, error) {
	if r.pos >= len(r.data) {
		return 0, errors.New("unexpected EOF")
	}
	b := r.data[r.pos]
	r.pos++
	return b, nil
}

// readBool restores bools stored via writeBool above.
func (r *binReader) readBool() (bool, error) {
	b, err := r.readByte()
	if err != nil {
		return false, err
	}
	return b == 1, nil
}

// readUint64 decodes big endian integers for ids and totals.
func (r *binReader) readUint64() (uint64, error) {
	if r.pos+8 > len(r.data) {
		return 0, errors.New("unexpected EOF")
	}
	val := binary.BigEndian.Uint64(r.data[r.pos : r.pos+8])
	r.pos += 8
	return val, nil
}

// readInt64 simply casts the unsigned read, matching the writer logic.
func (r *binReader) readInt64() (int64, error) {
	v, err := r.readUint64()
	if err != nil {
		return 0, err
	}
	return int64(v), nil
}

// readVarUint undoes the compact varint encoding for lengths/counts.
func (r *binReader) readVarUint() (uint64, error) {
	val, n := binary.Uvarint(r.data[r.pos:])
	if n <= 0 {
		return 0, errors.New("invalid varuint")
	}
	r.pos += n
	return val, nil
}

// readAmount rebuilds an Amount over the uint64 path.
func (r *binReader) readAmount() (Amount, error) {
	v, err := r.readUint64()
	if err != nil {
		return 0, err
	}
	return Amount(v), nil
}

// readBytes reads the varint length then slices out the chunk.
func (r *binReader) readBytes() ([]byte, error) {
	l, err := r.readVarUint()
	if err != nil {
		return nil, err
	}
	if r.pos+int(l) > len(r.data) {
		return nil, errors.New("unexpected EOF")
	}
	b := make([]byte, l)
	copy(b, r.data[r.pos:r.pos+int(l)])
	r.pos += int(l)
	return b, nil
}

// readString shares the readBytes layout for UTF-8 text.
func (r *binReader) readString() (string, error) {
	b, err := r.readBytes()
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func (r *binReader) readAddress() (sdk.Address, error) {
	s, err := r.readString()
	if err != nil {
		return "", err
	}
	return sdk.Address(s), nil
}

func (r *binReader) readVoterMap() (map[sdk.Address]bool, error) {
	count, err := r.readVarUint()
	if err != nil {
		return nil, err
	}
	m := make(map[sdk.Address]bool, count)
	for i := uint64(0); i < count; i++ {
		k, err := r.readString()
		if err != nil {
			return nil, err
		}
		v, err := r.readBool()
		if err != nil {
			return nil, err
		}
		m[sdk.Address(k)] = v
	}
	return m, nil
}

// ------------------------------------------------------------------
// Record encoders
// ------------------------------------------------------------------

// EncodeProposal turns a Proposal into deterministic bytes so we can
// persist voter maps without json overhead.
// Example payload: EncodeProposal(&Proposal{Recipient: "hive:alice", Amount: 5})
func EncodeProposal(p *Proposal) []byte {
	w := newWriter()
	w.writeAddress(p.Recipient)
	w.writeAmount(p.Amount)
	w.writeBytes(p.Description)
	w.writeInt64(p.VotingDeadline)
	w.writeBool(p.Open)
	w.writeBool(p.ProposalPassed)
	w.buf.Write(p.ProposalHash[:])
	w.writeAmount(p.ProposalDeposit)
	w.writeBool(p.NewCurator)
	w.writeBool(p.PreSupport)
	w.writeAmount(p.Yea)
	w.writeAmount(p.Nay)
	w.writeVoterMap(p.VotedYes)
	w.writeVoterMap(p.VotedNo)
	w.writeAddress(p.Creator)
	return w.bytes()
}

// DecodeProposal rebuilds a Proposal from its stored bytes.
// Example payload: DecodeProposal(EncodeProposal(&Proposal{Amount: 5}))
func DecodeProposal(data []byte) (*Proposal, error) {
	r := newReader(data)
	var p Proposal
	var err error
	if p.Recipient, err = r.readAddress(); err != nil {
		return nil, errors.Wrap(err, "recipient")
	}
	if p.Amount, err = r.readAmount(); err != nil {
		return nil, errors.Wrap(err, "amount")
	}
	if p.Description, err = r.readBytes(); err != nil {
		return nil, errors.Wrap(err, "description")
	}
	if p.VotingDeadline, err = r.readInt64(); err != nil {
		return nil, errors.Wrap(err, "voting deadline")
	}
	if p.Open, err = r.readBool(); err != nil {
		return nil, errors.Wrap(err, "open")
	}
	if p.ProposalPassed, err = r.readBool(); err != nil {
		return nil, errors.Wrap(err, "proposal passed")
	}
	if r.pos+len(p.ProposalHash) > len(r.data) {
		return nil, errors.New("proposal hash: unexpected EOF")
	}
	copy(p.ProposalHash[:], r.data[r.pos:])
	r.pos += len(p.ProposalHash)
	if p.ProposalDeposit, err = r.readAmount(); err != nil {
		return nil, errors.Wrap(err, "proposal deposit")
	}
	if p.NewCurator, err = r.readBool(); err != nil {
		return nil, errors.Wrap(err, "new curator")
	}
	if p.PreSupport, err = r.readBool(); err != nil {
		return nil, errors.Wrap(err, "pre support")
	}
	if p.Yea, err = r.readAmount(); err != nil {
		return nil, errors.Wrap(err, "yea")
	}
	if p.Nay, err = r.readAmount(); err != nil {
		return nil, errors.Wrap(err, "nay")
	}
	if p.VotedYes, err = r.readVoterMap(); err != nil {
		return nil, errors.Wrap(err, "voted yes")
	}
	if p.VotedNo, err = r.readVoterMap(); err != nil {
		return nil, errors.Wrap(err, "voted no")
	}
	if p.Creator, err = r.readAddress(); err != nil {
		return nil, errors.Wrap(err, "creator")
	}
	return &p, nil
}

// encodeDaoState packs the aggregate scalars into one compact blob.
func encodeDaoState(st *daoState) []byte {
	w := newWriter()
	w.writeAddress(st.Curator)
	w.writeUint64(st.MinQuorumDivisor)
	w.writeInt64(st.LastTimeMinQuorumMet)
	w.writeAmount(st.ProposalDeposit)
	w.writeAmount(st.SumOfProposalDeposits)
	return w.bytes()
}

func decodeDaoState(data []byte) (*daoState, error) {
	r := newReader(data)
	var st daoState
	var err error
	if st.Curator, err = r.readAddress(); err != nil {
		return nil, errors.Wrap(err, "curator")
	}
	if st.MinQuorumDivisor, err = r.readUint64(); err != nil {
		return nil, errors.Wrap(err, "min quorum divisor")
	}
	if st.LastTimeMinQuorumMet, err = r.readInt64(); err != nil {
		return nil, errors.Wrap(err, "last time min quorum met")
	}
	if st.ProposalDeposit, err = r.readAmount(); err != nil {
		return nil, errors.Wrap(err, "proposal deposit")
	}
	if st.SumOfProposalDeposits, err = r.readAmount(); err != nil {
		return nil, errors.Wrap(err, "sum of proposal deposits")
	}
	return &st, nil
}

// encodeIDList packs a voting register as varints since the lists stay short.
func encodeIDList(ids []ProposalID) []byte {
	w := newWriter()
	w.writeVarUint(uint64(len(ids)))
	for _, id := range ids {
		w.writeVarUint(uint64(id))
	}
	return w.bytes()
}

func decodeIDList(data []byte) ([]ProposalID, error) {
	r := newReader(data)
	count, err := r.readVarUint()
	if err != nil {
		return nil, errors.Wrap(err, "register length")
	}
	ids := make([]ProposalID, 0, count)
	for i := uint64(0); i < count; i++ {
		v, err := r.readVarUint()
		if err != nil {
			return nil, errors.Wrap(err, "register entry")
		}
		ids = append(ids, ProposalID(v))
	}
	return ids, nil
}
