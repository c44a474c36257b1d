package proreg

import (
	"slices"

	"protx.lol/cursor"
	"protx.lol/hash256"
	"protx.lol/ipaddr"
	"protx.lol/keyid"
	"protx.lol/payload"
)

// fixedLen is every field except the two variable length ones.
const fixedLen = 2 + 2 + 2 + 4 + ipaddr.Len + 2 + 3*keyid.Len + 2 + hash256.Len

// AppendBinary writes the wire encoding of the payload to dst.
//
//	[ 2 bytes version ]
//	[ 2 bytes type ]
//	[ 2 bytes mode ]
//	[ 4 bytes collateralIndex ]
//	[ 16 bytes ipAddress ]
//	[ 2 bytes port, big endian ]
//	[ 20 bytes KeyIdOwner ]
//	[ 20 bytes KeyIdOperator ]
//	[ 20 bytes KeyIdVoting ]
//	[ 2 bytes operatorReward ]
//	[ varint scriptPayout length ][ scriptPayout ]
//	[ 32 bytes inputsHash ]
//	[ varint payloadSig length ][ payloadSig ]
//
// Integers other than port are little endian.
func (p *T) AppendBinary(dst []byte) (b []byte, err error) {
	if err = p.Validate(); err != nil {
		return dst, err
	}
	w := cursor.NewWriter(slices.Grow(dst, p.Size()))
	w.Uint16LE(p.Version)
	w.Uint16LE(p.NodeType)
	w.Uint16LE(p.Mode)
	w.Uint32LE(p.CollateralIndex)
	w.Write(p.IPAddress[:])
	w.Uint16BE(p.Port)
	w.Write(p.KeyIDOwner[:])
	w.Write(p.KeyIDOperator[:])
	w.Write(p.KeyIDVoting[:])
	w.Uint16LE(p.OperatorReward)
	w.VarBytes(p.ScriptPayout)
	w.Write(p.InputsHash[:])
	w.VarBytes(p.PayloadSig)
	b = w.Bytes()
	return
}

func (p *T) MarshalBinary() (b []byte, err error) { return p.AppendBinary(nil) }

func malformed(field string, err error) error {
	return errorf.T("%w: reading %s: %w", payload.ErrMalformedPayload, field, err)
}

// UnmarshalBinary decodes exactly one payload from b. A short buffer or bytes
// left over after the signature are both malformed. p is only changed on
// success.
func (p *T) UnmarshalBinary(b []byte) (err error) {
	var v T
	r := cursor.NewReader(b)
	if v.Version, err = r.Uint16LE(); err != nil {
		return malformed("version", err)
	}
	if v.NodeType, err = r.Uint16LE(); err != nil {
		return malformed("type", err)
	}
	if v.Mode, err = r.Uint16LE(); err != nil {
		return malformed("mode", err)
	}
	if v.CollateralIndex, err = r.Uint32LE(); err != nil {
		return malformed("collateralIndex", err)
	}
	if err = r.Fill(v.IPAddress[:]); err != nil {
		return malformed("ipAddress", err)
	}
	if v.Port, err = r.Uint16BE(); err != nil {
		return malformed("port", err)
	}
	// key ids are copied as they are, the byte order is not reinterpreted
	if err = r.Fill(v.KeyIDOwner[:]); err != nil {
		return malformed("KeyIdOwner", err)
	}
	if err = r.Fill(v.KeyIDOperator[:]); err != nil {
		return malformed("KeyIdOperator", err)
	}
	if err = r.Fill(v.KeyIDVoting[:]); err != nil {
		return malformed("KeyIdVoting", err)
	}
	if v.OperatorReward, err = r.Uint16LE(); err != nil {
		return malformed("operatorReward", err)
	}
	if v.ScriptPayout, err = r.VarBytes(); err != nil {
		return malformed("scriptPayout", err)
	}
	if err = r.Fill(v.InputsHash[:]); err != nil {
		return malformed("inputsHash", err)
	}
	if v.PayloadSig, err = r.VarBytes(); err != nil {
		return malformed("payloadSig", err)
	}
	if !r.Finished() {
		return errorf.T("%w: %d bytes left over after payloadSig",
			payload.ErrMalformedPayload, r.Len())
	}
	*p = v
	return
}

// Decode parses a payload that must occupy all of b.
func Decode(b []byte) (p *T, err error) {
	p = &T{}
	if err = p.UnmarshalBinary(b); err != nil {
		return nil, err
	}
	log.T.F("decoded provider registration collateral %d at %s:%d",
		p.CollateralIndex, p.IPAddress, p.Port)
	return
}
