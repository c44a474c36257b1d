// Package proreg is the payload of a provider registration transaction,
// which registers a node together with its owner, operator and voting keys,
// its network address and the script its rewards are paid to.
package proreg

import (
	"protx.lol/compact"
	"protx.lol/hash256"
	"protx.lol/hexbytes"
	"protx.lol/ipaddr"
	"protx.lol/keyid"
	"protx.lol/payload"
)

// CurrentVersion is the version stamped on every payload built with New or
// NewWith. Decoded payloads keep the version they were encoded with.
const CurrentVersion uint16 = 1

// MaxOperatorReward is the operator share of the reward in hundredths of a
// percent, so 10000 is everything.
const MaxOperatorReward = 10000

// T is a provider registration payload. Port is carried in network byte
// order, unlike every other integer. PayloadSig is empty until the payload
// has been signed.
type T struct {
	Version         uint16     `json:"version"`
	NodeType        uint16     `json:"type"`
	Mode            uint16     `json:"mode"`
	CollateralIndex uint32     `json:"collateralIndex"`
	IPAddress       ipaddr.T   `json:"ipAddress"`
	Port            uint16     `json:"port"`
	KeyIDOwner      keyid.T    `json:"KeyIdOwner"`
	KeyIDOperator   keyid.T    `json:"KeyIdOperator"`
	KeyIDVoting     keyid.T    `json:"KeyIdVoting"`
	OperatorReward  uint16     `json:"operatorReward"`
	ScriptPayout    hexbytes.T `json:"scriptPayout"`
	InputsHash      hash256.T  `json:"inputsHash"`
	PayloadSig      hexbytes.T `json:"payloadSig"`
}

var _ payload.I = &T{}

// New returns an empty payload at CurrentVersion.
func New() (p *T) { return &T{Version: CurrentVersion} }

// NewWith copies the field values of f into a payload at CurrentVersion,
// whatever version f carries, and validates it.
func NewWith(f T) (p *T, err error) {
	p = &f
	p.Version = CurrentVersion
	if err = p.Validate(); chk.D(err) {
		return nil, err
	}
	return
}

func (p *T) Type() payload.Type { return payload.ProviderRegister }

// Size is the length of the binary encoding.
func (p *T) Size() (n int) {
	n = fixedLen
	n += compact.Len(uint64(len(p.ScriptPayout))) + len(p.ScriptPayout)
	n += compact.Len(uint64(len(p.PayloadSig))) + len(p.PayloadSig)
	return
}

// Equal compares every field. Empty and nil byte sequences are equal.
func (p *T) Equal(o *T) bool {
	if p == nil || o == nil {
		return p == o
	}
	return p.Version == o.Version &&
		p.NodeType == o.NodeType &&
		p.Mode == o.Mode &&
		p.CollateralIndex == o.CollateralIndex &&
		p.IPAddress == o.IPAddress &&
		p.Port == o.Port &&
		p.KeyIDOwner == o.KeyIDOwner &&
		p.KeyIDOperator == o.KeyIDOperator &&
		p.KeyIDVoting == o.KeyIDVoting &&
		p.OperatorReward == o.OperatorReward &&
		p.ScriptPayout.Equal(o.ScriptPayout) &&
		p.InputsHash == o.InputsHash &&
		p.PayloadSig.Equal(o.PayloadSig)
}
