package payload

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Type is the special transaction type, carried by the transaction, that
// selects the payload variant.
type Type uint16

const (
	Classical Type = iota
	ProviderRegister
	ProviderUpdateService
	ProviderUpdateRegistrar
	ProviderUpdateRevoke
	Coinbase
	QuorumCommitment
)

var typeNames = map[Type]string{
	Classical:               "classical",
	ProviderRegister:        "provider register",
	ProviderUpdateService:   "provider update service",
	ProviderUpdateRegistrar: "provider update registrar",
	ProviderUpdateRevoke:    "provider update revoke",
	Coinbase:                "coinbase",
	QuorumCommitment:        "quorum commitment",
}

// NewType converts any integer, such as a value read from a transaction
// header or a command line, to a Type.
func NewType[V constraints.Integer](v V) (t Type, err error) {
	if v < 0 || uint64(v) > uint64(QuorumCommitment) {
		err = errorf.D("%w: %d", ErrUnknownType, v)
		return
	}
	return Type(v), nil
}

// Special reports whether the type carries a payload at all.
func (t Type) Special() bool { return t != Classical }

func (t Type) String() string {
	if s, ok := typeNames[t]; ok {
		return s
	}
	return fmt.Sprintf("unknown(%d)", uint16(t))
}
