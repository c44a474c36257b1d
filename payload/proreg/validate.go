package proreg

import (
	"protx.lol/payload"
)

// Validate checks the rules a payload must satisfy before it is encoded.
// Fixed width fields cannot have the wrong length, and the payout script and
// signature are not interpreted.
func (p *T) Validate() (err error) {
	if p == nil {
		return payload.ErrMissingPayload
	}
	if p.Version < 1 || p.Version > CurrentVersion {
		return errorf.D("%w: version %d not in [1, %d]",
			payload.ErrInvalidField, p.Version, CurrentVersion)
	}
	if p.OperatorReward > MaxOperatorReward {
		return errorf.D("%w: operatorReward %d not in [0, %d]",
			payload.ErrInvalidField, p.OperatorReward, MaxOperatorReward)
	}
	if !p.IPAddress.IsZero() && !p.IPAddress.IsIPv4Mapped() {
		return errorf.D("%w: ipAddress %s is not IPv4",
			payload.ErrInvalidField, p.IPAddress)
	}
	return
}
