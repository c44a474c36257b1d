package special

import (
	"testing"

	"github.com/stretchr/testify/require"

	"protx.lol/ipaddr"
	"protx.lol/payload"
	"protx.lol/payload/proreg"
)

func TestDispatch(t *testing.T) {
	src, err := proreg.NewWith(proreg.T{
		CollateralIndex: 3,
		IPAddress:       ipaddr.MustParse("192.168.1.20"),
		Port:            19999,
		OperatorReward:  250,
		ScriptPayout:    []byte{0x76, 0xa9, 0x14},
	})
	require.NoError(t, err)
	ty, b, err := Encode(src)
	require.NoError(t, err)
	require.Equal(t, payload.ProviderRegister, ty)

	p, err := Decode(ty, b)
	require.NoError(t, err)
	pr, ok := p.(*proreg.T)
	require.True(t, ok)
	require.True(t, src.Equal(pr))

	j, err := p.MarshalJSON()
	require.NoError(t, err)
	p, err = FromJSON(ty, j)
	require.NoError(t, err)
	require.True(t, src.Equal(p.(*proreg.T)))
}

func TestUnknown(t *testing.T) {
	for _, ty := range []payload.Type{payload.Classical, payload.ProviderUpdateService,
		payload.Coinbase, payload.Type(40)} {
		require.False(t, Supported(ty))
		_, err := Decode(ty, []byte{1})
		require.ErrorIs(t, err, payload.ErrUnknownType)
		_, err = FromJSON(ty, []byte(`{}`))
		require.ErrorIs(t, err, payload.ErrUnknownType)
	}
	require.True(t, Supported(payload.ProviderRegister))
}

func TestErrorsPassThrough(t *testing.T) {
	_, err := Decode(payload.ProviderRegister, []byte{1, 0, 0})
	require.ErrorIs(t, err, payload.ErrMalformedPayload)
	_, err = FromJSON(payload.ProviderRegister, nil)
	require.ErrorIs(t, err, payload.ErrMissingPayload)
	_, _, err = Encode(nil)
	require.ErrorIs(t, err, payload.ErrMissingPayload)
}
