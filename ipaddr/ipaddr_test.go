package ipaddr

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoopback(t *testing.T) {
	a, err := NewFromString("127.0.0.1")
	require.NoError(t, err)
	require.Equal(t, T{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0xff, 0xff, 127, 0, 0, 1}, a)
	require.True(t, a.IsIPv4Mapped())
	require.Equal(t, "127.0.0.1", a.String())
}

func TestEmpty(t *testing.T) {
	a, err := NewFromString("")
	require.NoError(t, err)
	require.True(t, a.IsZero())
	require.False(t, a.IsIPv4Mapped())
	require.Equal(t, "", a.String())
}

func TestRejected(t *testing.T) {
	for _, s := range []string{"::1", "2001:db8::1", "::ffff:127.0.0.1%eth0"} {
		_, err := NewFromString(s)
		require.ErrorIs(t, err, ErrUnsupported, s)
	}
	for _, s := range []string{"127.0.0", "256.1.1.1", "localhost", "1.2.3.4:9999"} {
		_, err := NewFromString(s)
		require.ErrorIs(t, err, ErrInvalid, s)
	}
}

func TestMappedText(t *testing.T) {
	a, err := NewFromString("::ffff:127.0.0.1")
	require.NoError(t, err)
	require.Equal(t, MustParse("127.0.0.1"), a)
	require.True(t, a.IsIPv4Mapped())
	require.Equal(t, "127.0.0.1", a.String())
}

func TestWireOnlyIPv6(t *testing.T) {
	a := T{0x20, 0x01, 0x0d, 0xb8, 15: 1}
	require.False(t, a.IsIPv4Mapped())
	require.Equal(t, "2001:db8::1", a.String())
}

func TestJSON(t *testing.T) {
	a := MustParse("10.11.12.13")
	b, err := json.Marshal(a)
	require.NoError(t, err)
	require.Equal(t, `"10.11.12.13"`, string(b))
	var a2 T
	require.NoError(t, json.Unmarshal(b, &a2))
	require.Equal(t, a, a2)
	require.Error(t, json.Unmarshal([]byte(`"::1"`), &a2))
	require.Error(t, json.Unmarshal([]byte(`12`), &a2))
}
