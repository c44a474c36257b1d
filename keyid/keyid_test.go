package keyid

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
	"lukechampine.com/frand"
)

func TestNewFromBytes(t *testing.T) {
	b := frand.Bytes(Len)
	k, err := NewFromBytes(b)
	require.NoError(t, err)
	require.Equal(t, b, k.Bytes())
	_, err = NewFromBytes(b[1:])
	require.Error(t, err)
}

func TestByteOrderPreserved(t *testing.T) {
	s := "000102030405060708090a0b0c0d0e0f10111213"
	k, err := NewFromString(s)
	require.NoError(t, err)
	require.Equal(t, byte(0x00), k[0])
	require.Equal(t, byte(0x13), k[Len-1])
	require.Equal(t, s, k.String())
}

func TestJSON(t *testing.T) {
	for range 100 {
		var k T
		copy(k[:], frand.Bytes(Len))
		b, err := json.Marshal(k)
		require.NoError(t, err)
		require.Equal(t, `"`+k.String()+`"`, string(b))
		var k2 T
		require.NoError(t, json.Unmarshal(b, &k2))
		require.True(t, k.Equal(k2))
	}
	var k T
	require.Error(t, json.Unmarshal([]byte(`"00"`), &k))
	require.Error(t, json.Unmarshal([]byte(`7`), &k))
	require.NoError(t, json.Unmarshal([]byte(`null`), &k))
	require.True(t, k.IsZero())
}
