package payload

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewType(t *testing.T) {
	ty, err := NewType(1)
	require.NoError(t, err)
	require.Equal(t, ProviderRegister, ty)
	require.True(t, ty.Special())
	require.Equal(t, "provider register", ty.String())

	ty, err = NewType(uint8(6))
	require.NoError(t, err)
	require.Equal(t, QuorumCommitment, ty)

	for _, v := range []int64{-1, 7, 1 << 20} {
		_, err = NewType(v)
		require.True(t, errors.Is(err, ErrUnknownType), "%d", v)
	}
	require.False(t, Classical.Special())
	require.Equal(t, "unknown(99)", Type(99).String())
}
