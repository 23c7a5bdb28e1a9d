package types

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidateAddress(t *testing.T) {
	valid := "0x" + strings.Repeat("ab", 20)

	t.Run("valid address", func(t *testing.T) {
		require.NoError(t, ValidateAddress(valid))
	})

	t.Run("mixed case is valid", func(t *testing.T) {
		require.NoError(t, ValidateAddress("0x"+strings.Repeat("Ab", 20)))
	})

	t.Run("missing prefix", func(t *testing.T) {
		require.ErrorIs(t, ValidateAddress(strings.Repeat("ab", 20)), ErrInvalidAddress)
	})

	t.Run("wrong length", func(t *testing.T) {
		require.ErrorIs(t, ValidateAddress("0xabcd"), ErrInvalidAddress)
	})

	t.Run("non-hex characters", func(t *testing.T) {
		require.ErrorIs(t, ValidateAddress("0x"+strings.Repeat("zg", 20)), ErrInvalidAddress)
	})
}

func TestNormalizeAddress(t *testing.T) {
	t.Run("lowercases", func(t *testing.T) {
		got, err := NormalizeAddress("0x" + strings.Repeat("AB", 20))
		require.NoError(t, err)
		require.Equal(t, "0x"+strings.Repeat("ab", 20), got)
	})

	t.Run("rejects invalid", func(t *testing.T) {
		_, err := NormalizeAddress("nope")
		require.ErrorIs(t, err, ErrInvalidAddress)
	})
}

func TestIsHash32(t *testing.T) {
	require.True(t, IsHash32(ZeroHash32))
	require.True(t, IsHash32("0x"+strings.Repeat("Ab", 32)))
	require.False(t, IsHash32(""))
	require.False(t, IsHash32("0x1234"))
	require.False(t, IsHash32(strings.Repeat("ab", 33)))
	require.False(t, IsHash32("0x"+strings.Repeat("zz", 32)))
}
