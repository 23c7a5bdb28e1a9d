package types

import (
	"errors"
	"fmt"
	"strings"
)

// Validation limits for profile fields.
const (
	// MaxAge is the conventional upper bound for the age field.
	MaxAge = 120

	// MaxHeightCm is the upper bound for the height field.
	MaxHeightCm = 300

	// MaxLatE6 is the latitude bound in micro-degrees.
	MaxLatE6 = 90_000_000

	// MaxLngE6 is the longitude bound in micro-degrees.
	MaxLngE6 = 180_000_000

	// FriendsOpenToBits masks the valid bits of FriendsOpenToMask.
	FriendsOpenToBits = 0x07

	// AddressHexLen is the number of hex digits in an EVM address.
	AddressHexLen = 40
)

// Validation errors. These identify caller misuse, as opposed to
// malformed network input, which the codec absorbs without error.
var (
	// ErrInvalidHexString is returned when a hex string contains
	// non-hex characters.
	ErrInvalidHexString = errors.New("invalid hex string")

	// ErrInvalidLength is returned when a fixed-width input has the
	// wrong byte length.
	ErrInvalidLength = errors.New("invalid length")

	// ErrInvalidAddress is returned when an account address is not a
	// 0x-prefixed 40-hex-digit string.
	ErrInvalidAddress = errors.New("invalid address")
)

// ValidateAddress checks that addr is a 0x-prefixed 40-hex-digit EVM
// address.
func ValidateAddress(addr string) error {
	t := strings.TrimPrefix(addr, "0x")
	if len(addr) == len(t) {
		return fmt.Errorf("%w: missing 0x prefix: %q", ErrInvalidAddress, addr)
	}
	if len(t) != AddressHexLen {
		return fmt.Errorf("%w: expected %d hex digits, got %d", ErrInvalidAddress, AddressHexLen, len(t))
	}
	for _, c := range t {
		if !isHexDigit(byte(c)) {
			return fmt.Errorf("%w: non-hex character in %q", ErrInvalidAddress, addr)
		}
	}
	return nil
}

// NormalizeAddress lowercases a validated address. Returns an error if
// the address is invalid.
func NormalizeAddress(addr string) (string, error) {
	if err := ValidateAddress(addr); err != nil {
		return "", err
	}
	return strings.ToLower(addr), nil
}

// IsHash32 reports whether s is a well-formed 0x-prefixed 64-hex-digit
// string (case-insensitive).
func IsHash32(s string) bool {
	if len(s) != 2+WordSize*2 || s[0] != '0' || (s[1] != 'x' && s[1] != 'X') {
		return false
	}
	for i := 2; i < len(s); i++ {
		if !isHexDigit(s[i]) {
			return false
		}
	}
	return true
}

func isHexDigit(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}
