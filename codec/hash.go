// Package codec implements the profile record wire codec: keccak-backed
// normalizers, the packed-word schemes for languages, enums and tag
// commitments, the dynamic ABI tuple reader, and the encode orchestrator.
//
// The codec is pure and stateless. Decode paths never panic on malformed
// network input; encode paths are total and normalize instead of
// rejecting.
package codec

import (
	"encoding/hex"
	"fmt"
	"strings"

	"golang.org/x/crypto/sha3"

	"github.com/techno-hippies/dotheaven-sub003/types"
)

// SelectorSize is the size of an ABI function selector in bytes.
const SelectorSize = 4

// Keccak256 computes the keccak-256 hash of data.
func Keccak256(data []byte) []byte {
	h := sha3.NewLegacyKeccak256()
	h.Write(data)
	return h.Sum(nil)
}

// ToBytes32 normalizes an arbitrary string to a 0x-prefixed lowercase
// bytes32 hex string.
//
// A value that is already a well-formed bytes32 hex string passes
// through lowercased, so the function is idempotent. A blank value maps
// to the all-zero sentinel. Anything else is hashed with keccak-256
// after trimming surrounding whitespace.
func ToBytes32(value string) string {
	if types.IsHash32(value) {
		return strings.ToLower(value)
	}
	t := strings.TrimSpace(value)
	if t == "" {
		return types.ZeroHash32
	}
	return "0x" + hex.EncodeToString(Keccak256([]byte(t)))
}

// FunctionSelector returns the first 4 bytes of keccak256(signature),
// identifying a contract function without a full ABI schema.
func FunctionSelector(signature string) [SelectorSize]byte {
	var sel [SelectorSize]byte
	copy(sel[:], Keccak256([]byte(signature)))
	return sel
}

// ToBytes2CountryCode encodes a 2-letter country code as two raw ASCII
// bytes, big-endian ("US" -> "0x5553"). Invalid input maps to the
// all-zero sentinel.
func ToBytes2CountryCode(code string) string {
	c := strings.ToUpper(strings.TrimSpace(code))
	if len(c) != 2 || !isAlpha(c[0]) || !isAlpha(c[1]) {
		return types.ZeroBytes2
	}
	return fmt.Sprintf("0x%02x%02x", c[0], c[1])
}

// FromBytes2CountryCode decodes a bytes2 hex string back to an uppercase
// 2-letter country code.
//
// An all-zero value or non-alphabetic bytes decode to the empty string
// with a nil error (absent). A string of the wrong length is caller
// misuse and returns types.ErrInvalidLength.
func FromBytes2CountryCode(h string) (string, error) {
	t := strings.TrimPrefix(strings.TrimSpace(h), "0x")
	if len(t) != 4 {
		return "", fmt.Errorf("%w: expected 4 hex digits, got %d", types.ErrInvalidLength, len(t))
	}
	b, err := hex.DecodeString(t)
	if err != nil {
		return "", fmt.Errorf("%w: %v", types.ErrInvalidHexString, err)
	}
	return countryFromBytes(b[0], b[1]), nil
}

// countryFromBytes decodes two raw bytes to an uppercase country code,
// or "" if the pair is zero or not alphabetic.
func countryFromBytes(hi, lo byte) string {
	if hi == 0 && lo == 0 {
		return ""
	}
	if !isAlpha(hi) || !isAlpha(lo) {
		return ""
	}
	return strings.ToUpper(string([]byte{hi, lo}))
}

func isAlpha(c byte) bool {
	return (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z')
}
