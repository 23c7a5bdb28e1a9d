// Package types provides common type definitions for the dotheaven
// profile registry client.
package types

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"strings"
)

const (
	// WordSize is the size of one ABI word in bytes.
	WordSize = 32

	// ZeroHash32 is the all-zero bytes32 sentinel used for absent hashes.
	ZeroHash32 = "0x0000000000000000000000000000000000000000000000000000000000000000"

	// ZeroBytes2 is the all-zero bytes2 sentinel used for an absent country code.
	ZeroBytes2 = "0x0000"
)

// Word is a single 32-byte big-endian ABI word.
type Word [WordSize]byte

// IsZero returns true if every byte of the word is zero.
func (w Word) IsZero() bool {
	for _, b := range w {
		if b != 0 {
			return false
		}
	}
	return true
}

// Hex returns the word as a 0x-prefixed lowercase hex string.
func (w Word) Hex() string {
	return "0x" + hex.EncodeToString(w[:])
}

// Uint64 returns the word interpreted as an unsigned integer.
// ok is false if the value does not fit in 64 bits.
func (w Word) Uint64() (uint64, bool) {
	for _, b := range w[:24] {
		if b != 0 {
			return 0, false
		}
	}
	return binary.BigEndian.Uint64(w[24:]), true
}

// Int32 returns the low 32 bits of the word as a signed two's-complement
// integer. Higher bytes are ignored.
func (w Word) Int32() int32 {
	return int32(binary.BigEndian.Uint32(w[28:]))
}

// WordFromHex parses a 0x-prefixed 64-hex-digit string into a Word.
// Returns ErrInvalidLength or ErrInvalidHexString on caller misuse.
func WordFromHex(s string) (Word, error) {
	var w Word
	t := strings.TrimPrefix(strings.TrimSpace(s), "0x")
	if len(t) != WordSize*2 {
		return w, fmt.Errorf("%w: expected %d hex digits, got %d", ErrInvalidLength, WordSize*2, len(t))
	}
	b, err := hex.DecodeString(t)
	if err != nil {
		return w, fmt.Errorf("%w: %v", ErrInvalidHexString, err)
	}
	copy(w[:], b)
	return w, nil
}

// LanguageEntry is one (code, proficiency) pair in a profile's language
// list. Code is a 2-letter lowercase language code; Proficiency is 1..7.
type LanguageEntry struct {
	Code        string `json:"code"`
	Proficiency uint8  `json:"proficiency"`
}

// ProfileEnums holds the 19 byte-sized enum fields of a profile.
// Field order matches the packed on-chain word (see the codec enum
// field indices).
type ProfileEnums struct {
	Gender             uint8 `json:"gender"`
	Relocate           uint8 `json:"relocate"`
	Degree             uint8 `json:"degree"`
	FieldBucket        uint8 `json:"field_bucket"`
	Profession         uint8 `json:"profession"`
	Industry           uint8 `json:"industry"`
	RelationshipStatus uint8 `json:"relationship_status"`
	Sexuality          uint8 `json:"sexuality"`
	Ethnicity          uint8 `json:"ethnicity"`
	DatingStyle        uint8 `json:"dating_style"`
	Children           uint8 `json:"children"`
	WantsChildren      uint8 `json:"wants_children"`
	Drinking           uint8 `json:"drinking"`
	Smoking            uint8 `json:"smoking"`
	Drugs              uint8 `json:"drugs"`
	LookingFor         uint8 `json:"looking_for"`
	Religion           uint8 `json:"religion"`
	Pets               uint8 `json:"pets"`
	Diet               uint8 `json:"diet"`
}

// ProfileRecord is the decoded, editable form of an on-chain profile.
//
// Hash-valued fields hold a 0x-prefixed lowercase 64-hex-digit string, or
// the empty string when unset. SkillsCommit and HobbiesCommit are either
// an opaque commitment hash or a transparent packed id-set; the wire
// format cannot distinguish the two (see codec.UnpackIDs).
type ProfileRecord struct {
	ProfileVersion uint32 `json:"profile_version"`

	DisplayName string `json:"display_name"`
	NameHash    string `json:"name_hash"`
	Age         uint8  `json:"age"`
	HeightCm    uint16 `json:"height_cm"`

	// Nationality is an uppercase 2-letter country code, or empty.
	Nationality string `json:"nationality"`

	// Languages preserves insertion order; slot position on the wire is
	// the original list index.
	Languages []LanguageEntry `json:"languages"`

	FriendsOpenToMask uint8 `json:"friends_open_to_mask"`

	LocationCityID string `json:"location_city_id"`
	// LocationLatE6 and LocationLngE6 are degrees scaled by 1e6. They are
	// meaningful only when LocationCityID is set; otherwise both are 0.
	LocationLatE6 int32 `json:"location_lat_e6"`
	LocationLngE6 int32 `json:"location_lng_e6"`

	SchoolID      string `json:"school_id"`
	SkillsCommit  string `json:"skills_commit"`
	HobbiesCommit string `json:"hobbies_commit"`

	PhotoURI string `json:"photo_uri"`

	Enums ProfileEnums `json:"enums"`

	// UpdatedAt is the unix timestamp of the last on-chain write.
	// It is set by the contract and ignored on encode.
	UpdatedAt uint64 `json:"updated_at"`
}

// HasCity returns true if the record carries a city reference, which
// gates the validity of the lat/lng pair.
func (r *ProfileRecord) HasCity() bool {
	return r.LocationCityID != "" && r.LocationCityID != ZeroHash32
}

// WireProfileInput is a ProfileRecord normalized into ABI-ready
// primitives for the external struct encoder and transaction builder.
// Every field is already clamped, hashed, or packed; nothing here can be
// rejected downstream.
type WireProfileInput struct {
	ProfileVersion uint32 `json:"profile_version"`

	DisplayName string `json:"display_name"`
	NameHash    string `json:"name_hash"` // bytes32
	Age         uint8  `json:"age"`
	HeightCm    uint16 `json:"height_cm"`

	Nationality     string `json:"nationality"`      // bytes2
	LanguagesPacked string `json:"languages_packed"` // uint256 as bytes32 hex

	FriendsOpenToMask uint8 `json:"friends_open_to_mask"`

	LocationCityID string `json:"location_city_id"` // bytes32
	LocationLatE6  int32  `json:"location_lat_e6"`
	LocationLngE6  int32  `json:"location_lng_e6"`

	SchoolID      string `json:"school_id"`      // bytes32
	SkillsCommit  string `json:"skills_commit"`  // bytes32
	HobbiesCommit string `json:"hobbies_commit"` // bytes32

	PhotoURI string `json:"photo_uri"`

	Enums ProfileEnums `json:"enums"`
}
