package codec

import (
	"strings"

	"github.com/techno-hippies/dotheaven-sub003/types"
)

// BuildWireInput normalizes an edited ProfileRecord into the ABI-ready
// write-call input. The function is deterministic and total: out-of-range
// numbers are clamped, malformed hash-like strings are hashed, and
// invalid entries are dropped; it never fails.
func BuildWireInput(rec *types.ProfileRecord) types.WireProfileInput {
	city := ToBytes32(rec.LocationCityID)
	hasCity := city != types.ZeroHash32

	// Coordinates are meaningful only alongside a city reference.
	var lat, lng int32
	if hasCity {
		lat = clampInt32(rec.LocationLatE6, -types.MaxLatE6, types.MaxLatE6)
		lng = clampInt32(rec.LocationLngE6, -types.MaxLngE6, types.MaxLngE6)
	}

	version := rec.ProfileVersion
	if _, known := LayoutForVersion(version); !known {
		version = CurrentProfileVersion
	}

	return types.WireProfileInput{
		ProfileVersion: version,

		DisplayName: strings.TrimSpace(rec.DisplayName),
		NameHash:    ToBytes32(rec.NameHash),
		Age:         clampUint8(rec.Age, types.MaxAge),
		HeightCm:    clampUint16(rec.HeightCm, types.MaxHeightCm),

		Nationality:     ToBytes2CountryCode(rec.Nationality),
		LanguagesPacked: PackLanguages(rec.Languages).Hex(),

		FriendsOpenToMask: rec.FriendsOpenToMask & types.FriendsOpenToBits,

		LocationCityID: city,
		LocationLatE6:  lat,
		LocationLngE6:  lng,

		SchoolID:      ToBytes32(rec.SchoolID),
		SkillsCommit:  ToTagCommit(rec.SkillsCommit),
		HobbiesCommit: ToTagCommit(rec.HobbiesCommit),

		PhotoURI: strings.TrimSpace(rec.PhotoURI),

		Enums: ClampEnums(rec.Enums),
	}
}

func clampUint8(v, max uint8) uint8 {
	if v > max {
		return max
	}
	return v
}

func clampUint16(v, max uint16) uint16 {
	if v > max {
		return max
	}
	return v
}

func clampInt32(v, min, max int32) int32 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
