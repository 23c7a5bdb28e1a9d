package codec

import (
	"encoding/hex"
	"strings"
	"unicode/utf8"

	"github.com/techno-hippies/dotheaven-sub003/types"
)

// DecodeProfile decodes the raw return data of a getProfile view call
// into a ProfileRecord.
//
// The payload is a 0x-prefixed hex string: word 0 holds the byte offset
// of the tuple head, followed by a fixed-size head (see HeadLayout) and
// the dynamic string tails it references. Decoding is total over the
// input bytes and never panics:
//
//   - a structural violation at the tuple-head level (short buffer,
//     non-hex payload, zero existence marker) yields (nil, false);
//   - a bounds violation inside one dynamic string yields an empty value
//     for that field only, leaving sibling fields intact.
func DecodeProfile(payload string) (*types.ProfileRecord, bool) {
	buf, err := payloadBytes(payload)
	if err != nil || len(buf) < types.WordSize {
		return nil, false
	}

	base, ok := wordAt(buf, 0).Uint64()
	if !ok {
		return nil, false
	}

	// The layout is resolved after reading the version word, but the
	// head must be addressable first; all known versions share the
	// 17-word head size, so bounds-check against the current layout and
	// re-check once the version is known.
	layout := CurrentLayout()
	head, ok := readHead(buf, base, layout.HeadWords)
	if !ok {
		return nil, false
	}

	if version64, ok := head[layout.WordIndex(FieldProfileVersion)].Uint64(); ok {
		if l, known := LayoutForVersion(uint32(version64)); known {
			layout = l
			if head, ok = readHead(buf, base, layout.HeadWords); !ok {
				return nil, false
			}
		}
	}

	// Existence gate: a zero marker word means no profile, regardless
	// of any other head content.
	if head[layout.WordIndex(layout.ExistsField)].IsZero() {
		return nil, false
	}

	rec := &types.ProfileRecord{}
	for _, spec := range layout.Specs {
		decodeHeadField(rec, spec, head[spec.Word], buf, base)
	}
	return rec, true
}

// decodeHeadField decodes one head word into its record field.
func decodeHeadField(rec *types.ProfileRecord, spec WordSpec, w types.Word, buf []byte, base uint64) {
	switch spec.Field {
	case FieldProfileVersion:
		v, _ := w.Uint64()
		rec.ProfileVersion = uint32(v)
	case FieldNameHash:
		rec.NameHash = hashOrEmpty(w)
	case FieldDisplayName:
		rec.DisplayName = stringTail(buf, base, w)
	case FieldAge:
		rec.Age = w[types.WordSize-1]
	case FieldHeightCm:
		rec.HeightCm = uint16(w[types.WordSize-2])<<8 | uint16(w[types.WordSize-1])
	case FieldNationality:
		rec.Nationality = countryFromBytes(w[0], w[1])
	case FieldLanguagesPacked:
		rec.Languages = UnpackLanguages(w)
	case FieldFriendsOpenToMask:
		rec.FriendsOpenToMask = w[types.WordSize-1] & types.FriendsOpenToBits
	case FieldLocationCityID:
		rec.LocationCityID = hashOrEmpty(w)
	case FieldLocationLatE6:
		rec.LocationLatE6 = w.Int32()
	case FieldLocationLngE6:
		rec.LocationLngE6 = w.Int32()
	case FieldSchoolID:
		rec.SchoolID = hashOrEmpty(w)
	case FieldSkillsCommit:
		rec.SkillsCommit = hashOrEmpty(w)
	case FieldHobbiesCommit:
		rec.HobbiesCommit = hashOrEmpty(w)
	case FieldPhotoURI:
		rec.PhotoURI = stringTail(buf, base, w)
	case FieldPackedEnums:
		rec.Enums = UnpackEnums(w)
	case FieldUpdatedAt:
		rec.UpdatedAt, _ = w.Uint64()
	}
}

// payloadBytes strips the 0x prefix and decodes the hex payload.
func payloadBytes(payload string) ([]byte, error) {
	t := strings.TrimSpace(payload)
	t = strings.TrimPrefix(t, "0x")
	return hex.DecodeString(t)
}

// readHead copies the fixed head words starting at the tuple base.
// ok is false when the buffer cannot hold the full head.
func readHead(buf []byte, base uint64, words int) ([]types.Word, bool) {
	need := base + uint64(words)*types.WordSize
	if need < base || need > uint64(len(buf)) {
		return nil, false
	}
	head := make([]types.Word, words)
	for i := range head {
		head[i] = wordAt(buf, base+uint64(i)*types.WordSize)
	}
	return head, true
}

// wordAt reads the 32-byte word at byte offset off. The caller must have
// bounds-checked off already; wordAt only guards the final partial word.
func wordAt(buf []byte, off uint64) types.Word {
	var w types.Word
	if off+types.WordSize > uint64(len(buf)) {
		return w
	}
	copy(w[:], buf[off:off+types.WordSize])
	return w
}

// stringTail resolves a dynamic string referenced by a relative offset
// word. Any bounds violation yields the empty string; a malformed tail
// never fails the whole decode.
//
// Offset and length are capped at the buffer size before any addition so
// the arithmetic below cannot wrap. base itself was bounds-checked by
// readHead.
func stringTail(buf []byte, base uint64, offsetWord types.Word) string {
	bufLen := uint64(len(buf))
	off, ok := offsetWord.Uint64()
	if !ok || off > bufLen {
		return ""
	}
	start := base + off
	if start+types.WordSize > bufLen {
		return ""
	}
	length, ok := wordAt(buf, start).Uint64()
	if !ok || length > bufLen {
		return ""
	}
	dataStart := start + types.WordSize
	dataEnd := dataStart + length
	if dataEnd > bufLen {
		return ""
	}
	s := buf[dataStart:dataEnd]
	if !utf8.Valid(s) {
		return ""
	}
	return string(s)
}

// hashOrEmpty renders a hash word as lowercase hex, or "" when zero.
func hashOrEmpty(w types.Word) string {
	if w.IsZero() {
		return ""
	}
	return w.Hex()
}
