package codec

import (
	"sort"
	"strconv"
	"strings"

	"github.com/techno-hippies/dotheaven-sub003/types"
)

// Tag commitment layout: up to 16 identifiers stored as consecutive
// big-endian 16-bit slots inside one 32-byte word, unused trailing slots
// zero. The same bytes32 field may instead carry an opaque keccak
// commitment; the wire format cannot distinguish the two, so UnpackIDs
// on an opaque hash produces garbage and callers must know which
// interpretation applies.
const (
	// MaxTagIDs is the number of id slots in the packed word.
	MaxTagIDs = 16

	// MinTagID and MaxTagID bound a valid identifier.
	MinTagID = 1
	MaxTagID = 0xFFFF
)

// ParseIDsCSV parses a comma-separated id list: tokens are trimmed, kept
// only if they parse to an integer in [1, 0xFFFF], deduplicated, sorted
// ascending and truncated to the first 16.
func ParseIDsCSV(csv string) []uint16 {
	var ids []uint16
	for _, tok := range strings.Split(csv, ",") {
		n, err := strconv.Atoi(strings.TrimSpace(tok))
		if err != nil || n < MinTagID || n > MaxTagID {
			continue
		}
		ids = append(ids, uint16(n))
	}
	return normalizeIDs(ids)
}

// PackIDs packs up to 16 ids into one 32-byte word. Input is
// deduplicated, sorted ascending and truncated before writing, so the
// packed slots are always in ascending order. An empty list encodes to
// the all-zero sentinel.
func PackIDs(ids []uint16) types.Word {
	var w types.Word
	for i, id := range normalizeIDs(ids) {
		w[i*2] = byte(id >> 8)
		w[i*2+1] = byte(id)
	}
	return w
}

// UnpackIDs reads the 16 slots in order, omitting zero (unused) slots.
// For a word produced by PackIDs the result is the sorted unique id set.
func UnpackIDs(w types.Word) []uint16 {
	var ids []uint16
	for i := 0; i < MaxTagIDs; i++ {
		id := uint16(w[i*2])<<8 | uint16(w[i*2+1])
		if id == 0 {
			continue
		}
		ids = append(ids, id)
	}
	return ids
}

// ToTagCommit normalizes a raw skills/hobbies value to a bytes32 hex
// string. A value that is already well-formed bytes32 hex passes through
// verbatim as an opaque commitment; anything else is treated as a CSV of
// ids and packed.
func ToTagCommit(raw string) string {
	if types.IsHash32(raw) {
		return raw
	}
	return PackIDs(ParseIDsCSV(raw)).Hex()
}

// normalizeIDs filters to [MinTagID, MaxTagID], deduplicates, sorts
// ascending and truncates to MaxTagIDs.
func normalizeIDs(ids []uint16) []uint16 {
	seen := make(map[uint16]bool, len(ids))
	var out []uint16
	for _, id := range ids {
		if id < MinTagID || seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	if len(out) > MaxTagIDs {
		out = out[:MaxTagIDs]
	}
	return out
}
