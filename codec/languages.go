package codec

import (
	"strings"

	"github.com/techno-hippies/dotheaven-sub003/types"
)

// Language table layout: one 256-bit word holding 8 slots of 32 bits.
// Slot i (0-based, by list position) occupies bits [(7-i)*32, (7-i)*32+32),
// which in big-endian byte order is bytes [i*4, i*4+4). Each slot is
// (language:16 << 16) | (proficiency:8 << 8) | 0x00, where language is
// (upper(c1) << 8) | upper(c2).
const (
	// MaxLanguages is the number of language slots in the packed word.
	MaxLanguages = 8

	// MinProficiency and MaxProficiency bound the proficiency scale.
	MinProficiency = 1
	MaxProficiency = 7

	langSlotBytes = 4
)

// PackLanguages packs up to 8 language entries into one word.
//
// An entry is written to the slot matching its original list index only
// if its code is exactly 2 alphabetic characters and its proficiency is
// in 1..7. Invalid entries leave their slot zero; later entries are
// never shifted into vacated positions. Entries beyond index 8 are
// dropped.
func PackLanguages(entries []types.LanguageEntry) types.Word {
	var w types.Word
	for i, e := range entries {
		if i >= MaxLanguages {
			break
		}
		lang, ok := languageValue(e.Code)
		if !ok || e.Proficiency < MinProficiency || e.Proficiency > MaxProficiency {
			continue
		}
		off := i * langSlotBytes
		w[off] = byte(lang >> 8)
		w[off+1] = byte(lang)
		w[off+2] = e.Proficiency
	}
	return w
}

// UnpackLanguages decodes the packed language word back to an ordered
// entry list. A slot contributes an entry only if its language value is
// nonzero, its proficiency is in 1..7 and both characters decode to
// alphabetic ASCII; malformed slots are silently omitted. Codes are
// normalized to lowercase. Output preserves ascending slot order.
func UnpackLanguages(w types.Word) []types.LanguageEntry {
	var out []types.LanguageEntry
	for i := 0; i < MaxLanguages; i++ {
		off := i * langSlotBytes
		lang := uint16(w[off])<<8 | uint16(w[off+1])
		prof := w[off+2]
		if lang == 0 || prof < MinProficiency || prof > MaxProficiency {
			continue
		}
		hi, lo := byte(lang>>8), byte(lang)
		if !isAlpha(hi) || !isAlpha(lo) {
			continue
		}
		out = append(out, types.LanguageEntry{
			Code:        strings.ToLower(string([]byte{hi, lo})),
			Proficiency: prof,
		})
	}
	return out
}

// languageValue converts a 2-letter code to its packed 16-bit value.
func languageValue(code string) (uint16, bool) {
	if len(code) != 2 || !isAlpha(code[0]) || !isAlpha(code[1]) {
		return 0, false
	}
	c := strings.ToUpper(code)
	return uint16(c[0])<<8 | uint16(c[1]), true
}
