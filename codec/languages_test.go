package codec

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/techno-hippies/dotheaven-sub003/types"
)

func TestPackLanguages(t *testing.T) {
	t.Run("slot bytes for first entry", func(t *testing.T) {
		w := PackLanguages([]types.LanguageEntry{{Code: "en", Proficiency: 7}})
		// 'E'=0x45, 'N'=0x4e, proficiency 7, pad 0 in the high slot.
		require.Equal(t, byte(0x45), w[0])
		require.Equal(t, byte(0x4e), w[1])
		require.Equal(t, byte(7), w[2])
		require.Equal(t, byte(0), w[3])
		for i := 4; i < types.WordSize; i++ {
			require.Zero(t, w[i])
		}
	})

	t.Run("slot follows list index, not validity order", func(t *testing.T) {
		w := PackLanguages([]types.LanguageEntry{
			{Code: "en", Proficiency: 7},
			{Code: "xx", Proficiency: 0}, // invalid proficiency
			{Code: "fr", Proficiency: 3},
		})
		// Slot 1 stays zero; "fr" lands in slot 2.
		require.Zero(t, w[4])
		require.Equal(t, byte(0x46), w[8]) // 'F'
		require.Equal(t, byte(0x52), w[9]) // 'R'
		require.Equal(t, byte(3), w[10])
	})

	t.Run("entries beyond eight are dropped", func(t *testing.T) {
		entries := make([]types.LanguageEntry, 10)
		for i := range entries {
			entries[i] = types.LanguageEntry{Code: "en", Proficiency: 1}
		}
		w := PackLanguages(entries)
		require.Len(t, UnpackLanguages(w), MaxLanguages)
	})

	t.Run("invalid codes leave slot empty", func(t *testing.T) {
		w := PackLanguages([]types.LanguageEntry{
			{Code: "e", Proficiency: 3},
			{Code: "eng", Proficiency: 3},
			{Code: "e1", Proficiency: 3},
		})
		require.True(t, w.IsZero())
	})
}

func TestUnpackLanguages(t *testing.T) {
	t.Run("round trip preserves order", func(t *testing.T) {
		entries := []types.LanguageEntry{
			{Code: "en", Proficiency: 7},
			{Code: "fr", Proficiency: 3},
		}
		require.Equal(t, entries, UnpackLanguages(PackLanguages(entries)))
	})

	t.Run("round trip full table", func(t *testing.T) {
		entries := []types.LanguageEntry{
			{Code: "en", Proficiency: 7},
			{Code: "fr", Proficiency: 3},
			{Code: "de", Proficiency: 1},
			{Code: "es", Proficiency: 2},
			{Code: "it", Proficiency: 4},
			{Code: "pt", Proficiency: 5},
			{Code: "ja", Proficiency: 6},
			{Code: "zh", Proficiency: 7},
		}
		require.Equal(t, entries, UnpackLanguages(PackLanguages(entries)))
	})

	t.Run("codes normalized to lowercase", func(t *testing.T) {
		got := UnpackLanguages(PackLanguages([]types.LanguageEntry{{Code: "EN", Proficiency: 2}}))
		require.Equal(t, []types.LanguageEntry{{Code: "en", Proficiency: 2}}, got)
	})

	t.Run("zero word decodes to empty list", func(t *testing.T) {
		require.Empty(t, UnpackLanguages(types.Word{}))
	})

	t.Run("malformed slots are omitted", func(t *testing.T) {
		var w types.Word
		// Slot 0: proficiency out of range.
		w[0], w[1], w[2] = 0x45, 0x4e, 9
		// Slot 1: non-alphabetic character codes.
		w[4], w[5], w[6] = 0x01, 0x02, 3
		// Slot 2: valid.
		w[8], w[9], w[10] = 0x44, 0x45, 2 // "DE"
		got := UnpackLanguages(w)
		require.Equal(t, []types.LanguageEntry{{Code: "de", Proficiency: 2}}, got)
	})

	t.Run("skipped slot does not shift output positions of later slots", func(t *testing.T) {
		w := PackLanguages([]types.LanguageEntry{
			{Code: "en", Proficiency: 7},
			{Code: "", Proficiency: 7},
			{Code: "fr", Proficiency: 3},
		})
		got := UnpackLanguages(w)
		require.Equal(t, []types.LanguageEntry{
			{Code: "en", Proficiency: 7},
			{Code: "fr", Proficiency: 3},
		}, got)
	})
}

func BenchmarkPackLanguages(b *testing.B) {
	entries := []types.LanguageEntry{
		{Code: "en", Proficiency: 7},
		{Code: "fr", Proficiency: 3},
		{Code: "de", Proficiency: 1},
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		PackLanguages(entries)
	}
}
