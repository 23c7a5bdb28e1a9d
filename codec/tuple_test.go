package codec

import (
	"encoding/binary"
	"encoding/hex"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/techno-hippies/dotheaven-sub003/types"
)

// testPayload assembles a getProfile return payload: offset word, the
// 17-word head, then the dynamic string tails for displayName and
// photoUri.
type testPayload struct {
	head        [17]types.Word
	displayName string
	photoURI    string
}

func newTestPayload() *testPayload {
	p := &testPayload{}
	p.setUint(FieldProfileVersion, 1)
	p.head[1] = wordFromHash(ToBytes32("alice"))
	return p
}

func (p *testPayload) setUint(field string, v uint64) {
	i := CurrentLayout().WordIndex(field)
	binary.BigEndian.PutUint64(p.head[i][24:], v)
}

func (p *testPayload) setWord(field string, w types.Word) {
	p.head[CurrentLayout().WordIndex(field)] = w
}

func (p *testPayload) hex() string {
	layout := CurrentLayout()
	headBytes := layout.HeadWords * types.WordSize

	pad32 := func(b []byte) []byte {
		n := (len(b) + types.WordSize - 1) / types.WordSize * types.WordSize
		return append(b, make([]byte, n-len(b))...)
	}
	tail := func(s string) []byte {
		var length types.Word
		binary.BigEndian.PutUint64(length[24:], uint64(len(s)))
		return append(length[:], pad32([]byte(s))...)
	}

	nameTail := tail(p.displayName)
	photoTail := tail(p.photoURI)

	p.setUint(FieldDisplayName, uint64(headBytes))
	p.setUint(FieldPhotoURI, uint64(headBytes+len(nameTail)))

	var buf []byte
	var offsetWord types.Word
	binary.BigEndian.PutUint64(offsetWord[24:], types.WordSize)
	buf = append(buf, offsetWord[:]...)
	for _, w := range p.head {
		buf = append(buf, w[:]...)
	}
	buf = append(buf, nameTail...)
	buf = append(buf, photoTail...)
	return "0x" + hex.EncodeToString(buf)
}

func wordFromHash(h string) types.Word {
	w, err := types.WordFromHex(h)
	if err != nil {
		panic(err)
	}
	return w
}

func TestDecodeProfile(t *testing.T) {
	t.Run("minimal existing profile", func(t *testing.T) {
		rec, ok := DecodeProfile(newTestPayload().hex())
		require.True(t, ok)
		require.Equal(t, uint32(1), rec.ProfileVersion)
		require.Equal(t, ToBytes32("alice"), rec.NameHash)
		require.Empty(t, rec.DisplayName)
		require.Empty(t, rec.LocationCityID)
		require.Zero(t, rec.Age)
	})

	t.Run("full record", func(t *testing.T) {
		p := newTestPayload()
		p.displayName = "Alice"
		p.photoURI = "ipfs://bafyprofilephoto"
		p.setUint(FieldAge, 29)
		p.setUint(FieldHeightCm, 172)
		p.setWord(FieldNationality, types.Word{0x55, 0x53}) // "US"
		p.setWord(FieldLanguagesPacked, PackLanguages([]types.LanguageEntry{
			{Code: "en", Proficiency: 7},
			{Code: "fr", Proficiency: 3},
		}))
		p.setUint(FieldFriendsOpenToMask, 5)
		p.setWord(FieldLocationCityID, wordFromHash(ToBytes32("paris")))
		p.setUint(FieldLocationLatE6, 48_856_600)
		p.setUint(FieldLocationLngE6, 2_352_200)
		p.setWord(FieldSkillsCommit, PackIDs([]uint16{3, 1}))
		p.setUint(FieldUpdatedAt, 1_700_000_000)

		var enums types.Word
		enums[types.WordSize-1-EnumGender] = 2
		enums[types.WordSize-1-EnumDiet] = 4
		p.setWord(FieldPackedEnums, enums)

		rec, ok := DecodeProfile(p.hex())
		require.True(t, ok)
		require.Equal(t, "Alice", rec.DisplayName)
		require.Equal(t, "ipfs://bafyprofilephoto", rec.PhotoURI)
		require.Equal(t, uint8(29), rec.Age)
		require.Equal(t, uint16(172), rec.HeightCm)
		require.Equal(t, "US", rec.Nationality)
		require.Equal(t, []types.LanguageEntry{
			{Code: "en", Proficiency: 7},
			{Code: "fr", Proficiency: 3},
		}, rec.Languages)
		require.Equal(t, uint8(5), rec.FriendsOpenToMask)
		require.True(t, rec.HasCity())
		require.Equal(t, int32(48_856_600), rec.LocationLatE6)
		require.Equal(t, int32(2_352_200), rec.LocationLngE6)
		require.Equal(t, []uint16{1, 3}, UnpackIDs(wordFromHash(rec.SkillsCommit)))
		require.Equal(t, uint8(2), rec.Enums.Gender)
		require.Equal(t, uint8(4), rec.Enums.Diet)
		require.Equal(t, uint64(1_700_000_000), rec.UpdatedAt)
	})

	t.Run("negative coordinates sign-extend", func(t *testing.T) {
		p := newTestPayload()
		p.setWord(FieldLocationCityID, wordFromHash(ToBytes32("buenos aires")))
		var lat types.Word
		binary.BigEndian.PutUint32(lat[28:], uint32(0xFFFFFFFF-34_603_700+1)) // -34603700 two's complement
		p.setWord(FieldLocationLatE6, lat)

		rec, ok := DecodeProfile(p.hex())
		require.True(t, ok)
		require.Equal(t, int32(-34_603_700), rec.LocationLatE6)
	})

	t.Run("zero existence marker decodes to absent", func(t *testing.T) {
		p := newTestPayload()
		p.setUint(FieldAge, 30) // other head content is irrelevant
		p.head[1] = types.Word{}
		rec, ok := DecodeProfile(p.hex())
		require.False(t, ok)
		require.Nil(t, rec)
	})

	t.Run("short buffer decodes to absent", func(t *testing.T) {
		full := newTestPayload().hex()
		for _, cut := range []int{2, 66, len(full) / 2} {
			rec, ok := DecodeProfile(full[:cut])
			require.False(t, ok, "cut at %d", cut)
			require.Nil(t, rec)
		}
	})

	t.Run("empty and malformed payloads decode to absent", func(t *testing.T) {
		for _, in := range []string{"", "0x", "0x123", "zzz", "0xgg"} {
			_, ok := DecodeProfile(in)
			require.False(t, ok, "payload %q", in)
		}
	})

	t.Run("huge tuple offset decodes to absent", func(t *testing.T) {
		w := strings.Repeat("ff", 32)
		_, ok := DecodeProfile("0x" + w + strings.Repeat("00", 17*32))
		require.False(t, ok)
	})

	t.Run("bad string offset empties only that field", func(t *testing.T) {
		p := newTestPayload()
		p.displayName = "Alice"
		p.setUint(FieldAge, 30)
		raw := p.hex()
		// Corrupt the photoUri offset word to point far past the buffer.
		i := 2 + (1+CurrentLayout().WordIndex(FieldPhotoURI))*64
		raw = raw[:i] + strings.Repeat("ff", 8) + raw[i+16:]

		rec, ok := DecodeProfile(raw)
		require.True(t, ok)
		require.Empty(t, rec.PhotoURI)
		require.Equal(t, "Alice", rec.DisplayName)
		require.Equal(t, uint8(30), rec.Age)
	})

	t.Run("wrapping string offset empties the field", func(t *testing.T) {
		p := newTestPayload()
		p.displayName = "Alice"
		raw := p.hex()
		// An offset that fits in 64 bits but makes start+32 wrap past
		// zero must be rejected, not sliced.
		i := 2 + (1+CurrentLayout().WordIndex(FieldDisplayName))*64
		raw = raw[:i+48] + "ffffffffffffffc0" + raw[i+64:]

		rec, ok := DecodeProfile(raw)
		require.True(t, ok)
		require.Empty(t, rec.DisplayName)
	})

	t.Run("wrapping string length empties the field", func(t *testing.T) {
		p := newTestPayload()
		p.displayName = "Bob"
		raw := p.hex()
		// Same wrap hazard on the length word of the tail.
		i := 2 + (1+CurrentLayout().HeadWords)*64
		raw = raw[:i+48] + "ffffffffffffffc0" + raw[i+64:]

		rec, ok := DecodeProfile(raw)
		require.True(t, ok)
		require.Empty(t, rec.DisplayName)
	})

	t.Run("string length past buffer empties the field", func(t *testing.T) {
		p := newTestPayload()
		p.displayName = "Bob"
		raw := p.hex()
		// Inflate the displayName length word.
		i := 2 + (1+CurrentLayout().HeadWords)*64
		raw = raw[:i+48] + "00000000ffffffff" + raw[i+64:]

		rec, ok := DecodeProfile(raw)
		require.True(t, ok)
		require.Empty(t, rec.DisplayName)
	})

	t.Run("invalid utf8 string decodes to empty", func(t *testing.T) {
		p := newTestPayload()
		p.displayName = string([]byte{0xff, 0xfe, 0xfd})
		rec, ok := DecodeProfile(p.hex())
		require.True(t, ok)
		require.Empty(t, rec.DisplayName)
	})

	t.Run("whitespace and prefix tolerated", func(t *testing.T) {
		raw := newTestPayload().hex()
		_, ok := DecodeProfile("  " + raw + "\n")
		require.True(t, ok)
	})
}

func TestEncodeDecodeEquivalence(t *testing.T) {
	// A normalized record encoded into a synthetic payload decodes back
	// to the same field values.
	p := newTestPayload()
	p.displayName = "Mika"
	p.setUint(FieldAge, 33)
	p.setWord(FieldNationality, types.Word{0x4a, 0x50}) // "JP"
	p.setWord(FieldHobbiesCommit, PackIDs([]uint16{9, 2}))

	rec, ok := DecodeProfile(p.hex())
	require.True(t, ok)

	in := BuildWireInput(rec)
	require.Equal(t, rec.NameHash, in.NameHash)
	require.Equal(t, "Mika", in.DisplayName)
	require.Equal(t, uint8(33), in.Age)
	require.Equal(t, "0x4a50", in.Nationality)
	require.Equal(t, rec.HobbiesCommit, in.HobbiesCommit)
}

func BenchmarkDecodeProfile(b *testing.B) {
	p := newTestPayload()
	p.displayName = "Alice"
	p.photoURI = "ipfs://bafyprofilephoto"
	raw := p.hex()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		DecodeProfile(raw)
	}
}
