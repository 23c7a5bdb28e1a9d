package codec

import "fmt"

// Head layout descriptor for the getProfile return tuple.
//
// Word positions are not hardcoded in the decoder; each profile version
// carries a declarative table mapping field names to head word indices
// and decode kinds. A future contract version adds a new table instead
// of branching logic. Reinterpreting an existing slot is forbidden.

// FieldKind selects how a head word is decoded.
type FieldKind int

// Field kinds.
const (
	// KindUint decodes the word as an unsigned integer.
	KindUint FieldKind = iota

	// KindHash decodes the word as a bytes32 hash, empty when zero.
	KindHash

	// KindBytes2 decodes the high two bytes as a country code.
	KindBytes2

	// KindInt32 decodes the low 32 bits as a signed integer.
	KindInt32

	// KindLanguages decodes the word as the packed language table.
	KindLanguages

	// KindEnums decodes the word as the packed enum fields.
	KindEnums

	// KindString treats the word as a relative byte offset to a
	// dynamically-sized UTF-8 string in the tail region.
	KindString
)

// Head field names.
const (
	FieldProfileVersion    = "profileVersion"
	FieldNameHash          = "nameHash"
	FieldDisplayName       = "displayName"
	FieldAge               = "age"
	FieldHeightCm          = "heightCm"
	FieldNationality       = "nationality"
	FieldLanguagesPacked   = "languagesPacked"
	FieldFriendsOpenToMask = "friendsOpenToMask"
	FieldLocationCityID    = "locationCityId"
	FieldLocationLatE6     = "locationLatE6"
	FieldLocationLngE6     = "locationLngE6"
	FieldSchoolID          = "schoolId"
	FieldSkillsCommit      = "skillsCommit"
	FieldHobbiesCommit     = "hobbiesCommit"
	FieldPhotoURI          = "photoUri"
	FieldPackedEnums       = "packedEnums"
	FieldUpdatedAt         = "updatedAt"
)

// WordSpec places one field in the tuple head.
type WordSpec struct {
	Field string
	Word  int
	Kind  FieldKind
}

// HeadLayout is the versioned head description for one profile version.
type HeadLayout struct {
	// Version is the profileVersion this layout belongs to.
	Version uint32

	// HeadWords is the fixed number of words in the tuple head.
	HeadWords int

	// ExistsField names the field whose nonzero value marks profile
	// existence.
	ExistsField string

	// Specs lists every head field in word order.
	Specs []WordSpec
}

// CurrentProfileVersion is the layout version written by this client.
const CurrentProfileVersion = 1

// layoutV1 is the 17-word head of profileVersion 1.
var layoutV1 = HeadLayout{
	Version:     1,
	HeadWords:   17,
	ExistsField: FieldNameHash,
	Specs: []WordSpec{
		{FieldProfileVersion, 0, KindUint},
		{FieldNameHash, 1, KindHash},
		{FieldDisplayName, 2, KindString},
		{FieldAge, 3, KindUint},
		{FieldHeightCm, 4, KindUint},
		{FieldNationality, 5, KindBytes2},
		{FieldLanguagesPacked, 6, KindLanguages},
		{FieldFriendsOpenToMask, 7, KindUint},
		{FieldLocationCityID, 8, KindHash},
		{FieldLocationLatE6, 9, KindInt32},
		{FieldLocationLngE6, 10, KindInt32},
		{FieldSchoolID, 11, KindHash},
		{FieldSkillsCommit, 12, KindHash},
		{FieldHobbiesCommit, 13, KindHash},
		{FieldPhotoURI, 14, KindString},
		{FieldPackedEnums, 15, KindEnums},
		{FieldUpdatedAt, 16, KindUint},
	},
}

var layouts = map[uint32]HeadLayout{
	layoutV1.Version: layoutV1,
}

// LayoutForVersion returns the head layout for a profile version.
func LayoutForVersion(v uint32) (HeadLayout, bool) {
	l, ok := layouts[v]
	return l, ok
}

// CurrentLayout returns the layout written by this client.
func CurrentLayout() HeadLayout {
	return layouts[CurrentProfileVersion]
}

// WordIndex returns the head word index of a field, or -1 if the field
// is not part of this layout.
func (l HeadLayout) WordIndex(field string) int {
	for _, s := range l.Specs {
		if s.Field == field {
			return s.Word
		}
	}
	return -1
}

// Validate checks the layout for structural consistency: every word
// index in range, no duplicates, existence field present.
func (l HeadLayout) Validate() error {
	seen := make(map[int]string, len(l.Specs))
	existsFound := false
	for _, s := range l.Specs {
		if s.Word < 0 || s.Word >= l.HeadWords {
			return fmt.Errorf("layout v%d: field %s word %d out of range", l.Version, s.Field, s.Word)
		}
		if prev, dup := seen[s.Word]; dup {
			return fmt.Errorf("layout v%d: word %d claimed by both %s and %s", l.Version, s.Word, prev, s.Field)
		}
		seen[s.Word] = s.Field
		if s.Field == l.ExistsField {
			existsFound = true
		}
	}
	if !existsFound {
		return fmt.Errorf("layout v%d: existence field %s not present", l.Version, l.ExistsField)
	}
	return nil
}
