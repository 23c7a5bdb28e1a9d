package codec

import "github.com/techno-hippies/dotheaven-sub003/types"

// Packed enum word layout: 19 consecutive byte-wide fields, field i at
// bit offset i*8 from the least significant bit. The field order is
// fixed per profile version; changing it requires a new version, never a
// reinterpretation of existing slots.
//
// Only the read path touches the packed word. The write path clamps each
// field independently and hands scalar bytes to the struct encoder; this
// asymmetry mirrors the contract interface and must be preserved.
const (
	EnumGender = iota
	EnumRelocate
	EnumDegree
	EnumFieldBucket
	EnumProfession
	EnumIndustry
	EnumRelationshipStatus
	EnumSexuality
	EnumEthnicity
	EnumDatingStyle
	EnumChildren
	EnumWantsChildren
	EnumDrinking
	EnumSmoking
	EnumDrugs
	EnumLookingFor
	EnumReligion
	EnumPets
	EnumDiet

	// NumEnumFields is the number of byte fields in the packed word.
	NumEnumFields = 19
)

// enumMax holds the inclusive maximum for each enum field, indexed by
// field position. Values above the maximum are clamped, never rejected.
var enumMax = [NumEnumFields]uint8{
	EnumGender:             7,
	EnumRelocate:           3,
	EnumDegree:             9,
	EnumFieldBucket:        15,
	EnumProfession:         63,
	EnumIndustry:           31,
	EnumRelationshipStatus: 7,
	EnumSexuality:          9,
	EnumEthnicity:          15,
	EnumDatingStyle:        7,
	EnumChildren:           3,
	EnumWantsChildren:      3,
	EnumDrinking:           5,
	EnumSmoking:            5,
	EnumDrugs:              5,
	EnumLookingFor:         7,
	EnumReligion:           15,
	EnumPets:               9,
	EnumDiet:               7,
}

// EnumAt extracts the byte field at the given index from the packed
// word: (word >> (index*8)) & 0xFF. Out-of-range indices return 0.
func EnumAt(w types.Word, index int) uint8 {
	if index < 0 || index >= NumEnumFields {
		return 0
	}
	return w[types.WordSize-1-index]
}

// EnumMax returns the inclusive maximum for the enum field at index.
// Out-of-range indices return 0.
func EnumMax(index int) uint8 {
	if index < 0 || index >= NumEnumFields {
		return 0
	}
	return enumMax[index]
}

// ClampEnum clamps a value to the valid range of the enum field at
// index. Values are assumed non-negative.
func ClampEnum(index int, v uint8) uint8 {
	if m := EnumMax(index); v > m {
		return m
	}
	return v
}

// UnpackEnums reads all 19 enum fields from the packed word. Values are
// returned as stored; range enforcement belongs to the write path.
func UnpackEnums(w types.Word) types.ProfileEnums {
	return types.ProfileEnums{
		Gender:             EnumAt(w, EnumGender),
		Relocate:           EnumAt(w, EnumRelocate),
		Degree:             EnumAt(w, EnumDegree),
		FieldBucket:        EnumAt(w, EnumFieldBucket),
		Profession:         EnumAt(w, EnumProfession),
		Industry:           EnumAt(w, EnumIndustry),
		RelationshipStatus: EnumAt(w, EnumRelationshipStatus),
		Sexuality:          EnumAt(w, EnumSexuality),
		Ethnicity:          EnumAt(w, EnumEthnicity),
		DatingStyle:        EnumAt(w, EnumDatingStyle),
		Children:           EnumAt(w, EnumChildren),
		WantsChildren:      EnumAt(w, EnumWantsChildren),
		Drinking:           EnumAt(w, EnumDrinking),
		Smoking:            EnumAt(w, EnumSmoking),
		Drugs:              EnumAt(w, EnumDrugs),
		LookingFor:         EnumAt(w, EnumLookingFor),
		Religion:           EnumAt(w, EnumReligion),
		Pets:               EnumAt(w, EnumPets),
		Diet:               EnumAt(w, EnumDiet),
	}
}

// ClampEnums clamps every field of e to its documented range.
func ClampEnums(e types.ProfileEnums) types.ProfileEnums {
	return types.ProfileEnums{
		Gender:             ClampEnum(EnumGender, e.Gender),
		Relocate:           ClampEnum(EnumRelocate, e.Relocate),
		Degree:             ClampEnum(EnumDegree, e.Degree),
		FieldBucket:        ClampEnum(EnumFieldBucket, e.FieldBucket),
		Profession:         ClampEnum(EnumProfession, e.Profession),
		Industry:           ClampEnum(EnumIndustry, e.Industry),
		RelationshipStatus: ClampEnum(EnumRelationshipStatus, e.RelationshipStatus),
		Sexuality:          ClampEnum(EnumSexuality, e.Sexuality),
		Ethnicity:          ClampEnum(EnumEthnicity, e.Ethnicity),
		DatingStyle:        ClampEnum(EnumDatingStyle, e.DatingStyle),
		Children:           ClampEnum(EnumChildren, e.Children),
		WantsChildren:      ClampEnum(EnumWantsChildren, e.WantsChildren),
		Drinking:           ClampEnum(EnumDrinking, e.Drinking),
		Smoking:            ClampEnum(EnumSmoking, e.Smoking),
		Drugs:              ClampEnum(EnumDrugs, e.Drugs),
		LookingFor:         ClampEnum(EnumLookingFor, e.LookingFor),
		Religion:           ClampEnum(EnumReligion, e.Religion),
		Pets:               ClampEnum(EnumPets, e.Pets),
		Diet:               ClampEnum(EnumDiet, e.Diet),
	}
}
