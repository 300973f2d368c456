package value

import "strings"

// CareTypeConstraints is reported when a care type is not recognized.
var CareTypeConstraints = "Care type should be one of: " + strings.Join(labelsOf(CareTypes()), ", ")

// CareType is the kind of care delivered during a session.
type CareType int

// Known care types. The zero value is not a valid CareType.
const (
	CareMedication CareType = iota + 1
	CareHygiene
	CareMobility
	CareNutrition
	CareWoundCare
	CareTherapy
	CareCompanionship
	CareOther
)

var careTypeLabels = map[CareType]string{
	CareMedication:    "Medication",
	CareHygiene:       "Hygiene",
	CareMobility:      "Mobility",
	CareNutrition:     "Nutrition",
	CareWoundCare:     "Wound Care",
	CareTherapy:       "Therapy",
	CareCompanionship: "Companionship",
	CareOther:         "Other",
}

// CareTypes returns every valid care type in declaration order.
func CareTypes() []CareType {
	all := make([]CareType, 0, len(careTypeLabels))
	for c := CareMedication; c <= CareOther; c++ {
		all = append(all, c)
	}
	return all
}

// CareTypeOf resolves a label, ignoring case and separators ("wound-care" is Wound Care).
func CareTypeOf(raw string) (CareType, error) {
	key := normalizeLabel(raw)
	for _, c := range CareTypes() {
		if normalizeLabel(c.String()) == key {
			return c, nil
		}
	}
	return 0, invalid("care type", raw, CareTypeConstraints)
}

// IsValidCareType reports whether candidate names a known care type.
func IsValidCareType(candidate string) bool {
	_, err := CareTypeOf(candidate)
	return err == nil
}

func (c CareType) String() string {
	return careTypeLabels[c]
}
