package value

import "strings"

// RelationshipConstraints is reported when a relationship label is not recognized.
var RelationshipConstraints = "Relationship should be one of: " + strings.Join(labelsOf(Relationships()), ", ")

// Relationship is how a next-of-kin is related to their patient.
type Relationship int

// Known relationships. The zero value is not a valid Relationship.
const (
	RelationshipDaughter Relationship = iota + 1
	RelationshipSon
	RelationshipSpouse
	RelationshipParent
	RelationshipSibling
	RelationshipGrandchild
	RelationshipGuardian
	RelationshipFriend
	RelationshipOther
)

var relationshipLabels = map[Relationship]string{
	RelationshipDaughter:   "Daughter",
	RelationshipSon:        "Son",
	RelationshipSpouse:     "Spouse",
	RelationshipParent:     "Parent",
	RelationshipSibling:    "Sibling",
	RelationshipGrandchild: "Grandchild",
	RelationshipGuardian:   "Guardian",
	RelationshipFriend:     "Friend",
	RelationshipOther:      "Other",
}

// Relationships returns every valid relationship in declaration order.
func Relationships() []Relationship {
	all := make([]Relationship, 0, len(relationshipLabels))
	for r := RelationshipDaughter; r <= RelationshipOther; r++ {
		all = append(all, r)
	}
	return all
}

// RelationshipOf resolves a label, ignoring case and separators.
func RelationshipOf(raw string) (Relationship, error) {
	key := normalizeLabel(raw)
	for _, r := range Relationships() {
		if normalizeLabel(r.String()) == key {
			return r, nil
		}
	}
	return 0, invalid("relationship", raw, RelationshipConstraints)
}

// IsValidRelationship reports whether candidate names a known relationship.
func IsValidRelationship(candidate string) bool {
	_, err := RelationshipOf(candidate)
	return err == nil
}

// String returns the canonical label, which RelationshipOf accepts back.
func (r Relationship) String() string {
	return relationshipLabels[r]
}

func labelsOf[T interface{ String() string }](items []T) []string {
	labels := make([]string, len(items))
	for i, item := range items {
		labels[i] = item.String()
	}
	return labels
}
