// Package person defines the Person variants (Patient and NextOfKin), their
// identity rules, and the unique patient collection.
//
// Person is a closed variant: only Patient and NextOfKin implement it. Each
// variant has its own identity predicate, dispatched by IsSamePerson.
package person

import "noknock/internal/model/value"

// Person is anything with a name that the address book tracks.
type Person interface {
	PersonName() value.Name
	sealed()
}

// IsSamePerson reports whether a and b are the same variant and share that
// variant's identity. Patients match on (name, ward, IC); next-of-kin match on
// all four of their fields.
func IsSamePerson(a, b Person) bool {
	switch x := a.(type) {
	case Patient:
		y, ok := b.(Patient)
		return ok && x.IsSamePatient(y)
	case NextOfKin:
		y, ok := b.(NextOfKin)
		return ok && x.IsSameNextOfKin(y)
	default:
		return false
	}
}
