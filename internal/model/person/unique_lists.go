package person

import (
	"noknock/internal/model/caring"
	"noknock/internal/model/unique"
)

// UniquePatientList is an ordered patient collection keyed by patient identity.
type UniquePatientList = unique.List[Patient]

// NewUniquePatientList returns an empty patient list. Add and Set use
// IsSamePatient; Remove uses Equal.
func NewUniquePatientList() *UniquePatientList {
	return unique.New(Patient.IsSamePatient, Patient.Equal)
}

// NewUniqueNextOfKinList returns an empty next-of-kin list.
func NewUniqueNextOfKinList() *unique.List[NextOfKin] {
	return unique.New(NextOfKin.IsSameNextOfKin, NextOfKin.Equal)
}

// NewUniqueSessionList returns an empty session list. Sessions have no
// identity beyond their fields, so both predicates are structural equality.
func NewUniqueSessionList() *unique.List[caring.Session] {
	return unique.New(caring.Session.Equal, caring.Session.Equal)
}
