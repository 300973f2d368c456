package commands

import (
	"fmt"

	"noknock/internal/model/person"
)

// Messages shared across commands.
const (
	MsgInvalidPatientIndex   = "The patient index provided is invalid."
	MsgInvalidNokIndex       = "Next-of-kin index %d is out of range for patient %s."
	MsgInvalidSessionIndex   = "Session index %d is out of range for patient %s."
	MsgNotEdited             = "At least one field to edit must be provided."
	MsgDuplicatePatient      = "This patient already exists in NoKnock."
	MsgDuplicateNextOfKin    = "This next-of-kin already exists for patient %s."
	MsgDuplicateSession      = "This caring session already exists for patient %s."
	MsgPatientsListedOverall = "%d patients listed!"
)

// PatientAt resolves idx against the filtered patient list.
func PatientAt(m Model, idx Index) (person.Patient, error) {
	shown := m.FilteredPatients()
	if !idx.In(len(shown)) {
		return person.Patient{}, Fail(ErrInvalidIndex, MsgInvalidPatientIndex)
	}
	return shown[idx.ZeroBased()], nil
}

// PatientsListed formats the feedback for a filter change.
func PatientsListed(m Model) string {
	n := len(m.FilteredPatients())
	if n == 1 {
		return "1 patient listed!"
	}
	return fmt.Sprintf(MsgPatientsListedOverall, n)
}
