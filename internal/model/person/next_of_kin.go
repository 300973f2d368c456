package person

import (
	"fmt"

	"noknock/internal/model/value"
)

// PatientRef is the identity of the patient a NextOfKin is attached to. It is
// a reference, not ownership: the patient owns the next-of-kin list.
type PatientRef struct {
	Name value.Name
	Ward value.Ward
	IC   value.IC
}

func (r PatientRef) String() string {
	return fmt.Sprintf("%s (%s, %s)", r.Name, r.Ward, r.IC)
}

// NextOfKin is a contact person for a patient. Instances are immutable.
type NextOfKin struct {
	name         value.Name
	patient      PatientRef
	phone        value.Phone
	relationship value.Relationship
}

// NewNextOfKin builds a NextOfKin attached to patient.
func NewNextOfKin(name value.Name, patient PatientRef, phone value.Phone, relationship value.Relationship) NextOfKin {
	return NextOfKin{name: name, patient: patient, phone: phone, relationship: relationship}
}

// PersonName implements Person.
func (n NextOfKin) PersonName() value.Name { return n.name }

func (NextOfKin) sealed() {}

// Name returns the next-of-kin's name.
func (n NextOfKin) Name() value.Name { return n.name }

// Patient returns the reference to the patient this contact belongs to.
func (n NextOfKin) Patient() PatientRef { return n.patient }

// Phone returns the contact number.
func (n NextOfKin) Phone() value.Phone { return n.phone }

// Relationship returns how the contact relates to the patient.
func (n NextOfKin) Relationship() value.Relationship { return n.relationship }

// WithPatient returns a copy of n attached to patient.
func (n NextOfKin) WithPatient(patient PatientRef) NextOfKin {
	n.patient = patient
	return n
}

// WithName returns a copy of n with a new name.
func (n NextOfKin) WithName(name value.Name) NextOfKin {
	n.name = name
	return n
}

// WithPhone returns a copy of n with a new phone number.
func (n NextOfKin) WithPhone(phone value.Phone) NextOfKin {
	n.phone = phone
	return n
}

// WithRelationship returns a copy of n with a new relationship.
func (n NextOfKin) WithRelationship(relationship value.Relationship) NextOfKin {
	n.relationship = relationship
	return n
}

// IsSameNextOfKin compares name, patient, phone and relationship. Unlike
// patients, identity and equality coincide for next-of-kin.
func (n NextOfKin) IsSameNextOfKin(other NextOfKin) bool {
	return n == other
}

// Equal reports structural equality.
func (n NextOfKin) Equal(other NextOfKin) bool {
	return n == other
}

func (n NextOfKin) String() string {
	return fmt.Sprintf("%s; Phone: %s; Relationship: %s", n.name, n.phone, n.relationship)
}
