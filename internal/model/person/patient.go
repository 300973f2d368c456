package person

import (
	"fmt"
	"strings"

	"noknock/internal/model/caring"
	"noknock/internal/model/value"
)

// Patient is an immutable snapshot of a patient record. Nested next-of-kin and
// session lists are never mutated in place; every With* method returns a new
// Patient carrying fresh slices.
type Patient struct {
	name      value.Name
	ward      value.Ward
	ic        value.IC
	tags      []value.Tag
	nextOfKin []NextOfKin
	sessions  []caring.Session
}

// NewPatient builds a patient with no next-of-kin and no sessions. Duplicate
// tags collapse into one.
func NewPatient(name value.Name, ward value.Ward, ic value.IC, tags []value.Tag) Patient {
	return Patient{name: name, ward: ward, ic: ic, tags: value.TagSet(tags)}
}

// PersonName implements Person.
func (p Patient) PersonName() value.Name { return p.name }

func (Patient) sealed() {}

// Name returns the patient's name.
func (p Patient) Name() value.Name { return p.name }

// Ward returns the patient's ward.
func (p Patient) Ward() value.Ward { return p.ward }

// IC returns the patient's identification number.
func (p Patient) IC() value.IC { return p.ic }

// Tags returns a copy of the patient's tags, sorted by name.
func (p Patient) Tags() []value.Tag {
	return append([]value.Tag(nil), p.tags...)
}

// NextOfKin returns a copy of the patient's next-of-kin in insertion order.
func (p Patient) NextOfKin() []NextOfKin {
	return append([]NextOfKin(nil), p.nextOfKin...)
}

// CaringSessions returns a copy of the patient's sessions in insertion order.
func (p Patient) CaringSessions() []caring.Session {
	return append([]caring.Session(nil), p.sessions...)
}

// Ref returns the identity other records use to point at this patient.
func (p Patient) Ref() PatientRef {
	return PatientRef{Name: p.name, Ward: p.ward, IC: p.ic}
}

// WithNextOfKinList returns a copy of p holding list. Each entry is re-attached
// to p so that a renamed patient keeps consistent next-of-kin references.
func (p Patient) WithNextOfKinList(list []NextOfKin) Patient {
	if len(list) == 0 {
		p.nextOfKin = nil
		return p
	}
	ref := p.Ref()
	rebound := make([]NextOfKin, len(list))
	for i, nok := range list {
		rebound[i] = nok.WithPatient(ref)
	}
	p.nextOfKin = rebound
	return p
}

// WithCaringSessionList returns a copy of p holding list.
func (p Patient) WithCaringSessionList(list []caring.Session) Patient {
	p.sessions = append([]caring.Session(nil), list...)
	return p
}

// WithNextOfKin returns a copy of p with nok appended. It fails with
// unique.ErrDuplicateEntity if an identical contact is already listed.
func (p Patient) WithNextOfKin(nok NextOfKin) (Patient, error) {
	list := NewUniqueNextOfKinList()
	if err := list.ReplaceAll(p.nextOfKin); err != nil {
		return p, err
	}
	if err := list.Add(nok.WithPatient(p.Ref())); err != nil {
		return p, err
	}
	return p.WithNextOfKinList(list.Items()), nil
}

// WithCaringSession returns a copy of p with s appended. An exact duplicate of
// an existing session is rejected with unique.ErrDuplicateEntity.
func (p Patient) WithCaringSession(s caring.Session) (Patient, error) {
	list := NewUniqueSessionList()
	if err := list.ReplaceAll(p.sessions); err != nil {
		return p, err
	}
	if err := list.Add(s); err != nil {
		return p, err
	}
	return p.WithCaringSessionList(list.Items()), nil
}

// IsSamePatient reports identity: same name, ward and IC.
func (p Patient) IsSamePatient(other Patient) bool {
	return p.name == other.name && p.ward == other.ward && p.ic == other.ic
}

// Equal reports full equality: identity plus tags. Nested lists do not take part.
func (p Patient) Equal(other Patient) bool {
	if !p.IsSamePatient(other) || len(p.tags) != len(other.tags) {
		return false
	}
	for i := range p.tags {
		if p.tags[i] != other.tags[i] {
			return false
		}
	}
	return true
}

// HasTag reports whether the patient carries tag.
func (p Patient) HasTag(tag value.Tag) bool {
	for _, t := range p.tags {
		if t == tag {
			return true
		}
	}
	return false
}

func (p Patient) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s; Ward: %s; IC: %s", p.name, p.ward, p.ic)
	if len(p.tags) > 0 {
		names := make([]string, len(p.tags))
		for i, t := range p.tags {
			names[i] = t.String()
		}
		fmt.Fprintf(&b, "; Tags: [%s]", strings.Join(names, ", "))
	}
	return b.String()
}
