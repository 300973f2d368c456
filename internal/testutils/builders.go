// Package testutils provides fixtures and builders shared by NoKnock tests.
// Builders start from valid defaults and panic on invalid overrides, so a
// broken fixture fails loudly at the line that built it.
package testutils

import (
	"fmt"

	"noknock/internal/model/caring"
	"noknock/internal/model/person"
	"noknock/internal/model/value"
)

// Default field values used by the builders.
const (
	DefaultPatientName = "Tan Ah Kow"
	DefaultWard        = "B2"
	DefaultIC          = "S1234567A"
	DefaultNokName     = "Tan Mei"
	DefaultPhone       = "98765432"
	DefaultRelation    = "Daughter"
	DefaultDate        = "9999-12-31"
	DefaultTime        = "09:30"
	DefaultCareType    = "Medication"
)

func must[T any](v T, err error) T {
	if err != nil {
		panic(fmt.Sprintf("testutils: invalid fixture value: %v", err))
	}
	return v
}

// PatientBuilder assembles person.Patient fixtures.
type PatientBuilder struct {
	name      string
	ward      string
	ic        string
	tags      []string
	nextOfKin []*NextOfKinBuilder
	sessions  []caring.Session
}

// NewPatientBuilder returns a builder for the default patient.
func NewPatientBuilder() *PatientBuilder {
	return &PatientBuilder{name: DefaultPatientName, ward: DefaultWard, ic: DefaultIC}
}

// PatientBuilderFrom seeds a builder with p's scalar fields and lists.
func PatientBuilderFrom(p person.Patient) *PatientBuilder {
	b := &PatientBuilder{name: p.Name().String(), ward: p.Ward().String(), ic: p.IC().String()}
	for _, t := range p.Tags() {
		b.tags = append(b.tags, t.String())
	}
	for _, nok := range p.NextOfKin() {
		b.nextOfKin = append(b.nextOfKin, NextOfKinBuilderFrom(nok))
	}
	b.sessions = p.CaringSessions()
	return b
}

// WithName sets the patient name.
func (b *PatientBuilder) WithName(name string) *PatientBuilder { b.name = name; return b }

// WithWard sets the ward.
func (b *PatientBuilder) WithWard(ward string) *PatientBuilder { b.ward = ward; return b }

// WithIC sets the identification number.
func (b *PatientBuilder) WithIC(ic string) *PatientBuilder { b.ic = ic; return b }

// WithTags replaces the tags.
func (b *PatientBuilder) WithTags(tags ...string) *PatientBuilder { b.tags = tags; return b }

// WithNextOfKin appends next-of-kin built from the given builders.
func (b *PatientBuilder) WithNextOfKin(noks ...*NextOfKinBuilder) *PatientBuilder {
	b.nextOfKin = append(b.nextOfKin, noks...)
	return b
}

// WithSessions appends caring sessions.
func (b *PatientBuilder) WithSessions(sessions ...caring.Session) *PatientBuilder {
	b.sessions = append(b.sessions, sessions...)
	return b
}

// Build returns the patient.
func (b *PatientBuilder) Build() person.Patient {
	tags := make([]value.Tag, len(b.tags))
	for i, t := range b.tags {
		tags[i] = must(value.NewTag(t))
	}
	p := person.NewPatient(
		must(value.NewName(b.name)),
		must(value.NewWard(b.ward)),
		must(value.NewIC(b.ic)),
		tags,
	)
	noks := make([]person.NextOfKin, len(b.nextOfKin))
	for i, nb := range b.nextOfKin {
		noks[i] = nb.Build()
	}
	return p.WithNextOfKinList(noks).WithCaringSessionList(b.sessions)
}

// NextOfKinBuilder assembles person.NextOfKin fixtures.
type NextOfKinBuilder struct {
	name         string
	phone        string
	relationship string
	patient      person.PatientRef
}

// NewNextOfKinBuilder returns a builder for the default next-of-kin.
func NewNextOfKinBuilder() *NextOfKinBuilder {
	return &NextOfKinBuilder{name: DefaultNokName, phone: DefaultPhone, relationship: DefaultRelation}
}

// NextOfKinBuilderFrom seeds a builder with n's fields.
func NextOfKinBuilderFrom(n person.NextOfKin) *NextOfKinBuilder {
	return &NextOfKinBuilder{
		name:         n.Name().String(),
		phone:        n.Phone().String(),
		relationship: n.Relationship().String(),
		patient:      n.Patient(),
	}
}

// WithName sets the name.
func (b *NextOfKinBuilder) WithName(name string) *NextOfKinBuilder { b.name = name; return b }

// WithPhone sets the phone number.
func (b *NextOfKinBuilder) WithPhone(phone string) *NextOfKinBuilder { b.phone = phone; return b }

// WithRelationship sets the relationship label.
func (b *NextOfKinBuilder) WithRelationship(rel string) *NextOfKinBuilder {
	b.relationship = rel
	return b
}

// WithPatient attaches the contact to patient.
func (b *NextOfKinBuilder) WithPatient(patient person.Patient) *NextOfKinBuilder {
	b.patient = patient.Ref()
	return b
}

// Build returns the next-of-kin.
func (b *NextOfKinBuilder) Build() person.NextOfKin {
	return person.NewNextOfKin(
		must(value.NewName(b.name)),
		b.patient,
		must(value.NewPhone(b.phone)),
		must(value.RelationshipOf(b.relationship)),
	)
}

// SessionBuilder assembles caring.Session fixtures.
type SessionBuilder struct {
	date     string
	time     string
	careType string
	status   string
	note     string
}

// NewSessionBuilder returns a builder for the default session.
func NewSessionBuilder() *SessionBuilder {
	return &SessionBuilder{date: DefaultDate, time: DefaultTime, careType: DefaultCareType}
}

// WithDate sets the date; past dates are accepted so fixtures can model history.
func (b *SessionBuilder) WithDate(date string) *SessionBuilder { b.date = date; return b }

// WithTime sets the time of day.
func (b *SessionBuilder) WithTime(t string) *SessionBuilder { b.time = t; return b }

// WithCareType sets the care type label.
func (b *SessionBuilder) WithCareType(c string) *SessionBuilder { b.careType = c; return b }

// WithStatus sets the status label.
func (b *SessionBuilder) WithStatus(s string) *SessionBuilder { b.status = s; return b }

// WithNote sets the note.
func (b *SessionBuilder) WithNote(n string) *SessionBuilder { b.note = n; return b }

// Build returns the session.
func (b *SessionBuilder) Build() caring.Session {
	s := caring.New(
		must(value.RestoreDate(b.date)),
		must(value.NewTime(b.time)),
		must(value.CareTypeOf(b.careType)),
		must(value.NewNote(b.note)),
	)
	if b.status != "" {
		s = s.WithStatus(must(value.SessionStatusOf(b.status)))
	}
	return s
}
