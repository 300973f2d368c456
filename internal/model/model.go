// Package model owns the patient collection and the active display filters.
//
// The Model is the single mutation surface for patient data. Next-of-kin and
// caring sessions are never stored on their own: they are reached through
// their owning Patient, which is the unit of replacement. Filtered views and
// the flattened session projection are rebuilt eagerly after every mutation
// or filter change, before subscribers are notified.
//
// A Model is owned by a single goroutine; it does no locking.
package model

import (
	"noknock/internal/model/person"
)

// Model is the in-memory patient store.
type Model struct {
	patients      *person.UniquePatientList
	patientFilter PatientPredicate
	sessionFilter SessionPredicate

	filtered []person.Patient
	sessions []PatientCaringSession

	listeners map[int]func(Change)
	nextID    int
}

// New returns an empty Model showing all patients and all sessions.
func New() *Model {
	m := &Model{
		patients:      person.NewUniquePatientList(),
		patientFilter: ShowAllPatients,
		sessionFilter: ShowAllSessions,
		listeners:     make(map[int]func(Change)),
	}
	m.refresh()
	return m
}

// HasPatient reports whether a patient with the same identity as p exists.
func (m *Model) HasPatient(p person.Patient) bool {
	return m.patients.Contains(p)
}

// AddPatient appends p. It fails with unique.ErrDuplicateEntity on an identity clash.
func (m *Model) AddPatient(p person.Patient) error {
	if err := m.patients.Add(p); err != nil {
		return err
	}
	m.changed(PatientsAdded)
	return nil
}

// SetPatient replaces target with edited in place. It fails with
// unique.ErrNotFound if target is absent and unique.ErrDuplicateEntity if
// edited collides with another patient.
func (m *Model) SetPatient(target, edited person.Patient) error {
	if err := m.patients.Set(target, edited); err != nil {
		return err
	}
	m.changed(PatientsReplaced)
	return nil
}

// DeletePatient removes the patient structurally equal to p.
func (m *Model) DeletePatient(p person.Patient) error {
	if err := m.patients.Remove(p); err != nil {
		return err
	}
	m.changed(PatientsRemoved)
	return nil
}

// ReplacePatients swaps in a whole patient list, as done on load and clear.
// Nothing changes if patients holds an identity duplicate.
func (m *Model) ReplacePatients(patients []person.Patient) error {
	if err := m.patients.ReplaceAll(patients); err != nil {
		return err
	}
	m.changed(PatientsReset)
	return nil
}

// Patients returns every stored patient in storage order, ignoring filters.
func (m *Model) Patients() []person.Patient {
	return m.patients.Items()
}

// FilteredPatients returns the patients passing the active filter, in storage order.
func (m *Model) FilteredPatients() []person.Patient {
	return append([]person.Patient(nil), m.filtered...)
}

// SessionView returns the flattened (patient, session) pairs for the filtered
// patients whose sessions pass the session display filter.
func (m *Model) SessionView() []PatientCaringSession {
	return append([]PatientCaringSession(nil), m.sessions...)
}

// UpdateFilteredPatientList installs predicate as the patient filter. A nil
// predicate shows every patient.
func (m *Model) UpdateFilteredPatientList(predicate PatientPredicate) {
	if predicate == nil {
		predicate = ShowAllPatients
	}
	m.patientFilter = predicate
	m.changed(FilterChanged)
}

// SetSessionDisplayFilter installs predicate as the session display filter. A
// nil predicate shows every session.
func (m *Model) SetSessionDisplayFilter(predicate SessionPredicate) {
	if predicate == nil {
		predicate = ShowAllSessions
	}
	m.sessionFilter = predicate
	m.changed(FilterChanged)
}

// Subscribe registers fn to be called after every change. The returned
// function removes the subscription.
func (m *Model) Subscribe(fn func(Change)) (unsubscribe func()) {
	if fn == nil {
		panic("model: nil subscriber")
	}
	id := m.nextID
	m.nextID++
	m.listeners[id] = fn
	return func() { delete(m.listeners, id) }
}

func (m *Model) changed(kind ChangeKind) {
	m.refresh()
	c := Change{Kind: kind, Visible: len(m.filtered), Total: m.patients.Len()}
	for _, fn := range m.listeners {
		fn(c)
	}
}

func (m *Model) refresh() {
	all := m.patients.Items()
	filtered := make([]person.Patient, 0, len(all))
	for _, p := range all {
		if m.patientFilter(p) {
			filtered = append(filtered, p)
		}
	}
	m.filtered = filtered
	m.sessions = flatten(filtered, m.sessionFilter)
}
