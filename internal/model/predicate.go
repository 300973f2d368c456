package model

import (
	"strings"

	"noknock/internal/model/caring"
	"noknock/internal/model/person"
	"noknock/internal/model/value"
)

// PatientPredicate selects patients for the filtered patient list.
type PatientPredicate func(person.Patient) bool

// SessionPredicate selects sessions for the flattened session view.
type SessionPredicate func(person.Patient, caring.Session) bool

// ShowAllPatients accepts every patient.
func ShowAllPatients(person.Patient) bool { return true }

// ShowAllSessions accepts every session.
func ShowAllSessions(person.Patient, caring.Session) bool { return true }

// And combines predicates; all must accept. With no predicates it accepts everything.
func And(predicates ...PatientPredicate) PatientPredicate {
	return func(p person.Patient) bool {
		for _, pred := range predicates {
			if pred != nil && !pred(p) {
				return false
			}
		}
		return true
	}
}

// NameContainsKeywords matches patients whose name contains any keyword as a
// whole word, ignoring case.
func NameContainsKeywords(keywords []string) PatientPredicate {
	return func(p person.Patient) bool {
		return containsAnyWord(p.Name().String(), keywords)
	}
}

// NextOfKinNameContainsKeywords matches patients with at least one next-of-kin
// whose name contains any keyword as a whole word, ignoring case.
func NextOfKinNameContainsKeywords(keywords []string) PatientPredicate {
	return func(p person.Patient) bool {
		for _, nok := range p.NextOfKin() {
			if containsAnyWord(nok.Name().String(), keywords) {
				return true
			}
		}
		return false
	}
}

// SessionFilter narrows sessions by an inclusive date range and status. Zero
// fields do not constrain.
type SessionFilter struct {
	From   value.Date
	To     value.Date
	Status value.SessionStatus
}

// IsZero reports whether the filter accepts every session.
func (f SessionFilter) IsZero() bool {
	return f == SessionFilter{}
}

// Sessions returns the filter as a SessionPredicate.
func (f SessionFilter) Sessions() SessionPredicate {
	return func(_ person.Patient, s caring.Session) bool {
		return f.accepts(s)
	}
}

// Patients matches patients holding at least one session the filter accepts.
func (f SessionFilter) Patients() PatientPredicate {
	return func(p person.Patient) bool {
		for _, s := range p.CaringSessions() {
			if f.accepts(s) {
				return true
			}
		}
		return false
	}
}

func (f SessionFilter) accepts(s caring.Session) bool {
	if !f.From.IsZero() && s.Date().Before(f.From) {
		return false
	}
	if !f.To.IsZero() && s.Date().After(f.To) {
		return false
	}
	if f.Status != 0 && s.Status() != f.Status {
		return false
	}
	return true
}

func containsAnyWord(sentence string, keywords []string) bool {
	words := strings.Fields(sentence)
	for _, kw := range keywords {
		for _, w := range words {
			if strings.EqualFold(w, kw) {
				return true
			}
		}
	}
	return false
}
