package model

import (
	"noknock/internal/model/caring"
	"noknock/internal/model/person"
)

// PatientCaringSession pairs a patient with one of its sessions for
// cross-patient display. It is derived data and never stored.
type PatientCaringSession struct {
	Patient person.Patient
	Session caring.Session
	// PatientIndex and SessionIndex are the 1-based positions a user types
	// to address this session in commands.
	PatientIndex int
	SessionIndex int
}

func flatten(patients []person.Patient, keep SessionPredicate) []PatientCaringSession {
	var out []PatientCaringSession
	for pi, p := range patients {
		for si, s := range p.CaringSessions() {
			if !keep(p, s) {
				continue
			}
			out = append(out, PatientCaringSession{
				Patient:      p,
				Session:      s,
				PatientIndex: pi + 1,
				SessionIndex: si + 1,
			})
		}
	}
	return out
}
