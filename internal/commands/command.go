// Package commands defines the command contract shared by every NoKnock
// operation, the user-facing failure taxonomy, and the keyword registry the
// parser dispatches through.
//
// A command is a fully validated request. Executing it against a Model either
// returns a Result or a *CommandError; side effects are applied only on the
// success path, so a failed command leaves the model unchanged.
package commands

import (
	"noknock/internal/model"
	"noknock/internal/model/person"
)

// Model is the mutation and query surface commands run against.
// *model.Model satisfies it.
type Model interface {
	HasPatient(p person.Patient) bool
	AddPatient(p person.Patient) error
	SetPatient(target, edited person.Patient) error
	DeletePatient(p person.Patient) error
	ReplacePatients(patients []person.Patient) error
	Patients() []person.Patient
	FilteredPatients() []person.Patient
	SessionView() []model.PatientCaringSession
	UpdateFilteredPatientList(predicate model.PatientPredicate)
	SetSessionDisplayFilter(predicate model.SessionPredicate)
}

// Command is a parsed, validated operation.
type Command interface {
	Execute(m Model) (Result, error)
}

// Result is the outcome of a successful command.
type Result struct {
	Feedback string // Message shown to the user
	ShowHelp bool   // Caller should display the command reference
	Exit     bool   // Caller should stop accepting input
}

// Feedback returns a plain Result carrying msg.
func Feedback(msg string) Result {
	return Result{Feedback: msg}
}

// MustModel panics on a nil model. A nil model is a programming error, not a
// user-facing failure.
func MustModel(m Model) {
	if m == nil {
		panic("commands: nil model")
	}
}
