package builtin

import (
	"fmt"

	"noknock/internal/commands"
	"noknock/internal/model"
	"noknock/internal/model/person"
	"noknock/internal/model/unique"
	"noknock/internal/model/value"
	"noknock/internal/parser"
)

// AddPatientCommand registers a new patient.
type AddPatientCommand struct {
	Patient person.Patient
}

// Execute appends the patient and resets the patient filter.
func (c AddPatientCommand) Execute(m commands.Model) (commands.Result, error) {
	commands.MustModel(m)
	if m.HasPatient(c.Patient) {
		return commands.Result{}, commands.Fail(unique.ErrDuplicateEntity, commands.MsgDuplicatePatient)
	}
	if err := m.AddPatient(c.Patient); err != nil {
		return commands.Result{}, commands.Fail(unique.ErrDuplicateEntity, commands.MsgDuplicatePatient)
	}
	m.UpdateFilteredPatientList(model.ShowAllPatients)
	return commands.Feedback(fmt.Sprintf("New patient added: %s", c.Patient)), nil
}

func addPatientDefinition() commands.Definition {
	const usage = "n/NAME w/WARD ic/IC [t/TAG]..."
	return commands.Definition{
		Word:        "add-patient",
		Description: "Adds a patient",
		Usage:       usage,
		Examples: []commands.HelpExample{
			{Command: "add-patient n/Tan Ah Kow w/B2 ic/S1234567A t/diabetic", Description: "Add a tagged patient"},
		},
		Parse: func(args string) (commands.Command, error) {
			am := parser.Tokenize(args, parser.PrefixName, parser.PrefixWard, parser.PrefixIC, parser.PrefixTag)
			if !am.HasAll(parser.PrefixName, parser.PrefixWard, parser.PrefixIC) || am.Preamble() != "" {
				return nil, parser.InvalidFormat("add-patient " + usage)
			}
			if err := am.VerifyNoDuplicatePrefixesFor(parser.PrefixName, parser.PrefixWard, parser.PrefixIC); err != nil {
				return nil, err
			}
			rawName, _ := am.Value(parser.PrefixName)
			name, err := parser.ParseName(rawName)
			if err != nil {
				return nil, err
			}
			rawWard, _ := am.Value(parser.PrefixWard)
			ward, err := parser.ParseWard(rawWard)
			if err != nil {
				return nil, err
			}
			rawIC, _ := am.Value(parser.PrefixIC)
			ic, err := parser.ParseIC(rawIC)
			if err != nil {
				return nil, err
			}
			tags, err := parser.ParseTags(am.AllValues(parser.PrefixTag))
			if err != nil {
				return nil, err
			}
			return AddPatientCommand{Patient: person.NewPatient(name, ward, ic, tags)}, nil
		},
	}
}

// EditPatientDescriptor holds the fields to overwrite. Nil fields are kept.
type EditPatientDescriptor struct {
	Name *value.Name
	Ward *value.Ward
	IC   *value.IC
	Tags *[]value.Tag // Non-nil replaces the tag set; an empty slice clears it
}

// IsAnyFieldEdited reports whether at least one field is set.
func (d EditPatientDescriptor) IsAnyFieldEdited() bool {
	return d.Name != nil || d.Ward != nil || d.IC != nil || d.Tags != nil
}

func (d EditPatientDescriptor) apply(p person.Patient) person.Patient {
	name, ward, ic, tags := p.Name(), p.Ward(), p.IC(), p.Tags()
	if d.Name != nil {
		name = *d.Name
	}
	if d.Ward != nil {
		ward = *d.Ward
	}
	if d.IC != nil {
		ic = *d.IC
	}
	if d.Tags != nil {
		tags = *d.Tags
	}
	return person.NewPatient(name, ward, ic, tags).
		WithNextOfKinList(p.NextOfKin()).
		WithCaringSessionList(p.CaringSessions())
}

// EditPatientCommand overwrites scalar fields of a displayed patient, keeping
// its next-of-kin and sessions.
type EditPatientCommand struct {
	Index      commands.Index
	Descriptor EditPatientDescriptor
}

// Execute replaces the patient in place and resets the patient filter.
func (c EditPatientCommand) Execute(m commands.Model) (commands.Result, error) {
	commands.MustModel(m)
	if !c.Descriptor.IsAnyFieldEdited() {
		return commands.Result{}, commands.Fail(commands.ErrNoFieldsEdited, commands.MsgNotEdited)
	}
	target, err := commands.PatientAt(m, c.Index)
	if err != nil {
		return commands.Result{}, err
	}
	edited := c.Descriptor.apply(target)
	if !target.IsSamePatient(edited) && m.HasPatient(edited) {
		return commands.Result{}, commands.Fail(unique.ErrDuplicateEntity, commands.MsgDuplicatePatient)
	}
	if err := m.SetPatient(target, edited); err != nil {
		return commands.Result{}, commands.Fail(err, "Could not edit patient: %v", err)
	}
	m.UpdateFilteredPatientList(model.ShowAllPatients)
	return commands.Feedback(fmt.Sprintf("Edited Patient: %s", edited)), nil
}

func editPatientDefinition() commands.Definition {
	const usage = "PATIENT_INDEX [n/NAME] [w/WARD] [ic/IC] [t/TAG]..."
	return commands.Definition{
		Word:        "edit-patient",
		Description: "Edits the patient at the given index in the displayed list",
		Usage:       usage,
		Examples: []commands.HelpExample{
			{Command: "edit-patient 1 w/C3", Description: "Move the first patient to ward C3"},
			{Command: "edit-patient 2 t/", Description: "Clear the second patient's tags"},
		},
		Notes: []string{"Existing values are overwritten. Tags are replaced as a whole."},
		Parse: func(args string) (commands.Command, error) {
			am := parser.Tokenize(args, parser.PrefixName, parser.PrefixWard, parser.PrefixIC, parser.PrefixTag)
			idx, err := parser.ParseIndex(am.Preamble())
			if err != nil {
				return nil, parser.InvalidFormat("edit-patient " + usage)
			}
			if err := am.VerifyNoDuplicatePrefixesFor(parser.PrefixName, parser.PrefixWard, parser.PrefixIC); err != nil {
				return nil, err
			}
			var d EditPatientDescriptor
			if raw, ok := am.Value(parser.PrefixName); ok {
				name, err := parser.ParseName(raw)
				if err != nil {
					return nil, err
				}
				d.Name = &name
			}
			if raw, ok := am.Value(parser.PrefixWard); ok {
				ward, err := parser.ParseWard(raw)
				if err != nil {
					return nil, err
				}
				d.Ward = &ward
			}
			if raw, ok := am.Value(parser.PrefixIC); ok {
				ic, err := parser.ParseIC(raw)
				if err != nil {
					return nil, err
				}
				d.IC = &ic
			}
			if am.Has(parser.PrefixTag) {
				tags, err := parseEditedTags(am.AllValues(parser.PrefixTag))
				if err != nil {
					return nil, err
				}
				d.Tags = &tags
			}
			return EditPatientCommand{Index: idx, Descriptor: d}, nil
		},
	}
}

// parseEditedTags treats a single empty t/ as "clear all tags".
func parseEditedTags(raws []string) ([]value.Tag, error) {
	if len(raws) == 1 && raws[0] == "" {
		return []value.Tag{}, nil
	}
	return parser.ParseTags(raws)
}

// DeletePatientCommand removes a displayed patient with everything it owns.
type DeletePatientCommand struct {
	Index commands.Index
}

// Execute removes the patient and resets the patient filter.
func (c DeletePatientCommand) Execute(m commands.Model) (commands.Result, error) {
	commands.MustModel(m)
	target, err := commands.PatientAt(m, c.Index)
	if err != nil {
		return commands.Result{}, err
	}
	if err := m.DeletePatient(target); err != nil {
		return commands.Result{}, commands.Fail(err, "Could not delete patient: %v", err)
	}
	m.UpdateFilteredPatientList(model.ShowAllPatients)
	return commands.Feedback(fmt.Sprintf("Deleted Patient: %s", target)), nil
}

func deletePatientDefinition() commands.Definition {
	const usage = "PATIENT_INDEX"
	return commands.Definition{
		Word:        "delete-patient",
		Description: "Deletes the patient at the given index, with its next-of-kin and sessions",
		Usage:       usage,
		Examples:    []commands.HelpExample{{Command: "delete-patient 1", Description: "Delete the first displayed patient"}},
		Parse: func(args string) (commands.Command, error) {
			idx, err := parser.ParseIndices(args, 1, "delete-patient "+usage)
			if err != nil {
				return nil, err
			}
			return DeletePatientCommand{Index: idx[0]}, nil
		},
	}
}

// FindPatientCommand narrows the patient list to names containing any keyword.
type FindPatientCommand struct {
	Keywords []string
}

// Execute installs the name filter.
func (c FindPatientCommand) Execute(m commands.Model) (commands.Result, error) {
	commands.MustModel(m)
	m.UpdateFilteredPatientList(model.NameContainsKeywords(c.Keywords))
	return commands.Feedback(commands.PatientsListed(m)), nil
}

func findPatientDefinition() commands.Definition {
	const usage = "KEYWORD [MORE_KEYWORDS]..."
	return commands.Definition{
		Word:        "find-patient",
		Description: "Finds patients whose name contains any of the keywords",
		Usage:       usage,
		Examples:    []commands.HelpExample{{Command: "find-patient tan lim", Description: "Patients named Tan or Lim"}},
		Notes:       []string{"Keywords match whole words, ignoring case."},
		Parse: func(args string) (commands.Command, error) {
			kws, err := parser.ParseKeywords(args, "find-patient "+usage)
			if err != nil {
				return nil, err
			}
			return FindPatientCommand{Keywords: kws}, nil
		},
	}
}

// FindPatientByNextOfKinCommand narrows the patient list to patients with a
// next-of-kin whose name contains any keyword.
type FindPatientByNextOfKinCommand struct {
	Keywords []string
}

// Execute installs the next-of-kin name filter.
func (c FindPatientByNextOfKinCommand) Execute(m commands.Model) (commands.Result, error) {
	commands.MustModel(m)
	m.UpdateFilteredPatientList(model.NextOfKinNameContainsKeywords(c.Keywords))
	return commands.Feedback(commands.PatientsListed(m)), nil
}

func findByNextOfKinDefinition() commands.Definition {
	const usage = "KEYWORD [MORE_KEYWORDS]..."
	return commands.Definition{
		Word:        "find-by-nok",
		Description: "Finds patients with a next-of-kin whose name contains any of the keywords",
		Usage:       usage,
		Examples:    []commands.HelpExample{{Command: "find-by-nok mei", Description: "Patients with a contact named Mei"}},
		Parse: func(args string) (commands.Command, error) {
			kws, err := parser.ParseKeywords(args, "find-by-nok "+usage)
			if err != nil {
				return nil, err
			}
			return FindPatientByNextOfKinCommand{Keywords: kws}, nil
		},
	}
}

// ListPatientsCommand shows every patient and every session.
type ListPatientsCommand struct{}

// Execute resets both filters.
func (ListPatientsCommand) Execute(m commands.Model) (commands.Result, error) {
	commands.MustModel(m)
	m.SetSessionDisplayFilter(model.ShowAllSessions)
	m.UpdateFilteredPatientList(model.ShowAllPatients)
	return commands.Feedback("Listed all patients"), nil
}

func listPatientsDefinition() commands.Definition {
	return commands.Definition{
		Word:        "list-patients",
		Description: "Lists all patients and clears any filter",
		Parse:       noArgs(ListPatientsCommand{}),
	}
}
