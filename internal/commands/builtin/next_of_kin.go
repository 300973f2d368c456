package builtin

import (
	"errors"
	"fmt"
	"slices"

	"noknock/internal/commands"
	"noknock/internal/model"
	"noknock/internal/model/person"
	"noknock/internal/model/unique"
	"noknock/internal/model/value"
	"noknock/internal/parser"
)

// AddNextOfKinCommand attaches a contact to a displayed patient.
type AddNextOfKinCommand struct {
	PatientIndex commands.Index
	Name         value.Name
	Phone        value.Phone
	Relationship value.Relationship
}

// Execute appends the contact and writes the patient back.
func (c AddNextOfKinCommand) Execute(m commands.Model) (commands.Result, error) {
	commands.MustModel(m)
	target, err := commands.PatientAt(m, c.PatientIndex)
	if err != nil {
		return commands.Result{}, err
	}
	nok := person.NewNextOfKin(c.Name, target.Ref(), c.Phone, c.Relationship)
	updated, err := target.WithNextOfKin(nok)
	if err != nil {
		return commands.Result{}, commands.Fail(unique.ErrDuplicateEntity, commands.MsgDuplicateNextOfKin, target.Name())
	}
	if err := writeBack(m, target, updated); err != nil {
		return commands.Result{}, err
	}
	return commands.Feedback(fmt.Sprintf("Added next-of-kin for %s: %s", target.Name(), nok)), nil
}

func addNextOfKinDefinition() commands.Definition {
	const usage = "PATIENT_INDEX n/NAME p/PHONE r/RELATIONSHIP"
	return commands.Definition{
		Word:        "add-nok",
		Description: "Adds a next-of-kin contact to a patient",
		Usage:       usage,
		Examples: []commands.HelpExample{
			{Command: "add-nok 1 n/Tan Mei p/98765432 r/Daughter", Description: "Add the first patient's daughter"},
		},
		Notes: []string{"Relationship is one of: " + relationshipLabels()},
		Parse: func(args string) (commands.Command, error) {
			am := parser.Tokenize(args, parser.PrefixName, parser.PrefixPhone, parser.PrefixRelationship)
			if !am.HasAll(parser.PrefixName, parser.PrefixPhone, parser.PrefixRelationship) {
				return nil, parser.InvalidFormat("add-nok " + usage)
			}
			idx, err := parser.ParseIndices(am.Preamble(), 1, "add-nok "+usage)
			if err != nil {
				return nil, err
			}
			if err := am.VerifyNoDuplicatePrefixesFor(parser.PrefixName, parser.PrefixPhone, parser.PrefixRelationship); err != nil {
				return nil, err
			}
			cmd := AddNextOfKinCommand{PatientIndex: idx[0]}
			rawName, _ := am.Value(parser.PrefixName)
			if cmd.Name, err = parser.ParseName(rawName); err != nil {
				return nil, err
			}
			rawPhone, _ := am.Value(parser.PrefixPhone)
			if cmd.Phone, err = parser.ParsePhone(rawPhone); err != nil {
				return nil, err
			}
			rawRel, _ := am.Value(parser.PrefixRelationship)
			if cmd.Relationship, err = parser.ParseRelationship(rawRel); err != nil {
				return nil, err
			}
			return cmd, nil
		},
	}
}

// EditNextOfKinDescriptor holds the contact fields to overwrite. Nil fields are kept.
type EditNextOfKinDescriptor struct {
	Name         *value.Name
	Phone        *value.Phone
	Relationship *value.Relationship
}

// IsAnyFieldEdited reports whether at least one field is set.
func (d EditNextOfKinDescriptor) IsAnyFieldEdited() bool {
	return d.Name != nil || d.Phone != nil || d.Relationship != nil
}

func (d EditNextOfKinDescriptor) apply(n person.NextOfKin) person.NextOfKin {
	if d.Name != nil {
		n = n.WithName(*d.Name)
	}
	if d.Phone != nil {
		n = n.WithPhone(*d.Phone)
	}
	if d.Relationship != nil {
		n = n.WithRelationship(*d.Relationship)
	}
	return n
}

// EditNextOfKinCommand overwrites fields of one of a patient's contacts in place.
type EditNextOfKinCommand struct {
	PatientIndex   commands.Index
	NextOfKinIndex commands.Index
	Descriptor     EditNextOfKinDescriptor
}

// Execute replaces the contact and writes the patient back.
func (c EditNextOfKinCommand) Execute(m commands.Model) (commands.Result, error) {
	commands.MustModel(m)
	if !c.Descriptor.IsAnyFieldEdited() {
		return commands.Result{}, commands.Fail(commands.ErrNoFieldsEdited, commands.MsgNotEdited)
	}
	target, err := commands.PatientAt(m, c.PatientIndex)
	if err != nil {
		return commands.Result{}, err
	}
	noks := target.NextOfKin()
	if !c.NextOfKinIndex.In(len(noks)) {
		return commands.Result{}, commands.Fail(commands.ErrInvalidNestedIndex,
			commands.MsgInvalidNokIndex, c.NextOfKinIndex.OneBased(), target.Name())
	}
	old := noks[c.NextOfKinIndex.ZeroBased()]
	edited := c.Descriptor.apply(old)

	list := person.NewUniqueNextOfKinList()
	if err := list.ReplaceAll(noks); err != nil {
		return commands.Result{}, commands.Fail(err, "Could not edit next-of-kin: %v", err)
	}
	if err := list.Set(old, edited); err != nil {
		return commands.Result{}, commands.Fail(unique.ErrDuplicateEntity, commands.MsgDuplicateNextOfKin, target.Name())
	}
	if err := writeBack(m, target, target.WithNextOfKinList(list.Items())); err != nil {
		return commands.Result{}, err
	}
	return commands.Feedback(fmt.Sprintf("Edited next-of-kin for %s: %s", target.Name(), edited)), nil
}

func editNextOfKinDefinition() commands.Definition {
	const usage = "PATIENT_INDEX NOK_INDEX [n/NAME] [p/PHONE] [r/RELATIONSHIP]"
	return commands.Definition{
		Word:        "edit-nok",
		Description: "Edits a next-of-kin contact of a patient",
		Usage:       usage,
		Examples:    []commands.HelpExample{{Command: "edit-nok 1 2 p/91234567", Description: "Change the phone of patient 1's second contact"}},
		Parse: func(args string) (commands.Command, error) {
			am := parser.Tokenize(args, parser.PrefixName, parser.PrefixPhone, parser.PrefixRelationship)
			idx, err := parser.ParseIndices(am.Preamble(), 2, "edit-nok "+usage)
			if err != nil {
				return nil, err
			}
			if err := am.VerifyNoDuplicatePrefixesFor(parser.PrefixName, parser.PrefixPhone, parser.PrefixRelationship); err != nil {
				return nil, err
			}
			var d EditNextOfKinDescriptor
			if raw, ok := am.Value(parser.PrefixName); ok {
				name, err := parser.ParseName(raw)
				if err != nil {
					return nil, err
				}
				d.Name = &name
			}
			if raw, ok := am.Value(parser.PrefixPhone); ok {
				phone, err := parser.ParsePhone(raw)
				if err != nil {
					return nil, err
				}
				d.Phone = &phone
			}
			if raw, ok := am.Value(parser.PrefixRelationship); ok {
				rel, err := parser.ParseRelationship(raw)
				if err != nil {
					return nil, err
				}
				d.Relationship = &rel
			}
			return EditNextOfKinCommand{PatientIndex: idx[0], NextOfKinIndex: idx[1], Descriptor: d}, nil
		},
	}
}

// DeleteNextOfKinCommand removes one of a patient's contacts.
type DeleteNextOfKinCommand struct {
	PatientIndex   commands.Index
	NextOfKinIndex commands.Index
}

// Execute removes the contact and writes the patient back.
func (c DeleteNextOfKinCommand) Execute(m commands.Model) (commands.Result, error) {
	commands.MustModel(m)
	target, err := commands.PatientAt(m, c.PatientIndex)
	if err != nil {
		return commands.Result{}, err
	}
	noks := target.NextOfKin()
	if !c.NextOfKinIndex.In(len(noks)) {
		return commands.Result{}, commands.Fail(commands.ErrInvalidNestedIndex,
			commands.MsgInvalidNokIndex, c.NextOfKinIndex.OneBased(), target.Name())
	}
	removed := noks[c.NextOfKinIndex.ZeroBased()]
	remaining := slices.Delete(noks, c.NextOfKinIndex.ZeroBased(), c.NextOfKinIndex.OneBased())
	if err := writeBack(m, target, target.WithNextOfKinList(remaining)); err != nil {
		return commands.Result{}, err
	}
	return commands.Feedback(fmt.Sprintf("Deleted next-of-kin for %s: %s", target.Name(), removed)), nil
}

func deleteNextOfKinDefinition() commands.Definition {
	const usage = "PATIENT_INDEX NOK_INDEX"
	return commands.Definition{
		Word:        "delete-nok",
		Description: "Deletes a next-of-kin contact from a patient",
		Usage:       usage,
		Examples:    []commands.HelpExample{{Command: "delete-nok 1 1", Description: "Delete patient 1's first contact"}},
		Parse: func(args string) (commands.Command, error) {
			idx, err := parser.ParseIndices(args, 2, "delete-nok "+usage)
			if err != nil {
				return nil, err
			}
			return DeleteNextOfKinCommand{PatientIndex: idx[0], NextOfKinIndex: idx[1]}, nil
		},
	}
}

// writeBack replaces target with updated in the model and resets the
// patient filter. Nested-list edits never change patient identity, so a
// failure here means the model changed underneath the command.
func writeBack(m commands.Model, target, updated person.Patient) error {
	if err := m.SetPatient(target, updated); err != nil {
		if errors.Is(err, unique.ErrDuplicateEntity) {
			return commands.Fail(err, commands.MsgDuplicatePatient)
		}
		return commands.Fail(err, "Could not update patient %s: %v", target.Name(), err)
	}
	m.UpdateFilteredPatientList(model.ShowAllPatients)
	return nil
}

func relationshipLabels() string {
	return joinLabels(value.Relationships())
}
