package builtin

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"noknock/internal/commands"
	"noknock/internal/model"
	"noknock/internal/model/caring"
	"noknock/internal/model/person"
	"noknock/internal/model/unique"
	"noknock/internal/model/value"
	"noknock/internal/parser"
)

// AddSessionCommand schedules a caring session for a displayed patient.
type AddSessionCommand struct {
	PatientIndex commands.Index
	Session      caring.Session
}

// Execute appends the session and writes the patient back.
func (c AddSessionCommand) Execute(m commands.Model) (commands.Result, error) {
	commands.MustModel(m)
	target, err := commands.PatientAt(m, c.PatientIndex)
	if err != nil {
		return commands.Result{}, err
	}
	updated, err := target.WithCaringSession(c.Session)
	if err != nil {
		return commands.Result{}, commands.Fail(unique.ErrDuplicateEntity, commands.MsgDuplicateSession, target.Name())
	}
	if err := writeBack(m, target, updated); err != nil {
		return commands.Result{}, err
	}
	return commands.Feedback(fmt.Sprintf("Added caring session for %s: %s", target.Name(), c.Session)), nil
}

func addSessionDefinition(now func() time.Time) commands.Definition {
	const usage = "PATIENT_INDEX d/DATE time/TIME type/CARE_TYPE [notes/NOTE]"
	return commands.Definition{
		Word:        "add-session",
		Description: "Schedules a caring session for a patient",
		Usage:       usage,
		Examples: []commands.HelpExample{
			{Command: "add-session 1 d/2030-03-01 time/09:30 type/medication notes/after breakfast", Description: "Schedule a medication round"},
		},
		Notes: []string{
			"DATE is YYYY-MM-DD or DD-MM-YYYY and must not be in the past.",
			"CARE_TYPE is one of: " + joinLabels(value.CareTypes()),
		},
		Parse: func(args string) (commands.Command, error) {
			am := parser.Tokenize(args, parser.PrefixDate, parser.PrefixTime, parser.PrefixCareType, parser.PrefixNotes)
			if !am.HasAll(parser.PrefixDate, parser.PrefixTime, parser.PrefixCareType) {
				return nil, parser.InvalidFormat("add-session " + usage)
			}
			idx, err := parser.ParseIndices(am.Preamble(), 1, "add-session "+usage)
			if err != nil {
				return nil, err
			}
			if err := am.VerifyNoDuplicatePrefixesFor(parser.PrefixDate, parser.PrefixTime, parser.PrefixCareType, parser.PrefixNotes); err != nil {
				return nil, err
			}
			rawDate, _ := am.Value(parser.PrefixDate)
			date, err := parser.ParseDate(rawDate, now())
			if err != nil {
				return nil, err
			}
			rawTime, _ := am.Value(parser.PrefixTime)
			at, err := parser.ParseTime(rawTime)
			if err != nil {
				return nil, err
			}
			rawType, _ := am.Value(parser.PrefixCareType)
			careType, err := parser.ParseCareType(rawType)
			if err != nil {
				return nil, err
			}
			rawNote, _ := am.Value(parser.PrefixNotes)
			note, err := parser.ParseNote(rawNote)
			if err != nil {
				return nil, err
			}
			return AddSessionCommand{PatientIndex: idx[0], Session: caring.New(date, at, careType, note)}, nil
		},
	}
}

// EditSessionDescriptor holds the session fields to overwrite. Nil fields are kept.
type EditSessionDescriptor struct {
	Date     *value.Date
	Time     *value.Time
	CareType *value.CareType
	Note     *value.Note
	Status   *value.SessionStatus
}

// IsAnyFieldEdited reports whether at least one field is set.
func (d EditSessionDescriptor) IsAnyFieldEdited() bool {
	return d.Date != nil || d.Time != nil || d.CareType != nil || d.Note != nil || d.Status != nil
}

func (d EditSessionDescriptor) apply(s caring.Session) caring.Session {
	if d.Date != nil {
		s = s.WithDate(*d.Date)
	}
	if d.Time != nil {
		s = s.WithTime(*d.Time)
	}
	if d.CareType != nil {
		s = s.WithCareType(*d.CareType)
	}
	if d.Note != nil {
		s = s.WithNote(*d.Note)
	}
	if d.Status != nil {
		s = s.WithStatus(*d.Status)
	}
	return s
}

// EditSessionCommand overwrites fields of one of a patient's sessions in place.
type EditSessionCommand struct {
	PatientIndex commands.Index
	SessionIndex commands.Index
	Descriptor   EditSessionDescriptor
}

// Execute replaces the session and writes the patient back.
func (c EditSessionCommand) Execute(m commands.Model) (commands.Result, error) {
	commands.MustModel(m)
	if !c.Descriptor.IsAnyFieldEdited() {
		return commands.Result{}, commands.Fail(commands.ErrNoFieldsEdited, commands.MsgNotEdited)
	}
	target, sessions, err := sessionsOf(m, c.PatientIndex, c.SessionIndex)
	if err != nil {
		return commands.Result{}, err
	}
	old := sessions[c.SessionIndex.ZeroBased()]
	edited := c.Descriptor.apply(old)

	list := person.NewUniqueSessionList()
	if err := list.ReplaceAll(sessions); err != nil {
		return commands.Result{}, commands.Fail(err, "Could not edit caring session: %v", err)
	}
	if err := list.Set(old, edited); err != nil {
		return commands.Result{}, commands.Fail(unique.ErrDuplicateEntity, commands.MsgDuplicateSession, target.Name())
	}
	if err := writeBack(m, target, target.WithCaringSessionList(list.Items())); err != nil {
		return commands.Result{}, err
	}
	return commands.Feedback(fmt.Sprintf("Edited caring session for %s: %s", target.Name(), edited)), nil
}

func editSessionDefinition(now func() time.Time) commands.Definition {
	const usage = "PATIENT_INDEX SESSION_INDEX [d/DATE] [time/TIME] [type/CARE_TYPE] [notes/NOTE] [status/STATUS]"
	return commands.Definition{
		Word:        "edit-session",
		Description: "Edits a caring session of a patient",
		Usage:       usage,
		Examples: []commands.HelpExample{
			{Command: "edit-session 1 2 status/completed", Description: "Mark patient 1's second session as done"},
		},
		Notes: []string{"STATUS is one of: " + joinLabels(value.SessionStatuses())},
		Parse: func(args string) (commands.Command, error) {
			prefixes := []parser.Prefix{parser.PrefixDate, parser.PrefixTime, parser.PrefixCareType, parser.PrefixNotes, parser.PrefixStatus}
			am := parser.Tokenize(args, prefixes...)
			idx, err := parser.ParseIndices(am.Preamble(), 2, "edit-session "+usage)
			if err != nil {
				return nil, err
			}
			if err := am.VerifyNoDuplicatePrefixesFor(prefixes...); err != nil {
				return nil, err
			}
			var d EditSessionDescriptor
			if raw, ok := am.Value(parser.PrefixDate); ok {
				date, err := parser.ParseDate(raw, now())
				if err != nil {
					return nil, err
				}
				d.Date = &date
			}
			if raw, ok := am.Value(parser.PrefixTime); ok {
				at, err := parser.ParseTime(raw)
				if err != nil {
					return nil, err
				}
				d.Time = &at
			}
			if raw, ok := am.Value(parser.PrefixCareType); ok {
				careType, err := parser.ParseCareType(raw)
				if err != nil {
					return nil, err
				}
				d.CareType = &careType
			}
			if raw, ok := am.Value(parser.PrefixNotes); ok {
				note, err := parser.ParseNote(raw)
				if err != nil {
					return nil, err
				}
				d.Note = &note
			}
			if raw, ok := am.Value(parser.PrefixStatus); ok {
				status, err := parser.ParseStatus(raw)
				if err != nil {
					return nil, err
				}
				d.Status = &status
			}
			return EditSessionCommand{PatientIndex: idx[0], SessionIndex: idx[1], Descriptor: d}, nil
		},
	}
}

// DeleteSessionCommand removes one of a patient's sessions.
type DeleteSessionCommand struct {
	PatientIndex commands.Index
	SessionIndex commands.Index
}

// Execute removes the session and writes the patient back.
func (c DeleteSessionCommand) Execute(m commands.Model) (commands.Result, error) {
	commands.MustModel(m)
	target, sessions, err := sessionsOf(m, c.PatientIndex, c.SessionIndex)
	if err != nil {
		return commands.Result{}, err
	}
	removed := sessions[c.SessionIndex.ZeroBased()]
	remaining := slices.Delete(sessions, c.SessionIndex.ZeroBased(), c.SessionIndex.OneBased())
	if err := writeBack(m, target, target.WithCaringSessionList(remaining)); err != nil {
		return commands.Result{}, err
	}
	return commands.Feedback(fmt.Sprintf("Deleted caring session for %s: %s", target.Name(), removed)), nil
}

func deleteSessionDefinition() commands.Definition {
	const usage = "PATIENT_INDEX SESSION_INDEX"
	return commands.Definition{
		Word:        "delete-session",
		Description: "Deletes a caring session from a patient",
		Usage:       usage,
		Examples:    []commands.HelpExample{{Command: "delete-session 1 2", Description: "Delete patient 1's second session"}},
		Parse: func(args string) (commands.Command, error) {
			idx, err := parser.ParseIndices(args, 2, "delete-session "+usage)
			if err != nil {
				return nil, err
			}
			return DeleteSessionCommand{PatientIndex: idx[0], SessionIndex: idx[1]}, nil
		},
	}
}

// ListSessionsCommand filters the session view by date range and status, and
// narrows the patient list to patients holding a matching session. An empty
// filter shows everything.
type ListSessionsCommand struct {
	Filter model.SessionFilter
}

// Execute installs both filters.
func (c ListSessionsCommand) Execute(m commands.Model) (commands.Result, error) {
	commands.MustModel(m)
	if c.Filter.IsZero() {
		m.SetSessionDisplayFilter(model.ShowAllSessions)
		m.UpdateFilteredPatientList(model.ShowAllPatients)
	} else {
		m.SetSessionDisplayFilter(c.Filter.Sessions())
		m.UpdateFilteredPatientList(c.Filter.Patients())
	}
	n := len(m.SessionView())
	if n == 1 {
		return commands.Feedback("1 caring session listed!"), nil
	}
	return commands.Feedback(fmt.Sprintf("%d caring sessions listed!", n)), nil
}

func listSessionsDefinition() commands.Definition {
	const usage = "[from/DATE] [to/DATE] [status/STATUS]"
	return commands.Definition{
		Word:        "list-sessions",
		Description: "Lists caring sessions, optionally within a date range or with a status",
		Usage:       usage,
		Examples: []commands.HelpExample{
			{Command: "list-sessions from/2030-01-01 to/2030-01-31 status/scheduled", Description: "Sessions still to do in January"},
		},
		Notes: []string{"Range bounds are inclusive and may lie in the past."},
		Parse: func(args string) (commands.Command, error) {
			prefixes := []parser.Prefix{parser.PrefixFrom, parser.PrefixTo, parser.PrefixStatus}
			am := parser.Tokenize(args, prefixes...)
			if am.Preamble() != "" {
				return nil, parser.InvalidFormat("list-sessions " + usage)
			}
			if err := am.VerifyNoDuplicatePrefixesFor(prefixes...); err != nil {
				return nil, err
			}
			var f model.SessionFilter
			var err error
			if raw, ok := am.Value(parser.PrefixFrom); ok {
				if f.From, err = parser.ParseFilterDate(raw); err != nil {
					return nil, err
				}
			}
			if raw, ok := am.Value(parser.PrefixTo); ok {
				if f.To, err = parser.ParseFilterDate(raw); err != nil {
					return nil, err
				}
			}
			if !f.From.IsZero() && !f.To.IsZero() && f.From.After(f.To) {
				return nil, &parser.ParseError{Kind: parser.ErrParse, Message: "from/ date must not be after to/ date"}
			}
			if raw, ok := am.Value(parser.PrefixStatus); ok {
				if f.Status, err = parser.ParseStatus(raw); err != nil {
					return nil, err
				}
			}
			return ListSessionsCommand{Filter: f}, nil
		},
	}
}

func sessionsOf(m commands.Model, patientIdx, sessionIdx commands.Index) (person.Patient, []caring.Session, error) {
	target, err := commands.PatientAt(m, patientIdx)
	if err != nil {
		return person.Patient{}, nil, err
	}
	sessions := target.CaringSessions()
	if !sessionIdx.In(len(sessions)) {
		return person.Patient{}, nil, commands.Fail(commands.ErrInvalidNestedIndex,
			commands.MsgInvalidSessionIndex, sessionIdx.OneBased(), target.Name())
	}
	return target, sessions, nil
}

func joinLabels[T fmt.Stringer](items []T) string {
	labels := make([]string, len(items))
	for i, item := range items {
		labels[i] = item.String()
	}
	return strings.Join(labels, ", ")
}
