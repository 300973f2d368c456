package builtin

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"noknock/internal/commands"
	"noknock/internal/model"
	"noknock/internal/model/unique"
	"noknock/internal/model/value"
	"noknock/internal/parser"
	"noknock/internal/testutils"
)

func TestAddPatient(t *testing.T) {
	h := newHarness(t)

	res := h.mustRun(t, "add-patient n/Tan Ah Kow w/B2 ic/S1234567A t/diabetic t/diabetic")
	assert.Equal(t, "New patient added: Tan Ah Kow; Ward: B2; IC: S1234567A; Tags: [diabetic]", res.Feedback)
	require.Len(t, h.model.Patients(), 1)
	assert.True(t, h.model.Patients()[0].Equal(testutils.NewPatientBuilder().WithTags("diabetic").Build()))

	_, err := h.run("add-patient n/Tan Ah Kow w/B2 ic/S1234567A")
	assert.ErrorIs(t, err, unique.ErrDuplicateEntity)
	assert.EqualError(t, err, commands.MsgDuplicatePatient)
	assert.Len(t, h.model.Patients(), 1)
}

func TestAddPatient_ResetsFilter(t *testing.T) {
	h := newHarness(t, testutils.Alice().Build(), testutils.Benson().Build())
	h.mustRun(t, "find-patient Alice")
	require.Len(t, h.model.FilteredPatients(), 1)

	h.mustRun(t, "add-patient n/Tan Ah Kow w/B2 ic/S1234567A")
	assert.Len(t, h.model.FilteredPatients(), 3)
}

func TestAddPatient_ParseErrors(t *testing.T) {
	h := newHarness(t)
	tests := []struct {
		name    string
		input   string
		wantErr error
		wantMsg string
	}{
		{"missing ic", "add-patient n/Tan w/B2", parser.ErrParse, "add-patient n/NAME w/WARD ic/IC [t/TAG]..."},
		{"preamble", "add-patient oops n/Tan w/B2 ic/S1234567A", parser.ErrParse, "Invalid command format!"},
		{"bad name", "add-patient n/T@n w/B2 ic/S1234567A", value.ErrValidation, value.NameConstraints},
		{"bad ward", "add-patient n/Tan w/b2 ic/S1234567A", value.ErrValidation, value.WardConstraints},
		{"bad ic", "add-patient n/Tan w/B2 ic/1234567", value.ErrValidation, value.ICConstraints},
		{"bad tag", "add-patient n/Tan w/B2 ic/S1234567A t/two words", value.ErrValidation, value.TagConstraints},
		{"duplicate prefix", "add-patient n/Tan n/Lim w/B2 ic/S1234567A", parser.ErrParse, "single-valued"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := h.run(tt.input)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Contains(t, err.Error(), tt.wantMsg)
			assert.Empty(t, h.model.Patients())
		})
	}
}

func TestEditPatient(t *testing.T) {
	nok := testutils.NewNextOfKinBuilder()
	session := testutils.NewSessionBuilder().Build()
	original := testutils.NewPatientBuilder().WithTags("diabetic").WithNextOfKin(nok).WithSessions(session).Build()
	h := newHarness(t, testutils.Alice().Build(), original)

	res := h.mustRun(t, "edit-patient 2 n/Tan Ah Beng w/C3")
	assert.Contains(t, res.Feedback, "Edited Patient: Tan Ah Beng; Ward: C3")

	edited := h.model.Patients()[1]
	assert.Equal(t, "Tan Ah Beng", edited.Name().String())
	assert.Equal(t, original.IC(), edited.IC())
	assert.Equal(t, original.Tags(), edited.Tags())
	require.Len(t, edited.NextOfKin(), 1)
	assert.Equal(t, edited.Ref(), edited.NextOfKin()[0].Patient(), "contacts follow the renamed patient")
	assert.Equal(t, original.CaringSessions(), edited.CaringSessions())
}

func TestEditPatient_ClearTags(t *testing.T) {
	h := newHarness(t, testutils.Carl().Build())

	h.mustRun(t, "edit-patient 1 t/")
	assert.Empty(t, h.model.Patients()[0].Tags())

	h.mustRun(t, "edit-patient 1 t/new t/tags")
	assert.Len(t, h.model.Patients()[0].Tags(), 2)
}

func TestEditPatient_NoFieldsRegardlessOfModel(t *testing.T) {
	cmd := EditPatientCommand{Index: commands.FromOneBased(5)}

	for _, m := range []*model.Model{model.New(), newHarness(t, testutils.Alice().Build()).model} {
		_, err := cmd.Execute(m)
		assert.ErrorIs(t, err, commands.ErrNoFieldsEdited)
		assert.EqualError(t, err, commands.MsgNotEdited)
	}

	h := newHarness(t, testutils.Alice().Build())
	_, err := h.run("edit-patient 1")
	assert.ErrorIs(t, err, commands.ErrNoFieldsEdited)
}

func TestEditPatient_Failures(t *testing.T) {
	h := newHarness(t, testutils.Alice().Build(), testutils.Benson().Build())
	before := h.model.Patients()

	_, err := h.run("edit-patient 3 w/C3")
	assert.ErrorIs(t, err, commands.ErrInvalidIndex)

	_, err = h.run("edit-patient 2 n/Alice Pauline w/A1 ic/S7654321B")
	assert.ErrorIs(t, err, unique.ErrDuplicateEntity)

	_, err = h.run("edit-patient zero w/C3")
	assert.ErrorIs(t, err, parser.ErrParse)

	assert.Equal(t, before, h.model.Patients(), "failed edits leave the model unchanged")
}

func TestEditPatient_SameIdentityIsNotDuplicate(t *testing.T) {
	h := newHarness(t, testutils.Alice().Build())

	h.mustRun(t, "edit-patient 1 n/Alice Pauline t/renal")
	assert.True(t, h.model.Patients()[0].HasTag(must(value.NewTag("renal"))))
}

func TestEditPatient_IndexIsRelativeToFilter(t *testing.T) {
	h := newHarness(t, testutils.Alice().Build(), testutils.Benson().Build())
	h.mustRun(t, "find-patient Benson")

	h.mustRun(t, "edit-patient 1 w/Z9")
	assert.Equal(t, "A1", h.model.Patients()[0].Ward().String())
	assert.Equal(t, "Z9", h.model.Patients()[1].Ward().String())
	assert.Len(t, h.model.FilteredPatients(), 2, "edit resets the filter")
}

func TestDeletePatient(t *testing.T) {
	alice := testutils.Alice().Build()
	benson := testutils.Benson().Build()
	carl := testutils.Carl().Build()
	h := newHarness(t, alice, benson, carl)

	res := h.mustRun(t, "delete-patient 2")
	assert.Equal(t, "Deleted Patient: "+benson.String(), res.Feedback)
	got := h.model.Patients()
	require.Len(t, got, 2)
	assert.True(t, got[0].Equal(alice))
	assert.True(t, got[1].Equal(carl))

	_, err := h.run("delete-patient 3")
	assert.ErrorIs(t, err, commands.ErrInvalidIndex)
	_, err = h.run("delete-patient 1 2")
	assert.ErrorIs(t, err, parser.ErrParse)
	_, err = h.run("delete-patient")
	assert.ErrorIs(t, err, parser.ErrParse)
}

func TestFindPatient(t *testing.T) {
	h := newHarness(t, testutils.Alice().Build(), testutils.Benson().Build(), testutils.Carl().Build())

	res := h.mustRun(t, "find-patient alice carl")
	assert.Equal(t, "2 patients listed!", res.Feedback)

	res = h.mustRun(t, "find-patient nobody")
	assert.Equal(t, "0 patients listed!", res.Feedback)
	assert.Empty(t, h.model.FilteredPatients())

	_, err := h.run("find-patient")
	assert.ErrorIs(t, err, parser.ErrParse)
}

func TestFindByNextOfKin(t *testing.T) {
	withMei := testutils.Alice().WithNextOfKin(testutils.NewNextOfKinBuilder().WithName("Tan Mei")).Build()
	withBob := testutils.Benson().WithNextOfKin(testutils.NewNextOfKinBuilder().WithName("Bob Lee")).Build()
	h := newHarness(t, withMei, withBob, testutils.Carl().Build())

	res := h.mustRun(t, "find-by-nok MEI")
	assert.Equal(t, "1 patient listed!", res.Feedback)
	assert.True(t, h.patient(t, 1).Equal(withMei))
}

func TestListPatients_ResetsBothFilters(t *testing.T) {
	s := testutils.NewSessionBuilder().Build()
	h := newHarness(t, testutils.Alice().WithSessions(s).Build(), testutils.Benson().Build())
	h.mustRun(t, "list-sessions status/completed")
	require.Empty(t, h.model.SessionView())
	require.Empty(t, h.model.FilteredPatients())

	res := h.mustRun(t, "list-patients")
	assert.Equal(t, "Listed all patients", res.Feedback)
	assert.Len(t, h.model.FilteredPatients(), 2)
	assert.Len(t, h.model.SessionView(), 1)
}

func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}
