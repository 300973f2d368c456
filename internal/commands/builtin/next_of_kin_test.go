package builtin

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"noknock/internal/commands"
	"noknock/internal/model/unique"
	"noknock/internal/model/value"
	"noknock/internal/parser"
	"noknock/internal/testutils"
)

func TestNextOfKinLifecycle(t *testing.T) {
	h := newHarness(t)

	h.mustRun(t, "add-patient n/Tan Ah Kow w/B2 ic/S1234567A")
	res := h.mustRun(t, "add-nok 1 n/Tan Mei p/98765432 r/Daughter")
	assert.Equal(t, "Added next-of-kin for Tan Ah Kow: Tan Mei; Phone: 98765432; Relationship: Daughter", res.Feedback)
	require.Len(t, h.patient(t, 1).NextOfKin(), 1)

	h.mustRun(t, "delete-nok 1 1")
	assert.Empty(t, h.patient(t, 1).NextOfKin())

	_, err := h.run("delete-nok 1 1")
	assert.ErrorIs(t, err, commands.ErrInvalidNestedIndex)
	assert.EqualError(t, err, "Next-of-kin index 1 is out of range for patient Tan Ah Kow.")
}

func TestAddNextOfKin(t *testing.T) {
	h := newHarness(t, testutils.Alice().Build())

	h.mustRun(t, "add-nok 1 n/Tan Mei p/98765432 r/daughter")
	nok := h.patient(t, 1).NextOfKin()[0]
	assert.Equal(t, value.RelationshipDaughter, nok.Relationship())
	assert.Equal(t, h.patient(t, 1).Ref(), nok.Patient())

	_, err := h.run("add-nok 1 n/Tan Mei p/98765432 r/Daughter")
	assert.ErrorIs(t, err, unique.ErrDuplicateEntity)

	h.mustRun(t, "add-nok 1 n/Tan Mei p/98765432 r/Guardian")
	assert.Len(t, h.patient(t, 1).NextOfKin(), 2, "identity covers every contact field")

	_, err = h.run("add-nok 2 n/Tan Mei p/98765432 r/Son")
	assert.ErrorIs(t, err, commands.ErrInvalidIndex)
}

func TestAddNextOfKin_ParseErrors(t *testing.T) {
	h := newHarness(t, testutils.Alice().Build())
	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{"missing index", "add-nok n/Tan Mei p/98765432 r/Son", parser.ErrParse},
		{"missing phone", "add-nok 1 n/Tan Mei r/Son", parser.ErrParse},
		{"bad phone", "add-nok 1 n/Tan Mei p/98-76 r/Son", value.ErrValidation},
		{"bad relationship", "add-nok 1 n/Tan Mei p/98765432 r/Cousin", value.ErrValidation},
		{"zero index", "add-nok 0 n/Tan Mei p/98765432 r/Son", parser.ErrParse},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := h.run(tt.input)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestEditNextOfKin(t *testing.T) {
	first := testutils.NewNextOfKinBuilder().WithName("Tan Mei")
	second := testutils.NewNextOfKinBuilder().WithName("Tan Kai").WithRelationship("Son")
	h := newHarness(t, testutils.Alice().WithNextOfKin(first, second).Build())

	h.mustRun(t, "edit-nok 1 2 p/91234567")
	noks := h.patient(t, 1).NextOfKin()
	require.Len(t, noks, 2)
	assert.Equal(t, "Tan Mei", noks[0].Name().String())
	assert.Equal(t, "91234567", noks[1].Phone().String())
	assert.Equal(t, value.RelationshipSon, noks[1].Relationship())

	_, err := h.run("edit-nok 1 2 n/Tan Mei p/98765432 r/Daughter")
	assert.ErrorIs(t, err, unique.ErrDuplicateEntity)

	_, err = h.run("edit-nok 1 3 p/91234567")
	assert.ErrorIs(t, err, commands.ErrInvalidNestedIndex)

	_, err = h.run("edit-nok 1 1")
	assert.ErrorIs(t, err, commands.ErrNoFieldsEdited)

	_, err = h.run("edit-nok 1 p/91234567")
	assert.ErrorIs(t, err, parser.ErrParse)
}

func TestDeleteNextOfKin_KeepsOrder(t *testing.T) {
	a := testutils.NewNextOfKinBuilder().WithName("Amy")
	b := testutils.NewNextOfKinBuilder().WithName("Ben")
	c := testutils.NewNextOfKinBuilder().WithName("Cat")
	h := newHarness(t, testutils.Alice().WithNextOfKin(a, b, c).Build())

	res := h.mustRun(t, "delete-nok 1 2")
	assert.Contains(t, res.Feedback, "Deleted next-of-kin for Alice Pauline: Ben")

	noks := h.patient(t, 1).NextOfKin()
	require.Len(t, noks, 2)
	assert.Equal(t, "Amy", noks[0].Name().String())
	assert.Equal(t, "Cat", noks[1].Name().String())

	_, err := h.run("delete-nok 2 1")
	assert.ErrorIs(t, err, commands.ErrInvalidIndex)
}
