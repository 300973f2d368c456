package builtin

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"noknock/internal/commands"
	"noknock/internal/model/caring"
	"noknock/internal/model/unique"
	"noknock/internal/model/value"
	"noknock/internal/parser"
	"noknock/internal/testutils"
)

func TestAddSession(t *testing.T) {
	h := newHarness(t, testutils.Alice().Build())

	res := h.mustRun(t, "add-session 1 d/31-12-9999 time/09:30 type/wound care notes/left leg")
	assert.Equal(t, "Added caring session for Alice Pauline: 9999-12-31 09:30 Wound Care (Scheduled) - left leg", res.Feedback)

	sessions := h.patient(t, 1).CaringSessions()
	require.Len(t, sessions, 1)
	assert.Equal(t, value.StatusScheduled, sessions[0].Status())

	_, err := h.run("add-session 1 d/9999-12-31 time/09:30 type/Wound Care notes/left leg")
	assert.ErrorIs(t, err, unique.ErrDuplicateEntity)
}

func TestAddSession_DateRules(t *testing.T) {
	tests := []struct {
		name    string
		date    string
		wantErr bool
	}{
		{"today", testutils.Today.Format("2006-01-02"), false},
		{"far future", "9999-12-31", false},
		{"day first", "31-12-9999", false},
		{"past", "2020-01-01", true},
		{"yesterday", testutils.Today.AddDate(0, 0, -1).Format("2006-01-02"), true},
		{"bad shape", "2030/01/01", true},
		{"impossible day", "2030-02-30", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t, testutils.Alice().Build())
			_, err := h.run(fmt.Sprintf("add-session 1 d/%s time/10:00 type/Hygiene", tt.date))
			if tt.wantErr {
				assert.ErrorIs(t, err, value.ErrValidation)
				assert.Empty(t, h.patient(t, 1).CaringSessions())
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestAddSession_ParseErrors(t *testing.T) {
	h := newHarness(t, testutils.Alice().Build())

	_, err := h.run("add-session 1 d/9999-12-31 type/Hygiene")
	assert.ErrorIs(t, err, parser.ErrParse)
	_, err = h.run("add-session 1 d/9999-12-31 time/25:00 type/Hygiene")
	assert.ErrorIs(t, err, value.ErrValidation)
	_, err = h.run("add-session 1 d/9999-12-31 time/10:00 type/Dancing")
	assert.ErrorIs(t, err, value.ErrValidation)
	_, err = h.run("add-session 1 d/9999-12-31 time/10:00 time/11:00 type/Hygiene")
	assert.ErrorIs(t, err, parser.ErrParse)
}

func sessionsOn(dates ...string) []caring.Session {
	out := make([]caring.Session, len(dates))
	for i, d := range dates {
		out[i] = testutils.NewSessionBuilder().WithDate(d).Build()
	}
	return out
}

func TestDeleteSession_RemovesExactlyOne(t *testing.T) {
	dates := []string{"2030-01-01", "2030-01-02", "2030-01-03", "2030-01-04"}
	for k := 1; k <= len(dates); k++ {
		t.Run(fmt.Sprintf("index %d", k), func(t *testing.T) {
			all := sessionsOn(dates...)
			h := newHarness(t, testutils.Alice().WithSessions(all...).Build())

			h.mustRun(t, fmt.Sprintf("delete-session 1 %d", k))

			want := append(append([]caring.Session(nil), all[:k-1]...), all[k:]...)
			assert.Equal(t, want, h.patient(t, 1).CaringSessions())
		})
	}
}

func TestDeleteSession_OutOfRange(t *testing.T) {
	all := sessionsOn("2030-01-01", "2030-01-02")
	h := newHarness(t, testutils.Alice().WithSessions(all...).Build())

	_, err := h.run("delete-session 1 3")
	assert.ErrorIs(t, err, commands.ErrInvalidNestedIndex)
	assert.EqualError(t, err, "Session index 3 is out of range for patient Alice Pauline.")
	assert.Equal(t, all, h.patient(t, 1).CaringSessions())

	_, err = h.run("delete-session 2 1")
	assert.ErrorIs(t, err, commands.ErrInvalidIndex)
}

func TestEditSession(t *testing.T) {
	all := sessionsOn("2030-01-01", "2030-01-02")
	h := newHarness(t, testutils.Alice().WithSessions(all...).Build())

	res := h.mustRun(t, "edit-session 1 2 status/completed notes/done early")
	assert.Contains(t, res.Feedback, "(Completed) - done early")

	sessions := h.patient(t, 1).CaringSessions()
	assert.Equal(t, all[0], sessions[0])
	assert.Equal(t, value.StatusCompleted, sessions[1].Status())
	assert.Equal(t, all[1].Date(), sessions[1].Date())

	_, err := h.run("edit-session 1 2 d/2030-01-01 status/scheduled notes/")
	assert.ErrorIs(t, err, unique.ErrDuplicateEntity, "would equal session 1")

	_, err = h.run("edit-session 1 1")
	assert.ErrorIs(t, err, commands.ErrNoFieldsEdited)

	_, err = h.run("edit-session 1 1 d/2020-01-01")
	assert.ErrorIs(t, err, value.ErrValidation)

	_, err = h.run("edit-session 1 9 status/cancelled")
	assert.ErrorIs(t, err, commands.ErrInvalidNestedIndex)
}

func TestListSessions(t *testing.T) {
	jan := testutils.NewSessionBuilder().WithDate("2030-01-15").Build()
	feb := testutils.NewSessionBuilder().WithDate("2030-02-15").WithStatus("Completed").Build()
	mar := testutils.NewSessionBuilder().WithDate("2030-03-15").Build()
	h := newHarness(t,
		testutils.Alice().WithSessions(jan, feb).Build(),
		testutils.Benson().WithSessions(mar).Build(),
		testutils.Carl().Build(),
	)

	res := h.mustRun(t, "list-sessions")
	assert.Equal(t, "3 caring sessions listed!", res.Feedback)
	assert.Len(t, h.model.FilteredPatients(), 3)

	res = h.mustRun(t, "list-sessions from/2030-02-01 to/01-03-2030")
	assert.Equal(t, "1 caring session listed!", res.Feedback)
	require.Len(t, h.model.FilteredPatients(), 1)
	assert.Equal(t, "Alice Pauline", h.patient(t, 1).Name().String())

	res = h.mustRun(t, "list-sessions from/2020-01-01 status/scheduled")
	assert.Equal(t, "2 caring sessions listed!", res.Feedback)
	assert.Len(t, h.model.FilteredPatients(), 2)

	_, err := h.run("list-sessions from/2030-03-01 to/2030-02-01")
	assert.ErrorIs(t, err, parser.ErrParse)
	_, err = h.run("list-sessions status/unknown")
	assert.ErrorIs(t, err, value.ErrValidation)
	_, err = h.run("list-sessions everything")
	assert.ErrorIs(t, err, parser.ErrParse)
}
