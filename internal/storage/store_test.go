package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"noknock/internal/model/person"
	"noknock/internal/model/unique"
	"noknock/internal/model/value"
	"noknock/internal/testutils"
)

func samplePatients() []person.Patient {
	past := testutils.NewSessionBuilder().WithDate("2020-01-01").WithStatus("Completed").WithNote("done").Build()
	future := testutils.NewSessionBuilder().WithCareType("Mobility").Build()
	return []person.Patient{
		testutils.Alice().
			WithNextOfKin(testutils.NewNextOfKinBuilder(), testutils.NewNextOfKinBuilder().WithName("Ali").WithRelationship("Son")).
			WithSessions(past, future).
			Build(),
		testutils.Benson().Build(),
	}
}

func assertSamePatients(t *testing.T, want, got []person.Patient) {
	t.Helper()
	require.Len(t, got, len(want))
	for i := range want {
		assert.True(t, want[i].Equal(got[i]), "patient %d", i+1)
		assert.Equal(t, want[i].NextOfKin(), got[i].NextOfKin(), "patient %d next-of-kin", i+1)
		assert.Equal(t, want[i].CaringSessions(), got[i].CaringSessions(), "patient %d sessions", i+1)
	}
}

func TestFileStore_RoundTrip(t *testing.T) {
	for _, name := range []string{"noknock.json", "noknock.yaml", "noknock.yml"} {
		t.Run(name, func(t *testing.T) {
			store := NewFileStore(filepath.Join(t.TempDir(), "data", name))
			patients := samplePatients()

			require.NoError(t, store.Save(patients))
			got, err := store.Load()
			require.NoError(t, err)
			assertSamePatients(t, patients, got)
		})
	}
}

func TestFileStore_CodecFollowsExtension(t *testing.T) {
	dir := t.TempDir()
	jsonStore := NewFileStore(filepath.Join(dir, "a.json"))
	yamlStore := NewFileStore(filepath.Join(dir, "a.yaml"))
	require.NoError(t, jsonStore.Save(samplePatients()))
	require.NoError(t, yamlStore.Save(samplePatients()))

	jsonData, err := os.ReadFile(jsonStore.Path)
	require.NoError(t, err)
	assert.Contains(t, string(jsonData), `"careType": "Mobility"`)

	yamlData, err := os.ReadFile(yamlStore.Path)
	require.NoError(t, err)
	assert.Contains(t, string(yamlData), "careType: Mobility")
}

func TestFileStore_LoadMissingOrEmpty(t *testing.T) {
	got, err := NewFileStore(filepath.Join(t.TempDir(), "absent.json")).Load()
	require.NoError(t, err)
	assert.Empty(t, got)

	path := testutils.WriteTempFile(t, "empty.json", "  \n")
	got, err = NewFileStore(path).Load()
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestFileStore_LoadHandWritten(t *testing.T) {
	path := testutils.WriteTempFile(t, "data.yaml", `
version: 1
patients:
  - name: Tan Ah Kow
    ward: B2
    ic: S1234567A
    tags: [diabetic]
    nextOfKin:
      - name: Tan Mei
        phone: "98765432"
        relationship: daughter
    sessions:
      - date: 31-12-9999
        time: "08:00"
        careType: hygiene
`)
	got, err := NewFileStore(path).Load()
	require.NoError(t, err)
	require.Len(t, got, 1)

	p := got[0]
	require.Len(t, p.NextOfKin(), 1)
	assert.Equal(t, p.Ref(), p.NextOfKin()[0].Patient())
	require.Len(t, p.CaringSessions(), 1)
	assert.Equal(t, value.StatusScheduled, p.CaringSessions()[0].Status(), "status defaults to scheduled")
	assert.Equal(t, "9999-12-31", p.CaringSessions()[0].Date().String())
}

func TestFileStore_LoadInvalid(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
		wantErr []error
	}{
		{"syntax", "bad.json", `{"patients": [`, []error{ErrInvalidData}},
		{"bad ic", "bad.json", `{"patients":[{"name":"Tan","ward":"B2","ic":"nope"}]}`, []error{ErrInvalidData, value.ErrValidation}},
		{"bad session date", "bad.json", `{"patients":[{"name":"Tan","ward":"B2","ic":"S1234567A","sessions":[{"date":"tomorrow","time":"08:00","careType":"Other"}]}]}`, []error{ErrInvalidData, value.ErrValidation}},
		{"duplicate contact", "bad.yaml", "patients:\n  - {name: Tan, ward: B2, ic: S1234567A, nextOfKin: [{name: Mei, phone: '123', relationship: Son}, {name: Mei, phone: '123', relationship: Son}]}\n", []error{ErrInvalidData, unique.ErrDuplicateEntity}},
		{"future version", "bad.json", `{"version": 99, "patients": []}`, []error{ErrInvalidData}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewFileStore(testutils.WriteTempFile(t, tt.file, tt.content)).Load()
			require.Error(t, err)
			for _, want := range tt.wantErr {
				assert.ErrorIs(t, err, want)
			}
		})
	}
}

func TestFileStore_SaveLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	store := NewFileStore(filepath.Join(dir, "noknock.json"))
	require.NoError(t, store.Save(samplePatients()))
	require.NoError(t, store.Save(nil))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "noknock.json", entries[0].Name())

	got, err := store.Load()
	require.NoError(t, err)
	assert.Empty(t, got)
}
