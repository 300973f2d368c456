package shell

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"noknock/internal/config"
	"noknock/internal/model/person"
	"noknock/internal/model/unique"
	"noknock/internal/output"
	"noknock/internal/storage"
	"noknock/internal/testutils"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	dir := t.TempDir()
	return &config.Config{
		DataFile:  filepath.Join(dir, "data", "noknock.json"),
		Autosave:  true,
		ExportDir: filepath.Join(dir, "exports"),
		Style:     "plain",
		Theme:     "default",
		TestMode:  true,
	}
}

func TestNewAppLoadsStoredPatients(t *testing.T) {
	cfg := testConfig(t)
	require.NoError(t, storage.NewFileStore(cfg.DataFile).Save(
		[]person.Patient{testutils.Alice().Build(), testutils.Benson().Build()}))

	buffer := output.NewCaptureBuffer()
	app, err := NewApp(AppOptions{
		Config:  cfg,
		Printer: output.NewPrinter(output.WithWriter(buffer), output.TestMode()),
		Now:     testutils.FixedClock(),
	})
	require.NoError(t, err)
	defer app.Close()

	assert.Len(t, app.Model.Patients(), 2)
	assert.True(t, app.Registry.IsValidCommand("export"))

	_, err = app.Executor.Execute("delete-patient 1")
	require.NoError(t, err)

	reloaded, err := app.Store.Load()
	require.NoError(t, err)
	require.Len(t, reloaded, 1)
	assert.Equal(t, "Benson Meier", reloaded[0].Name().String())
}

func TestNewAppMissingFileStartsEmpty(t *testing.T) {
	app, err := NewApp(AppOptions{Config: testConfig(t)})
	require.NoError(t, err)
	defer app.Close()
	assert.Empty(t, app.Model.Patients())
}

func TestNewAppRejectsDuplicatePatients(t *testing.T) {
	cfg := testConfig(t)
	alice := testutils.Alice().Build()
	require.NoError(t, storage.NewFileStore(cfg.DataFile).Save([]person.Patient{alice, alice}))

	_, err := NewApp(AppOptions{Config: cfg})
	assert.ErrorIs(t, err, unique.ErrDuplicateEntity)
}

func TestNewAppRequiresConfig(t *testing.T) {
	_, err := NewApp(AppOptions{})
	assert.Error(t, err)
}

func TestNewPrinter(t *testing.T) {
	cfg := testConfig(t)

	p, err := NewPrinter(cfg, output.NewCaptureBuffer())
	require.NoError(t, err)
	assert.False(t, p.IsStylable())

	cfg.TestMode = false
	cfg.Style = "styled"
	cfg.Theme = "dark"
	p, err = NewPrinter(cfg, output.NewCaptureBuffer())
	require.NoError(t, err)
	assert.True(t, p.IsStylable())

	cfg.Theme = "plain"
	p, err = NewPrinter(cfg, output.NewCaptureBuffer())
	require.NoError(t, err)
	assert.False(t, p.IsStylable())

	cfg.Style = "json"
	buffer := output.NewCaptureBuffer()
	p, err = NewPrinter(cfg, buffer)
	require.NoError(t, err)
	p.Success("ok")
	assert.Equal(t, `{"message":"ok","type":"success"}`+"\n", buffer.String())
}
