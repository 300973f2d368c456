package builtin

import (
	"testing"

	"github.com/stretchr/testify/require"

	"noknock/internal/commands"
	"noknock/internal/model"
	"noknock/internal/model/person"
	"noknock/internal/parser"
	"noknock/internal/testutils"
)

type fakeExporter struct {
	path     string
	patients []person.Patient
	err      error
}

func (f *fakeExporter) Export(path string, patients []person.Patient) error {
	f.path = path
	f.patients = patients
	return f.err
}

type harness struct {
	model    *model.Model
	parser   *parser.Parser
	exporter *fakeExporter
}

func newHarness(t *testing.T, patients ...person.Patient) *harness {
	t.Helper()
	m := model.New()
	require.NoError(t, m.ReplacePatients(patients))

	exp := &fakeExporter{}
	registry := commands.NewRegistry()
	require.NoError(t, Register(registry, Config{ExportDir: "exports", Now: testutils.FixedClock(), Exporter: exp}))
	return &harness{model: m, parser: parser.New(registry), exporter: exp}
}

// run parses and executes one input line.
func (h *harness) run(input string) (commands.Result, error) {
	cmd, err := h.parser.ParseCommand(input)
	if err != nil {
		return commands.Result{}, err
	}
	return cmd.Execute(h.model)
}

func (h *harness) mustRun(t *testing.T, input string) commands.Result {
	t.Helper()
	res, err := h.run(input)
	require.NoError(t, err, "input %q", input)
	return res
}

func (h *harness) patient(t *testing.T, oneBased int) person.Patient {
	t.Helper()
	shown := h.model.FilteredPatients()
	require.GreaterOrEqual(t, len(shown), oneBased)
	return shown[oneBased-1]
}
