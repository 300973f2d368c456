package shell

import (
	"errors"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"noknock/internal/commands"
	"noknock/internal/commands/builtin"
	"noknock/internal/model"
	"noknock/internal/model/person"
	"noknock/internal/output"
	"noknock/internal/storage"
	"noknock/internal/testutils"
)

type logEntry struct {
	level   string
	msg     string
	keyvals []interface{}
}

type recordingSink struct {
	entries []logEntry
}

func (r *recordingSink) add(level string, msg interface{}, keyvals ...interface{}) {
	r.entries = append(r.entries, logEntry{level: level, msg: fmt.Sprint(msg), keyvals: keyvals})
}

func (r *recordingSink) Debug(msg interface{}, keyvals ...interface{}) { r.add("debug", msg, keyvals...) }
func (r *recordingSink) Info(msg interface{}, keyvals ...interface{})  { r.add("info", msg, keyvals...) }
func (r *recordingSink) Warn(msg interface{}, keyvals ...interface{})  { r.add("warn", msg, keyvals...) }
func (r *recordingSink) Error(msg interface{}, keyvals ...interface{}) { r.add("error", msg, keyvals...) }

func (r *recordingSink) messages() []string {
	out := make([]string, len(r.entries))
	for i, e := range r.entries {
		out[i] = e.msg
	}
	return out
}

type failingStore struct {
	saves int
}

func (f *failingStore) Load() ([]person.Patient, error) { return nil, nil }
func (f *failingStore) Save([]person.Patient) error {
	f.saves++
	return errors.New("disk full")
}
func (f *failingStore) Location() string { return "nowhere.json" }

// flakyStore fails its first failures saves, then keeps what it is given.
type flakyStore struct {
	failures int
	attempts int
	saved    []person.Patient
}

func (f *flakyStore) Load() ([]person.Patient, error) { return f.saved, nil }
func (f *flakyStore) Save(patients []person.Patient) error {
	f.attempts++
	if f.attempts <= f.failures {
		return errors.New("disk full")
	}
	f.saved = patients
	return nil
}
func (f *flakyStore) Location() string { return "flaky.json" }

type fixture struct {
	model    *model.Model
	exec     *Executor
	buffer   *output.CaptureBuffer
	sink     *recordingSink
	store    *storage.FileStore
	registry *commands.Registry
}

func newFixture(t *testing.T, opts ...Option) *fixture {
	t.Helper()
	registry := commands.NewRegistry()
	require.NoError(t, builtin.Register(registry, builtin.Config{
		ExportDir: t.TempDir(),
		Now:       testutils.FixedClock(),
	}))

	f := &fixture{
		model:    model.New(),
		buffer:   output.NewCaptureBuffer(),
		sink:     &recordingSink{},
		store:    storage.NewFileStore(filepath.Join(t.TempDir(), "noknock.json")),
		registry: registry,
	}
	base := []Option{
		WithPrinter(output.NewPrinter(output.WithWriter(f.buffer), output.TestMode())),
		WithSink(f.sink),
		WithStore(f.store, true),
	}
	f.exec = NewExecutor(f.model, registry, append(base, opts...)...)
	t.Cleanup(f.exec.Close)
	return f
}

func (f *fixture) mustExecute(t *testing.T, line string) commands.Result {
	t.Helper()
	res, err := f.exec.Execute(line)
	require.NoError(t, err, "line %q", line)
	return res
}
