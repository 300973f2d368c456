package testutils

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// Today is the fixed "current day" used by tests that need a deterministic clock.
var Today = time.Date(2025, time.January, 15, 10, 0, 0, 0, time.Local)

// FixedClock returns a clock that always reports Today.
func FixedClock() func() time.Time {
	return func() time.Time { return Today }
}

// Alice, Benson and Carl are distinct patients for multi-patient scenarios.
func Alice() *PatientBuilder {
	return NewPatientBuilder().WithName("Alice Pauline").WithWard("A1").WithIC("S7654321B").WithTags("diabetic")
}

// Benson is a second distinct patient.
func Benson() *PatientBuilder {
	return NewPatientBuilder().WithName("Benson Meier").WithWard("C3").WithIC("T0123456C")
}

// Carl is a third distinct patient.
func Carl() *PatientBuilder {
	return NewPatientBuilder().WithName("Carl Kurz").WithWard("D14").WithIC("G1111111D").WithTags("fallrisk", "elderly")
}

// WriteTempFile writes content to name inside a fresh temporary directory and
// returns the full path.
func WriteTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}
