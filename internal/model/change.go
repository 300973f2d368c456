package model

// ChangeKind classifies a Model change notification.
type ChangeKind int

// Change kinds emitted by the Model.
const (
	PatientsAdded ChangeKind = iota + 1
	PatientsRemoved
	PatientsReplaced
	PatientsReset
	FilterChanged
)

var changeKindNames = map[ChangeKind]string{
	PatientsAdded:    "patients-added",
	PatientsRemoved:  "patients-removed",
	PatientsReplaced: "patients-replaced",
	PatientsReset:    "patients-reset",
	FilterChanged:    "filter-changed",
}

func (k ChangeKind) String() string {
	return changeKindNames[k]
}

// Change is delivered to subscribers after the Model has rebuilt its views.
type Change struct {
	Kind    ChangeKind
	Visible int // patients in the filtered list
	Total   int // patients stored
}

// MutatesData reports whether the change touched stored patients rather than
// only the display filters.
func (c Change) MutatesData() bool {
	return c.Kind != FilterChanged
}
