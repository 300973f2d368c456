// Package ui renders the patient and caring-session panels.
//
// A Dashboard subscribes to model changes and only redraws after one has
// arrived, so commands that leave the model untouched print nothing extra.
package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"noknock/internal/model"
	"noknock/internal/model/person"
	"noknock/internal/output"
)

// Source is the read side of the model a Dashboard displays.
type Source interface {
	FilteredPatients() []person.Patient
	SessionView() []model.PatientCaringSession
	Subscribe(fn func(model.Change)) (unsubscribe func())
}

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	titleStyle  = lipgloss.NewStyle().Bold(true).Underline(true)
	borderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// Dashboard shows the filtered patient list and the flattened session view.
type Dashboard struct {
	src         Source
	printer     *output.Printer
	unsubscribe func()
	stale       bool
	last        model.Change
}

// NewDashboard creates a detached dashboard. Call Attach to start tracking changes.
func NewDashboard(src Source, printer *output.Printer) *Dashboard {
	if src == nil {
		panic("ui: nil source")
	}
	if printer == nil {
		printer = output.GetGlobalPrinter()
	}
	return &Dashboard{src: src, printer: printer}
}

// Attach subscribes to model changes. Attaching twice is a no-op.
func (d *Dashboard) Attach() {
	if d.unsubscribe != nil {
		return
	}
	d.unsubscribe = d.src.Subscribe(d.onChange)
}

// Detach stops tracking changes.
func (d *Dashboard) Detach() {
	if d.unsubscribe == nil {
		return
	}
	d.unsubscribe()
	d.unsubscribe = nil
}

func (d *Dashboard) onChange(c model.Change) {
	d.stale = true
	d.last = c
}

// Stale reports whether a change arrived since the last Flush.
func (d *Dashboard) Stale() bool {
	return d.stale
}

// Flush prints the panels if the model changed since the last Flush.
func (d *Dashboard) Flush() bool {
	if !d.stale {
		return false
	}
	d.stale = false
	d.printer.Block(d.Render())
	return true
}

// Render draws both panels and the status line.
func (d *Dashboard) Render() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Patients"))
	b.WriteString("\n")
	b.WriteString(d.PatientTable())
	b.WriteString("\n")
	b.WriteString(titleStyle.Render("Caring sessions"))
	b.WriteString("\n")
	b.WriteString(d.SessionTable())
	b.WriteString("\n")
	b.WriteString(d.StatusLine())
	return b.String()
}

// StatusLine summarises the last change received.
func (d *Dashboard) StatusLine() string {
	patients := d.src.FilteredPatients()
	sessions := d.src.SessionView()
	line := fmt.Sprintf("Showing %d patient(s), %d caring session(s)", len(patients), len(sessions))
	if d.last.Kind != 0 {
		line += fmt.Sprintf(" of %d stored [%s]", d.last.Total, d.last.Kind)
	}
	return line
}

// PatientTable renders the filtered patient list with 1-based indices.
func (d *Dashboard) PatientTable() string {
	patients := d.src.FilteredPatients()
	if len(patients) == 0 {
		return "No patients to show."
	}

	rows := make([][]string, 0, len(patients))
	for i, p := range patients {
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			p.Name().String(),
			p.Ward().String(),
			p.IC().String(),
			joinTags(p),
			joinNextOfKin(p),
			strconv.Itoa(len(p.CaringSessions())),
		})
	}
	return newTable("#", "Name", "Ward", "IC", "Tags", "Next of kin", "Sessions").Rows(rows...).String()
}

// SessionTable renders the flattened session view. The first two columns are
// the indices edit-session and delete-session expect.
func (d *Dashboard) SessionTable() string {
	view := d.src.SessionView()
	if len(view) == 0 {
		return "No caring sessions to show."
	}

	rows := make([][]string, 0, len(view))
	for _, pcs := range view {
		s := pcs.Session
		rows = append(rows, []string{
			strconv.Itoa(pcs.PatientIndex),
			strconv.Itoa(pcs.SessionIndex),
			pcs.Patient.Name().String(),
			s.Date().String(),
			s.Time().String(),
			s.CareType().String(),
			s.Status().String(),
			s.Note().String(),
		})
	}
	return newTable("Patient", "Session", "Name", "Date", "Time", "Type", "Status", "Notes").Rows(rows...).String()
}

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(borderStyle).
		Headers(headers...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
}

func joinTags(p person.Patient) string {
	tags := p.Tags()
	labels := make([]string, len(tags))
	for i, t := range tags {
		labels[i] = t.String()
	}
	return strings.Join(labels, ", ")
}

func joinNextOfKin(p person.Patient) string {
	noks := p.NextOfKin()
	labels := make([]string, len(noks))
	for i, n := range noks {
		labels[i] = fmt.Sprintf("%s (%s)", n.Name(), n.Relationship())
	}
	return strings.Join(labels, ", ")
}
