// Package export writes patient records to an Excel workbook with one sheet
// each for patients, next-of-kin and caring sessions.
package export

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"noknock/internal/model/person"
)

// Sheet names, in workbook order.
const (
	PatientSheet   = "Patients"
	NextOfKinSheet = "Next of Kin"
	SessionSheet   = "Sessions"
)

// Column headers per sheet.
var (
	PatientHeader   = []string{"No.", "Name", "Ward", "IC", "Tags", "Next of Kin", "Sessions"}
	NextOfKinHeader = []string{"Patient No.", "Patient", "No.", "Name", "Phone", "Relationship"}
	SessionHeader   = []string{"Patient No.", "Patient", "No.", "Date", "Time", "Care Type", "Status", "Notes"}
)

var columnWidths = map[string][]float64{
	PatientSheet:   {6, 28, 8, 12, 24, 12, 10},
	NextOfKinSheet: {12, 28, 6, 28, 14, 14},
	SessionSheet:   {12, 28, 6, 12, 8, 16, 12, 40},
}

// Workbook exports to .xlsx files.
type Workbook struct{}

// Export writes patients to path, creating parent directories as needed.
func (Workbook) Export(path string, patients []person.Patient) error {
	f, err := Build(patients)
	if err != nil {
		return err
	}
	defer f.Close()

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create export directory: %w", err)
		}
	}
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook %s: %w", path, err)
	}
	return nil
}

// Build assembles the workbook in memory. The caller closes the returned file.
func Build(patients []person.Patient) (*excelize.File, error) {
	f := excelize.NewFile()

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E6F3FF"}, Pattern: 1},
		Border: []excelize.Border{
			{Type: "bottom", Color: "000000", Style: 1},
		},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}

	for i, sheet := range []struct {
		name   string
		header []string
		rows   [][]any
	}{
		{PatientSheet, PatientHeader, patientRows(patients)},
		{NextOfKinSheet, NextOfKinHeader, nextOfKinRows(patients)},
		{SessionSheet, SessionHeader, sessionRows(patients)},
	} {
		if i == 0 {
			if err := f.SetSheetName("Sheet1", sheet.name); err != nil {
				f.Close()
				return nil, fmt.Errorf("failed to rename sheet: %w", err)
			}
		} else if _, err := f.NewSheet(sheet.name); err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to create sheet %s: %w", sheet.name, err)
		}
		if err := writeSheet(f, sheet.name, sheet.header, sheet.rows, headerStyle); err != nil {
			f.Close()
			return nil, err
		}
	}
	f.SetActiveSheet(0)
	return f, nil
}

func writeSheet(f *excelize.File, sheet string, header []string, rows [][]any, headerStyle int) error {
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return fmt.Errorf("failed to write %s header: %w", sheet, err)
	}
	last, err := excelize.CoordinatesToCellName(len(header), 1)
	if err != nil {
		return fmt.Errorf("failed to convert coordinates: %w", err)
	}
	if err := f.SetCellStyle(sheet, "A1", last, headerStyle); err != nil {
		return fmt.Errorf("failed to set %s header style: %w", sheet, err)
	}

	for i, width := range columnWidths[sheet] {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return fmt.Errorf("failed to convert column number: %w", err)
		}
		if err := f.SetColWidth(sheet, col, col, width); err != nil {
			return fmt.Errorf("failed to set column width: %w", err)
		}
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("failed to convert coordinates: %w", err)
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write %s row %d: %w", sheet, i+2, err)
		}
	}
	return nil
}

func patientRows(patients []person.Patient) [][]any {
	rows := make([][]any, 0, len(patients))
	for i, p := range patients {
		tags := make([]string, 0, len(p.Tags()))
		for _, t := range p.Tags() {
			tags = append(tags, t.String())
		}
		rows = append(rows, []any{
			i + 1,
			p.Name().String(),
			p.Ward().String(),
			p.IC().String(),
			strings.Join(tags, ", "),
			len(p.NextOfKin()),
			len(p.CaringSessions()),
		})
	}
	return rows
}

func nextOfKinRows(patients []person.Patient) [][]any {
	var rows [][]any
	for i, p := range patients {
		for j, nok := range p.NextOfKin() {
			rows = append(rows, []any{
				i + 1,
				p.Name().String(),
				j + 1,
				nok.Name().String(),
				nok.Phone().String(),
				nok.Relationship().String(),
			})
		}
	}
	return rows
}

func sessionRows(patients []person.Patient) [][]any {
	var rows [][]any
	for i, p := range patients {
		for j, s := range p.CaringSessions() {
			rows = append(rows, []any{
				i + 1,
				p.Name().String(),
				j + 1,
				s.Date().String(),
				s.Time().String(),
				s.CareType().String(),
				s.Status().String(),
				s.Note().String(),
			})
		}
	}
	return rows
}
