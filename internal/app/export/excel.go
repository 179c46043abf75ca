package export

import (
	"fmt"
	"io"

	"github.com/360EntSecGroup-Skylar/excelize"

	"oncologyassistant/internal/app/ds"
)

const (
	PatientsSheet       = "Patients"
	TreatmentPlansSheet = "TreatmentPlans"
)

var patientHeaders = []string{"ID", "Name", "Age", "Diagnosis", "Risk Level", "Status", "Last Update", "Avatar"}

var treatmentHeaders = []string{"ID", "Patient ID", "Recommendation", "Rationale", "Confidence", "Data Points", "Created At", "Updated At"}

func newWorkbook(sheet string, headers []string) *excelize.File {
	file := excelize.NewFile()
	file.SetSheetName("Sheet1", sheet)
	for i, h := range headers {
		file.SetCellValue(sheet, cell(i, 1), h)
	}
	return file
}

// cell: колонка с нуля, строка с единицы -> ссылка вида A1.
func cell(col, row int) string {
	return fmt.Sprintf("%s%d", excelize.ToAlphaString(col), row)
}

// WritePatients пишет книгу: строка заголовков и по строке на пациента.
func WritePatients(w io.Writer, patients []ds.Patient) error {
	file := newWorkbook(PatientsSheet, patientHeaders)
	for i, p := range patients {
		row := i + 2
		values := []interface{}{p.ID, p.Name, p.Age, p.Diagnosis, p.RiskLevel, p.Status, p.LastUpdate, p.Avatar}
		for col, v := range values {
			file.SetCellValue(PatientsSheet, cell(col, row), v)
		}
	}
	return file.Write(w)
}

// WriteTreatmentPlans пишет книгу: строка заголовков и по строке на план.
func WriteTreatmentPlans(w io.Writer, plans []ds.TreatmentPlan) error {
	file := newWorkbook(TreatmentPlansSheet, treatmentHeaders)
	for i, p := range plans {
		row := i + 2
		values := []interface{}{p.ID, p.PatientID, p.Recommendation, p.Rationale, p.Confidence, p.DataPoints, p.CreatedAt, p.UpdatedAt}
		for col, v := range values {
			file.SetCellValue(TreatmentPlansSheet, cell(col, row), v)
		}
	}
	return file.Write(w)
}
