package handler

import (
	"bytes"
	"net/http"
	"testing"

	"oncologyassistant/internal/app/export"

	"github.com/360EntSecGroup-Skylar/excelize"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportPatients_IncludesAppended(t *testing.T) {
	env := newTestEnv(t)
	require.Equal(t, http.StatusOK, env.do(t, http.MethodPost, "/patients/", newPatientBody()).Code)

	w := env.do(t, http.MethodGet, "/exports/patients.xlsx", nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, xlsxContentType, w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "patients.xlsx")

	file, err := excelize.OpenReader(bytes.NewReader(w.Body.Bytes()))
	require.NoError(t, err)
	assert.Len(t, file.GetRows(export.PatientsSheet), 8)
	assert.Equal(t, "Grace Hopper", file.GetCellValue(export.PatientsSheet, "B8"))
}

func TestExportTreatmentPlans(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodGet, "/exports/treatments.xlsx", nil)

	require.Equal(t, http.StatusOK, w.Code)
	file, err := excelize.OpenReader(bytes.NewReader(w.Body.Bytes()))
	require.NoError(t, err)
	assert.Len(t, file.GetRows(export.TreatmentPlansSheet), 4)
}
