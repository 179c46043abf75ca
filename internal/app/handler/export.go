package handler

import (
	"bytes"
	"fmt"
	"net/http"

	"oncologyassistant/internal/app/export"

	"github.com/gin-gonic/gin"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// GET /exports/patients.xlsx
func (h *Handler) ExportPatients(ctx *gin.Context) {
	var buf bytes.Buffer
	if err := export.WritePatients(&buf, h.Repository.Patients.List()); err != nil {
		h.errorHandler(ctx, http.StatusInternalServerError, fmt.Errorf("export patients: %w", err))
		return
	}
	sendWorkbook(ctx, "patients.xlsx", &buf)
}

// GET /exports/treatments.xlsx
func (h *Handler) ExportTreatmentPlans(ctx *gin.Context) {
	var buf bytes.Buffer
	if err := export.WriteTreatmentPlans(&buf, h.Repository.Treatments.List()); err != nil {
		h.errorHandler(ctx, http.StatusInternalServerError, fmt.Errorf("export treatment plans: %w", err))
		return
	}
	sendWorkbook(ctx, "treatments.xlsx", &buf)
}

func sendWorkbook(ctx *gin.Context, filename string, buf *bytes.Buffer) {
	ctx.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	ctx.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}
