package handler

import (
	"errors"
	"net/http"

	"oncologyassistant/internal/app/repository"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// GET /patients/
func (h *Handler) ListPatients(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, h.Repository.Patients.List())
}

// POST /patients/
func (h *Handler) CreatePatient(ctx *gin.Context) {
	var body patientPayload
	if !h.bindJSON(ctx, &body) {
		return
	}

	patient := h.Repository.Patients.Append(body.toPatient())
	if h.Metrics != nil {
		h.Metrics.PatientsCreated.Inc()
	}
	logrus.WithField("patient_id", patient.ID).Info("patient appended")

	ctx.JSON(http.StatusOK, patient)
}

// GET /patients/:id
func (h *Handler) GetPatient(ctx *gin.Context) {
	patient, err := h.Repository.Patients.GetByID(ctx.Param("id"))
	if err != nil {
		h.errorHandler(ctx, statusFor(err), err)
		return
	}
	ctx.JSON(http.StatusOK, patient)
}

// GET /patients/:id/treatment
func (h *Handler) GetPatientTreatment(ctx *gin.Context) {
	id := ctx.Param("id")
	if _, err := h.Repository.Patients.GetByID(id); err != nil {
		h.errorHandler(ctx, statusFor(err), err)
		return
	}

	plan, err := h.Repository.Treatments.GetByPatientID(id)
	if err != nil {
		h.errorHandler(ctx, statusFor(err), err)
		return
	}
	ctx.JSON(http.StatusOK, plan)
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, repository.ErrPatientNotFound), errors.Is(err, repository.ErrTreatmentPlanNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
