package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// GET /treatments/
func (h *Handler) ListTreatmentPlans(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, h.Repository.Treatments.List())
}

// GET /treatments/:id
// Ищет по id самого плана, а не по id пациента.
func (h *Handler) GetTreatmentPlan(ctx *gin.Context) {
	plan, err := h.Repository.Treatments.GetByID(ctx.Param("id"))
	if err != nil {
		h.errorHandler(ctx, statusFor(err), err)
		return
	}
	ctx.JSON(http.StatusOK, plan)
}

// POST /treatments/
func (h *Handler) CreateTreatmentPlan(ctx *gin.Context) {
	var body treatmentPlanPayload
	if !h.bindJSON(ctx, &body) {
		return
	}

	plan := h.Repository.Treatments.Create(body.toTreatmentPlan())
	if h.Metrics != nil {
		h.Metrics.TreatmentPlansSubmitted.Inc()
	}
	logrus.WithFields(logrus.Fields{
		"plan_id":    plan.ID,
		"patient_id": plan.PatientID,
	}).Info("treatment plan echoed, not stored")

	ctx.JSON(http.StatusOK, plan)
}
