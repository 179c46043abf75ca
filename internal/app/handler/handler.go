package handler

import (
	"net/http"

	"oncologyassistant/internal/app/middleware"
	"oncologyassistant/internal/app/repository"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// Handler: Metrics равен nil, если метрики выключены.
type Handler struct {
	Repository *repository.Repository
	Metrics    *middleware.Metrics
}

func NewHandler(r *repository.Repository, m *middleware.Metrics) *Handler {
	registerJSONFieldNames()
	return &Handler{
		Repository: r,
		Metrics:    m,
	}
}

// RegisterHandler Функция, в которой мы отдельно регистрируем маршруты
func (h *Handler) RegisterHandler(router *gin.Engine) {
	router.GET("/", h.Root)
	router.GET("/healthz", h.Health)

	patients := router.Group("/patients")
	{
		patients.GET("/", h.ListPatients)
		patients.POST("/", h.CreatePatient)
		patients.GET("/:id", h.GetPatient)
		patients.GET("/:id/treatment", h.GetPatientTreatment)
	}

	treatments := router.Group("/treatments")
	{
		treatments.GET("/", h.ListTreatmentPlans)
		treatments.POST("/", h.CreateTreatmentPlan)
		treatments.GET("/:id", h.GetTreatmentPlan)
	}

	exports := router.Group("/exports")
	{
		exports.GET("/patients.xlsx", h.ExportPatients)
		exports.GET("/treatments.xlsx", h.ExportTreatmentPlans)
	}
}

func (h *Handler) Root(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"message": "Hello World"})
}

func (h *Handler) Health(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{
		"status":         "ok",
		"patients":       h.Repository.Patients.Len(),
		"treatmentPlans": h.Repository.Treatments.Len(),
	})
}

// errorHandler для более удобного вывода ошибок, формат {"detail": ...}
func (h *Handler) errorHandler(ctx *gin.Context, errorStatusCode int, err error) {
	entry := logrus.WithFields(logrus.Fields{
		"request_id": middleware.GetRequestID(ctx),
		"status":     errorStatusCode,
	})
	if errorStatusCode >= http.StatusInternalServerError {
		entry.Error(err.Error())
	} else {
		entry.Info(err.Error())
	}
	ctx.JSON(errorStatusCode, gin.H{
		"detail": err.Error(),
	})
}
