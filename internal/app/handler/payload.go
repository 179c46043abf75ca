package handler

import (
	"bytes"
	"encoding/json"
	"math"
	"reflect"
	"strconv"
	"strings"

	"oncologyassistant/internal/app/ds"
)

// laxInt принимает целое число, число с нулевой дробной частью (62.0)
// или строку с целым числом ("62"). Остальное - ошибка типа.
type laxInt int

func (n *laxInt) UnmarshalJSON(data []byte) error {
	raw := bytes.TrimSpace(data)

	var f float64
	if err := json.Unmarshal(raw, &f); err == nil {
		if f != math.Trunc(f) || math.Abs(f) > 1<<53 {
			return &json.UnmarshalTypeError{Value: "number " + string(raw), Type: reflect.TypeOf(0)}
		}
		*n = laxInt(f)
		return nil
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		v, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil {
			return &json.UnmarshalTypeError{Value: "string", Type: reflect.TypeOf(0)}
		}
		*n = laxInt(v)
		return nil
	}

	value := "value"
	switch {
	case bytes.HasPrefix(raw, []byte("{")):
		value = "object"
	case bytes.HasPrefix(raw, []byte("[")):
		value = "array"
	case bytes.Equal(raw, []byte("true")), bytes.Equal(raw, []byte("false")):
		value = "bool"
	}
	return &json.UnmarshalTypeError{Value: value, Type: reflect.TypeOf(0)}
}

type patientPayload struct {
	ID         *string `json:"id" binding:"required"`
	Name       *string `json:"name" binding:"required"`
	Age        *laxInt `json:"age" binding:"required"`
	Diagnosis  *string `json:"diagnosis" binding:"required"`
	RiskLevel  *string `json:"riskLevel" binding:"required"`
	Status     *string `json:"status" binding:"required"`
	LastUpdate *string `json:"lastUpdate" binding:"required"`
	Avatar     *string `json:"avatar" binding:"required"`
}

func (p patientPayload) toPatient() ds.Patient {
	return ds.Patient{
		ID:         *p.ID,
		Name:       *p.Name,
		Age:        int(*p.Age),
		Diagnosis:  *p.Diagnosis,
		RiskLevel:  *p.RiskLevel,
		Status:     *p.Status,
		LastUpdate: *p.LastUpdate,
		Avatar:     *p.Avatar,
	}
}

type treatmentPlanPayload struct {
	ID             *string `json:"id" binding:"required"`
	PatientID      *string `json:"patientId" binding:"required"`
	Recommendation *string `json:"recommendation" binding:"required"`
	Rationale      *string `json:"rationale" binding:"required"`
	Confidence     *laxInt `json:"confidence" binding:"required"`
	DataPoints     *laxInt `json:"dataPoints" binding:"required"`
	CreatedAt      *string `json:"createdAt" binding:"required"`
	UpdatedAt      *string `json:"updatedAt" binding:"required"`
}

func (p treatmentPlanPayload) toTreatmentPlan() ds.TreatmentPlan {
	return ds.TreatmentPlan{
		ID:             *p.ID,
		PatientID:      *p.PatientID,
		Recommendation: *p.Recommendation,
		Rationale:      *p.Rationale,
		Confidence:     int(*p.Confidence),
		DataPoints:     int(*p.DataPoints),
		CreatedAt:      *p.CreatedAt,
		UpdatedAt:      *p.UpdatedAt,
	}
}
