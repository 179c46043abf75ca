package repository

import "errors"

var (
	ErrPatientNotFound       = errors.New("Patient not found")
	ErrTreatmentPlanNotFound = errors.New("Treatment plan not found")
)

// Repository владеет обоими хранилищами; создается один раз при старте процесса.
type Repository struct {
	Patients   *PatientStore
	Treatments *TreatmentStore
}

func New(seed Seed) *Repository {
	return &Repository{
		Patients:   NewPatientStore(seed.Patients),
		Treatments: NewTreatmentStore(seed.TreatmentPlans),
	}
}
