package repository

import (
	"sync"

	"oncologyassistant/internal/app/ds"
)

type TreatmentStore struct {
	mu    sync.RWMutex
	plans []ds.TreatmentPlan
}

func NewTreatmentStore(seed []ds.TreatmentPlan) *TreatmentStore {
	plans := make([]ds.TreatmentPlan, len(seed))
	copy(plans, seed)
	return &TreatmentStore{plans: plans}
}

func (s *TreatmentStore) List() []ds.TreatmentPlan {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]ds.TreatmentPlan, len(s.plans))
	copy(out, s.plans)
	return out
}

// GetByID ищет по ID самого плана, а не по PatientID.
func (s *TreatmentStore) GetByID(id string) (ds.TreatmentPlan, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, p := range s.plans {
		if p.ID == id {
			return p, nil
		}
	}
	return ds.TreatmentPlan{}, ErrTreatmentPlanNotFound
}

// GetByPatientID возвращает первый план, ссылающийся на patientID.
func (s *TreatmentStore) GetByPatientID(patientID string) (ds.TreatmentPlan, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, p := range s.plans {
		if p.PatientID == patientID {
			return p, nil
		}
	}
	return ds.TreatmentPlan{}, ErrTreatmentPlanNotFound
}

// Create возвращает план как есть и не сохраняет его.
// Созданные планы не появляются в List/GetByID.
func (s *TreatmentStore) Create(p ds.TreatmentPlan) ds.TreatmentPlan {
	return p
}

func (s *TreatmentStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.plans)
}
