package repository

import (
	"sync"

	"oncologyassistant/internal/app/ds"
)

type PatientStore struct {
	mu       sync.RWMutex
	patients []ds.Patient
}

func NewPatientStore(seed []ds.Patient) *PatientStore {
	patients := make([]ds.Patient, len(seed))
	copy(patients, seed)
	return &PatientStore{patients: patients}
}

// List возвращает копию всех пациентов в порядке добавления.
func (s *PatientStore) List() []ds.Patient {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]ds.Patient, len(s.patients))
	copy(out, s.patients)
	return out
}

// Append не проверяет уникальность ID; GetByID вернет первое совпадение.
func (s *PatientStore) Append(p ds.Patient) ds.Patient {
	s.mu.Lock()
	s.patients = append(s.patients, p)
	s.mu.Unlock()
	return p
}

func (s *PatientStore) GetByID(id string) (ds.Patient, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, p := range s.patients {
		if p.ID == id {
			return p, nil
		}
	}
	return ds.Patient{}, ErrPatientNotFound
}

func (s *PatientStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.patients)
}
