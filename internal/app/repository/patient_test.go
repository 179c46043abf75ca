package repository

import (
	"sync"
	"testing"

	"oncologyassistant/internal/app/ds"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPatientStore_ListReturnsSeedInOrder(t *testing.T) {
	repo := New(DefaultSeed())

	list := repo.Patients.List()

	require.Len(t, list, 6)
	for i, p := range list {
		assert.Equal(t, DefaultSeed().Patients[i], p)
	}
}

func TestPatientStore_GetByID(t *testing.T) {
	repo := New(DefaultSeed())

	t.Run("Should return every seeded patient", func(t *testing.T) {
		for _, want := range DefaultSeed().Patients {
			got, err := repo.Patients.GetByID(want.ID)
			require.NoError(t, err)
			assert.Equal(t, want, got)
		}
	})

	t.Run("Should report unknown id as not found", func(t *testing.T) {
		_, err := repo.Patients.GetByID("999")
		assert.ErrorIs(t, err, ErrPatientNotFound)
		assert.Equal(t, "Patient not found", err.Error())
	})
}

func TestPatientStore_AppendIsVisible(t *testing.T) {
	repo := New(DefaultSeed())
	p := ds.Patient{ID: "7", Name: "Ada Lovelace", Age: 36, RiskLevel: "Low"}

	got := repo.Patients.Append(p)

	assert.Equal(t, p, got)
	list := repo.Patients.List()
	require.Len(t, list, 7)
	assert.Equal(t, p, list[6])

	found, err := repo.Patients.GetByID("7")
	require.NoError(t, err)
	assert.Equal(t, p, found)
}

func TestPatientStore_DuplicateIDReturnsFirst(t *testing.T) {
	repo := New(DefaultSeed())
	repo.Patients.Append(ds.Patient{ID: "1", Name: "Duplicate"})

	got, err := repo.Patients.GetByID("1")

	require.NoError(t, err)
	assert.Equal(t, "Jane Smith", got.Name)
	assert.Equal(t, 7, repo.Patients.Len())
}

func TestPatientStore_ListIsACopy(t *testing.T) {
	repo := New(DefaultSeed())

	list := repo.Patients.List()
	list[0].Name = "changed"

	got, err := repo.Patients.GetByID("1")
	require.NoError(t, err)
	assert.Equal(t, "Jane Smith", got.Name)
}

func TestPatientStore_SeedIsNotAliased(t *testing.T) {
	seed := DefaultSeed()
	repo := New(seed)

	seed.Patients[0].Name = "changed"

	got, err := repo.Patients.GetByID("1")
	require.NoError(t, err)
	assert.Equal(t, "Jane Smith", got.Name)
}

func TestPatientStore_ConcurrentAppendsAreNotLost(t *testing.T) {
	repo := New(DefaultSeed())
	const writers = 100

	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			repo.Patients.Append(ds.Patient{ID: "c", Age: i})
			_ = repo.Patients.List()
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 6+writers, repo.Patients.Len())
}
