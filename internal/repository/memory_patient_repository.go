package repository

import (
	"context"
	"sort"
	"sync"

	"patient-records-service/internal/domain/entity"
	domainRepo "patient-records-service/internal/domain/repository"
)

// memoryPatientRepository is an in-process patient store used for local
// development (DB_DRIVER=memory) and tests. Ids are assigned sequentially and
// never reused within the store's lifetime.
type memoryPatientRepository struct {
	mu       sync.RWMutex
	patients map[int]entity.Patient
	nextID   int
}

func NewMemoryPatientRepository() domainRepo.PatientRepository {
	return &memoryPatientRepository{
		patients: make(map[int]entity.Patient),
		nextID:   1,
	}
}

func (r *memoryPatientRepository) Create(ctx context.Context, patient *entity.Patient) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	patient.ID = r.nextID
	r.nextID++
	r.patients[patient.ID] = *patient
	return nil
}

func (r *memoryPatientRepository) FindByID(ctx context.Context, id int) (*entity.Patient, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	patient, ok := r.patients[id]
	if !ok {
		return nil, nil
	}
	return &patient, nil
}

// Search runs the pipeline in the order that keeps pagination correct:
// filter first, then sort, then skip/take.
func (r *memoryPatientRepository) Search(ctx context.Context, search entity.PatientSearch) ([]entity.Patient, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	matched := make([]entity.Patient, 0, len(r.patients))
	for _, patient := range r.patients {
		if search.MatchesName(patient.Name) {
			matched = append(matched, patient)
		}
	}
	r.mu.RUnlock()

	sort.Slice(matched, func(i, j int) bool {
		return lessPatients(matched[i], matched[j], search.SortBy, search.Ascending)
	})

	offset := search.Offset()
	if offset >= len(matched) {
		return []entity.Patient{}, nil
	}
	end := offset + search.PageSize
	if end > len(matched) {
		end = len(matched)
	}

	return matched[offset:end], nil
}

// lessPatients orders two patients by the sort key, falling back to id so the
// ordering is total even when key values collide.
func lessPatients(a, b entity.Patient, key entity.SortKey, ascending bool) bool {
	if !ascending {
		a, b = b, a
	}

	switch key {
	case entity.SortByName:
		if a.Name != b.Name {
			return a.Name < b.Name
		}
	case entity.SortByDateOfBirth:
		if !a.DateOfBirth.Equal(b.DateOfBirth) {
			return a.DateOfBirth.Before(b.DateOfBirth)
		}
	case entity.SortByCreatedAt:
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.Before(b.CreatedAt)
		}
	}
	return a.ID < b.ID
}

func (r *memoryPatientRepository) Update(ctx context.Context, patient *entity.Patient) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.patients[patient.ID] = *patient
	return nil
}

func (r *memoryPatientRepository) Delete(ctx context.Context, id int) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.patients, id)
	return nil
}
