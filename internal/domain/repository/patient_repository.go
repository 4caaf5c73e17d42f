package repository

import (
	"context"

	"patient-records-service/internal/domain/entity"
)

// PatientRepository abstracts the patient store so the usecase layer stays
// portable across backends. FindByID returns (nil, nil) when no record exists;
// absence is not an error.
type PatientRepository interface {
	Create(ctx context.Context, patient *entity.Patient) error
	FindByID(ctx context.Context, id int) (*entity.Patient, error)
	Search(ctx context.Context, search entity.PatientSearch) ([]entity.Patient, error)
	Update(ctx context.Context, patient *entity.Patient) error
	Delete(ctx context.Context, id int) error
}
