package repository

import (
	"context"
	"errors"
	"fmt"

	"patient-records-service/internal/domain/entity"
	domainRepo "patient-records-service/internal/domain/repository"

	"gorm.io/gorm"
)

type patientRepository struct {
	db *gorm.DB
}

func NewPatientRepository(db *gorm.DB) domainRepo.PatientRepository {
	return &patientRepository{db: db}
}

func (r *patientRepository) Create(ctx context.Context, patient *entity.Patient) error {
	return r.db.WithContext(ctx).Create(patient).Error
}

func (r *patientRepository) FindByID(ctx context.Context, id int) (*entity.Patient, error) {
	var patient entity.Patient
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&patient).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &patient, nil
}

// Search applies filter, sort and pagination in that order. The id column is
// always appended as a secondary sort key so that pages stay stable when the
// primary key has duplicate values.
func (r *patientRepository) Search(ctx context.Context, search entity.PatientSearch) ([]entity.Patient, error) {
	db := r.db.WithContext(ctx).Model(&entity.Patient{})

	if search.Name != "" {
		db = db.Where("name ILIKE ?", "%"+search.Name+"%")
	}

	direction := "DESC"
	if search.Ascending {
		direction = "ASC"
	}
	order := fmt.Sprintf("%s %s", search.SortBy.Column(), direction)
	if search.SortBy != entity.SortByID {
		order = fmt.Sprintf("%s, id %s", order, direction)
	}

	var patients []entity.Patient
	err := db.Order(order).
		Offset(search.Offset()).
		Limit(search.PageSize).
		Find(&patients).Error
	if err != nil {
		return nil, err
	}

	return patients, nil
}

func (r *patientRepository) Update(ctx context.Context, patient *entity.Patient) error {
	return r.db.WithContext(ctx).Save(patient).Error
}

func (r *patientRepository) Delete(ctx context.Context, id int) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entity.Patient{}).Error
}
