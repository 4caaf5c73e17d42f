package usecase

import (
	"context"
	"errors"
	"time"

	"patient-records-service/internal/converter"
	"patient-records-service/internal/delivery/dto"
	"patient-records-service/internal/domain/entity"
	"patient-records-service/internal/domain/repository"
	"patient-records-service/pkg/response"

	"github.com/sirupsen/logrus"
)

var (
	ErrPatientNotFound = errors.New("patient not found")
)

type PatientUsecase interface {
	Create(ctx context.Context, req *dto.CreatePatientRequest) (*dto.PatientResponse, error)
	GetAll(ctx context.Context, search entity.PatientSearch) ([]dto.PatientResponse, error)
	GetByID(ctx context.Context, id int) (*dto.PatientResponse, error)
	Update(ctx context.Context, id int, req *dto.UpdatePatientRequest) error
	Delete(ctx context.Context, id int) (*dto.PatientResponse, error)
}

type patientUsecase struct {
	log         *logrus.Logger
	patientRepo repository.PatientRepository
}

func NewPatientUsecase(log *logrus.Logger, patientRepo repository.PatientRepository) PatientUsecase {
	return &patientUsecase{
		log:         log,
		patientRepo: patientRepo,
	}
}

func (u *patientUsecase) Create(ctx context.Context, req *dto.CreatePatientRequest) (*dto.PatientResponse, error) {
	if req == nil {
		panic(&response.MissingArgumentError{Name: "req"})
	}

	now := time.Now().UTC()
	patient := &entity.Patient{
		NHSNumber:   req.NHSNumber,
		Name:        req.Name,
		DateOfBirth: req.DateOfBirth,
		GPPractice:  req.GPPractice,
		CreatedAt:   now,
		UpdatedAt:   now,
		IsActive:    true,
	}

	if err := u.patientRepo.Create(ctx, patient); err != nil {
		u.log.Warnf("Failed to create patient: %+v", err)
		return nil, err
	}

	return converter.PatientToResponse(patient), nil
}

// GetAll returns one page of patients, filtered by name and ordered by the
// requested sort key. Out-of-range pages yield an empty slice, never an error.
func (u *patientUsecase) GetAll(ctx context.Context, search entity.PatientSearch) ([]dto.PatientResponse, error) {
	patients, err := u.patientRepo.Search(ctx, search.Normalize())
	if err != nil {
		u.log.Warnf("Failed to search patients: %+v", err)
		return nil, err
	}

	responses := make([]dto.PatientResponse, 0, len(patients))
	for i := range patients {
		responses = append(responses, *converter.PatientToResponse(&patients[i]))
	}

	return responses, nil
}

func (u *patientUsecase) GetByID(ctx context.Context, id int) (*dto.PatientResponse, error) {
	patient, err := u.patientRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find patient %d: %+v", id, err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	return converter.PatientToResponse(patient), nil
}

// Update overwrites every mutable field of the patient and refreshes the
// updated-at timestamp. A missing id is a silent no-op; the caller receives no
// failure signal (business rule, not an oversight).
func (u *patientUsecase) Update(ctx context.Context, id int, req *dto.UpdatePatientRequest) error {
	if req == nil {
		panic(&response.MissingArgumentError{Name: "req"})
	}

	patient, err := u.patientRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find patient %d: %+v", id, err)
		return err
	}
	if patient == nil {
		return nil
	}

	patient.NHSNumber = req.NHSNumber
	patient.Name = req.Name
	patient.DateOfBirth = req.DateOfBirth
	patient.GPPractice = req.GPPractice
	patient.IsActive = req.IsActive
	patient.UpdatedAt = time.Now().UTC()

	if err := u.patientRepo.Update(ctx, patient); err != nil {
		u.log.Warnf("Failed to update patient %d: %+v", id, err)
		return err
	}

	return nil
}

// Delete removes the patient and returns its last-known state as confirmation.
func (u *patientUsecase) Delete(ctx context.Context, id int) (*dto.PatientResponse, error) {
	patient, err := u.patientRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find patient %d: %+v", id, err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	if err := u.patientRepo.Delete(ctx, id); err != nil {
		u.log.Warnf("Failed to delete patient %d: %+v", id, err)
		return nil, err
	}

	u.log.Infof("Patient id: %d - %s was removed", patient.ID, patient.Name)

	return converter.PatientToResponse(patient), nil
}
