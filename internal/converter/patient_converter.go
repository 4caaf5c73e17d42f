package converter

import (
	"patient-records-service/internal/delivery/dto"
	"patient-records-service/internal/domain/entity"
)

// PatientToResponse converts a Patient entity to its API-facing shape. It is a
// plain 1:1 field copy with no store access.
func PatientToResponse(patient *entity.Patient) *dto.PatientResponse {
	if patient == nil {
		return nil
	}

	return &dto.PatientResponse{
		ID:          patient.ID,
		NHSNumber:   patient.NHSNumber,
		Name:        patient.Name,
		DateOfBirth: patient.DateOfBirth,
		GPPractice:  patient.GPPractice,
		CreatedAt:   patient.CreatedAt,
		UpdatedAt:   patient.UpdatedAt,
		IsActive:    patient.IsActive,
	}
}
