package dto

import (
	"time"
)

// Request DTOs

type CreatePatientRequest struct {
	NHSNumber   string    `json:"nhsNumber" validate:"required,max=20"`
	Name        string    `json:"name" validate:"required,max=100"`
	DateOfBirth time.Time `json:"dateOfBirth" validate:"required"`
	GPPractice  string    `json:"gpPractice"`
}

// UpdatePatientRequest replaces every mutable field of a patient. There are no
// partial-update semantics; omitted fields overwrite with their zero values.
type UpdatePatientRequest struct {
	NHSNumber   string    `json:"nhsNumber" validate:"required,max=20"`
	Name        string    `json:"name" validate:"required,max=100"`
	DateOfBirth time.Time `json:"dateOfBirth" validate:"required"`
	GPPractice  string    `json:"gpPractice"`
	IsActive    bool      `json:"isActive"`
}

// Response DTOs

type PatientResponse struct {
	ID          int       `json:"id"`
	NHSNumber   string    `json:"nhsNumber"`
	Name        string    `json:"name"`
	DateOfBirth time.Time `json:"dateOfBirth"`
	GPPractice  string    `json:"gpPractice"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
	IsActive    bool      `json:"isActive"`
}
