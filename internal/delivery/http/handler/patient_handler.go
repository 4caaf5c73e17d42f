package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"patient-records-service/internal/delivery/dto"
	"patient-records-service/internal/domain/entity"
	"patient-records-service/internal/usecase"
	"patient-records-service/pkg/response"
	"patient-records-service/pkg/validator"

	"github.com/gorilla/mux"
)

type PatientHandler struct {
	patientUsecase usecase.PatientUsecase
	validator      *validator.CustomValidator
}

func NewPatientHandler(patientUsecase usecase.PatientUsecase, validator *validator.CustomValidator) *PatientHandler {
	return &PatientHandler{
		patientUsecase: patientUsecase,
		validator:      validator,
	}
}

// GetAll handles listing patients with optional name filter, sort and paging.
// Absent or unparsable query values fall back to their defaults: descending
// order, page 1, page size 5, sort by id.
func (h *PatientHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	ascending, _ := strconv.ParseBool(query.Get("ascending"))
	pageNumber, _ := strconv.Atoi(query.Get("pageNumber"))
	pageSize, _ := strconv.Atoi(query.Get("pageSize"))

	search := entity.PatientSearch{
		Name:       query.Get("name"),
		SortBy:     entity.ParseSortKey(query.Get("sortBy")),
		Ascending:  ascending,
		PageNumber: pageNumber,
		PageSize:   pageSize,
	}

	patients, err := h.patientUsecase.GetAll(r.Context(), search)
	if err != nil {
		response.InternalServerError(w, "Failed to get patients")
		return
	}

	response.JSON(w, http.StatusOK, patients)
}

// GetByID handles getting a patient by id.
func (h *PatientHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid patient id")
		return
	}

	patient, err := h.patientUsecase.GetByID(r.Context(), id)
	if err != nil {
		switch err {
		case usecase.ErrPatientNotFound:
			response.NotFound(w, "Patient not found")
		default:
			response.InternalServerError(w, "Failed to get patient")
		}
		return
	}

	response.JSON(w, http.StatusOK, patient)
}

// Create handles patient creation and answers 201 with a Location header
// pointing at the new record.
func (h *PatientHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreatePatientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	patient, err := h.patientUsecase.Create(r.Context(), &req)
	if err != nil {
		response.InternalServerError(w, "Failed to create patient")
		return
	}

	w.Header().Set("Location", fmt.Sprintf("/api/v1/patients/%d", patient.ID))
	response.JSON(w, http.StatusCreated, patient)
}

// Update handles a full replace of the patient's mutable fields. It answers
// 204 whether or not the id exists; an unknown id is a no-op.
func (h *PatientHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid patient id")
		return
	}

	var req dto.UpdatePatientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	if err := h.patientUsecase.Update(r.Context(), id, &req); err != nil {
		response.InternalServerError(w, "Failed to update patient")
		return
	}

	response.NoContent(w)
}

// Delete handles patient deletion and returns the removed record as
// confirmation.
func (h *PatientHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid patient id")
		return
	}

	patient, err := h.patientUsecase.Delete(r.Context(), id)
	if err != nil {
		switch err {
		case usecase.ErrPatientNotFound:
			response.NotFound(w, "Patient not found")
		default:
			response.InternalServerError(w, "Failed to delete patient")
		}
		return
	}

	response.JSON(w, http.StatusOK, patient)
}
