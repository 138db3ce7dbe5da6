package handler

import (
	"encoding/json"
	"net/http"

	"sillah/internal/delivery/dto"
	"sillah/internal/usecase"
	"sillah/pkg/response"
	"sillah/pkg/validator"
)

type DoctorHandler struct {
	doctorPatientUsecase usecase.DoctorPatientUsecase
	validator            *validator.CustomValidator
}

func NewDoctorHandler(doctorPatientUsecase usecase.DoctorPatientUsecase, validator *validator.CustomValidator) *DoctorHandler {
	return &DoctorHandler{
		doctorPatientUsecase: doctorPatientUsecase,
		validator:            validator,
	}
}

// GetMyPatients returns all patients assigned to the logged-in doctor
func (h *DoctorHandler) GetMyPatients(w http.ResponseWriter, r *http.Request) {
	patients, err := h.doctorPatientUsecase.GetMyPatients(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get patients")
		return
	}

	response.Success(w, http.StatusOK, "Patients retrieved successfully", patients)
}

// AssignPatient puts a patient under a doctor's care (admin only)
func (h *DoctorHandler) AssignPatient(w http.ResponseWriter, r *http.Request) {
	var req dto.AssignPatientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	if err := h.doctorPatientUsecase.AssignPatient(r.Context(), &req); err != nil {
		switch err {
		case usecase.ErrDoctorNotFound:
			response.NotFound(w, "Doctor not found")
		case usecase.ErrPatientNotFound:
			response.NotFound(w, "Patient not found")
		default:
			response.InternalServerError(w, "Failed to assign patient")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Patient assigned successfully", nil)
}

// UnassignPatient removes a patient from a doctor's care (admin only)
func (h *DoctorHandler) UnassignPatient(w http.ResponseWriter, r *http.Request) {
	var req dto.AssignPatientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	if err := h.doctorPatientUsecase.UnassignPatient(r.Context(), &req); err != nil {
		switch err {
		case usecase.ErrAssignmentNotFound:
			response.NotFound(w, "Patient is not assigned to this doctor")
		default:
			response.InternalServerError(w, "Failed to unassign patient")
		}
		return
	}

	response.Success(w, http.StatusOK, "Patient unassigned successfully", nil)
}
