package handler

import (
	"encoding/json"
	"net/http"

	"sillah/internal/delivery/dto"
	"sillah/internal/usecase"
	"sillah/pkg/response"
	"sillah/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type MedicationHandler struct {
	medicationUsecase usecase.MedicationUsecase
	validator         *validator.CustomValidator
}

func NewMedicationHandler(medicationUsecase usecase.MedicationUsecase, validator *validator.CustomValidator) *MedicationHandler {
	return &MedicationHandler{
		medicationUsecase: medicationUsecase,
		validator:         validator,
	}
}

func (h *MedicationHandler) GetMyMedications(w http.ResponseWriter, r *http.Request) {
	medications, err := h.medicationUsecase.GetMyMedications(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get medications")
		return
	}

	response.Success(w, http.StatusOK, "Medications retrieved successfully", medications)
}

func (h *MedicationHandler) CreateMedication(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateMedicationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	medication, err := h.medicationUsecase.CreateMedication(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrInvalidDateFormat:
			response.Error(w, http.StatusBadRequest, "Invalid date format, use YYYY-MM-DD", nil)
		default:
			response.InternalServerError(w, "Failed to create medication")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Medication created successfully", medication)
}

func (h *MedicationHandler) UpdateMedication(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	medicationID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid medication ID", nil)
		return
	}

	var req dto.UpdateMedicationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	medication, err := h.medicationUsecase.UpdateMedication(r.Context(), medicationID, &req)
	if err != nil {
		switch err {
		case usecase.ErrMedicationNotFound:
			response.NotFound(w, "Medication not found")
		case usecase.ErrMedicationNotOwned:
			response.Forbidden(w, "Medication does not belong to you")
		case usecase.ErrInvalidDateFormat:
			response.Error(w, http.StatusBadRequest, "Invalid date format, use YYYY-MM-DD", nil)
		default:
			response.InternalServerError(w, "Failed to update medication")
		}
		return
	}

	response.Success(w, http.StatusOK, "Medication updated successfully", medication)
}

func (h *MedicationHandler) DeleteMedication(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	medicationID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid medication ID", nil)
		return
	}

	err = h.medicationUsecase.DeleteMedication(r.Context(), medicationID)
	if err != nil {
		switch err {
		case usecase.ErrMedicationNotFound:
			response.NotFound(w, "Medication not found")
		case usecase.ErrMedicationNotOwned:
			response.Forbidden(w, "Medication does not belong to you")
		default:
			response.InternalServerError(w, "Failed to delete medication")
		}
		return
	}

	response.Success(w, http.StatusOK, "Medication deleted successfully", nil)
}

// PrescribeMedication lets a doctor prescribe for an assigned patient
func (h *MedicationHandler) PrescribeMedication(w http.ResponseWriter, r *http.Request) {
	var req dto.PrescribeMedicationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	medication, err := h.medicationUsecase.PrescribeMedication(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrPatientNotAssigned:
			response.Forbidden(w, "Patient is not assigned to you")
		case usecase.ErrInvalidDateFormat:
			response.Error(w, http.StatusBadRequest, "Invalid date format, use YYYY-MM-DD", nil)
		default:
			response.InternalServerError(w, "Failed to prescribe medication")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Medication prescribed successfully", medication)
}

// GetPatientMedications lists an assigned patient's medications for a doctor
func (h *MedicationHandler) GetPatientMedications(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	patientID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid patient ID", nil)
		return
	}

	medications, err := h.medicationUsecase.GetPatientMedications(r.Context(), patientID)
	if err != nil {
		switch err {
		case usecase.ErrPatientNotAssigned:
			response.Forbidden(w, "Patient is not assigned to you")
		default:
			response.InternalServerError(w, "Failed to get patient medications")
		}
		return
	}

	response.Success(w, http.StatusOK, "Medications retrieved successfully", medications)
}
