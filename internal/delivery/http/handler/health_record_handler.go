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

type HealthRecordHandler struct {
	healthRecordUsecase usecase.HealthRecordUsecase
	validator           *validator.CustomValidator
}

func NewHealthRecordHandler(healthRecordUsecase usecase.HealthRecordUsecase, validator *validator.CustomValidator) *HealthRecordHandler {
	return &HealthRecordHandler{
		healthRecordUsecase: healthRecordUsecase,
		validator:           validator,
	}
}

func (h *HealthRecordHandler) GetMyHealthRecords(w http.ResponseWriter, r *http.Request) {
	records, err := h.healthRecordUsecase.GetMyHealthRecords(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get health records")
		return
	}

	response.Success(w, http.StatusOK, "Health records retrieved successfully", records)
}

func (h *HealthRecordHandler) GetHealthRecord(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	recordID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid health record ID", nil)
		return
	}

	record, err := h.healthRecordUsecase.GetHealthRecord(r.Context(), recordID)
	if err != nil {
		switch err {
		case usecase.ErrHealthRecordNotFound:
			response.NotFound(w, "Health record not found")
		case usecase.ErrHealthRecordNotOwned:
			response.Forbidden(w, "Health record does not belong to you")
		default:
			response.InternalServerError(w, "Failed to get health record")
		}
		return
	}

	response.Success(w, http.StatusOK, "Health record retrieved successfully", record)
}

func (h *HealthRecordHandler) CreateHealthRecord(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateHealthRecordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	record, err := h.healthRecordUsecase.CreateHealthRecord(r.Context(), &req)
	if err != nil {
		response.InternalServerError(w, "Failed to create health record")
		return
	}

	response.Success(w, http.StatusCreated, "Health record created successfully", record)
}

func (h *HealthRecordHandler) UpdateHealthRecord(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	recordID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid health record ID", nil)
		return
	}

	var req dto.UpdateHealthRecordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	record, err := h.healthRecordUsecase.UpdateHealthRecord(r.Context(), recordID, &req)
	if err != nil {
		switch err {
		case usecase.ErrHealthRecordNotFound:
			response.NotFound(w, "Health record not found")
		case usecase.ErrHealthRecordNotOwned:
			response.Forbidden(w, "Health record does not belong to you")
		default:
			response.InternalServerError(w, "Failed to update health record")
		}
		return
	}

	response.Success(w, http.StatusOK, "Health record updated successfully", record)
}

func (h *HealthRecordHandler) DeleteHealthRecord(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	recordID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid health record ID", nil)
		return
	}

	err = h.healthRecordUsecase.DeleteHealthRecord(r.Context(), recordID)
	if err != nil {
		switch err {
		case usecase.ErrHealthRecordNotFound:
			response.NotFound(w, "Health record not found")
		case usecase.ErrHealthRecordNotOwned:
			response.Forbidden(w, "Health record does not belong to you")
		default:
			response.InternalServerError(w, "Failed to delete health record")
		}
		return
	}

	response.Success(w, http.StatusOK, "Health record deleted successfully", nil)
}
