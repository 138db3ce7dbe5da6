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

type FamilyMemberHandler struct {
	familyMemberUsecase usecase.FamilyMemberUsecase
	validator           *validator.CustomValidator
}

func NewFamilyMemberHandler(familyMemberUsecase usecase.FamilyMemberUsecase, validator *validator.CustomValidator) *FamilyMemberHandler {
	return &FamilyMemberHandler{
		familyMemberUsecase: familyMemberUsecase,
		validator:           validator,
	}
}

func (h *FamilyMemberHandler) GetMyFamilyMembers(w http.ResponseWriter, r *http.Request) {
	members, err := h.familyMemberUsecase.GetMyFamilyMembers(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get family members")
		return
	}

	response.Success(w, http.StatusOK, "Family members retrieved successfully", members)
}

func (h *FamilyMemberHandler) GetFamilyMember(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	memberID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid family member ID", nil)
		return
	}

	member, err := h.familyMemberUsecase.GetFamilyMember(r.Context(), memberID)
	if err != nil {
		switch err {
		case usecase.ErrFamilyMemberNotFound:
			response.NotFound(w, "Family member not found")
		case usecase.ErrFamilyMemberNotOwned:
			response.Forbidden(w, "Family member does not belong to you")
		default:
			response.InternalServerError(w, "Failed to get family member")
		}
		return
	}

	response.Success(w, http.StatusOK, "Family member retrieved successfully", member)
}

func (h *FamilyMemberHandler) CreateFamilyMember(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateFamilyMemberRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	member, err := h.familyMemberUsecase.CreateFamilyMember(r.Context(), &req)
	if err != nil {
		response.InternalServerError(w, "Failed to create family member")
		return
	}

	response.Success(w, http.StatusCreated, "Family member created successfully", member)
}

func (h *FamilyMemberHandler) UpdateFamilyMember(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	memberID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid family member ID", nil)
		return
	}

	var req dto.UpdateFamilyMemberRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	member, err := h.familyMemberUsecase.UpdateFamilyMember(r.Context(), memberID, &req)
	if err != nil {
		switch err {
		case usecase.ErrFamilyMemberNotFound:
			response.NotFound(w, "Family member not found")
		case usecase.ErrFamilyMemberNotOwned:
			response.Forbidden(w, "Family member does not belong to you")
		default:
			response.InternalServerError(w, "Failed to update family member")
		}
		return
	}

	response.Success(w, http.StatusOK, "Family member updated successfully", member)
}

func (h *FamilyMemberHandler) DeleteFamilyMember(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	memberID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid family member ID", nil)
		return
	}

	err = h.familyMemberUsecase.DeleteFamilyMember(r.Context(), memberID)
	if err != nil {
		switch err {
		case usecase.ErrFamilyMemberNotFound:
			response.NotFound(w, "Family member not found")
		case usecase.ErrFamilyMemberNotOwned:
			response.Forbidden(w, "Family member does not belong to you")
		default:
			response.InternalServerError(w, "Failed to delete family member")
		}
		return
	}

	response.Success(w, http.StatusOK, "Family member deleted successfully", nil)
}
