package handler

import (
	"net/http"

	"sillah/internal/usecase"
	"sillah/pkg/response"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type RiskAssessmentHandler struct {
	riskUsecase usecase.RiskAssessmentUsecase
}

func NewRiskAssessmentHandler(riskUsecase usecase.RiskAssessmentUsecase) *RiskAssessmentHandler {
	return &RiskAssessmentHandler{
		riskUsecase: riskUsecase,
	}
}

// GetMyRiskAssessment computes the logged-in patient's hereditary risk.
// An empty family tree is 422, not Low Risk: there is nothing to assess yet.
func (h *RiskAssessmentHandler) GetMyRiskAssessment(w http.ResponseWriter, r *http.Request) {
	assessment, err := h.riskUsecase.GetMyRiskAssessment(r.Context())
	if err != nil {
		switch err {
		case usecase.ErrInsufficientFamilyData:
			response.UnprocessableEntity(w, "Add family members to generate a risk assessment", nil)
		default:
			response.InternalServerError(w, "Failed to compute risk assessment")
		}
		return
	}

	response.Success(w, http.StatusOK, "Risk assessment computed successfully", assessment)
}

// GetPatientRiskAssessment computes the assessment of an assigned patient
// for the logged-in doctor
func (h *RiskAssessmentHandler) GetPatientRiskAssessment(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	patientID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid patient ID", nil)
		return
	}

	assessment, err := h.riskUsecase.GetPatientRiskAssessment(r.Context(), patientID)
	if err != nil {
		switch err {
		case usecase.ErrPatientNotAssigned:
			response.Forbidden(w, "Patient is not assigned to you")
		case usecase.ErrInsufficientFamilyData:
			response.UnprocessableEntity(w, "Patient has no family history data yet", nil)
		default:
			response.InternalServerError(w, "Failed to compute risk assessment")
		}
		return
	}

	response.Success(w, http.StatusOK, "Risk assessment computed successfully", assessment)
}

// GetPatientFamilyMembers returns the family tree of an assigned patient
func (h *RiskAssessmentHandler) GetPatientFamilyMembers(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	patientID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid patient ID", nil)
		return
	}

	members, err := h.riskUsecase.GetPatientFamilyMembers(r.Context(), patientID)
	if err != nil {
		switch err {
		case usecase.ErrPatientNotAssigned:
			response.Forbidden(w, "Patient is not assigned to you")
		default:
			response.InternalServerError(w, "Failed to get family members")
		}
		return
	}

	response.Success(w, http.StatusOK, "Family members retrieved successfully", members)
}
