package handler

import (
	"net/http"

	"sillah/internal/usecase"
	"sillah/pkg/response"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type AlertHandler struct {
	alertUsecase usecase.AlertUsecase
}

func NewAlertHandler(alertUsecase usecase.AlertUsecase) *AlertHandler {
	return &AlertHandler{
		alertUsecase: alertUsecase,
	}
}

func (h *AlertHandler) GetMyAlerts(w http.ResponseWriter, r *http.Request) {
	alerts, err := h.alertUsecase.GetMyAlerts(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get alerts")
		return
	}

	response.Success(w, http.StatusOK, "Alerts retrieved successfully", alerts)
}

// GenerateAlerts runs the rule engine over the user's current data. The
// response counts only newly created alerts; rerunning without data changes
// generates nothing.
func (h *AlertHandler) GenerateAlerts(w http.ResponseWriter, r *http.Request) {
	result, err := h.alertUsecase.GenerateMyAlerts(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to generate alerts")
		return
	}

	response.Success(w, http.StatusOK, "Alerts generated successfully", result)
}

func (h *AlertHandler) MarkAlertRead(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	alertID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid alert ID", nil)
		return
	}

	alert, err := h.alertUsecase.MarkAlertRead(r.Context(), alertID)
	if err != nil {
		switch err {
		case usecase.ErrAlertNotFound:
			response.NotFound(w, "Alert not found")
		case usecase.ErrAlertNotOwned:
			response.Forbidden(w, "Alert does not belong to you")
		default:
			response.InternalServerError(w, "Failed to mark alert as read")
		}
		return
	}

	response.Success(w, http.StatusOK, "Alert marked as read", alert)
}

func (h *AlertHandler) DeleteAlert(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	alertID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid alert ID", nil)
		return
	}

	err = h.alertUsecase.DeleteAlert(r.Context(), alertID)
	if err != nil {
		switch err {
		case usecase.ErrAlertNotFound:
			response.NotFound(w, "Alert not found")
		case usecase.ErrAlertNotOwned:
			response.Forbidden(w, "Alert does not belong to you")
		default:
			response.InternalServerError(w, "Failed to delete alert")
		}
		return
	}

	response.Success(w, http.StatusOK, "Alert deleted successfully", nil)
}
