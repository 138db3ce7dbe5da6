package http

import (
	"net/http"

	"sillah/internal/delivery/http/handler"
	"sillah/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router                *mux.Router
	authHandler           *handler.AuthHandler
	familyMemberHandler   *handler.FamilyMemberHandler
	healthRecordHandler   *handler.HealthRecordHandler
	riskAssessmentHandler *handler.RiskAssessmentHandler
	alertHandler          *handler.AlertHandler
	medicationHandler     *handler.MedicationHandler
	appointmentHandler    *handler.AppointmentHandler
	doctorScheduleHandler *handler.DoctorScheduleHandler
	doctorHandler         *handler.DoctorHandler
	authMiddleware        *middleware.AuthMiddleware
	corsMiddleware        *middleware.CORSMiddleware
}

func NewRouter(
	authHandler *handler.AuthHandler,
	familyMemberHandler *handler.FamilyMemberHandler,
	healthRecordHandler *handler.HealthRecordHandler,
	riskAssessmentHandler *handler.RiskAssessmentHandler,
	alertHandler *handler.AlertHandler,
	medicationHandler *handler.MedicationHandler,
	appointmentHandler *handler.AppointmentHandler,
	doctorScheduleHandler *handler.DoctorScheduleHandler,
	doctorHandler *handler.DoctorHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:                mux.NewRouter(),
		authHandler:           authHandler,
		familyMemberHandler:   familyMemberHandler,
		healthRecordHandler:   healthRecordHandler,
		riskAssessmentHandler: riskAssessmentHandler,
		alertHandler:          alertHandler,
		medicationHandler:     medicationHandler,
		appointmentHandler:    appointmentHandler,
		doctorScheduleHandler: doctorScheduleHandler,
		doctorHandler:         doctorHandler,
		authMiddleware:        authMiddleware,
		corsMiddleware:        corsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Auth routes (public)
	auth := api.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/register/patient", r.authHandler.RegisterPatient).Methods(http.MethodPost)
	auth.HandleFunc("/register/doctor", r.authHandler.RegisterDoctor).Methods(http.MethodPost)
	auth.HandleFunc("/login", r.authHandler.Login).Methods(http.MethodPost)
	auth.HandleFunc("/refresh-token", r.authHandler.RefreshToken).Methods(http.MethodPost)

	// Auth routes (protected)
	authProtected := api.PathPrefix("/auth").Subrouter()
	authProtected.Use(r.authMiddleware.Authenticate)
	authProtected.HandleFunc("/logout", r.authHandler.Logout).Methods(http.MethodPost)
	authProtected.HandleFunc("/me", r.authHandler.GetCurrentUser).Methods(http.MethodGet)

	// Patient routes (protected - patient only)
	patient := api.PathPrefix("").Subrouter()
	patient.Use(r.authMiddleware.Authenticate)
	patient.Use(middleware.RequirePatient)

	// Family health tree
	patient.HandleFunc("/family-members", r.familyMemberHandler.GetMyFamilyMembers).Methods(http.MethodGet)
	patient.HandleFunc("/family-members", r.familyMemberHandler.CreateFamilyMember).Methods(http.MethodPost)
	patient.HandleFunc("/family-members/{id}", r.familyMemberHandler.GetFamilyMember).Methods(http.MethodGet)
	patient.HandleFunc("/family-members/{id}", r.familyMemberHandler.UpdateFamilyMember).Methods(http.MethodPut)
	patient.HandleFunc("/family-members/{id}", r.familyMemberHandler.DeleteFamilyMember).Methods(http.MethodDelete)

	// Personal health records
	patient.HandleFunc("/health-records", r.healthRecordHandler.GetMyHealthRecords).Methods(http.MethodGet)
	patient.HandleFunc("/health-records", r.healthRecordHandler.CreateHealthRecord).Methods(http.MethodPost)
	patient.HandleFunc("/health-records/{id}", r.healthRecordHandler.GetHealthRecord).Methods(http.MethodGet)
	patient.HandleFunc("/health-records/{id}", r.healthRecordHandler.UpdateHealthRecord).Methods(http.MethodPut)
	patient.HandleFunc("/health-records/{id}", r.healthRecordHandler.DeleteHealthRecord).Methods(http.MethodDelete)

	// Hereditary risk assessment (computed on demand)
	patient.HandleFunc("/risk-assessment", r.riskAssessmentHandler.GetMyRiskAssessment).Methods(http.MethodGet)

	// Alerts
	patient.HandleFunc("/alerts", r.alertHandler.GetMyAlerts).Methods(http.MethodGet)
	patient.HandleFunc("/alerts/generate", r.alertHandler.GenerateAlerts).Methods(http.MethodPost)
	patient.HandleFunc("/alerts/{id}/read", r.alertHandler.MarkAlertRead).Methods(http.MethodPatch)
	patient.HandleFunc("/alerts/{id}", r.alertHandler.DeleteAlert).Methods(http.MethodDelete)

	// Medications
	patient.HandleFunc("/medications", r.medicationHandler.GetMyMedications).Methods(http.MethodGet)
	patient.HandleFunc("/medications", r.medicationHandler.CreateMedication).Methods(http.MethodPost)
	patient.HandleFunc("/medications/{id}", r.medicationHandler.UpdateMedication).Methods(http.MethodPut)
	patient.HandleFunc("/medications/{id}", r.medicationHandler.DeleteMedication).Methods(http.MethodDelete)

	// Appointments
	patient.HandleFunc("/appointments", r.appointmentHandler.GetMyAppointments).Methods(http.MethodGet)
	patient.HandleFunc("/appointments", r.appointmentHandler.BookAppointment).Methods(http.MethodPost)
	patient.HandleFunc("/appointments/{id}", r.appointmentHandler.CancelAppointment).Methods(http.MethodDelete)

	// Browse available schedules
	patient.HandleFunc("/schedules", r.doctorScheduleHandler.GetAllSchedules).Methods(http.MethodGet)
	patient.HandleFunc("/schedules/{id}", r.doctorScheduleHandler.GetSchedule).Methods(http.MethodGet)

	// Doctor routes (protected - doctor only)
	doctor := api.PathPrefix("/doctor").Subrouter()
	doctor.Use(r.authMiddleware.Authenticate)
	doctor.Use(middleware.RequireDoctor)
	doctor.HandleFunc("/patients", r.doctorHandler.GetMyPatients).Methods(http.MethodGet)
	doctor.HandleFunc("/patients/{id}/family-members", r.riskAssessmentHandler.GetPatientFamilyMembers).Methods(http.MethodGet)
	doctor.HandleFunc("/patients/{id}/risk-assessment", r.riskAssessmentHandler.GetPatientRiskAssessment).Methods(http.MethodGet)
	doctor.HandleFunc("/patients/{id}/medications", r.medicationHandler.GetPatientMedications).Methods(http.MethodGet)
	doctor.HandleFunc("/appointments/{id}/confirm", r.appointmentHandler.ConfirmAppointment).Methods(http.MethodPatch)
	doctor.HandleFunc("/medications", r.medicationHandler.PrescribeMedication).Methods(http.MethodPost)

	// Admin routes (protected - admin only)
	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(r.authMiddleware.Authenticate)
	admin.Use(middleware.RequireAdmin)

	// Schedule management (admin)
	admin.HandleFunc("/schedules", r.doctorScheduleHandler.CreateSchedule).Methods(http.MethodPost)
	admin.HandleFunc("/schedules", r.doctorScheduleHandler.GetAllSchedules).Methods(http.MethodGet)
	admin.HandleFunc("/schedules/{id}", r.doctorScheduleHandler.GetSchedule).Methods(http.MethodGet)
	admin.HandleFunc("/schedules/{id}", r.doctorScheduleHandler.UpdateSchedule).Methods(http.MethodPut)
	admin.HandleFunc("/schedules/{id}", r.doctorScheduleHandler.DeleteSchedule).Methods(http.MethodDelete)

	// Doctor-patient assignment (admin)
	admin.HandleFunc("/doctor-patients", r.doctorHandler.AssignPatient).Methods(http.MethodPost)
	admin.HandleFunc("/doctor-patients", r.doctorHandler.UnassignPatient).Methods(http.MethodDelete)

	// Add CORS middleware
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
