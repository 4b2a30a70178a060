package http

import (
	"net/http"

	"mediconnect/internal/delivery/http/handler"
	"mediconnect/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router              *mux.Router
	authHandler         *handler.AuthHandler
	doctorHandler       *handler.DoctorHandler
	patientHandler      *handler.PatientHandler
	availabilityHandler *handler.AvailabilityHandler
	appointmentHandler  *handler.AppointmentHandler
	articleHandler      *handler.ArticleHandler
	adminHandler        *handler.AdminHandler
	authMiddleware      *middleware.AuthMiddleware
	corsMiddleware      *middleware.CORSMiddleware
}

func NewRouter(
	authHandler *handler.AuthHandler,
	doctorHandler *handler.DoctorHandler,
	patientHandler *handler.PatientHandler,
	availabilityHandler *handler.AvailabilityHandler,
	appointmentHandler *handler.AppointmentHandler,
	articleHandler *handler.ArticleHandler,
	adminHandler *handler.AdminHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:              mux.NewRouter(),
		authHandler:         authHandler,
		doctorHandler:       doctorHandler,
		patientHandler:      patientHandler,
		availabilityHandler: availabilityHandler,
		appointmentHandler:  appointmentHandler,
		articleHandler:      articleHandler,
		adminHandler:        adminHandler,
		authMiddleware:      authMiddleware,
		corsMiddleware:      corsMiddleware,
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

	// Public catalog: doctor directory, slot availability, published articles
	api.HandleFunc("/doctors", r.doctorHandler.SearchDoctors).Methods(http.MethodGet)
	api.HandleFunc("/doctors/{id}", r.doctorHandler.GetDoctor).Methods(http.MethodGet)
	api.HandleFunc("/doctors/{id}/slots", r.availabilityHandler.ListSlots).Methods(http.MethodGet)
	api.HandleFunc("/articles", r.articleHandler.GetPublishedArticles).Methods(http.MethodGet)
	api.HandleFunc("/articles/{id}", r.articleHandler.GetArticle).Methods(http.MethodGet)

	// Doctor routes (protected - doctor only)
	doctor := api.PathPrefix("/doctor").Subrouter()
	doctor.Use(r.authMiddleware.Authenticate)
	doctor.Use(middleware.RequireDoctor)
	doctor.HandleFunc("/availability", r.availabilityHandler.GenerateSlots).Methods(http.MethodPost)
	doctor.HandleFunc("/availability", r.availabilityHandler.ClearSlots).Methods(http.MethodDelete)
	doctor.HandleFunc("/appointments", r.appointmentHandler.GetDoctorDay).Methods(http.MethodGet)
	doctor.HandleFunc("/appointments/{id}/complete", r.appointmentHandler.CompleteAppointment).Methods(http.MethodPatch)
	doctor.HandleFunc("/appointments/{id}/cancel", r.appointmentHandler.CancelAppointment).Methods(http.MethodPatch)
	doctor.HandleFunc("/profile", r.doctorHandler.UpdateMyProfile).Methods(http.MethodPut)
	doctor.HandleFunc("/qualifications", r.doctorHandler.AddQualification).Methods(http.MethodPost)
	doctor.HandleFunc("/articles", r.articleHandler.CreateArticle).Methods(http.MethodPost)
	doctor.HandleFunc("/articles", r.articleHandler.GetMyArticles).Methods(http.MethodGet)

	// Patient routes (protected - patient only)
	patient := api.PathPrefix("/patient").Subrouter()
	patient.Use(r.authMiddleware.Authenticate)
	patient.Use(middleware.RequirePatient)
	patient.HandleFunc("/appointments", r.appointmentHandler.BookAppointment).Methods(http.MethodPost)
	patient.HandleFunc("/appointments", r.appointmentHandler.GetMyAppointments).Methods(http.MethodGet)
	patient.HandleFunc("/appointments/{id}/reschedule", r.appointmentHandler.RescheduleAppointment).Methods(http.MethodPatch)
	patient.HandleFunc("/profile", r.patientHandler.GetMyProfile).Methods(http.MethodGet)
	patient.HandleFunc("/profile", r.patientHandler.UpdateMyProfile).Methods(http.MethodPut)

	// Admin routes (protected - admin only)
	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(r.authMiddleware.Authenticate)
	admin.Use(middleware.RequireAdmin)
	admin.HandleFunc("/doctors/{id}/verify", r.adminHandler.VerifyDoctor).Methods(http.MethodPatch)
	admin.HandleFunc("/doctors/{id}/active", r.adminHandler.SetDoctorActive).Methods(http.MethodPatch)
	admin.HandleFunc("/qualifications/{id}/verify", r.adminHandler.VerifyQualification).Methods(http.MethodPatch)
	admin.HandleFunc("/cities", r.adminHandler.CreateCity).Methods(http.MethodPost)
	admin.HandleFunc("/cities", r.adminHandler.GetCities).Methods(http.MethodGet)
	admin.HandleFunc("/cities/{id}", r.adminHandler.UpdateCity).Methods(http.MethodPut)
	admin.HandleFunc("/cities/{id}", r.adminHandler.DeleteCity).Methods(http.MethodDelete)
	admin.HandleFunc("/articles/{id}/publish", r.adminHandler.SetArticlePublished).Methods(http.MethodPatch)
	admin.HandleFunc("/patients", r.adminHandler.GetPatients).Methods(http.MethodGet)
	admin.HandleFunc("/audit-logs", r.adminHandler.GetAuditTrail).Methods(http.MethodGet)

	// Add CORS middleware
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
