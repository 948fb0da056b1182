package http

import (
	"net/http"

	"hospital-frontdesk/internal/delivery/http/handler"
	"hospital-frontdesk/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Router struct {
	router            *mux.Router
	patientHandler    *handler.PatientHandler
	doctorHandler     *handler.DoctorHandler
	departmentHandler *handler.DepartmentHandler
	bookingHandler    *handler.BookingHandler
	corsMiddleware    *middleware.CORSMiddleware
	loggingMiddleware *middleware.LoggingMiddleware
}

func NewRouter(
	patientHandler *handler.PatientHandler,
	doctorHandler *handler.DoctorHandler,
	departmentHandler *handler.DepartmentHandler,
	bookingHandler *handler.BookingHandler,
	corsMiddleware *middleware.CORSMiddleware,
	loggingMiddleware *middleware.LoggingMiddleware,
) *Router {
	return &Router{
		router:            mux.NewRouter(),
		patientHandler:    patientHandler,
		doctorHandler:     doctorHandler,
		departmentHandler: departmentHandler,
		bookingHandler:    bookingHandler,
		corsMiddleware:    corsMiddleware,
		loggingMiddleware: loggingMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check and metrics
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)
	r.router.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	// Patient routes
	patients := api.PathPrefix("/patients").Subrouter()
	patients.HandleFunc("", r.patientHandler.Register).Methods(http.MethodPost)
	patients.HandleFunc("/national-id/{tc}", r.patientHandler.Lookup).Methods(http.MethodGet)
	patients.HandleFunc("/{id:[0-9]+}/appointments", r.patientHandler.Appointments).Methods(http.MethodGet)

	// Doctor routes
	doctors := api.PathPrefix("/doctors").Subrouter()
	doctors.HandleFunc("", r.doctorHandler.Create).Methods(http.MethodPost)
	doctors.HandleFunc("", r.doctorHandler.GetAll).Methods(http.MethodGet)
	doctors.HandleFunc("/page", r.doctorHandler.GetPage).Methods(http.MethodGet)
	doctors.HandleFunc("/{id:[0-9]+}/slots", r.doctorHandler.GetSlots).Methods(http.MethodGet)
	doctors.HandleFunc("/{id:[0-9]+}/nearest-slots", r.doctorHandler.GetNearestSlots).Methods(http.MethodGet)

	// Department routes
	departments := api.PathPrefix("/departments").Subrouter()
	departments.HandleFunc("", r.departmentHandler.Create).Methods(http.MethodPost)
	departments.HandleFunc("", r.departmentHandler.GetAll).Methods(http.MethodGet)
	departments.HandleFunc("/page", r.departmentHandler.GetPage).Methods(http.MethodGet)

	// Booking session routes
	bookings := api.PathPrefix("/bookings").Subrouter()
	bookings.HandleFunc("", r.bookingHandler.Start).Methods(http.MethodPost)
	bookings.HandleFunc("/{id}", r.bookingHandler.Get).Methods(http.MethodGet)
	bookings.HandleFunc("/{id}/patient", r.bookingHandler.ResolvePatient).Methods(http.MethodPost)
	bookings.HandleFunc("/{id}/selection", r.bookingHandler.UpdateSelection).Methods(http.MethodPut)
	bookings.HandleFunc("/{id}/time", r.bookingHandler.SelectTime).Methods(http.MethodPut)
	bookings.HandleFunc("/{id}/submit", r.bookingHandler.Submit).Methods(http.MethodPost)

	// Add middleware
	r.router.Use(r.corsMiddleware.Handle)
	r.router.Use(r.loggingMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
