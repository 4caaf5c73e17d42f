package http

import (
	"net/http"

	"patient-records-service/internal/delivery/http/handler"
	"patient-records-service/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router          *mux.Router
	patientHandler  *handler.PatientHandler
	recoveryMW      *middleware.RecoveryMiddleware
	requestLoggerMW *middleware.RequestLoggerMiddleware
	corsMW          *middleware.CORSMiddleware
}

func NewRouter(
	patientHandler *handler.PatientHandler,
	recoveryMW *middleware.RecoveryMiddleware,
	requestLoggerMW *middleware.RequestLoggerMiddleware,
	corsMW *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:          mux.NewRouter(),
		patientHandler:  patientHandler,
		recoveryMW:      recoveryMW,
		requestLoggerMW: requestLoggerMW,
		corsMW:          corsMW,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Patient routes
	api.HandleFunc("/patients", r.patientHandler.GetAll).Methods(http.MethodGet)
	api.HandleFunc("/patients", r.patientHandler.Create).Methods(http.MethodPost)
	api.HandleFunc("/patients/{id}", r.patientHandler.GetByID).Methods(http.MethodGet)
	api.HandleFunc("/patients/{id}", r.patientHandler.Update).Methods(http.MethodPut)
	api.HandleFunc("/patients/{id}", r.patientHandler.Delete).Methods(http.MethodDelete)

	// Recovery sits outermost so every handler shares one error boundary.
	r.router.Use(r.recoveryMW.Handle)
	r.router.Use(r.requestLoggerMW.Handle)
	r.router.Use(r.corsMW.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
