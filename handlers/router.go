package handlers

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/CherDalov/Accountability-2.0/middleware"
)

// Router wires every route to its handler. Task and stats endpoints sit
// behind the session auth middleware; registration, login and the static
// login/register pages do not.
func Router(h *Handlers) *mux.Router {
	router := mux.NewRouter()
	router.Use(middleware.Metrics())

	router.Handle("/metrics", promhttp.Handler()).Methods("GET")
	router.HandleFunc("/healthz", h.Healthz).Methods("GET")

	router.HandleFunc("/register", h.Register).Methods("POST")
	router.HandleFunc("/login", h.Login).Methods("POST")
	router.HandleFunc("/logout", h.Logout).Methods("POST")

	api := router.PathPrefix("/api").Subrouter()
	api.Use(middleware.Auth(h.Sessions))
	api.HandleFunc("/tasks/{year:[0-9]+}/{month:[0-9]+}", h.GetMonthTasks).Methods("GET")
	api.HandleFunc("/tasks", h.CreateTasks).Methods("POST")
	api.HandleFunc("/tasks/{id}/toggle", h.ToggleTask).Methods("POST")
	api.HandleFunc("/tasks/{id}/delete", h.DeleteTask).Methods("POST")
	api.HandleFunc("/stats/{year:[0-9]+}/{month:[0-9]+}", h.GetMonthStats).Methods("GET")

	// The landing page needs a session; everything else under public/ is
	// the login and registration UI.
	index := middleware.Auth(h.Sessions)(http.HandlerFunc(h.Index))
	router.Handle("/", index).Methods("GET")
	router.PathPrefix("/").Handler(http.FileServer(http.Dir(h.PublicDir))).Methods("GET")

	return router
}
