package server

import (
	"net/http"

	"github.com/gorilla/mux"
)

// SessionRoutes is the handler surface the router binds.
type SessionRoutes interface {
	GetSessions(http.ResponseWriter, *http.Request)
	GetRinks(http.ResponseWriter, *http.Request)
	Ping(http.ResponseWriter, *http.Request)
}

type Router struct {
	sessionHandler SessionRoutes
	router         *mux.Router
}

// NewRouter creates a router with the app's routes.
func NewRouter(
	sessionHandler SessionRoutes,
	router *mux.Router) *Router {
	return &Router{
		sessionHandler: sessionHandler,
		router:         router,
	}
}

func (r *Router) RegisterRoutes() {
	// expects filter config plus ?lat=&lng= or ?address= for the reference point
	r.router.HandleFunc("/v1/sessions", r.sessionHandler.GetSessions).Methods("GET")

	r.router.HandleFunc("/v1/rinks", r.sessionHandler.GetRinks).Methods("GET")

	r.router.HandleFunc("/ping", r.sessionHandler.Ping).Methods("GET")
}
