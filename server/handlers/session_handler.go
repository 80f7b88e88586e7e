package handlers

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"net/url"
	"strconv"

	"github.com/mfiume/toronto-free-skates/models"
)

const (
	LAT_QUERY_ARG     = "lat"
	LNG_QUERY_ARG     = "lng"
	ADDRESS_QUERY_ARG = "address"
)

// SessionAggregator is the aggregation surface the handler depends on.
type SessionAggregator interface {
	FetchAllSessions(ctx context.Context, ref *models.Location, params models.FilterParams) models.SessionSet
	FetchRinks(ctx context.Context, ref *models.Location, params models.FilterParams) []models.Rink
}

// AddressResolver turns a free-text address into a reference location.
type AddressResolver interface {
	Resolve(ctx context.Context, address string) (*models.Location, error)
}

type SessionHandler struct {
	aggregator SessionAggregator
	resolver   AddressResolver
}

func NewSessionHandler(aggregator SessionAggregator, resolver AddressResolver) *SessionHandler {
	return &SessionHandler{aggregator: aggregator, resolver: resolver}
}

// GetSessions handles GET /v1/sessions. The filter configuration and
// optional reference location both arrive as query parameters, the same
// place the hosted app persists them.
func (h *SessionHandler) GetSessions(w http.ResponseWriter, r *http.Request) {
	params := models.FilterParamsFromValues(r.URL.Query())

	ref, ok := h.resolveReference(w, r)
	if !ok {
		return // error already written
	}

	set := h.aggregator.FetchAllSessions(r.Context(), ref, params)

	writeJSON(w, set)
}

// GetRinks handles GET /v1/rinks: the rink population after distance
// and type exclusion, without any schedule fetches. Drives the
// rink-selection UI.
func (h *SessionHandler) GetRinks(w http.ResponseWriter, r *http.Request) {
	params := models.FilterParamsFromValues(r.URL.Query())

	ref, ok := h.resolveReference(w, r)
	if !ok {
		return
	}

	rinks := h.aggregator.FetchRinks(r.Context(), ref, params)

	writeJSON(w, rinks)
}

// resolveReference extracts the reference location from lat/lng query
// args, or geocodes an address when coordinates are absent. No location
// at all is fine: distances simply go unattached.
func (h *SessionHandler) resolveReference(w http.ResponseWriter, r *http.Request) (*models.Location, bool) {
	vals := r.URL.Query()

	if vals.Get(LAT_QUERY_ARG) != "" || vals.Get(LNG_QUERY_ARG) != "" {
		lat, err := parseArgFloat64(vals, LAT_QUERY_ARG)
		if err != nil {
			http.Error(w, "Invalid argument "+LAT_QUERY_ARG, http.StatusBadRequest)
			return nil, false
		}
		lng, err := parseArgFloat64(vals, LNG_QUERY_ARG)
		if err != nil {
			http.Error(w, "Invalid argument "+LNG_QUERY_ARG, http.StatusBadRequest)
			return nil, false
		}
		return &models.Location{Lat: lat, Lng: lng}, true
	}

	if address := vals.Get(ADDRESS_QUERY_ARG); address != "" {
		loc, err := h.resolver.Resolve(r.Context(), address)
		if err != nil {
			log.Printf("[SessionHandler] failed to resolve address %q: %v", address, err)
			http.Error(w, "Could not resolve address", http.StatusBadRequest)
			return nil, false
		}
		return loc, true
	}

	return nil, true
}

// Ping handles GET /ping
func (h *SessionHandler) Ping(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]string{"status": "pong"})
}

func writeJSON(w http.ResponseWriter, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Println("Error encoding response:", err)
	}
}

func parseArgFloat64(vals url.Values, name string) (float64, error) {
	s := vals.Get(name)
	return strconv.ParseFloat(s, 64)
}
