package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"github.com/mfiume/toronto-free-skates/api/geocode"
	"github.com/mfiume/toronto-free-skates/db"
	"github.com/mfiume/toronto-free-skates/models"
)

const GEOCODE_CACHE_KEY_FORMAT = "geocode_v1:%s"

// GeocodeService resolves addresses through the geocode API, caching
// results so repeated lookups of the same address cost one call.
type GeocodeService struct {
	geocodeAPI geocode.GeocodeAPI
	cache      db.KVStore
}

// NewGeocodeService constructs a new GeocodeService with dependencies.
func NewGeocodeService(geocodeAPI geocode.GeocodeAPI, cache db.KVStore) *GeocodeService {
	return &GeocodeService{
		geocodeAPI: geocodeAPI,
		cache:      cache,
	}
}

// Resolve turns a free-text address into a reference location, best
// match first. A cache hit skips the network entirely.
func (g *GeocodeService) Resolve(ctx context.Context, address string) (*models.Location, error) {
	key := cacheKey(address)

	if raw, err := g.cache.Get(key); err == nil {
		var loc models.Location
		if err := json.Unmarshal([]byte(raw), &loc); err == nil {
			return &loc, nil
		}
		// Unreadable cache entry; drop it and fall through to the API.
		_ = g.cache.Del(key)
	}

	results, err := g.geocodeAPI.Search(ctx, address)
	if err != nil {
		return nil, fmt.Errorf("geocode lookup failed for %q: %w", address, err)
	}
	if len(results) == 0 {
		return nil, fmt.Errorf("no geocode match for %q", address)
	}

	loc, err := results[0].Location()
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(loc); err == nil {
		if err := g.cache.Set(key, string(data)); err != nil {
			log.Printf("[GeocodeService] failed to cache result for %q: %v", address, err)
		}
	}

	return &loc, nil
}

func cacheKey(address string) string {
	return fmt.Sprintf(GEOCODE_CACHE_KEY_FORMAT, strings.ToLower(strings.TrimSpace(address)))
}
