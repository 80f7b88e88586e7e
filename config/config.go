package config

import (
	"os"
	"path/filepath"
)

// City of Toronto open-data endpoints
const RINK_CATALOG_ENDPOINT_BASE = "https://gis.toronto.ca/arcgis/rest/services/cot_geospatial2/FeatureServer/2"
const RINK_CATALOG_QUERY_PATH = "/query"
const SCHEDULE_ENDPOINT_BASE = "https://www.toronto.ca"
const SCHEDULE_PATH_FORMAT = "/data/parks/live/locations/%d.json"

// Geocoding endpoint (Nominatim-compatible search API)
const GEOCODE_ENDPOINT_BASE = "https://nominatim.openstreetmap.org"
const GEOCODE_SEARCH_PATH = "/search"

// Fetch timeouts
const CATALOG_FETCH_TIMEOUT_SECONDS = 10
const SCHEDULE_FETCH_TIMEOUT_SECONDS = 30
const GEOCODE_FETCH_TIMEOUT_SECONDS = 10

// Resources file paths
const RESOURCES_PATH_PREFIX = "resources"
const RINK_QUERY_RESPONSE_RESOURCE = "rink_query_response.json"
const SCHEDULE_RESPONSE_RESOURCE = "schedule_response.json"
const GEOCODE_RESPONSE_RESOURCE = "geocode_response.json"

// BaseDir returns the absolute path of the project root directory
func BaseDir() string {
	// Check if PROJECT_ROOT is set
	if root := os.Getenv("PROJECT_ROOT"); root != "" {
		return root
	}

	// Default to the current working directory
	wd, err := os.Getwd()
	if err != nil {
		panic("Unable to determine working directory: " + err.Error())
	}

	return wd
}

func GetResourcePath(resource_file string) string {
	return filepath.Join(BaseDir(), RESOURCES_PATH_PREFIX, resource_file)
}
