package util

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/mfiume/toronto-free-skates/models"
)

// ReadRinkQueryResponseFromJSON loads a RinkQueryResponse from JSON on disk.
func ReadRinkQueryResponseFromJSON(filePath string) (*models.RinkQueryResponse, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %q: %w", filePath, err)
	}
	var resp models.RinkQueryResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, fmt.Errorf("failed to unmarshal RinkQueryResponse: %w", err)
	}
	return &resp, nil
}

// ReadSchedulePayload loads a raw schedule payload from disk, undecoded,
// so it can go through the same decoding path as a live response.
func ReadSchedulePayload(filePath string) ([]byte, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %q: %w", filePath, err)
	}
	return data, nil
}

// ReadGeocodeResultsFromJSON loads a slice of geocode results from JSON on disk.
func ReadGeocodeResultsFromJSON(filePath string) ([]models.GeocodeResult, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %q: %w", filePath, err)
	}
	var results []models.GeocodeResult
	if err := json.Unmarshal(data, &results); err != nil {
		return nil, fmt.Errorf("failed to unmarshal geocode results: %w", err)
	}
	return results, nil
}

// PrintSessionSetPartially prints key fields of a SessionSet.
func PrintSessionSetPartially(set models.SessionSet) {
	fmt.Printf("Rinks: %d\n", len(set.Rinks))
	fmt.Printf("Sessions: %d\n", len(set.Sessions))
	if len(set.Sessions) > 0 {
		e := set.Sessions[0]
		fmt.Printf("First session: %s at %s on %s %s\n",
			e.Session.Activity, e.Rink.Name, e.Session.Date, e.Session.Time)
	}
}
