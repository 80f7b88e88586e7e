package models

import (
	"fmt"
	"strconv"
)

// GeocodeResult is one match from the geocoding search API. The API
// returns coordinates as strings.
type GeocodeResult struct {
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	DisplayName string `json:"display_name"`
}

// Location parses the result coordinates into a Location.
func (g GeocodeResult) Location() (Location, error) {
	lat, err := strconv.ParseFloat(g.Lat, 64)
	if err != nil {
		return Location{}, fmt.Errorf("invalid geocode latitude %q: %w", g.Lat, err)
	}
	lng, err := strconv.ParseFloat(g.Lon, 64)
	if err != nil {
		return Location{}, fmt.Errorf("invalid geocode longitude %q: %w", g.Lon, err)
	}
	return Location{Lat: lat, Lng: lng}, nil
}
