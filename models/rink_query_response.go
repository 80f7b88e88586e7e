package models

// RinkQueryResponse mirrors the ArcGIS feature-query response returned
// by the city facility catalog.
type RinkQueryResponse struct {
	Features []RinkFeature `json:"features"`
}

type RinkFeature struct {
	Attributes RinkAttributes `json:"attributes"`
}

// RinkAttributes carries the outFields requested from the catalog.
// Note the upstream convention: x is longitude, y is latitude.
type RinkAttributes struct {
	LocationID   int     `json:"locationid"`
	Location     string  `json:"location"`
	Address      string  `json:"address"`
	LocationType string  `json:"location_type"`
	X            float64 `json:"x"`
	Y            float64 `json:"y"`
}

// ToRink maps one catalog row to a Rink record.
func (a RinkAttributes) ToRink() Rink {
	return Rink{
		ID:      a.LocationID,
		Name:    a.Location,
		Address: a.Address,
		Type:    RinkType(a.LocationType),
		Lat:     a.Y,
		Lng:     a.X,
	}
}
