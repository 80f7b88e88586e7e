package models

import "fmt"

// RinkType classifies a skating facility.
type RinkType string

const (
	RinkTypeIndoor  RinkType = "Indoor"
	RinkTypeOutdoor RinkType = "Outdoor"
)

// Rink represents one skating facility from the city catalog.
type Rink struct {
	ID      int      `json:"id"`
	Name    string   `json:"name"`
	Address string   `json:"address"`
	Type    RinkType `json:"type"`
	Lat     float64  `json:"lat"`
	Lng     float64  `json:"lng"`

	// DistanceKm is attached by the aggregator when a reference location
	// is known; nil means no reference point was supplied. It is never
	// populated by the catalog itself.
	DistanceKm *float64 `json:"distance_km,omitempty"`
}

func (r *Rink) ToString() string {
	return fmt.Sprintf("Rink(id=%d, name=%s, type=%s, lat=%f, lng=%f)",
		r.ID, r.Name, r.Type, r.Lat, r.Lng)
}
