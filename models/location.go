package models

// Location holds a reference coordinate distances are computed from.
type Location struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}
