package geofence

import "time"

// OfficeLocation is a named geofence: a coordinate plus an allowed radius.
// The set of offices lives in the store, not in process memory, so every
// instance and restart sees the same configuration.
type OfficeLocation struct {
	ID           string
	Name         string
	Latitude     float64
	Longitude    float64
	RadiusMeters float64
	Active       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
