package location

import "time"

// Location is a geofenced work site. Check-ins are only accepted within
// RadiusMeters of the coordinates.
type Location struct {
	ID           string
	CustomerID   string
	Name         string
	Latitude     float64
	Longitude    float64
	RadiusMeters int
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
