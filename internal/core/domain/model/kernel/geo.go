package kernel

import (
	"fmt"
	"time"

	"fulfillment/internal/pkg/errs"
)

// GeoPoint is a value object holding a shipment's last reported position:
// coordinates, a free-form address, and the moment the report was taken.
//
// Latitude must lie in [-90, 90] and longitude in [-180, 180]. The value is
// immutable; location updates replace the whole point rather than mutating it.
type GeoPoint struct {
	latitude   float64
	longitude  float64
	address    string
	reportedAt time.Time
}

// NewGeoPoint creates a validated position report.
func NewGeoPoint(latitude, longitude float64, address string, reportedAt time.Time) (GeoPoint, error) {
	if latitude < -90 || latitude > 90 {
		return GeoPoint{}, errs.NewValueIsOutOfRangeError("latitude", latitude, -90, 90)
	}
	if longitude < -180 || longitude > 180 {
		return GeoPoint{}, errs.NewValueIsOutOfRangeError("longitude", longitude, -180, 180)
	}
	if reportedAt.IsZero() {
		return GeoPoint{}, errs.NewValueIsRequiredError("reportedAt")
	}

	return GeoPoint{
		latitude:   latitude,
		longitude:  longitude,
		address:    address,
		reportedAt: reportedAt.UTC(),
	}, nil
}

// Latitude returns the latitude in degrees.
func (p GeoPoint) Latitude() float64 {
	return p.latitude
}

// Longitude returns the longitude in degrees.
func (p GeoPoint) Longitude() float64 {
	return p.longitude
}

// Address returns the free-form address, if any.
func (p GeoPoint) Address() string {
	return p.address
}

// ReportedAt returns the moment the position was reported, in UTC.
func (p GeoPoint) ReportedAt() time.Time {
	return p.reportedAt
}

// IsZero reports whether the point is the zero value (no report yet).
func (p GeoPoint) IsZero() bool {
	return p.reportedAt.IsZero()
}

// String renders the point for logs.
func (p GeoPoint) String() string {
	return fmt.Sprintf("(%f, %f) at %s", p.latitude, p.longitude, p.reportedAt.Format(time.RFC3339))
}
