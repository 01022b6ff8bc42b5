package geofence

import "context"

// GeofenceService classifies a device coordinate against the configured
// office locations. The verdict is advisory: check-in trusts the work
// location the client reports, and nothing in the engine uses Locate as a
// hard gate.
type GeofenceService interface {
	// Locate returns whether the coordinate lies inside any active office
	// zone, along with the nearest office and its distance.
	Locate(ctx context.Context, latitude, longitude float64) (LocateResult, error)

	CreateOffice(ctx context.Context, req UpsertOfficeRequest) (OfficeResponse, error)
	ListOffices(ctx context.Context) ([]OfficeResponse, error)
	UpdateOffice(ctx context.Context, id string, req UpsertOfficeRequest) (OfficeResponse, error)
	DeleteOffice(ctx context.Context, id string) error
}
