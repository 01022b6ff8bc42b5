package geofence

import "context"

type OfficeRepository interface {
	Create(ctx context.Context, office OfficeLocation) (OfficeLocation, error)
	GetByID(ctx context.Context, id string) (OfficeLocation, error)
	ListActive(ctx context.Context) ([]OfficeLocation, error)
	List(ctx context.Context) ([]OfficeLocation, error)
	Update(ctx context.Context, office OfficeLocation) error
	Delete(ctx context.Context, id string) error
}
