package geofence

import (
	"context"
	"fmt"

	"github.com/sunvolt-energy/erp-backend-go/internal/domain/geofence"
	"github.com/sunvolt-energy/erp-backend-go/internal/pkg/utils"
)

type GeofenceServiceImpl struct {
	geofence.OfficeRepository
}

func NewGeofenceService(officeRepo geofence.OfficeRepository) geofence.GeofenceService {
	return &GeofenceServiceImpl{OfficeRepository: officeRepo}
}

// Locate implements geofence.GeofenceService. The verdict is advisory: the
// check-in flow reports it to the client but does not gate on it.
func (s *GeofenceServiceImpl) Locate(ctx context.Context, latitude, longitude float64) (geofence.LocateResult, error) {
	offices, err := s.OfficeRepository.ListActive(ctx)
	if err != nil {
		return geofence.LocateResult{}, fmt.Errorf("failed to list office locations: %w", err)
	}
	if len(offices) == 0 {
		return geofence.LocateResult{}, geofence.ErrNoOfficesConfigured
	}

	result := geofence.LocateResult{}
	nearest := -1.0

	for _, office := range offices {
		distance := utils.CalculateHaversineDistance(latitude, longitude, office.Latitude, office.Longitude)

		if nearest < 0 || distance < nearest {
			nearest = distance
			name := office.Name
			result.Office = &name
			result.DistanceMeters = distance
		}

		if distance <= office.RadiusMeters {
			name := office.Name
			return geofence.LocateResult{
				Within:         true,
				Office:         &name,
				DistanceMeters: distance,
			}, nil
		}
	}

	return result, nil
}

// CreateOffice implements geofence.GeofenceService.
func (s *GeofenceServiceImpl) CreateOffice(ctx context.Context, req geofence.UpsertOfficeRequest) (geofence.OfficeResponse, error) {
	if err := req.Validate(); err != nil {
		return geofence.OfficeResponse{}, err
	}

	active := true
	if req.Active != nil {
		active = *req.Active
	}

	office, err := s.OfficeRepository.Create(ctx, geofence.OfficeLocation{
		Name:         req.Name,
		Latitude:     req.Latitude,
		Longitude:    req.Longitude,
		RadiusMeters: req.RadiusMeters,
		Active:       active,
	})
	if err != nil {
		return geofence.OfficeResponse{}, fmt.Errorf("failed to create office location: %w", err)
	}

	return mapOfficeToResponse(office), nil
}

// ListOffices implements geofence.GeofenceService.
func (s *GeofenceServiceImpl) ListOffices(ctx context.Context) ([]geofence.OfficeResponse, error) {
	offices, err := s.OfficeRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list office locations: %w", err)
	}

	responses := make([]geofence.OfficeResponse, 0, len(offices))
	for _, office := range offices {
		responses = append(responses, mapOfficeToResponse(office))
	}

	return responses, nil
}

// UpdateOffice implements geofence.GeofenceService.
func (s *GeofenceServiceImpl) UpdateOffice(ctx context.Context, id string, req geofence.UpsertOfficeRequest) (geofence.OfficeResponse, error) {
	if err := req.Validate(); err != nil {
		return geofence.OfficeResponse{}, err
	}

	office, err := s.OfficeRepository.GetByID(ctx, id)
	if err != nil {
		return geofence.OfficeResponse{}, err
	}

	office.Name = req.Name
	office.Latitude = req.Latitude
	office.Longitude = req.Longitude
	office.RadiusMeters = req.RadiusMeters
	if req.Active != nil {
		office.Active = *req.Active
	}

	if err := s.OfficeRepository.Update(ctx, office); err != nil {
		return geofence.OfficeResponse{}, fmt.Errorf("failed to update office location: %w", err)
	}

	return mapOfficeToResponse(office), nil
}

// DeleteOffice implements geofence.GeofenceService.
func (s *GeofenceServiceImpl) DeleteOffice(ctx context.Context, id string) error {
	return s.OfficeRepository.Delete(ctx, id)
}

func mapOfficeToResponse(office geofence.OfficeLocation) geofence.OfficeResponse {
	return geofence.OfficeResponse{
		ID:           office.ID,
		Name:         office.Name,
		Latitude:     office.Latitude,
		Longitude:    office.Longitude,
		RadiusMeters: office.RadiusMeters,
		Active:       office.Active,
	}
}
