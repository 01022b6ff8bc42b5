package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/sunvolt-energy/erp-backend-go/internal/domain/geofence"
	"github.com/sunvolt-energy/erp-backend-go/internal/pkg/database"
)

type officeRepository struct {
	db *database.DB
}

func NewOfficeRepository(db *database.DB) geofence.OfficeRepository {
	return &officeRepository{db: db}
}

// Create implements geofence.OfficeRepository.
func (r *officeRepository) Create(ctx context.Context, office geofence.OfficeLocation) (geofence.OfficeLocation, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO office_locations (name, latitude, longitude, radius_meters, active)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		office.Name, office.Latitude, office.Longitude, office.RadiusMeters, office.Active,
	).Scan(&office.ID, &office.CreatedAt, &office.UpdatedAt)
	if err != nil {
		return geofence.OfficeLocation{}, fmt.Errorf("failed to create office location: %w", err)
	}

	return office, nil
}

// GetByID implements geofence.OfficeRepository.
func (r *officeRepository) GetByID(ctx context.Context, id string) (geofence.OfficeLocation, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, latitude, longitude, radius_meters, active, created_at, updated_at
		FROM office_locations
		WHERE id = $1
	`

	var office geofence.OfficeLocation
	err := q.QueryRow(ctx, query, id).Scan(
		&office.ID, &office.Name, &office.Latitude, &office.Longitude,
		&office.RadiusMeters, &office.Active, &office.CreatedAt, &office.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return geofence.OfficeLocation{}, geofence.ErrOfficeNotFound
		}
		return geofence.OfficeLocation{}, fmt.Errorf("failed to get office location: %w", err)
	}

	return office, nil
}

// ListActive implements geofence.OfficeRepository.
func (r *officeRepository) ListActive(ctx context.Context) ([]geofence.OfficeLocation, error) {
	return r.list(ctx, `WHERE active = TRUE`)
}

// List implements geofence.OfficeRepository.
func (r *officeRepository) List(ctx context.Context) ([]geofence.OfficeLocation, error) {
	return r.list(ctx, ``)
}

func (r *officeRepository) list(ctx context.Context, where string) ([]geofence.OfficeLocation, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT id, name, latitude, longitude, radius_meters, active, created_at, updated_at
		FROM office_locations
		%s
		ORDER BY name
	`, where)

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list office locations: %w", err)
	}
	defer rows.Close()

	var offices []geofence.OfficeLocation
	for rows.Next() {
		var office geofence.OfficeLocation
		if err := rows.Scan(
			&office.ID, &office.Name, &office.Latitude, &office.Longitude,
			&office.RadiusMeters, &office.Active, &office.CreatedAt, &office.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan office location: %w", err)
		}
		offices = append(offices, office)
	}

	return offices, rows.Err()
}

// Update implements geofence.OfficeRepository.
func (r *officeRepository) Update(ctx context.Context, office geofence.OfficeLocation) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE office_locations
		SET name = $2, latitude = $3, longitude = $4, radius_meters = $5, active = $6, updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query,
		office.ID, office.Name, office.Latitude, office.Longitude, office.RadiusMeters, office.Active,
	)
	if err != nil {
		return fmt.Errorf("failed to update office location: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return geofence.ErrOfficeNotFound
	}

	return nil
}

// Delete implements geofence.OfficeRepository.
func (r *officeRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM office_locations WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete office location: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return geofence.ErrOfficeNotFound
	}

	return nil
}
