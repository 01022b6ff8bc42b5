package geofence

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sunvolt-energy/erp-backend-go/internal/domain/geofence"
)

// ── Mock OfficeRepository ──

type mockOfficeRepo struct {
	offices map[string]geofence.OfficeLocation
	seq     int
}

func newMockOfficeRepo() *mockOfficeRepo {
	return &mockOfficeRepo{offices: make(map[string]geofence.OfficeLocation)}
}

func (m *mockOfficeRepo) Create(_ context.Context, office geofence.OfficeLocation) (geofence.OfficeLocation, error) {
	m.seq++
	office.ID = fmt.Sprintf("office-%d", m.seq)
	m.offices[office.ID] = office
	return office, nil
}

func (m *mockOfficeRepo) GetByID(_ context.Context, id string) (geofence.OfficeLocation, error) {
	if office, ok := m.offices[id]; ok {
		return office, nil
	}
	return geofence.OfficeLocation{}, geofence.ErrOfficeNotFound
}

func (m *mockOfficeRepo) ListActive(_ context.Context) ([]geofence.OfficeLocation, error) {
	var result []geofence.OfficeLocation
	for _, office := range m.offices {
		if office.Active {
			result = append(result, office)
		}
	}
	return result, nil
}

func (m *mockOfficeRepo) List(_ context.Context) ([]geofence.OfficeLocation, error) {
	var result []geofence.OfficeLocation
	for _, office := range m.offices {
		result = append(result, office)
	}
	return result, nil
}

func (m *mockOfficeRepo) Update(_ context.Context, office geofence.OfficeLocation) error {
	if _, ok := m.offices[office.ID]; !ok {
		return geofence.ErrOfficeNotFound
	}
	m.offices[office.ID] = office
	return nil
}

func (m *mockOfficeRepo) Delete(_ context.Context, id string) error {
	if _, ok := m.offices[id]; !ok {
		return geofence.ErrOfficeNotFound
	}
	delete(m.offices, id)
	return nil
}

// Pune HQ coordinates used across the tests.
const (
	hqLat = 18.5204
	hqLng = 73.8567
)

func newTestGeofence(t *testing.T) (geofence.GeofenceService, *mockOfficeRepo) {
	t.Helper()
	repo := newMockOfficeRepo()
	repo.Create(context.Background(), geofence.OfficeLocation{
		Name:         "Pune HQ",
		Latitude:     hqLat,
		Longitude:    hqLng,
		RadiusMeters: 200,
		Active:       true,
	})
	return NewGeofenceService(repo), repo
}

func TestLocateWithinZone(t *testing.T) {
	svc, _ := newTestGeofence(t)

	result, err := svc.Locate(context.Background(), hqLat, hqLng)
	require.NoError(t, err)

	assert.True(t, result.Within)
	assert.Equal(t, "Pune HQ", *result.Office)
	assert.InDelta(t, 0, result.DistanceMeters, 1)
}

func TestLocateOutsideZone(t *testing.T) {
	svc, _ := newTestGeofence(t)

	// Roughly 1.1 km north of HQ: one hundredth of a degree of latitude.
	result, err := svc.Locate(context.Background(), hqLat+0.01, hqLng)
	require.NoError(t, err)

	assert.False(t, result.Within)
	assert.Equal(t, "Pune HQ", *result.Office)
	assert.InDelta(t, 1112, result.DistanceMeters, 20)
}

func TestLocateIgnoresInactiveOffices(t *testing.T) {
	repo := newMockOfficeRepo()
	repo.Create(context.Background(), geofence.OfficeLocation{
		Name:         "Closed Branch",
		Latitude:     hqLat,
		Longitude:    hqLng,
		RadiusMeters: 200,
		Active:       false,
	})
	svc := NewGeofenceService(repo)

	_, err := svc.Locate(context.Background(), hqLat, hqLng)
	assert.ErrorIs(t, err, geofence.ErrNoOfficesConfigured)
}

func TestLocateNoOffices(t *testing.T) {
	svc := NewGeofenceService(newMockOfficeRepo())

	_, err := svc.Locate(context.Background(), hqLat, hqLng)
	assert.ErrorIs(t, err, geofence.ErrNoOfficesConfigured)
}

func TestCreateOfficeValidates(t *testing.T) {
	svc := NewGeofenceService(newMockOfficeRepo())

	_, err := svc.CreateOffice(context.Background(), geofence.UpsertOfficeRequest{
		Name:         "Bad",
		Latitude:     120,
		Longitude:    73.8,
		RadiusMeters: 100,
	})
	assert.Error(t, err)
}

func TestUpdateOffice(t *testing.T) {
	svc, repo := newTestGeofence(t)

	inactive := false
	resp, err := svc.UpdateOffice(context.Background(), "office-1", geofence.UpsertOfficeRequest{
		Name:         "Pune HQ",
		Latitude:     hqLat,
		Longitude:    hqLng,
		RadiusMeters: 500,
		Active:       &inactive,
	})
	require.NoError(t, err)
	assert.Equal(t, float64(500), resp.RadiusMeters)
	assert.False(t, resp.Active)
	assert.False(t, repo.offices["office-1"].Active)
}
