package geofence

import "errors"

var (
	ErrOfficeNotFound      = errors.New("office location not found")
	ErrNoOfficesConfigured = errors.New("no office locations configured")
)
