package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ecotravel-admin/internal/domain"
)

func TestHaversineKm(t *testing.T) {
	tunis := domain.Point{Lat: 36.8065, Lon: 10.1815}
	sousse := domain.Point{Lat: 35.8256, Lon: 10.6084}

	assert.InDelta(t, 115.6, HaversineKm(tunis, sousse), 1.0)
	assert.Zero(t, HaversineKm(tunis, tunis))
}

func TestValidateCoordinates(t *testing.T) {
	assert.True(t, ValidateCoordinates(domain.Point{Lat: 90, Lon: -180}))
	assert.False(t, ValidateCoordinates(domain.Point{Lat: 91, Lon: 0}))
	assert.False(t, ValidateCoordinates(domain.Point{Lat: 0, Lon: 180.5}))
}

func TestValidateRadius(t *testing.T) {
	assert.True(t, ValidateRadius(50))
	assert.False(t, ValidateRadius(0))
	assert.False(t, ValidateRadius(-1))
	assert.False(t, ValidateRadius(30000))
}
