package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"carwash-backend/internal/models"
)

func TestBuildService_DefaultsDuration(t *testing.T) {
	svc, err := buildService(&models.CreateServiceRequest{Name: "Wash", Price: 10})
	assert.NoError(t, err)
	assert.Equal(t, 30, svc.DurationMinutes)

	svc, err = buildService(&models.CreateServiceRequest{Name: "Polish", Price: 25, DurationMinutes: 45})
	assert.NoError(t, err)
	assert.Equal(t, 45, svc.DurationMinutes)
}

func TestBuildService_RejectsInvalidInput(t *testing.T) {
	_, err := buildService(&models.CreateServiceRequest{Price: 10})
	assert.Error(t, err, "missing name")

	_, err = buildService(&models.CreateServiceRequest{Name: "Wash", Price: -1})
	assert.Error(t, err, "negative price")

	_, err = buildService(&models.CreateServiceRequest{Name: "Wash", Price: 10, DurationMinutes: -15})
	assert.Error(t, err, "negative duration")
}
