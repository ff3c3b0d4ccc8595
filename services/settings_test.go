package services

import (
	"testing"

	"karukotha/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedSettings(t *testing.T, svc *SettingsService) {
	t.Helper()
	require.NoError(t, svc.db.Create(&models.Settings{
		StoreName:             "karukotha",
		StoreDescription:      "Timeless Elegance from Bangladesh",
		Currency:              "BDT",
		ShippingFee:           100,
		FreeShippingThreshold: 5000,
		ContactEmail:          "contact@karukotha.com",
	}).Error)
}

func TestSettingsGetMissing(t *testing.T) {
	svc := NewSettingsService(newTestDB(t))

	_, err := svc.Get()
	var notFoundErr *NotFoundError
	require.ErrorAs(t, err, &notFoundErr)
	assert.Equal(t, "Settings not found", err.Error())
}

func TestSettingsPartialUpdate(t *testing.T) {
	gdb := newTestDB(t)
	svc := NewSettingsService(gdb)
	seedSettings(t, svc)

	updated, err := svc.Update(SettingsUpdate{TaxRate: floatPtr(0.05)})
	require.NoError(t, err)
	assert.Equal(t, 0.05, updated.TaxRate)
	assert.Equal(t, "karukotha", updated.StoreName)
	assert.Equal(t, "BDT", updated.Currency)

	// The patch persists and never inserts a second row.
	got, err := svc.Get()
	require.NoError(t, err)
	assert.Equal(t, 0.05, got.TaxRate)

	var count int64
	require.NoError(t, gdb.Model(&models.Settings{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestSettingsValidation(t *testing.T) {
	svc := NewSettingsService(newTestDB(t))
	seedSettings(t, svc)

	var validationErr *ValidationError
	_, err := svc.Update(SettingsUpdate{TaxRate: floatPtr(-0.1)})
	require.ErrorAs(t, err, &validationErr)
	assert.Contains(t, validationErr.Fields, "tax_rate")

	_, err = svc.Update(SettingsUpdate{ShippingFee: floatPtr(-1)})
	require.ErrorAs(t, err, &validationErr)

	_, err = svc.Update(SettingsUpdate{ContactEmail: strPtr("not-an-email")})
	require.ErrorAs(t, err, &validationErr)
	assert.Contains(t, validationErr.Fields, "contact_email")
}
