package services

import (
	"errors"

	"karukotha/models"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// SettingsUpdate is a partial patch of the singleton settings row.
type SettingsUpdate struct {
	StoreName             *string  `json:"store_name"`
	StoreDescription      *string  `json:"store_description"`
	Currency              *string  `json:"currency"`
	TaxRate               *float64 `json:"tax_rate" validate:"omitempty,gte=0"`
	ShippingFee           *float64 `json:"shipping_fee" validate:"omitempty,gte=0"`
	FreeShippingThreshold *float64 `json:"free_shipping_threshold" validate:"omitempty,gte=0"`
	ContactEmail          *string  `json:"contact_email" validate:"omitempty,email"`
	ContactPhone          *string  `json:"contact_phone"`
	StoreAddress          *string  `json:"store_address"`
	ReturnPolicy          *string  `json:"return_policy"`
	TermsAndConditions    *string  `json:"terms_and_conditions"`
}

type SettingsService struct {
	db       *gorm.DB
	validate *validator.Validate
}

func NewSettingsService(gdb *gorm.DB) *SettingsService {
	return &SettingsService{db: gdb, validate: newValidator()}
}

func (s *SettingsService) Get() (*models.Settings, error) {
	var settings models.Settings
	if err := s.db.First(&settings).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound("Settings")
		}
		return nil, err
	}
	return &settings, nil
}

// Update applies the supplied fields to the existing row. There is no
// create path: the row is seeded once at startup.
func (s *SettingsService) Update(input SettingsUpdate) (*models.Settings, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, validationError(err)
	}

	settings, err := s.Get()
	if err != nil {
		return nil, err
	}

	if input.StoreName != nil {
		settings.StoreName = *input.StoreName
	}
	if input.StoreDescription != nil {
		settings.StoreDescription = *input.StoreDescription
	}
	if input.Currency != nil {
		settings.Currency = *input.Currency
	}
	if input.TaxRate != nil {
		settings.TaxRate = *input.TaxRate
	}
	if input.ShippingFee != nil {
		settings.ShippingFee = *input.ShippingFee
	}
	if input.FreeShippingThreshold != nil {
		settings.FreeShippingThreshold = *input.FreeShippingThreshold
	}
	if input.ContactEmail != nil {
		settings.ContactEmail = *input.ContactEmail
	}
	if input.ContactPhone != nil {
		settings.ContactPhone = *input.ContactPhone
	}
	if input.StoreAddress != nil {
		settings.StoreAddress = *input.StoreAddress
	}
	if input.ReturnPolicy != nil {
		settings.ReturnPolicy = *input.ReturnPolicy
	}
	if input.TermsAndConditions != nil {
		settings.TermsAndConditions = *input.TermsAndConditions
	}

	if err := s.db.Save(settings).Error; err != nil {
		return nil, err
	}
	return settings, nil
}
