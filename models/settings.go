package models

// Settings holds the single store-configuration row. It is seeded once at
// startup and only ever updated in place.
type Settings struct {
	ID                    uint    `gorm:"primaryKey" json:"-"`
	StoreName             string  `json:"store_name"`
	StoreDescription      string  `json:"store_description"`
	Currency              string  `json:"currency"`
	TaxRate               float64 `json:"tax_rate"`
	ShippingFee           float64 `json:"shipping_fee"`
	FreeShippingThreshold float64 `json:"free_shipping_threshold"`
	ContactEmail          string  `json:"contact_email"`
	ContactPhone          string  `json:"contact_phone,omitempty"`
	StoreAddress          string  `json:"store_address,omitempty"`
	ReturnPolicy          string  `json:"return_policy,omitempty"`
	TermsAndConditions    string  `json:"terms_and_conditions,omitempty"`
}
