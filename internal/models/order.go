package models

import "time"

type Order struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	StoreID uint   `gorm:"index" json:"store_id"`
	Code    string `gorm:"size:36;uniqueIndex;not null" json:"code"`

	CustomerName  string `gorm:"size:100;not null" json:"customer_name"`
	CustomerPhone string `gorm:"size:20;not null" json:"customer_phone"`

	Items      []OrderItem `gorm:"serializer:json" json:"items"`
	TotalCents int         `json:"total_cents"`
	Notes      string      `gorm:"size:500" json:"notes"`

	Status string `gorm:"size:20;default:'pending'" json:"status"`

	// checkout opcional via Mercado Pago
	PaymentPreferenceID string `gorm:"size:100" json:"payment_preference_id,omitempty"`
	PaymentURL          string `gorm:"size:500" json:"payment_url,omitempty"`

	ConfirmedAt *time.Time `json:"confirmed_at,omitempty"`
	CancelledAt *time.Time `json:"cancelled_at,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type OrderItem struct {
	Name           string `json:"name"`
	Quantity       int    `json:"quantity"`
	UnitPriceCents int    `json:"unit_price_cents"`
}
