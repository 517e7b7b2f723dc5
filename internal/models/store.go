package models

import (
	"time"

	"github.com/apfood/storefront-api/internal/availability"
)

type Store struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	Name    string `gorm:"size:100;not null" json:"name"`
	Slug    string `gorm:"size:100;uniqueIndex;not null" json:"slug"`
	Phone   string `gorm:"size:20" json:"phone"`
	Address string `gorm:"size:255" json:"address"`

	// documento de operação lido pelo motor de disponibilidade
	Operacao availability.OperatingConfig `gorm:"serializer:json" json:"operacao"`

	Branding Branding `gorm:"serializer:json" json:"branding"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Branding struct {
	LogoURL   string      `json:"logoUrl,omitempty"`
	LogoPath  string      `json:"logoPath,omitempty"`
	Colors    BrandColors `json:"colors"`
	UpdatedBy *uint       `json:"updatedBy,omitempty"`
}

type BrandColors struct {
	BrandPrimary   string `json:"brandPrimary"`
	BrandSecondary string `json:"brandSecondary"`
	BrandAccent    string `json:"brandAccent"`
}

func DefaultBranding() Branding {
	return Branding{
		Colors: BrandColors{
			BrandPrimary:   "#E11D48",
			BrandSecondary: "#0F172A",
			BrandAccent:    "#F59E0B",
		},
	}
}
