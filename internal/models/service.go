package models

import "time"

const DefaultServiceImage = "/images/services/default-service.jpg"

// Service categories offered by the platform.
const (
	CategoryHouse    = "house"
	CategoryBuilding = "building"
	CategoryOffice   = "office"
	CategoryVehicle  = "vehicle"
)

func ValidCategory(c string) bool {
	switch c {
	case CategoryHouse, CategoryBuilding, CategoryOffice, CategoryVehicle:
		return true
	}
	return false
}

type Service struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name        string  `gorm:"size:100;not null" json:"name"`
	Description string  `gorm:"size:500;not null" json:"description"`
	Category    string  `gorm:"size:20;not null" json:"category"`
	Price       float64 `gorm:"not null" json:"price"`
	Duration    float64 `gorm:"not null" json:"duration"`
	Image       string  `gorm:"size:255" json:"image"`
	IsActive    bool    `gorm:"default:true" json:"is_active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	IsDeleted *bool      `json:"is_deleted"`
	DeletedAt *time.Time `json:"deleted_at"`
}

func (s *Service) Deleted() bool {
	return s.IsDeleted != nil && *s.IsDeleted
}
