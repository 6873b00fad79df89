package models

import "time"

type Role string

const (
	RoleClient    Role = "client"
	RolePersonnel Role = "personnel"
	RoleAdmin     Role = "admin"
)

func (r Role) Valid() bool {
	switch r {
	case RoleClient, RolePersonnel, RoleAdmin:
		return true
	}
	return false
}

// Skill is a personnel competence for one service category.
type Skill struct {
	Category    string `json:"category"`
	Proficiency string `json:"proficiency"`
}

// Availability describes when a personnel member can take assignments.
type Availability struct {
	IsAvailable   bool      `json:"is_available"`
	AvailableDays []string  `json:"available_days"`
	StartTime     string    `json:"start_time"`
	EndTime       string    `json:"end_time"`
	LastUpdated   time.Time `json:"last_updated"`
}

func DefaultAvailability() Availability {
	return Availability{
		IsAvailable:   true,
		AvailableDays: []string{"monday", "tuesday", "wednesday", "thursday", "friday"},
		StartTime:     "08:00",
		EndTime:       "18:00",
		LastUpdated:   time.Now(),
	}
}

type User struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name         string `gorm:"size:50;not null" json:"name"`
	Email        string `gorm:"size:100;uniqueIndex;not null" json:"email"`
	Phone        string `gorm:"size:20;not null" json:"phone"`
	PasswordHash string `gorm:"size:255;not null" json:"-"`
	Role         Role   `gorm:"size:20;default:'client'" json:"role"`
	Address      string `gorm:"size:255" json:"address"`

	Skills       []Skill      `gorm:"serializer:json" json:"skills"`
	Availability Availability `gorm:"serializer:json" json:"availability"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Nil means the row predates soft deletion and counts as live.
	IsDeleted *bool      `json:"is_deleted"`
	DeletedAt *time.Time `json:"deleted_at"`
}

func (u *User) Deleted() bool {
	return u.IsDeleted != nil && *u.IsDeleted
}
