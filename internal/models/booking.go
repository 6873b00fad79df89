package models

import "time"

type Booking struct {
	ID uint `gorm:"primaryKey" json:"id"`

	UserID uint `gorm:"not null" json:"user_id"`
	User   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"user"`

	ServiceID uint    `gorm:"not null" json:"service_id"`
	Service   Service `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"service"`

	AssignedToID *uint `json:"assigned_to_id"`
	AssignedTo   *User `gorm:"foreignKey:AssignedToID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"assigned_to,omitempty"`

	Date    time.Time `gorm:"not null" json:"date"`
	Time    string    `gorm:"size:10;not null" json:"time"`
	Address string    `gorm:"size:255;not null" json:"address"`
	Notes   string    `gorm:"size:500" json:"notes"`

	Status string `gorm:"size:20;default:'pending'" json:"status"`

	// Snapshot of the service price at creation time, never recomputed.
	TotalPrice float64 `gorm:"not null" json:"total_price"`

	PaymentMethod         string `gorm:"size:10;default:'cash'" json:"payment_method"`
	PaymentStatus         string `gorm:"size:20;default:'pending'" json:"payment_status"`
	StripePaymentIntentID string `gorm:"size:100" json:"stripe_payment_intent_id,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	IsDeleted *bool      `json:"is_deleted"`
	DeletedAt *time.Time `json:"deleted_at"`
}

func (b *Booking) Deleted() bool {
	return b.IsDeleted != nil && *b.IsDeleted
}
