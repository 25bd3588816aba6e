package models

import (
	"time"

	"gorm.io/gorm"
)

// Booking links a user, a class session and the membership that paid for it.
// Cancelled bookings are soft-deleted; a partial unique index on
// (user_id, class_session_id) over live rows guarantees at most one active
// booking per pair (see migration 00002).
type Booking struct {
	ID             uint               `json:"id" gorm:"primaryKey"`
	Reference      string             `json:"reference" gorm:"uniqueIndex;not null"`
	UserID         uint               `json:"user_id" gorm:"not null;index"`
	User           User               `json:"-"`
	ClassSessionID uint               `json:"class_session_id" gorm:"not null;index"`
	ClassSession   ClassSession       `json:"class_session,omitempty"`
	MembershipID   uint               `json:"membership_id" gorm:"not null"`
	Membership     MembershipPurchase `json:"-" gorm:"foreignKey:MembershipID"`
	BookingDate    time.Time          `json:"booking_date" gorm:"not null"`
	CreatedAt      time.Time          `json:"created_at"`
	UpdatedAt      time.Time          `json:"updated_at"`
	DeletedAt      gorm.DeletedAt     `json:"-" gorm:"index"`
}
