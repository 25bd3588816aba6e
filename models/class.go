package models

import (
	"time"

	"gorm.io/gorm"
)

type ClassSession struct {
	ID             uint           `json:"id" gorm:"primaryKey"`
	Name           string         `json:"name" gorm:"not null"`
	Description    string         `json:"description"`
	Date           time.Time      `json:"date" gorm:"not null;index"` // Day of the session, midnight
	StartTime      time.Time      `json:"start_time" gorm:"not null"`
	EndTime        time.Time      `json:"end_time" gorm:"not null"`
	InstructorName string         `json:"instructor_name" gorm:"not null"`
	Capacity       int            `json:"capacity" gorm:"default:0"` // 0 = unlimited
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	DeletedAt      gorm.DeletedAt `json:"-" gorm:"index"`

	// Relations
	Bookings []Booking `json:"bookings,omitempty" gorm:"foreignKey:ClassSessionID"`
}
