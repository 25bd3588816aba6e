package models

import (
	"time"

	"gorm.io/gorm"
)

type PlanKind string

const (
	PlanMonthly       PlanKind = "monthly"
	PlanThreeMonth    PlanKind = "three_month"
	PlanSixMonth      PlanKind = "six_month"
	PlanTenCredits    PlanKind = "ten_credits"
	PlanTwentyCredits PlanKind = "twenty_credits"
)

// MembershipPurchase is one purchased membership. Expiration is computed once
// at creation and never changes; the row is kept forever as purchase history.
type MembershipPurchase struct {
	ID               uint           `json:"id" gorm:"primaryKey"`
	UserID           uint           `json:"user_id" gorm:"not null;index"`
	User             User           `json:"-"`
	Plan             PlanKind       `json:"plan" gorm:"not null"`
	PurchaseDate     time.Time      `json:"purchase_date" gorm:"not null"`
	StartDate        time.Time      `json:"start_date" gorm:"not null"`
	ExpirationDate   time.Time      `json:"expiration_date" gorm:"not null"`
	CreditsTotal     int            `json:"credits_total" gorm:"default:0"`
	CreditsRemaining int            `json:"credits_remaining" gorm:"default:0"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
	DeletedAt        gorm.DeletedAt `json:"-" gorm:"index"`
}

// IsCreditPlan reports whether usage is metered by credits rather than the
// date window alone.
func (m *MembershipPurchase) IsCreditPlan() bool {
	return m.CreditsTotal > 0
}
