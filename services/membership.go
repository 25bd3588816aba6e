package services

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/studiofit/studiofit-be/models"
)

var (
	ErrMembershipNotFound  = errors.New("membership not found")
	ErrMembershipNotUsable = errors.New("membership expired or out of credits")
	ErrNoCreditsRemaining  = errors.New("no credits remaining")
)

type MembershipService struct {
	db *gorm.DB
}

func NewMembershipService(db *gorm.DB) *MembershipService {
	return &MembershipService{db: db}
}

// CreateMembership records a purchased membership. Payment happens outside
// this system; by the time this runs the purchase is already authorized.
func (s *MembershipService) CreateMembership(userID uint, kind models.PlanKind, startDate time.Time) (*models.MembershipPurchase, error) {
	months, err := DurationMonths(kind)
	if err != nil {
		return nil, err
	}
	credits, err := CreditsGranted(kind)
	if err != nil {
		return nil, err
	}

	startDate = dateOnly(startDate)
	membership := models.MembershipPurchase{
		UserID:           userID,
		Plan:             kind,
		PurchaseDate:     time.Now(),
		StartDate:        startDate,
		ExpirationDate:   addMonths(startDate, months),
		CreditsTotal:     credits,
		CreditsRemaining: credits,
	}

	if err := s.db.Create(&membership).Error; err != nil {
		return nil, fmt.Errorf("create membership: %w", err)
	}

	return &membership, nil
}

// GetMembership loads a membership owned by the given user.
func (s *MembershipService) GetMembership(userID, membershipID uint) (*models.MembershipPurchase, error) {
	var membership models.MembershipPurchase
	err := s.db.Where("id = ? AND user_id = ?", membershipID, userID).First(&membership).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrMembershipNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load membership: %w", err)
	}
	return &membership, nil
}

// GetUserMemberships returns the full purchase history, newest first.
func (s *MembershipService) GetUserMemberships(userID uint) ([]models.MembershipPurchase, error) {
	var memberships []models.MembershipPurchase
	err := s.db.Where("user_id = ?", userID).
		Order("purchase_date DESC").
		Find(&memberships).Error
	return memberships, err
}

// IsUsable reports whether the membership can pay for a booking on the given
// day: inside its date window and, for credit plans, holding at least one
// credit.
func IsUsable(m *models.MembershipPurchase, asOf time.Time) bool {
	day := dateOnly(asOf)
	if day.Before(m.StartDate) || day.After(m.ExpirationDate) {
		return false
	}
	if m.IsCreditPlan() && m.CreditsRemaining <= 0 {
		return false
	}
	return true
}

// DebitCredit takes one credit from a credit-plan membership. The guarded
// UPDATE keeps concurrent debits from overdrawing: whichever transaction
// loses the race sees zero rows affected. Date-based plans are a no-op.
func (s *MembershipService) DebitCredit(tx *gorm.DB, m *models.MembershipPurchase) error {
	if !m.IsCreditPlan() {
		return nil
	}

	result := tx.Model(&models.MembershipPurchase{}).
		Where("id = ? AND credits_remaining > 0", m.ID).
		UpdateColumn("credits_remaining", gorm.Expr("credits_remaining - 1"))
	if result.Error != nil {
		return fmt.Errorf("debit credit: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNoCreditsRemaining
	}

	m.CreditsRemaining--
	return nil
}

// RefundCredit gives one credit back, capped at the plan total. No-op for
// date-based plans.
func (s *MembershipService) RefundCredit(tx *gorm.DB, m *models.MembershipPurchase) error {
	if !m.IsCreditPlan() {
		return nil
	}

	result := tx.Model(&models.MembershipPurchase{}).
		Where("id = ? AND credits_remaining < credits_total", m.ID).
		UpdateColumn("credits_remaining", gorm.Expr("credits_remaining + 1"))
	if result.Error != nil {
		return fmt.Errorf("refund credit: %w", result.Error)
	}
	if result.RowsAffected > 0 {
		m.CreditsRemaining++
	}
	return nil
}

// addMonths does calendar month arithmetic with end-of-month clamping, so
// Jan 31 + 1 month lands on Feb 28 (or 29), not Mar 2. time.AddDate alone
// normalizes overflow days into the next month.
func addMonths(t time.Time, months int) time.Time {
	year, month, day := t.Date()
	firstOfTarget := time.Date(year, month+time.Month(months), 1, 0, 0, 0, 0, t.Location())
	lastDay := firstOfTarget.AddDate(0, 1, -1).Day()
	if day > lastDay {
		day = lastDay
	}
	return time.Date(firstOfTarget.Year(), firstOfTarget.Month(), day, 0, 0, 0, 0, t.Location())
}

func dateOnly(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}
