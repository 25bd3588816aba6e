package testutil

import (
	"fmt"
	"testing"
	"time"

	"gorm.io/gorm"

	"github.com/studiofit/studiofit-be/models"
)

// TestUser creates a member account
func TestUser(t *testing.T, db *gorm.DB, opts ...func(*models.User)) *models.User {
	t.Helper()

	user := &models.User{
		Email:     fmt.Sprintf("test_%d@example.com", time.Now().UnixNano()),
		Password:  "$2a$14$abcdefghijklmnopqrstuvwxyz123456", // bcrypt hash placeholder
		FirstName: "Test",
		LastName:  "User",
		Role:      models.RoleMember,
		IsActive:  true,
	}
	for _, opt := range opts {
		opt(user)
	}

	if err := db.Create(user).Error; err != nil {
		t.Fatalf("Failed to create test user: %v", err)
	}
	return user
}

func WithEmail(email string) func(*models.User) {
	return func(u *models.User) { u.Email = email }
}

// TestClass creates a class session starting at the given time, one hour long
func TestClass(t *testing.T, db *gorm.DB, startTime time.Time, opts ...func(*models.ClassSession)) *models.ClassSession {
	t.Helper()

	year, month, day := startTime.Date()
	session := &models.ClassSession{
		Name:           fmt.Sprintf("Yoga %d", time.Now().UnixNano()%10000),
		Description:    "Test class",
		Date:           time.Date(year, month, day, 0, 0, 0, 0, startTime.Location()),
		StartTime:      startTime,
		EndTime:        startTime.Add(time.Hour),
		InstructorName: "Alex",
	}
	for _, opt := range opts {
		opt(session)
	}

	if err := db.Create(session).Error; err != nil {
		t.Fatalf("Failed to create test class: %v", err)
	}
	return session
}

func WithClassName(name string) func(*models.ClassSession) {
	return func(s *models.ClassSession) { s.Name = name }
}

// TestMembership creates a membership row directly, bypassing the plan
// catalog, for fixtures that need unusual states (expired, drained).
func TestMembership(t *testing.T, db *gorm.DB, userID uint, opts ...func(*models.MembershipPurchase)) *models.MembershipPurchase {
	t.Helper()

	now := time.Now()
	year, month, day := now.Date()
	start := time.Date(year, month, day, 0, 0, 0, 0, now.Location())
	membership := &models.MembershipPurchase{
		UserID:         userID,
		Plan:           models.PlanMonthly,
		PurchaseDate:   now,
		StartDate:      start,
		ExpirationDate: start.AddDate(0, 1, 0),
	}
	for _, opt := range opts {
		opt(membership)
	}

	if err := db.Create(membership).Error; err != nil {
		t.Fatalf("Failed to create test membership: %v", err)
	}
	return membership
}

func WithPlan(kind models.PlanKind) func(*models.MembershipPurchase) {
	return func(m *models.MembershipPurchase) { m.Plan = kind }
}

func WithCredits(total, remaining int) func(*models.MembershipPurchase) {
	return func(m *models.MembershipPurchase) {
		m.CreditsTotal = total
		m.CreditsRemaining = remaining
	}
}

func WithWindow(start, expiration time.Time) func(*models.MembershipPurchase) {
	return func(m *models.MembershipPurchase) {
		m.StartDate = start
		m.ExpirationDate = expiration
	}
}
