package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/studiofit/studiofit-be/models"
	"github.com/studiofit/studiofit-be/testutil"
)

func TestCreateMembership_MonthlyLeapYearClamp(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.CleanupTestDB(t, db)

	svc := NewMembershipService(db)
	user := testutil.TestUser(t, db)

	start := time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)
	m, err := svc.CreateMembership(user.ID, models.PlanMonthly, start)
	require.NoError(t, err)

	assert.Equal(t, "2024-02-29", m.ExpirationDate.Format("2006-01-02"))
	assert.Equal(t, 0, m.CreditsTotal)
	assert.False(t, m.IsCreditPlan())
}

func TestCreateMembership_NonLeapYearClamp(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.CleanupTestDB(t, db)

	svc := NewMembershipService(db)
	user := testutil.TestUser(t, db)

	start := time.Date(2023, 1, 31, 0, 0, 0, 0, time.UTC)
	m, err := svc.CreateMembership(user.ID, models.PlanMonthly, start)
	require.NoError(t, err)

	assert.Equal(t, "2023-02-28", m.ExpirationDate.Format("2006-01-02"))
}

func TestCreateMembership_PlainMonthArithmetic(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.CleanupTestDB(t, db)

	svc := NewMembershipService(db)
	user := testutil.TestUser(t, db)

	start := time.Date(2024, 2, 15, 0, 0, 0, 0, time.UTC)
	m, err := svc.CreateMembership(user.ID, models.PlanSixMonth, start)
	require.NoError(t, err)

	// Six calendar months, not 180 days
	assert.Equal(t, "2024-08-15", m.ExpirationDate.Format("2006-01-02"))
}

func TestCreateMembership_CreditPlan(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.CleanupTestDB(t, db)

	svc := NewMembershipService(db)
	user := testutil.TestUser(t, db)

	m, err := svc.CreateMembership(user.ID, models.PlanTenCredits, time.Now())
	require.NoError(t, err)

	assert.Equal(t, 10, m.CreditsTotal)
	assert.Equal(t, 10, m.CreditsRemaining)
	assert.True(t, m.IsCreditPlan())
}

func TestCreateMembership_InvalidKind(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.CleanupTestDB(t, db)

	svc := NewMembershipService(db)
	user := testutil.TestUser(t, db)

	_, err := svc.CreateMembership(user.ID, models.PlanKind("lifetime"), time.Now())
	assert.ErrorIs(t, err, ErrInvalidPlanKind)
}

func TestGetMembership_WrongOwner(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.CleanupTestDB(t, db)

	svc := NewMembershipService(db)
	owner := testutil.TestUser(t, db)
	other := testutil.TestUser(t, db)
	m := testutil.TestMembership(t, db, owner.ID)

	_, err := svc.GetMembership(other.ID, m.ID)
	assert.ErrorIs(t, err, ErrMembershipNotFound)
}

func TestIsUsable_DateWindow(t *testing.T) {
	now := time.Now()
	m := &models.MembershipPurchase{
		StartDate:      now.AddDate(0, 0, -10),
		ExpirationDate: now.AddDate(0, 0, 10),
	}
	assert.True(t, IsUsable(m, now))

	expired := &models.MembershipPurchase{
		StartDate:      now.AddDate(0, -2, 0),
		ExpirationDate: now.AddDate(0, 0, -1),
	}
	assert.False(t, IsUsable(expired, now))

	notStarted := &models.MembershipPurchase{
		StartDate:      now.AddDate(0, 0, 5),
		ExpirationDate: now.AddDate(0, 1, 5),
	}
	assert.False(t, IsUsable(notStarted, now))
}

func TestIsUsable_ExpirationDayInclusive(t *testing.T) {
	// Usable through the whole expiration day, even late in the evening
	now := time.Now()
	year, month, day := now.Date()
	today := time.Date(year, month, day, 0, 0, 0, 0, now.Location())

	m := &models.MembershipPurchase{
		StartDate:      today.AddDate(0, -1, 0),
		ExpirationDate: today,
	}
	assert.True(t, IsUsable(m, now))
}

func TestIsUsable_CreditPlanNeedsCredits(t *testing.T) {
	now := time.Now()
	m := &models.MembershipPurchase{
		StartDate:        now.AddDate(0, 0, -1),
		ExpirationDate:   now.AddDate(0, 1, 0),
		CreditsTotal:     10,
		CreditsRemaining: 0,
	}
	assert.False(t, IsUsable(m, now))

	m.CreditsRemaining = 1
	assert.True(t, IsUsable(m, now))
}

func TestIsUsable_ExpiredWithCreditsLeft(t *testing.T) {
	now := time.Now()
	m := &models.MembershipPurchase{
		StartDate:        now.AddDate(0, -4, 0),
		ExpirationDate:   now.AddDate(0, 0, -1),
		CreditsTotal:     20,
		CreditsRemaining: 15,
	}
	assert.False(t, IsUsable(m, now))
}

func TestDebitCredit_Bounds(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.CleanupTestDB(t, db)

	svc := NewMembershipService(db)
	user := testutil.TestUser(t, db)
	m := testutil.TestMembership(t, db, user.ID,
		testutil.WithPlan(models.PlanTenCredits),
		testutil.WithCredits(10, 2))

	require.NoError(t, svc.DebitCredit(db, m))
	require.NoError(t, svc.DebitCredit(db, m))
	assert.Equal(t, 0, m.CreditsRemaining)

	err := svc.DebitCredit(db, m)
	assert.ErrorIs(t, err, ErrNoCreditsRemaining)

	var stored models.MembershipPurchase
	require.NoError(t, db.First(&stored, m.ID).Error)
	assert.Equal(t, 0, stored.CreditsRemaining)
}

func TestDebitCredit_DatePlanNoOp(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.CleanupTestDB(t, db)

	svc := NewMembershipService(db)
	user := testutil.TestUser(t, db)
	m := testutil.TestMembership(t, db, user.ID)

	require.NoError(t, svc.DebitCredit(db, m))
	assert.Equal(t, 0, m.CreditsRemaining)
}

func TestRefundCredit_CappedAtTotal(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.CleanupTestDB(t, db)

	svc := NewMembershipService(db)
	user := testutil.TestUser(t, db)
	m := testutil.TestMembership(t, db, user.ID,
		testutil.WithPlan(models.PlanTenCredits),
		testutil.WithCredits(10, 9))

	require.NoError(t, svc.RefundCredit(db, m))
	assert.Equal(t, 10, m.CreditsRemaining)

	// Already full: stays at the cap
	require.NoError(t, svc.RefundCredit(db, m))
	assert.Equal(t, 10, m.CreditsRemaining)

	var stored models.MembershipPurchase
	require.NoError(t, db.First(&stored, m.ID).Error)
	assert.Equal(t, 10, stored.CreditsRemaining)
}

func TestGetUserMemberships_History(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.CleanupTestDB(t, db)

	svc := NewMembershipService(db)
	user := testutil.TestUser(t, db)

	_, err := svc.CreateMembership(user.ID, models.PlanMonthly, time.Now().AddDate(0, -3, 0))
	require.NoError(t, err)
	_, err = svc.CreateMembership(user.ID, models.PlanTenCredits, time.Now())
	require.NoError(t, err)

	memberships, err := svc.GetUserMemberships(user.ID)
	require.NoError(t, err)
	assert.Len(t, memberships, 2)
}
