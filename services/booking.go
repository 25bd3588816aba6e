package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/studiofit/studiofit-be/models"
)

var (
	ErrAlreadyBooked   = errors.New("class already booked")
	ErrBookingNotFound = errors.New("booking not found")
)

type BookingService struct {
	db                *gorm.DB
	membershipService *MembershipService
}

func NewBookingService(db *gorm.DB) *BookingService {
	return &BookingService{
		db:                db,
		membershipService: NewMembershipService(db),
	}
}

// ClassWithBookingStatus annotates a session with whether the given user
// holds an active booking for it.
type ClassWithBookingStatus struct {
	models.ClassSession
	BookedByUser bool `json:"booked_by_user"`
}

// BookClass books a class against a membership. The booking row and the
// credit debit commit together or not at all. Duplicate bookings are stopped
// by the partial unique index on (user_id, class_session_id); the existence
// check below is only a fast path for a friendlier error.
func (s *BookingService) BookClass(userID, classID, membershipID uint) (*models.Booking, error) {
	var booking models.Booking

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var session models.ClassSession
		if err := tx.First(&session, classID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrClassNotFound
			}
			return fmt.Errorf("load class session: %w", err)
		}

		var membership models.MembershipPurchase
		err := tx.Where("id = ? AND user_id = ?", membershipID, userID).First(&membership).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrMembershipNotFound
		}
		if err != nil {
			return fmt.Errorf("load membership: %w", err)
		}

		// Window check only here. A drained credit plan gets the more
		// specific ErrNoCreditsRemaining from the debit below, after the
		// transaction has proven nothing else blocks the booking.
		if !withinWindow(&membership, time.Now()) {
			return ErrMembershipNotUsable
		}

		var count int64
		tx.Model(&models.Booking{}).
			Where("user_id = ? AND class_session_id = ?", userID, classID).
			Count(&count)
		if count > 0 {
			return ErrAlreadyBooked
		}

		booking = models.Booking{
			Reference:      uuid.NewString(),
			UserID:         userID,
			ClassSessionID: classID,
			MembershipID:   membership.ID,
			BookingDate:    time.Now(),
		}
		if err := tx.Create(&booking).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrAlreadyBooked
			}
			return fmt.Errorf("create booking: %w", err)
		}

		if err := s.membershipService.DebitCredit(tx, &membership); err != nil {
			return err
		}

		booking.ClassSession = session
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &booking, nil
}

// CancelBooking drops the user's active booking for a class. A credit is
// refunded only while the membership's date window is still open; a lapsed
// membership keeps nothing back. Refund and deletion share one transaction.
func (s *BookingService) CancelBooking(userID, classID uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var booking models.Booking
		err := tx.Where("user_id = ? AND class_session_id = ?", userID, classID).First(&booking).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrBookingNotFound
		}
		if err != nil {
			return fmt.Errorf("load booking: %w", err)
		}

		var membership models.MembershipPurchase
		if err := tx.First(&membership, booking.MembershipID).Error; err != nil {
			return fmt.Errorf("load membership: %w", err)
		}

		if withinWindow(&membership, time.Now()) {
			if err := s.membershipService.RefundCredit(tx, &membership); err != nil {
				return err
			}
		}

		if err := tx.Delete(&booking).Error; err != nil {
			return fmt.Errorf("cancel booking: %w", err)
		}
		return nil
	})
}

// GetUserBookings returns the user's active bookings with session details,
// soonest class first.
func (s *BookingService) GetUserBookings(userID uint) ([]models.Booking, error) {
	var bookings []models.Booking
	err := s.db.Preload("ClassSession").
		Joins("JOIN class_sessions ON class_sessions.id = bookings.class_session_id").
		Where("bookings.user_id = ?", userID).
		Order("class_sessions.start_time ASC").
		Find(&bookings).Error
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	return bookings, nil
}

// GetFutureBookings narrows GetUserBookings to sessions from the given day
// onward, for the profile summary.
func (s *BookingService) GetFutureBookings(userID uint, asOf time.Time) ([]models.Booking, error) {
	var bookings []models.Booking
	err := s.db.Preload("ClassSession").
		Joins("JOIN class_sessions ON class_sessions.id = bookings.class_session_id").
		Where("bookings.user_id = ? AND class_sessions.date >= ?", userID, dateOnly(asOf)).
		Order("class_sessions.start_time ASC").
		Find(&bookings).Error
	if err != nil {
		return nil, fmt.Errorf("list future bookings: %w", err)
	}
	return bookings, nil
}

// GetClassesWithBookingStatus lists the schedule with each session flagged
// when the user already booked it. Read-only; an empty schedule is an empty
// slice, not an error.
func (s *BookingService) GetClassesWithBookingStatus(userID uint, date time.Time) ([]ClassWithBookingStatus, error) {
	query := s.db.Model(&models.ClassSession{})
	if !date.IsZero() {
		query = query.Where("date = ?", dateOnly(date))
	}

	var sessions []models.ClassSession
	if err := query.Order("date ASC, start_time ASC").Find(&sessions).Error; err != nil {
		return nil, fmt.Errorf("list class sessions: %w", err)
	}

	var bookedIDs []uint
	err := s.db.Model(&models.Booking{}).
		Where("user_id = ?", userID).
		Pluck("class_session_id", &bookedIDs).Error
	if err != nil {
		return nil, fmt.Errorf("list booked sessions: %w", err)
	}

	booked := make(map[uint]bool, len(bookedIDs))
	for _, id := range bookedIDs {
		booked[id] = true
	}

	result := make([]ClassWithBookingStatus, 0, len(sessions))
	for _, session := range sessions {
		result = append(result, ClassWithBookingStatus{
			ClassSession: session,
			BookedByUser: booked[session.ID],
		})
	}
	return result, nil
}

// withinWindow checks only the date range, ignoring credits. Used for the
// refund decision: a membership whose last credit paid for this booking must
// still get that credit back on cancellation.
func withinWindow(m *models.MembershipPurchase, asOf time.Time) bool {
	day := dateOnly(asOf)
	return !day.Before(m.StartDate) && !day.After(m.ExpirationDate)
}
