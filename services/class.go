package services

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/studiofit/studiofit-be/models"
)

var ErrClassNotFound = errors.New("class session not found")

// DefaultClassDuration fills in the end time when a session is created
// without one.
const DefaultClassDuration = time.Hour

type ClassService struct {
	db *gorm.DB
}

func NewClassService(db *gorm.DB) *ClassService {
	return &ClassService{db: db}
}

// CreateClass adds a session to the schedule. EndTime may be zero, in which
// case it defaults to one hour after the start.
func (s *ClassService) CreateClass(name, description, instructor string, startTime, endTime time.Time, capacity int) (*models.ClassSession, error) {
	if endTime.IsZero() {
		endTime = startTime.Add(DefaultClassDuration)
	}

	session := models.ClassSession{
		Name:           name,
		Description:    description,
		Date:           dateOnly(startTime),
		StartTime:      startTime,
		EndTime:        endTime,
		InstructorName: instructor,
		Capacity:       capacity,
	}

	if err := s.db.Create(&session).Error; err != nil {
		return nil, fmt.Errorf("create class session: %w", err)
	}

	return &session, nil
}

// GetClass loads a single session by id.
func (s *ClassService) GetClass(classID uint) (*models.ClassSession, error) {
	var session models.ClassSession
	err := s.db.First(&session, classID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrClassNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load class session: %w", err)
	}
	return &session, nil
}

// GetClasses lists the schedule ordered by date then start time. A non-zero
// date restricts the list to that day.
func (s *ClassService) GetClasses(date time.Time) ([]models.ClassSession, error) {
	query := s.db.Model(&models.ClassSession{})
	if !date.IsZero() {
		query = query.Where("date = ?", dateOnly(date))
	}

	var sessions []models.ClassSession
	err := query.Order("date ASC, start_time ASC").Find(&sessions).Error
	if err != nil {
		return nil, fmt.Errorf("list class sessions: %w", err)
	}
	return sessions, nil
}
