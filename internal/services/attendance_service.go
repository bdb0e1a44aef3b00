package services

import (
	"fmt"
	"time"

	"github.com/officehub/office-management-api/internal/models"
	"github.com/officehub/office-management-api/internal/policy"
	"github.com/officehub/office-management-api/internal/repository"
)

// AttendanceService drives the per-day clock state machine:
// no clock-in -> clocked-in -> closed. Clock actions outside the legal
// transition are no-ops, so refreshes and double submits never corrupt
// the record.
type AttendanceService struct {
	attendanceRepo repository.AttendanceRepository
}

// NewAttendanceService creates a new AttendanceService.
func NewAttendanceService(attendanceRepo repository.AttendanceRepository) *AttendanceService {
	return &AttendanceService{
		attendanceRepo: attendanceRepo,
	}
}

// ClockIn stamps the clock-in time for today unless one already exists.
func (s *AttendanceService) ClockIn(userID uint64, now time.Time) (*models.Attendance, error) {
	att, err := s.attendanceRepo.GetOrCreateForDate(userID, now)
	if err != nil {
		return nil, fmt.Errorf("failed to load attendance: %w", err)
	}

	if att.ClockIn != nil {
		return att, nil
	}

	att.ClockIn = &now
	if err := s.attendanceRepo.Save(att); err != nil {
		return nil, fmt.Errorf("failed to save attendance: %w", err)
	}
	return att, nil
}

// ClockOut stamps the clock-out time for today. Without a prior clock-in,
// or once the day is closed, nothing changes.
func (s *AttendanceService) ClockOut(userID uint64, now time.Time) (*models.Attendance, error) {
	att, err := s.attendanceRepo.GetOrCreateForDate(userID, now)
	if err != nil {
		return nil, fmt.Errorf("failed to load attendance: %w", err)
	}

	if att.ClockIn == nil || att.ClockOut != nil {
		return att, nil
	}

	att.ClockOut = &now
	if err := s.attendanceRepo.Save(att); err != nil {
		return nil, fmt.Errorf("failed to save attendance: %w", err)
	}
	return att, nil
}

// History returns the attendance rows the actor may see.
func (s *AttendanceService) History(actor policy.Actor) ([]models.Attendance, error) {
	return s.attendanceRepo.List(actor)
}
