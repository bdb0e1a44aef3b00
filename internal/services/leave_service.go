package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/officehub/office-management-api/internal/models"
	"github.com/officehub/office-management-api/internal/policy"
	"github.com/officehub/office-management-api/internal/repository"
	"github.com/officehub/office-management-api/internal/utils"
	"gorm.io/gorm"
)

var (
	ErrLeaveNotFound       = errors.New("leave request not found")
	ErrLeaveStartInPast    = errors.New("start date cannot be in the past")
	ErrLeaveEndBeforeStart = errors.New("end date cannot be before start date")
	ErrInvalidLeaveStatus  = errors.New("decision must be Approved or Rejected")
)

// LeaveService owns the leave request workflow: Pending is the only
// mutable state, Approved and Rejected are terminal.
type LeaveService struct {
	leaveRepo repository.LeaveRepository
}

// NewLeaveService creates a new LeaveService.
func NewLeaveService(leaveRepo repository.LeaveRepository) *LeaveService {
	return &LeaveService{
		leaveRepo: leaveRepo,
	}
}

// RequestInput holds a new leave request.
type RequestInput struct {
	StartDate time.Time
	EndDate   time.Time
	Reason    string
}

// Request validates and files a new leave request for the actor.
// The two date rules here are the only server-enforced invariants;
// overlaps with existing leave or holidays are not checked.
func (s *LeaveService) Request(actor policy.Actor, input RequestInput, today time.Time) (*models.LeaveRequest, error) {
	start := utils.DateOnly(input.StartDate)
	end := utils.DateOnly(input.EndDate)
	day := utils.DateOnly(today)

	if start.Before(day) {
		return nil, ErrLeaveStartInPast
	}
	if end.Before(start) {
		return nil, ErrLeaveEndBeforeStart
	}

	req := &models.LeaveRequest{
		UserID:    actor.UserID,
		StartDate: start,
		EndDate:   end,
		Reason:    input.Reason,
		Status:    models.LeaveStatusPending,
	}

	if err := s.leaveRepo.Create(req); err != nil {
		return nil, fmt.Errorf("failed to create leave request: %w", err)
	}
	return req, nil
}

// List returns the leave requests visible to the actor.
func (s *LeaveService) List(actor policy.Actor) ([]models.LeaveRequest, error) {
	return s.leaveRepo.List(actor)
}

// Decide transitions a Pending request to Approved or Rejected, stamping
// the approver and decision time. Deciding an already-terminal request
// is a no-op that preserves the original approver and timestamp.
func (s *LeaveService) Decide(actor policy.Actor, id uint64, status models.LeaveStatus, rejectReason string, now time.Time) (*models.LeaveRequest, error) {
	if status != models.LeaveStatusApproved && status != models.LeaveStatusRejected {
		return nil, ErrInvalidLeaveStatus
	}

	req, err := s.leaveRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLeaveNotFound
		}
		return nil, fmt.Errorf("failed to find leave request: %w", err)
	}

	if req.Status != models.LeaveStatusPending {
		return req, nil
	}

	approver := actor.UserID
	req.Status = status
	req.ApprovedByID = &approver
	req.ApprovalDate = &now
	if status == models.LeaveStatusRejected {
		req.RejectReason = rejectReason
	}

	if err := s.leaveRepo.Save(req); err != nil {
		return nil, fmt.Errorf("failed to save leave request: %w", err)
	}
	return req, nil
}
