package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/bharatgas/agency-crm-api/models"
	"github.com/bharatgas/agency-crm-api/utils"
)

// ComplaintService owns the complaints collection.
//
// Status transitions are deliberately permissive: a complaint may move from
// open straight to resolved, and closing or resolving an already closed
// complaint is accepted. The menu-driven workflow this models treats every
// transition as a support agent's judgement call.
type ComplaintService struct {
	db  *gorm.DB
	ids *utils.IDGenerator
}

// NewComplaintService creates a complaint service backed by the given database.
func NewComplaintService(db *gorm.DB, ids *utils.IDGenerator) *ComplaintService {
	return &ComplaintService{db: db, ids: ids}
}

// File registers a new complaint for a customer. The description must not
// be empty after trimming.
func (s *ComplaintService) File(customerID, description string) (*models.Complaint, error) {
	if !utils.IsNotEmpty(description) {
		return nil, fmt.Errorf("%w: complaint description cannot be empty", ErrInvalidInput)
	}

	var customer models.Customer
	err := s.db.Where("customer_id = ?", normalizeRef(customerID)).First(&customer).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: customer %s", ErrNotFound, customerID)
		}
		return nil, fmt.Errorf("failed to look up customer: %w", err)
	}

	complaint := models.Complaint{
		ComplaintID:   s.ids.Next(utils.KindComplaint),
		CustomerRowID: customer.ID,
		Description:   strings.TrimSpace(description),
		Status:        models.ComplaintOpen,
		FiledDate:     time.Now(),
	}
	if err := s.db.Create(&complaint).Error; err != nil {
		return nil, fmt.Errorf("failed to file complaint: %w", err)
	}
	complaint.Customer = customer
	return &complaint, nil
}

// GetByID looks up a complaint by its issued ID (e.g. BG-CMP-001).
func (s *ComplaintService) GetByID(complaintID string) (*models.Complaint, error) {
	var complaint models.Complaint
	err := s.db.Preload("Customer").
		Where("complaint_id = ?", normalizeRef(complaintID)).
		First(&complaint).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: complaint %s", ErrNotFound, complaintID)
		}
		return nil, fmt.Errorf("failed to look up complaint: %w", err)
	}
	return &complaint, nil
}

// ListAll returns every complaint in filing order.
func (s *ComplaintService) ListAll() ([]models.Complaint, error) {
	var complaints []models.Complaint
	if err := s.db.Preload("Customer").Order("id").Find(&complaints).Error; err != nil {
		return nil, fmt.Errorf("failed to list complaints: %w", err)
	}
	return complaints, nil
}

// ListByCustomer returns the complaints filed by the given customer in
// filing order. An unknown customer yields an empty list, not an error.
func (s *ComplaintService) ListByCustomer(customerID string) ([]models.Complaint, error) {
	var complaints []models.Complaint
	err := s.db.Preload("Customer").
		Joins("JOIN customers ON customers.id = complaints.customer_row_id").
		Where("customers.customer_id = ?", normalizeRef(customerID)).
		Order("complaints.id").
		Find(&complaints).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list complaints by customer: %w", err)
	}
	return complaints, nil
}

// ListByStatus returns complaints with the given status in filing order.
func (s *ComplaintService) ListByStatus(status models.ComplaintStatus) ([]models.Complaint, error) {
	var complaints []models.Complaint
	err := s.db.Preload("Customer").
		Where("status = ?", status).
		Order("id").
		Find(&complaints).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list complaints by status: %w", err)
	}
	return complaints, nil
}

// MarkInProgress sets a complaint's status to in_progress.
func (s *ComplaintService) MarkInProgress(complaintID string) (*models.Complaint, error) {
	return s.setStatus(complaintID, models.ComplaintInProgress, nil)
}

// Resolve sets a complaint's status to resolved and stamps the resolution time.
func (s *ComplaintService) Resolve(complaintID string) (*models.Complaint, error) {
	now := time.Now()
	return s.setStatus(complaintID, models.ComplaintResolved, &now)
}

// Close marks a complaint closed. Complaints are never deleted; closing an
// already closed complaint is a no-op.
func (s *ComplaintService) Close(complaintID string) (*models.Complaint, error) {
	complaint, err := s.GetByID(complaintID)
	if err != nil {
		return nil, err
	}
	if complaint.Status == models.ComplaintClosed {
		return complaint, nil
	}
	return s.setStatus(complaintID, models.ComplaintClosed, nil)
}

func (s *ComplaintService) setStatus(complaintID string, status models.ComplaintStatus, resolvedAt *time.Time) (*models.Complaint, error) {
	complaint, err := s.GetByID(complaintID)
	if err != nil {
		return nil, err
	}
	updates := map[string]interface{}{"status": status}
	if resolvedAt != nil {
		updates["resolved_date"] = resolvedAt
		complaint.ResolvedDate = resolvedAt
	}
	if err := s.db.Model(complaint).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("failed to update complaint status: %w", err)
	}
	complaint.Status = status
	return complaint, nil
}

// ComplaintReport summarizes complaints per status.
type ComplaintReport struct {
	Total      int64 `json:"total"`
	Open       int64 `json:"open"`
	InProgress int64 `json:"in_progress"`
	Resolved   int64 `json:"resolved"`
	Closed     int64 `json:"closed"`
}

// Report counts complaints per status.
func (s *ComplaintService) Report() (*ComplaintReport, error) {
	var report ComplaintReport
	if err := s.db.Model(&models.Complaint{}).Count(&report.Total).Error; err != nil {
		return nil, fmt.Errorf("failed to build complaint report: %w", err)
	}
	counts := []struct {
		dest   *int64
		status models.ComplaintStatus
	}{
		{&report.Open, models.ComplaintOpen},
		{&report.InProgress, models.ComplaintInProgress},
		{&report.Resolved, models.ComplaintResolved},
		{&report.Closed, models.ComplaintClosed},
	}
	for _, c := range counts {
		err := s.db.Model(&models.Complaint{}).Where("status = ?", c.status).Count(c.dest).Error
		if err != nil {
			return nil, fmt.Errorf("failed to build complaint report: %w", err)
		}
	}
	return &report, nil
}
