package models

import (
	"time"
)

// ComplaintStatus represents the handling state of a complaint.
type ComplaintStatus string

const (
	ComplaintOpen       ComplaintStatus = "open"
	ComplaintInProgress ComplaintStatus = "in_progress"
	ComplaintResolved   ComplaintStatus = "resolved"
	ComplaintClosed     ComplaintStatus = "closed"
)

// IsValid returns true if the complaint status is recognized.
func (s ComplaintStatus) IsValid() bool {
	switch s {
	case ComplaintOpen, ComplaintInProgress, ComplaintResolved, ComplaintClosed:
		return true
	}
	return false
}

// Complaint represents a customer complaint.
type Complaint struct {
	ID            uint            `gorm:"primaryKey" json:"-"`
	ComplaintID   string          `gorm:"uniqueIndex;not null" json:"complaint_id"` // e.g. BG-CMP-001
	CustomerRowID uint            `gorm:"not null;index" json:"-"`
	Customer      Customer        `gorm:"foreignKey:CustomerRowID" json:"customer"`
	Description   string          `gorm:"type:text;not null" json:"description"`
	Status        ComplaintStatus `gorm:"not null;default:'open'" json:"status"`
	FiledDate     time.Time       `gorm:"not null" json:"filed_date"`
	ResolvedDate  *time.Time      `json:"resolved_date,omitempty"` // set only when resolved
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// TableName specifies the table name for the Complaint model
func (Complaint) TableName() string {
	return "complaints"
}
