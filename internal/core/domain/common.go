package domain

import "time"

// AuditFields holds standard audit information for domain entities.
type AuditFields struct {
	CreatedAt     time.Time `json:"createdAt" db:"created_at"`
	CreatedBy     string    `json:"createdBy" db:"created_by"` // UserID Reference (JWT subject)
	LastUpdatedAt time.Time `json:"lastUpdatedAt" db:"last_updated_at"`
	LastUpdatedBy string    `json:"lastUpdatedBy" db:"last_updated_by"` // UserID Reference
}

// NewAuditFields stamps creation and update fields with the same actor and time.
func NewAuditFields(userID string, now time.Time) AuditFields {
	return AuditFields{
		CreatedAt:     now,
		CreatedBy:     userID,
		LastUpdatedAt: now,
		LastUpdatedBy: userID,
	}
}

// Touch records an update by userID at now.
func (a *AuditFields) Touch(userID string, now time.Time) {
	a.LastUpdatedAt = now
	a.LastUpdatedBy = userID
}

// ListParams holds the paging and free-text filters shared by list operations.
type ListParams struct {
	Page   int
	Limit  int
	Search string
	Status string
}

// Offset returns the row offset for the 1-based page.
func (p ListParams) Offset() int {
	if p.Page <= 1 {
		return 0
	}
	return (p.Page - 1) * p.Limit
}
