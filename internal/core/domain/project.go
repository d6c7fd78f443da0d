package domain

import "time"

// Project is a client engagement owned by a single admin (or super admin).
// CreatedBy is stamped once at creation and never overwritten; ManagedBy is
// always set at creation and reassignable only by a super admin.
type Project struct {
	ID            string     `json:"id"`
	Name          string     `json:"name"`
	StartDate     time.Time  `json:"start_date"`
	EndDate       *time.Time `json:"end_date,omitempty"`
	AttachmentURL string     `json:"attachment,omitempty"`
	CreatedBy     string     `json:"created_by"`
	ManagedBy     string     `json:"managed_by"`
	CreatedAt     time.Time  `json:"created_at"`
}
