package domain

import "time"

// WorkEntry is a single log of billable work. ProjectID may be empty (work
// logged without a project is unbilled). The entry carries no owner of its
// own: ownership is derived through project.ManagedBy, or through the
// logging user's manager when there is no project.
type WorkEntry struct {
	ID        string    `json:"id"`
	UserID    string    `json:"actor"`
	ProjectID string    `json:"project,omitempty"`
	Category  string    `json:"category"`
	Quantity  int       `json:"quantity"`
	Date      time.Time `json:"date"`
	CreatedAt time.Time `json:"created_at"`
}
