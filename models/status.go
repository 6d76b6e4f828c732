package models

// Workflow statuses shared by orders and custom requests. The update
// endpoints store whatever string they receive; these are the values the
// admin UI knows about.
const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

// IsKnownStatus reports whether s is one of the workflow statuses above.
func IsKnownStatus(s string) bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}
