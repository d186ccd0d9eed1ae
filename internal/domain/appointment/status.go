package appointment

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusScheduled Status = "scheduled"
	StatusConfirmed Status = "confirmed"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
	StatusNoShow    Status = "no_show"
)

// InactiveStatuses are the statuses that no longer hold a service: they do not
// block a permanent delete.
func InactiveStatuses() []string {
	return []string{string(StatusCancelled), string(StatusNoShow)}
}
