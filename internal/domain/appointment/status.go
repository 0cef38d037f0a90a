package appointment

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusScheduled Status = "scheduled"
)

// InitialStatus is the status every new appointment starts in.
func InitialStatus() Status {
	return StatusScheduled
}
