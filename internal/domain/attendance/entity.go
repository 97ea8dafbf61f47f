package attendance

import "time"

type Status string

const (
	StatusPresent Status = "present"
	StatusAbsent  Status = "absent"
)

func (s Status) IsValid() bool {
	return s == StatusPresent || s == StatusAbsent
}

type Attendance struct {
	ID         string
	EmployeeID string
	Date       time.Time
	Status     Status
	CreatedAt  time.Time

	// DTO
	EmployeeName *string
}
