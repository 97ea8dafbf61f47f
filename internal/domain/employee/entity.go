package employee

import "time"

type Employee struct {
	ID           string
	FirstName    string
	LastName     string
	Email        string
	PhoneNumber  string
	DepartmentID *string
	HireDate     time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time

	// DTO
	DepartmentName *string
}

func (e Employee) FullName() string {
	return e.FirstName + " " + e.LastName
}
