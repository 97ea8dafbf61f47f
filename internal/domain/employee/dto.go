package employee

import (
	"github.com/staffsync/staffsync-backend-go/internal/pkg/validator"
)

type CreateEmployeeRequest struct {
	FirstName    string  `json:"first_name"`
	LastName     string  `json:"last_name"`
	Email        string  `json:"email"`
	PhoneNumber  string  `json:"phone_number"`
	DepartmentID *string `json:"department_id"`
	HireDate     string  `json:"hire_date"`
}

func (r *CreateEmployeeRequest) Validate() error {
	return validateEmployeeFields(r.FirstName, r.LastName, r.Email, r.PhoneNumber, r.HireDate)
}

type UpdateEmployeeRequest struct {
	FirstName    string  `json:"first_name"`
	LastName     string  `json:"last_name"`
	Email        string  `json:"email"`
	PhoneNumber  string  `json:"phone_number"`
	DepartmentID *string `json:"department_id"`
	HireDate     string  `json:"hire_date"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	return validateEmployeeFields(r.FirstName, r.LastName, r.Email, r.PhoneNumber, r.HireDate)
}

func validateEmployeeFields(firstName, lastName, email, phone, hireDate string) error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(firstName) {
		errs = append(errs, validator.ValidationError{
			Field:   "first_name",
			Message: "first_name is required",
		})
	}

	if validator.IsEmpty(lastName) {
		errs = append(errs, validator.ValidationError{
			Field:   "last_name",
			Message: "last_name is required",
		})
	}

	if validator.IsEmpty(email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email is required",
		})
	} else if !validator.IsValidEmail(email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email must be a valid email address",
		})
	}

	if validator.IsEmpty(phone) {
		errs = append(errs, validator.ValidationError{
			Field:   "phone_number",
			Message: "phone_number is required",
		})
	} else if !validator.IsValidPhoneNumber(phone) {
		errs = append(errs, validator.ValidationError{
			Field:   "phone_number",
			Message: "phone_number must be 7-15 digits",
		})
	}

	if validator.IsEmpty(hireDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "hire_date",
			Message: "hire_date is required",
		})
	} else if _, ok := validator.IsValidDate(hireDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "hire_date",
			Message: "hire_date must be in YYYY-MM-DD format",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type EmployeeResponse struct {
	ID             string  `json:"id"`
	FirstName      string  `json:"first_name"`
	LastName       string  `json:"last_name"`
	FullName       string  `json:"full_name"`
	Email          string  `json:"email"`
	PhoneNumber    string  `json:"phone_number"`
	DepartmentID   *string `json:"department_id"`
	DepartmentName *string `json:"department_name"`
	HireDate       string  `json:"hire_date"`
	CreatedAt      string  `json:"created_at"`
	UpdatedAt      string  `json:"updated_at"`
}

// EmployeeDetailResponse adds the employee's most recent attendance records.
type EmployeeDetailResponse struct {
	EmployeeResponse
	RecentAttendances []RecentAttendance `json:"recent_attendances"`
}

type RecentAttendance struct {
	ID     string `json:"id"`
	Date   string `json:"date"`
	Status string `json:"status"`
}
