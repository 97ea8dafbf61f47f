package department

import (
	"github.com/staffsync/staffsync-backend-go/internal/pkg/validator"
)

type CreateDepartmentRequest struct {
	Name string `json:"name"`
}

func (r *CreateDepartmentRequest) Validate() error {
	return validateDepartmentFields(r.Name)
}

type UpdateDepartmentRequest struct {
	Name string `json:"name"`
}

func (r *UpdateDepartmentRequest) Validate() error {
	return validateDepartmentFields(r.Name)
}

func validateDepartmentFields(name string) error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type DepartmentResponse struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	EmployeeCount int64  `json:"employee_count"`
	CreatedAt     string `json:"created_at"`
	UpdatedAt     string `json:"updated_at"`
}
