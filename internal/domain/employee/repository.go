package employee

import "context"

type EmployeeRepository interface {
	Create(ctx context.Context, emp Employee) (Employee, error)
	GetByID(ctx context.Context, id string) (Employee, error)

	// List returns all employees with their department names joined,
	// ordered by first then last name.
	List(ctx context.Context) ([]Employee, error)

	Update(ctx context.Context, emp Employee) error

	// Delete removes the employee; attendance rows cascade.
	Delete(ctx context.Context, id string) error

	// ExistsByEmail reports whether another employee already uses the email.
	// excludeID may be empty on create.
	ExistsByEmail(ctx context.Context, email string, excludeID string) (bool, error)
}
