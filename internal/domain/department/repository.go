package department

import "context"

type DepartmentRepository interface {
	Create(ctx context.Context, dept Department) (Department, error)
	GetByID(ctx context.Context, id string) (Department, error)

	// List returns departments ordered by name, each with its employee count.
	List(ctx context.Context) ([]Department, error)

	Update(ctx context.Context, dept Department) error

	// Delete removes the department. Employees referencing it are detached
	// (department_id set to NULL), never deleted.
	Delete(ctx context.Context, id string) error
}
