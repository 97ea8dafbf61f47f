package department

import "context"

type DepartmentService interface {
	List(ctx context.Context) ([]DepartmentResponse, error)
	Get(ctx context.Context, id string) (DepartmentResponse, error)
	Create(ctx context.Context, req CreateDepartmentRequest) (DepartmentResponse, error)
	Update(ctx context.Context, id string, req UpdateDepartmentRequest) (DepartmentResponse, error)
	Delete(ctx context.Context, id string) error
}
