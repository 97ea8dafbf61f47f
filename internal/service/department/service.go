package department

import (
	"context"
	"fmt"
	"time"

	"github.com/staffsync/staffsync-backend-go/internal/domain/department"
)

type departmentServiceImpl struct {
	deptRepo department.DepartmentRepository
}

func NewDepartmentService(deptRepo department.DepartmentRepository) department.DepartmentService {
	return &departmentServiceImpl{deptRepo: deptRepo}
}

func (s *departmentServiceImpl) List(ctx context.Context) ([]department.DepartmentResponse, error) {
	depts, err := s.deptRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list departments: %w", err)
	}

	responses := make([]department.DepartmentResponse, 0, len(depts))
	for _, d := range depts {
		responses = append(responses, toDepartmentResponse(d))
	}
	return responses, nil
}

func (s *departmentServiceImpl) Get(ctx context.Context, id string) (department.DepartmentResponse, error) {
	d, err := s.deptRepo.GetByID(ctx, id)
	if err != nil {
		return department.DepartmentResponse{}, err
	}
	return toDepartmentResponse(d), nil
}

func (s *departmentServiceImpl) Create(ctx context.Context, req department.CreateDepartmentRequest) (department.DepartmentResponse, error) {
	if err := req.Validate(); err != nil {
		return department.DepartmentResponse{}, err
	}

	created, err := s.deptRepo.Create(ctx, department.Department{Name: req.Name})
	if err != nil {
		return department.DepartmentResponse{}, fmt.Errorf("failed to create department: %w", err)
	}
	return toDepartmentResponse(created), nil
}

func (s *departmentServiceImpl) Update(ctx context.Context, id string, req department.UpdateDepartmentRequest) (department.DepartmentResponse, error) {
	if err := req.Validate(); err != nil {
		return department.DepartmentResponse{}, err
	}

	d, err := s.deptRepo.GetByID(ctx, id)
	if err != nil {
		return department.DepartmentResponse{}, err
	}

	d.Name = req.Name
	if err := s.deptRepo.Update(ctx, d); err != nil {
		return department.DepartmentResponse{}, fmt.Errorf("failed to update department: %w", err)
	}

	updated, err := s.deptRepo.GetByID(ctx, id)
	if err != nil {
		return department.DepartmentResponse{}, err
	}
	return toDepartmentResponse(updated), nil
}

func (s *departmentServiceImpl) Delete(ctx context.Context, id string) error {
	if _, err := s.deptRepo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.deptRepo.Delete(ctx, id)
}

func toDepartmentResponse(d department.Department) department.DepartmentResponse {
	var count int64
	if d.EmployeeCount != nil {
		count = *d.EmployeeCount
	}
	return department.DepartmentResponse{
		ID:            d.ID,
		Name:          d.Name,
		EmployeeCount: count,
		CreatedAt:     d.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     d.UpdatedAt.Format(time.RFC3339),
	}
}
