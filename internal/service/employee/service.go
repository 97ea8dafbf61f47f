package employee

import (
	"context"
	"fmt"
	"time"

	"github.com/staffsync/staffsync-backend-go/internal/domain/attendance"
	"github.com/staffsync/staffsync-backend-go/internal/domain/employee"
	"github.com/staffsync/staffsync-backend-go/internal/pkg/daterange"
)

const recentAttendanceLimit = 10

type employeeServiceImpl struct {
	employeeRepo   employee.EmployeeRepository
	attendanceRepo attendance.AttendanceRepository
	loc            *time.Location
	now            func() time.Time
}

func NewEmployeeService(
	employeeRepo employee.EmployeeRepository,
	attendanceRepo attendance.AttendanceRepository,
	loc *time.Location,
) employee.EmployeeService {
	return &employeeServiceImpl{
		employeeRepo:   employeeRepo,
		attendanceRepo: attendanceRepo,
		loc:            loc,
		now:            time.Now,
	}
}

// today reads the clock once per operation.
func (s *employeeServiceImpl) today() time.Time {
	return daterange.DateOf(s.now().In(s.loc))
}

func (s *employeeServiceImpl) List(ctx context.Context) ([]employee.EmployeeResponse, error) {
	employees, err := s.employeeRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, e := range employees {
		responses = append(responses, toEmployeeResponse(e))
	}
	return responses, nil
}

func (s *employeeServiceImpl) Get(ctx context.Context, id string) (employee.EmployeeDetailResponse, error) {
	e, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeDetailResponse{}, err
	}

	recent, err := s.attendanceRepo.ListRecentByEmployee(ctx, id, recentAttendanceLimit)
	if err != nil {
		return employee.EmployeeDetailResponse{}, fmt.Errorf("failed to load recent attendance: %w", err)
	}

	detail := employee.EmployeeDetailResponse{
		EmployeeResponse:  toEmployeeResponse(e),
		RecentAttendances: make([]employee.RecentAttendance, 0, len(recent)),
	}
	for _, a := range recent {
		detail.RecentAttendances = append(detail.RecentAttendances, employee.RecentAttendance{
			ID:     a.ID,
			Date:   daterange.Format(a.Date),
			Status: string(a.Status),
		})
	}
	return detail, nil
}

func (s *employeeServiceImpl) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	hireDate, err := daterange.ParseDate(req.HireDate)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("invalid hire date: %w", err)
	}
	if hireDate.After(s.today()) {
		return employee.EmployeeResponse{}, employee.ErrFutureHireDate
	}

	exists, err := s.employeeRepo.ExistsByEmail(ctx, req.Email, "")
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to check email: %w", err)
	}
	if exists {
		return employee.EmployeeResponse{}, employee.ErrEmailExists
	}

	created, err := s.employeeRepo.Create(ctx, employee.Employee{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		PhoneNumber:  req.PhoneNumber,
		DepartmentID: req.DepartmentID,
		HireDate:     hireDate,
	})
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	// Re-read to pick up the department name join.
	full, err := s.employeeRepo.GetByID(ctx, created.ID)
	if err != nil {
		return toEmployeeResponse(created), nil
	}
	return toEmployeeResponse(full), nil
}

func (s *employeeServiceImpl) Update(ctx context.Context, id string, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	e, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	hireDate, err := daterange.ParseDate(req.HireDate)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("invalid hire date: %w", err)
	}
	if hireDate.After(s.today()) {
		return employee.EmployeeResponse{}, employee.ErrFutureHireDate
	}

	exists, err := s.employeeRepo.ExistsByEmail(ctx, req.Email, id)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to check email: %w", err)
	}
	if exists {
		return employee.EmployeeResponse{}, employee.ErrEmailExists
	}

	e.FirstName = req.FirstName
	e.LastName = req.LastName
	e.Email = req.Email
	e.PhoneNumber = req.PhoneNumber
	e.DepartmentID = req.DepartmentID
	e.HireDate = hireDate
	if err := s.employeeRepo.Update(ctx, e); err != nil {
		return employee.EmployeeResponse{}, err
	}

	updated, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return toEmployeeResponse(updated), nil
}

func (s *employeeServiceImpl) Delete(ctx context.Context, id string) error {
	if _, err := s.employeeRepo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.employeeRepo.Delete(ctx, id)
}

func toEmployeeResponse(e employee.Employee) employee.EmployeeResponse {
	return employee.EmployeeResponse{
		ID:             e.ID,
		FirstName:      e.FirstName,
		LastName:       e.LastName,
		FullName:       e.FullName(),
		Email:          e.Email,
		PhoneNumber:    e.PhoneNumber,
		DepartmentID:   e.DepartmentID,
		DepartmentName: e.DepartmentName,
		HireDate:       daterange.Format(e.HireDate),
		CreatedAt:      e.CreatedAt.Format(time.RFC3339),
		UpdatedAt:      e.UpdatedAt.Format(time.RFC3339),
	}
}
