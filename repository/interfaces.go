package repository

import (
	"context"

	"payroll_management/models"
)

type UserRepository interface {
	FindByUsername(ctx context.Context, username string) (*models.User, error)
	Create(ctx context.Context, u *models.User) error
	UpdatePassword(ctx context.Context, username, passwordHash string) error
}

type DepartmentRepository interface {
	FindByCode(ctx context.Context, code string) (*models.Department, error)
	FindAll(ctx context.Context) ([]models.Department, error)
	Create(ctx context.Context, d *models.Department) error
	Update(ctx context.Context, d *models.Department) error
	Delete(ctx context.Context, code string) error
}

type EmployeeRepository interface {
	FindByNumber(ctx context.Context, number string) (*models.Employee, error)
	FindAll(ctx context.Context) ([]models.Employee, error)
	Create(ctx context.Context, e *models.Employee) error
	Update(ctx context.Context, e *models.Employee) error
	Delete(ctx context.Context, number string) error
	CountByDepartment(ctx context.Context, code string) (int64, error)
	Count(ctx context.Context) (int64, error)
}

type SalaryRepository interface {
	FindByID(ctx context.Context, id string) (*models.Salary, error)
	FindAll(ctx context.Context) ([]models.Salary, error)
	FindByMonth(ctx context.Context, month string) ([]models.Salary, error)
	FindByEmployeeMonth(ctx context.Context, number, month string) (*models.Salary, error)
	Create(ctx context.Context, s *models.Salary) error
	Update(ctx context.Context, s *models.Salary) error
	Delete(ctx context.Context, id string) error
	CountByEmployee(ctx context.Context, number string) (int64, error)
}

type AuditRepository interface {
	Record(ctx context.Context, entry *models.AuditLog) error
	Recent(ctx context.Context, limit int) ([]models.AuditLog, error)
}
