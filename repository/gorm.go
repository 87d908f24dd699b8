package repository

import (
	"errors"
	"fmt"

	"payroll_management/types"

	"gorm.io/gorm"
)

// Store bundles the gorm-backed repositories sharing one connection pool.
type Store struct {
	DB          *gorm.DB
	Users       UserRepository
	Departments DepartmentRepository
	Employees   EmployeeRepository
	Salaries    SalaryRepository
	Audit       AuditRepository
}

func NewStore(db *gorm.DB) *Store {
	return &Store{
		DB:          db,
		Users:       &userRepository{db: db},
		Departments: &departmentRepository{db: db},
		Employees:   &employeeRepository{db: db},
		Salaries:    &salaryRepository{db: db},
		Audit:       &auditRepository{db: db},
	}
}

// translate maps gorm errors onto the shared taxonomy so callers never import gorm.
func translate(op string, err error) error {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return fmt.Errorf("%s: %w", op, types.ErrNotFound)
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return fmt.Errorf("%s: %w", op, types.ErrDuplicate)
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return fmt.Errorf("%s: %w", op, types.ErrReferenced)
	}
	return fmt.Errorf("%s: %w", op, err)
}

// affected turns a zero-row update/delete into ErrNotFound.
func affected(op string, res *gorm.DB) error {
	if res.Error != nil {
		return translate(op, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%s: %w", op, types.ErrNotFound)
	}
	return nil
}
