package repository

import (
	"context"

	"payroll_management/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type employeeRepository struct {
	db *gorm.DB
}

func (r *employeeRepository) FindByNumber(ctx context.Context, number string) (*models.Employee, error) {
	var e models.Employee
	if err := r.db.WithContext(ctx).First(&e, "employee_number = ?", number).Error; err != nil {
		return nil, translate("find employee", err)
	}
	return &e, nil
}

func (r *employeeRepository) FindAll(ctx context.Context) ([]models.Employee, error) {
	employees := []models.Employee{}
	if err := r.db.WithContext(ctx).Order("employee_number").Find(&employees).Error; err != nil {
		return nil, translate("list employees", err)
	}
	return employees, nil
}

func (r *employeeRepository) Create(ctx context.Context, e *models.Employee) error {
	return translate("create employee", r.db.WithContext(ctx).Omit(clause.Associations).Create(e).Error)
}

func (r *employeeRepository) Update(ctx context.Context, e *models.Employee) error {
	res := r.db.WithContext(ctx).Model(&models.Employee{}).
		Where("employee_number = ?", e.EmployeeNumber).
		Updates(map[string]interface{}{
			"first_name":      e.FirstName,
			"last_name":       e.LastName,
			"position":        e.Position,
			"address":         e.Address,
			"telephone":       e.Telephone,
			"gender":          e.Gender,
			"hired_date":      e.HiredDate,
			"department_code": e.DepartmentCode,
		})
	return affected("update employee", res)
}

func (r *employeeRepository) Delete(ctx context.Context, number string) error {
	res := r.db.WithContext(ctx).Delete(&models.Employee{}, "employee_number = ?", number)
	return affected("delete employee", res)
}

func (r *employeeRepository) CountByDepartment(ctx context.Context, code string) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&models.Employee{}).Where("department_code = ?", code).Count(&n).Error
	return n, translate("count employees by department", err)
}

func (r *employeeRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&models.Employee{}).Count(&n).Error
	return n, translate("count employees", err)
}
