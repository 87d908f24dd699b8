package repository

import (
	"context"

	"payroll_management/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type salaryRepository struct {
	db *gorm.DB
}

func (r *salaryRepository) FindByID(ctx context.Context, id string) (*models.Salary, error) {
	var s models.Salary
	if err := r.db.WithContext(ctx).First(&s, "id = ?", id).Error; err != nil {
		return nil, translate("find salary", err)
	}
	return &s, nil
}

func (r *salaryRepository) FindAll(ctx context.Context) ([]models.Salary, error) {
	salaries := []models.Salary{}
	if err := r.db.WithContext(ctx).Order("month DESC, employee_number").Find(&salaries).Error; err != nil {
		return nil, translate("list salaries", err)
	}
	return salaries, nil
}

func (r *salaryRepository) FindByMonth(ctx context.Context, month string) ([]models.Salary, error) {
	salaries := []models.Salary{}
	err := r.db.WithContext(ctx).
		Where("month = ?", month).
		Order("employee_number").
		Find(&salaries).Error
	if err != nil {
		return nil, translate("list salaries by month", err)
	}
	return salaries, nil
}

func (r *salaryRepository) FindByEmployeeMonth(ctx context.Context, number, month string) (*models.Salary, error) {
	var s models.Salary
	err := r.db.WithContext(ctx).
		Where("employee_number = ? AND month = ?", number, month).
		First(&s).Error
	if err != nil {
		return nil, translate("find salary by employee and month", err)
	}
	return &s, nil
}

func (r *salaryRepository) Create(ctx context.Context, s *models.Salary) error {
	return translate("create salary", r.db.WithContext(ctx).Omit(clause.Associations).Create(s).Error)
}

func (r *salaryRepository) Update(ctx context.Context, s *models.Salary) error {
	res := r.db.WithContext(ctx).Model(&models.Salary{}).
		Where("id = ?", s.ID).
		Updates(map[string]interface{}{
			"month":           s.Month,
			"gross_salary":    s.GrossSalary,
			"total_deduction": s.TotalDeduction,
			"net_salary":      s.NetSalary,
		})
	return affected("update salary", res)
}

func (r *salaryRepository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Delete(&models.Salary{}, "id = ?", id)
	return affected("delete salary", res)
}

func (r *salaryRepository) CountByEmployee(ctx context.Context, number string) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&models.Salary{}).Where("employee_number = ?", number).Count(&n).Error
	return n, translate("count salaries by employee", err)
}
