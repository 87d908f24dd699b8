package repository

import (
	"context"

	"payroll_management/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type departmentRepository struct {
	db *gorm.DB
}

func (r *departmentRepository) FindByCode(ctx context.Context, code string) (*models.Department, error) {
	var d models.Department
	if err := r.db.WithContext(ctx).First(&d, "department_code = ?", code).Error; err != nil {
		return nil, translate("find department", err)
	}
	return &d, nil
}

func (r *departmentRepository) FindAll(ctx context.Context) ([]models.Department, error) {
	departments := []models.Department{}
	if err := r.db.WithContext(ctx).Order("department_code").Find(&departments).Error; err != nil {
		return nil, translate("list departments", err)
	}
	return departments, nil
}

func (r *departmentRepository) Create(ctx context.Context, d *models.Department) error {
	return translate("create department", r.db.WithContext(ctx).Omit(clause.Associations).Create(d).Error)
}

func (r *departmentRepository) Update(ctx context.Context, d *models.Department) error {
	res := r.db.WithContext(ctx).Model(&models.Department{}).
		Where("department_code = ?", d.DepartmentCode).
		Updates(map[string]interface{}{
			"department_name": d.DepartmentName,
			"budget":          d.Budget,
		})
	return affected("update department", res)
}

func (r *departmentRepository) Delete(ctx context.Context, code string) error {
	res := r.db.WithContext(ctx).Delete(&models.Department{}, "department_code = ?", code)
	return affected("delete department", res)
}
