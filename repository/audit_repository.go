package repository

import (
	"context"

	"payroll_management/models"

	"gorm.io/gorm"
)

type auditRepository struct {
	db *gorm.DB
}

func (r *auditRepository) Record(ctx context.Context, entry *models.AuditLog) error {
	return translate("record audit log", r.db.WithContext(ctx).Create(entry).Error)
}

func (r *auditRepository) Recent(ctx context.Context, limit int) ([]models.AuditLog, error) {
	if limit <= 0 || limit > 500 {
		limit = 200
	}
	logs := []models.AuditLog{}
	if err := r.db.WithContext(ctx).Order("created_at desc").Limit(limit).Find(&logs).Error; err != nil {
		return nil, translate("list audit logs", err)
	}
	return logs, nil
}
