package repositories

import (
	"errors"

	"foodboard_backend/internal/models"

	"gorm.io/gorm"
)

var ErrReportNotFound = errors.New("report not found")

// ReportCriteria - критерии выборки жалоб для админки
type ReportCriteria struct {
	Status   string `form:"status"`
	Page     int    `form:"page"`
	PageSize int    `form:"page_size" binding:"max=100"`
}

type ReportRepository interface {
	Create(report *models.Report) error
	FindByID(id string) (*models.Report, error)
	FindAll(criteria ReportCriteria) ([]models.Report, int64, error)
	UpdateStatus(id string, status models.ReportStatus, adminComment string, updatedAt string) error
}

type ReportRepositoryImpl struct {
	db *gorm.DB
}

func NewReportRepository(db *gorm.DB) ReportRepository {
	return &ReportRepositoryImpl{db: db}
}

func (r *ReportRepositoryImpl) Create(report *models.Report) error {
	return r.db.Create(report).Error
}

func (r *ReportRepositoryImpl) FindByID(id string) (*models.Report, error) {
	var report models.Report
	if err := r.db.First(&report, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReportNotFound
		}
		return nil, err
	}
	return &report, nil
}

func (r *ReportRepositoryImpl) FindAll(criteria ReportCriteria) ([]models.Report, int64, error) {
	query := r.db.Model(&models.Report{})
	if criteria.Status != "" {
		query = query.Where("status = ?", criteria.Status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var reports []models.Report
	offset, limit := normalizePaging(criteria.Page, criteria.PageSize)
	err := query.Order("created_at DESC").Offset(offset).Limit(limit).Find(&reports).Error
	if err != nil {
		return nil, 0, err
	}

	return reports, total, nil
}

func (r *ReportRepositoryImpl) UpdateStatus(id string, status models.ReportStatus, adminComment string, updatedAt string) error {
	updates := map[string]interface{}{
		"status":     status,
		"updated_at": updatedAt,
	}
	if adminComment != "" {
		updates["admin_comment"] = adminComment
	}

	result := r.db.Model(&models.Report{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrReportNotFound
	}
	return nil
}
