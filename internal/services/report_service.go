package services

import (
	"foodboard_backend/internal/datefmt"
	"foodboard_backend/internal/models"
	"foodboard_backend/internal/repositories"
	"foodboard_backend/internal/services/dto"
	"foodboard_backend/pkg/apperrors"

	"github.com/google/uuid"
)

type ReportService interface {
	Create(reporterID string, req *dto.CreateReportRequest) (*models.Report, error)
	List(criteria repositories.ReportCriteria) (*dto.ReportListResponse, error)
	UpdateStatus(reportID string, req *dto.UpdateReportStatusRequest) error
}

type ReportServiceImpl struct {
	reportRepo repositories.ReportRepository
	userRepo   repositories.UserRepository
}

func NewReportService(reportRepo repositories.ReportRepository, userRepo repositories.UserRepository) ReportService {
	return &ReportServiceImpl{reportRepo: reportRepo, userRepo: userRepo}
}

func (s *ReportServiceImpl) Create(reporterID string, req *dto.CreateReportRequest) (*models.Report, error) {
	if reporterID == req.ReportedUserID {
		return nil, apperrors.ErrInvalidOperation("reports", "cannot report yourself")
	}

	if _, err := s.userRepo.FindByID(req.ReportedUserID); err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	report := &models.Report{
		BaseModel: models.BaseModel{
			ID:        uuid.NewString(),
			CreatedAt: datefmt.Now(),
		},
		ReporterID:     reporterID,
		ReportedUserID: req.ReportedUserID,
		PostID:         req.PostID,
		Reason:         models.ReportReason(req.Reason),
		Description:    req.Description,
		Status:         models.ReportStatusPending,
	}

	if err := s.reportRepo.Create(report); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return report, nil
}

func (s *ReportServiceImpl) List(criteria repositories.ReportCriteria) (*dto.ReportListResponse, error) {
	reports, total, err := s.reportRepo.FindAll(criteria)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.ReportListResponse{
		Reports:    reports,
		Total:      total,
		Page:       criteria.Page,
		PageSize:   criteria.PageSize,
		TotalPages: calculateTotalPages(total, criteria.PageSize),
	}, nil
}

func (s *ReportServiceImpl) UpdateStatus(reportID string, req *dto.UpdateReportStatusRequest) error {
	status := models.ReportStatus(req.Status)
	switch status {
	case models.ReportStatusPending, models.ReportStatusReviewed,
		models.ReportStatusResolved, models.ReportStatusRejected:
	default:
		return apperrors.ErrInvalidOperation("reports", "unknown report status")
	}

	err := s.reportRepo.UpdateStatus(reportID, status, req.AdminComment, datefmt.Now())
	if err != nil {
		if apperrors.Is(err, repositories.ErrReportNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}
	return nil
}
