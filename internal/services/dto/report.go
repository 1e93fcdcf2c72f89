package dto

import "foodboard_backend/internal/models"

type CreateReportRequest struct {
	ReportedUserID string  `json:"reportedUserId" binding:"required" validate:"required"`
	PostID         *string `json:"postId"`
	Reason         string  `json:"reason" binding:"required" validate:"required,is-report-reason"`
	Description    string  `json:"description" validate:"max=2000"`
}

type UpdateReportStatusRequest struct {
	Status       string `json:"status" binding:"required" validate:"required"`
	AdminComment string `json:"adminComment" validate:"max=2000"`
}

type ReportListResponse struct {
	Reports    []models.Report `json:"reports"`
	Total      int64           `json:"total"`
	Page       int             `json:"page"`
	PageSize   int             `json:"pageSize"`
	TotalPages int             `json:"totalPages"`
}
