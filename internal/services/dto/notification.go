package dto

import "foodboard_backend/internal/models"

type NotificationListResponse struct {
	Notifications []models.Notification `json:"notifications"`
	Total         int64                 `json:"total"`
	Page          int                   `json:"page"`
	PageSize      int                   `json:"pageSize"`
	TotalPages    int                   `json:"totalPages"`
}

type UnreadCountResponse struct {
	Count int64 `json:"unread_count"`
}
