package dto

import "foodboard_backend/internal/models"

type CreatePostRequest struct {
	Title           string   `json:"title" binding:"required" validate:"required,max=200"`
	Description     string   `json:"description"`
	Price           float64  `json:"price" validate:"min=0"`
	Contact         string   `json:"contact" binding:"required" validate:"required,max=100"`
	Category        string   `json:"category" validate:"is-post-category"`
	District        string   `json:"district" validate:"max=100"`
	Photos          []string `json:"photos"`
	Lat             *float64 `json:"lat" validate:"omitempty,latitude"`
	Lon             *float64 `json:"lon" validate:"omitempty,longitude"`
	NotifyNeighbors bool     `json:"notifyNeighbors"`
}

type UpdatePostRequest struct {
	Title       *string      `json:"title" validate:"omitempty,max=200"`
	Description *string      `json:"description"`
	Price       *float64     `json:"price" validate:"omitempty,min=0"`
	Contact     *string      `json:"contact" validate:"omitempty,max=100"`
	Category    *string      `json:"category" validate:"omitempty,is-post-category"`
	District    *string      `json:"district" validate:"omitempty,max=100"`
	Photos      []string     `json:"photos"`
	Lat         *float64     `json:"lat" validate:"omitempty,latitude"`
	Lon         *float64     `json:"lon" validate:"omitempty,longitude"`
}

type PostListResponse struct {
	Posts      []models.Post `json:"posts"`
	Total      int64         `json:"total"`
	Page       int           `json:"page"`
	PageSize   int           `json:"pageSize"`
	TotalPages int           `json:"totalPages"`
}
