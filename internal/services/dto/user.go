package dto

type UpdateLocationRequest struct {
	Lat float64 `json:"lat" validate:"latitude"`
	Lon float64 `json:"lon" validate:"longitude"`
}

type UpdateProfileRequest struct {
	Name  *string `json:"name" validate:"omitempty,max=100"`
	Email *string `json:"email" validate:"omitempty,email"`
}

type UpdateRadiusRequest struct {
	// 0 = выключить уведомления о соседях
	NotificationRadius *int `json:"notificationRadius" binding:"required" validate:"required,min=0,max=100000"`
}

type UserProfileResponse struct {
	ID                 string   `json:"id"`
	Phone              string   `json:"phone"`
	Name               string   `json:"name"`
	Role               string   `json:"role"`
	IsBlocked          bool     `json:"isBlocked"`
	LastLat            *float64 `json:"lastLat,omitempty"`
	LastLon            *float64 `json:"lastLon,omitempty"`
	LastLocationUpdate *string  `json:"lastLocationUpdate,omitempty"`
	NotificationRadius int      `json:"notificationRadius"`
	CreatedAt          string   `json:"createdAt"`
}
