package models

type User struct {
	BaseModel
	Phone        string   `gorm:"type:varchar(20);uniqueIndex;not null" json:"phone"`
	PasswordHash string   `gorm:"type:varchar(255);not null" json:"-"`
	Name         string   `gorm:"type:varchar(100);not null" json:"name"`
	Email        *string  `gorm:"type:varchar(255)" json:"email,omitempty"`
	Role         UserRole `gorm:"type:varchar(20);not null;default:'user';index" json:"role"`
	IsBlocked    bool     `gorm:"not null;default:false" json:"isBlocked"`
	Verified     bool     `gorm:"not null;default:false" json:"verified"`

	// Последняя геопозиция. nil = пользователь ни разу не делился
	// локацией и не участвует в рассылке уведомлений о соседях.
	LastLat            *float64 `gorm:"index" json:"lastLat,omitempty"`
	LastLon            *float64 `json:"lastLon,omitempty"`
	LastLocationUpdate *string  `gorm:"type:varchar(20)" json:"lastLocationUpdate,omitempty"`

	// Личный радиус уведомлений в метрах. nil = не настраивал,
	// действует радиус по умолчанию; 0 = уведомления выключены.
	NotificationRadius *int `json:"notificationRadius,omitempty"`
}

// HasLocation - участвует ли пользователь в геопоиске.
// Частичная координата (одна из двух) равносильна её отсутствию.
func (u *User) HasLocation() bool {
	return u.LastLat != nil && u.LastLon != nil
}
