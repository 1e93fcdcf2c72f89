package models

// Notification - уведомление соседа о новом посте рядом.
// PostTitle денормализован, чтобы уведомление переживало удаление поста.
// Distance фиксируется в момент создания и никогда не пересчитывается,
// даже если пользователь потом переместился.
type Notification struct {
	BaseModel
	UserID    string `gorm:"type:varchar(50);not null;index" json:"userId"`
	PostID    string `gorm:"type:varchar(50);not null" json:"postId"`
	PostTitle string `gorm:"type:varchar(200);not null" json:"postTitle"`
	Distance  int    `gorm:"not null" json:"distance"` // метры, округлено
	IsRead    bool   `gorm:"not null;default:false" json:"isRead"`
}
