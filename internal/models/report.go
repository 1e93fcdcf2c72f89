package models

type Report struct {
	BaseModel
	ReporterID     string       `gorm:"type:varchar(50);not null;index" json:"reporterId"`
	ReportedUserID string       `gorm:"type:varchar(50);not null;index" json:"reportedUserId"`
	PostID         *string      `gorm:"type:varchar(50)" json:"postId,omitempty"`
	Reason         ReportReason `gorm:"type:varchar(50);not null" json:"reason"`
	Description    string       `gorm:"type:text" json:"description"`
	Status         ReportStatus `gorm:"type:varchar(50);not null;default:'В обработке';index" json:"status"`
	AdminComment   *string      `gorm:"type:text" json:"adminComment,omitempty"`
	UpdatedAt      *string      `gorm:"type:varchar(20)" json:"updatedAt,omitempty"`
}
