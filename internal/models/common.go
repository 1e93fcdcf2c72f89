package models

// BaseModel - общие поля всех таблиц.
// ID генерируется в сервисном слое (uuid), а не базой.
// CreatedAt хранится строкой в формате "DD.MM.YYYY HH:MM" - исторический
// формат базы; старые записи обязаны оставаться читаемыми.
type BaseModel struct {
	ID        string `gorm:"type:varchar(50);primaryKey" json:"id"`
	CreatedAt string `gorm:"type:varchar(20);not null" json:"createdAt"`
}
