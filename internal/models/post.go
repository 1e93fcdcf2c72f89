package models

import "gorm.io/datatypes"

type Post struct {
	BaseModel
	Title       string         `gorm:"type:varchar(200);not null" json:"title"`
	Description string         `gorm:"type:text" json:"description"`
	Price       float64        `gorm:"type:decimal(10,2);default:0" json:"price"`
	Contact     string         `gorm:"type:varchar(100);not null" json:"contact"`
	Category    PostCategory   `gorm:"type:varchar(50);default:'Другое';index" json:"category"`
	District    string         `gorm:"type:varchar(100);index" json:"district"`
	Photos      datatypes.JSON `gorm:"type:jsonb" json:"photos"` // массив URL
	Lat         *float64       `json:"lat,omitempty"`
	Lon         *float64       `json:"lon,omitempty"`

	// Флаг автора "уведомить соседей", выставляется при создании.
	NotifyNeighbors bool   `gorm:"not null;default:false" json:"notifyNeighbors"`
	UserID          string `gorm:"type:varchar(50);not null;index" json:"userId"`
}

// HasCoordinates - можно ли считать расстояние до поста.
func (p *Post) HasCoordinates() bool {
	return p.Lat != nil && p.Lon != nil
}
