package models

import "time"

type MenuCategory struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"type:varchar(255);unique;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
