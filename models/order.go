package models

import (
	"time"
)

type Order struct {
	ID         uint        `gorm:"primaryKey" json:"id"`
	UserID     uint        `gorm:"not null" json:"user_id"`
	User       User        `gorm:"foreignKey:UserID" json:"user"`
	TableID    *uint       `gorm:"index" json:"table_id,omitempty"`
	Table      *Table      `gorm:"foreignKey:TableID" json:"table,omitempty"`
	Status     string      `gorm:"type:varchar(20);not null" json:"status"`
	CreatedAt  time.Time   `gorm:"not null" json:"created_at"`
	UpdatedAt  time.Time   `gorm:"not null" json:"updated_at"`
	OrderItems []OrderItem `gorm:"foreignKey:OrderID" json:"order_items"`
}

// Total menjumlahkan harga snapshot x quantity untuk semua item aktif.
func (o *Order) Total() float64 {
	var total float64
	for _, item := range o.OrderItems {
		if item.Active {
			total += item.Price * float64(item.Quantity)
		}
	}
	return total
}
