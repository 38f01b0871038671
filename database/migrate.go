package database

import (
	"gorm.io/gorm"

	"github.com/danuartha/resto-pos/catalog"
	"github.com/danuartha/resto-pos/models"
	"github.com/danuartha/resto-pos/utils"
)

// Migrate menjalankan AutoMigrate dan seed baris referensi status.
// Unique index (table_id, event_time) pada reservations dan unique label
// pada tables dideklarasikan lewat tag model dan ditegakkan di sisi
// database, bukan hanya lewat pengecekan aplikasi.
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.User{},
		&models.Status{},
		&models.Table{},
		&models.MenuCategory{},
		&models.Menu{},
		&models.Order{},
		&models.OrderItem{},
		&models.Payment{},
		&models.Reservation{},
	)
	if err != nil {
		return err
	}

	if err := SeedStatuses(db); err != nil {
		return err
	}

	utils.InfoLogger.Println("AutoMigrate completed.")
	return nil
}

// SeedStatuses memasukkan baris katalog status yang belum ada.
func SeedStatuses(db *gorm.DB) error {
	for _, row := range catalog.Seed() {
		var count int64
		if err := db.Model(&models.Status{}).
			Where("domain = ? AND name = ?", row.Domain, row.Name).
			Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			if err := db.Create(&row).Error; err != nil {
				return err
			}
		}
	}
	return nil
}
