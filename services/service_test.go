package services_test

import (
	"fmt"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/danuartha/resto-pos/catalog"
	"github.com/danuartha/resto-pos/database"
	"github.com/danuartha/resto-pos/models"
	"github.com/danuartha/resto-pos/utils"
)

func init() {
	utils.InitLogger()
}

// setupTestDB membuat SQLite in-memory terpisah per test, migrasi model,
// dan seed katalog status.
func setupTestDB(t *testing.T) (*gorm.DB, *catalog.Catalog) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open in-memory sqlite: %v", err)
	}

	err = db.AutoMigrate(
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
		t.Fatalf("failed to migrate: %v", err)
	}

	if err := database.SeedStatuses(db); err != nil {
		t.Fatalf("failed to seed statuses: %v", err)
	}

	cat, err := catalog.Load(db)
	if err != nil {
		t.Fatalf("failed to load catalog: %v", err)
	}

	return db, cat
}

func seedUser(t *testing.T, db *gorm.DB) models.User {
	t.Helper()
	user := models.User{
		Name:     "Test Staff",
		Email:    fmt.Sprintf("staff-%s@example.com", t.Name()),
		Password: "hashed",
		Role:     "staff",
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("failed to seed user: %v", err)
	}
	return user
}

func seedMenu(t *testing.T, db *gorm.DB, name string, price float64) models.Menu {
	t.Helper()
	category := models.MenuCategory{Name: "Food " + t.Name() + name}
	if err := db.Create(&category).Error; err != nil {
		t.Fatalf("failed to seed category: %v", err)
	}
	menu := models.Menu{
		CategoryID: category.ID,
		Name:       name,
		Price:      price,
		Stock:      100,
	}
	if err := db.Create(&menu).Error; err != nil {
		t.Fatalf("failed to seed menu: %v", err)
	}
	return menu
}

func seedTable(t *testing.T, db *gorm.DB, label, status string) models.Table {
	t.Helper()
	table := models.Table{
		Label:     label,
		Seats:     4,
		Active:    true,
		Status:    status,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	if err := db.Create(&table).Error; err != nil {
		t.Fatalf("failed to seed table: %v", err)
	}
	return table
}
