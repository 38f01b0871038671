package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/danuartha/resto-pos/apperrors"
	"github.com/danuartha/resto-pos/catalog"
	"github.com/danuartha/resto-pos/models"
)

func setupCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file:catalogtest?mode=memory&cache=shared"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open in-memory sqlite: %v", err)
	}
	if err := db.AutoMigrate(&models.Status{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	db.Where("1 = 1").Delete(&models.Status{})
	for _, row := range catalog.Seed() {
		if err := db.Create(&row).Error; err != nil {
			t.Fatalf("failed to seed: %v", err)
		}
	}

	cat, err := catalog.Load(db)
	if err != nil {
		t.Fatalf("failed to load catalog: %v", err)
	}
	return cat
}

func TestResolveKnownStatuses(t *testing.T) {
	cat := setupCatalog(t)

	name, err := cat.OrderStatus(catalog.OrderNew)
	assert.NoError(t, err)
	assert.Equal(t, "NEW", name)

	name, err = cat.TableStatus(catalog.TableOccupied)
	assert.NoError(t, err)
	assert.Equal(t, "OCCUPIED", name)

	name, err = cat.ReservationStatus(catalog.ReservationPending)
	assert.NoError(t, err)
	assert.Equal(t, "PENDING", name)
}

func TestResolveUnknownStatusIsHardError(t *testing.T) {
	cat := setupCatalog(t)

	_, err := cat.OrderStatus("SHIPPED")
	assert.ErrorIs(t, err, apperrors.ErrStatusNotFound)

	// Nama valid di domain lain tetap tidak dikenal lintas domain
	_, err = cat.OrderStatus(catalog.TableOccupied)
	assert.ErrorIs(t, err, apperrors.ErrStatusNotFound)

	_, err = cat.TableStatus("")
	assert.ErrorIs(t, err, apperrors.ErrStatusNotFound)
}

func TestOrderTransitionsArePermissive(t *testing.T) {
	statuses := []string{
		catalog.OrderNew, catalog.OrderInProgress, catalog.OrderReady,
		catalog.OrderPaid, catalog.OrderCancelled,
	}
	// Perilaku lama dipertahankan: setiap status boleh ke status mana pun,
	// termasuk PAID kembali ke NEW
	for _, from := range statuses {
		for _, to := range statuses {
			assert.True(t, catalog.CanTransitionOrder(from, to), "%s -> %s", from, to)
		}
	}

	assert.False(t, catalog.CanTransitionOrder("SHIPPED", catalog.OrderNew))
}
