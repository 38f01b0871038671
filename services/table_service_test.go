package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/danuartha/resto-pos/apperrors"
	"github.com/danuartha/resto-pos/catalog"
	"github.com/danuartha/resto-pos/dto"
	"github.com/danuartha/resto-pos/models"
	"github.com/danuartha/resto-pos/services"
)

func TestCreateTable(t *testing.T) {
	db, cat := setupTestDB(t)
	svc := services.NewTableService(db, cat)

	table, err := svc.Create(dto.TableCreateRequest{Label: "A1", Seats: 4})
	assert.NoError(t, err)
	assert.Equal(t, "A1", table.Label)
	// Status kosong berarti AVAILABLE; active default true
	assert.Equal(t, catalog.TableAvailable, table.Status)
	assert.True(t, table.Active)

	_, err = svc.Create(dto.TableCreateRequest{Label: "  ", Seats: 4})
	assert.Equal(t, apperrors.KindInvalidData, apperrors.KindOf(err))

	_, err = svc.Create(dto.TableCreateRequest{Label: "A2", Seats: 0})
	assert.Equal(t, apperrors.KindInvalidData, apperrors.KindOf(err))

	_, err = svc.Create(dto.TableCreateRequest{Label: "A2", Seats: 4, Status: "BROKEN"})
	assert.ErrorIs(t, err, apperrors.ErrStatusNotFound)
}

func TestCreateTableDuplicateLabel(t *testing.T) {
	db, cat := setupTestDB(t)
	svc := services.NewTableService(db, cat)

	_, err := svc.Create(dto.TableCreateRequest{Label: "B1", Seats: 4})
	assert.NoError(t, err)

	_, err = svc.Create(dto.TableCreateRequest{Label: "B1", Seats: 2})
	assert.ErrorIs(t, err, apperrors.ErrTableLabelExists)

	// Exact match case-sensitive: label beda kapitalisasi bukan duplikat
	_, err = svc.Create(dto.TableCreateRequest{Label: "b1", Seats: 2})
	assert.NoError(t, err)

	var count int64
	db.Model(&models.Table{}).Count(&count)
	assert.Equal(t, int64(2), count)
}

func TestUpdateTable(t *testing.T) {
	db, cat := setupTestDB(t)
	svc := services.NewTableService(db, cat)

	first, err := svc.Create(dto.TableCreateRequest{Label: "C1", Seats: 4})
	assert.NoError(t, err)
	_, err = svc.Create(dto.TableCreateRequest{Label: "C2", Seats: 2})
	assert.NoError(t, err)

	// Re-save label milik sendiri bukan duplikat
	label := "C1"
	seats := 6
	updated, err := svc.Update(first.ID, dto.TableUpdateRequest{Label: &label, Seats: &seats})
	assert.NoError(t, err)
	assert.Equal(t, 6, updated.Seats)

	// Label milik meja lain: duplikat
	other := "C2"
	_, err = svc.Update(first.ID, dto.TableUpdateRequest{Label: &other})
	assert.ErrorIs(t, err, apperrors.ErrTableLabelExists)

	status := catalog.TableOccupied
	updated, err = svc.Update(first.ID, dto.TableUpdateRequest{Status: &status})
	assert.NoError(t, err)
	assert.Equal(t, catalog.TableOccupied, updated.Status)

	unknown := "BROKEN"
	_, err = svc.Update(first.ID, dto.TableUpdateRequest{Status: &unknown})
	assert.ErrorIs(t, err, apperrors.ErrStatusNotFound)

	zero := 0
	_, err = svc.Update(first.ID, dto.TableUpdateRequest{Seats: &zero})
	assert.Equal(t, apperrors.KindInvalidData, apperrors.KindOf(err))

	_, err = svc.Update(999, dto.TableUpdateRequest{Seats: &seats})
	assert.ErrorIs(t, err, apperrors.ErrTableNotFound)
}

func TestDeleteTableUnconditional(t *testing.T) {
	db, cat := setupTestDB(t)
	user := seedUser(t, db)
	table := seedTable(t, db, "D1", catalog.TableAvailable)
	svc := services.NewTableService(db, cat)

	// Meja dengan order terbuka tetap bisa dihapus; tidak ada guard referensi
	orderSvc := services.NewOrderService(db, cat)
	_, err := orderSvc.Start(dto.StartOrderRequest{UserID: user.ID, TableID: table.ID})
	assert.NoError(t, err)

	assert.NoError(t, svc.Delete(table.ID))
	assert.ErrorIs(t, svc.Delete(table.ID), apperrors.ErrTableNotFound)
}

func TestFindTablesByStatusAndCounts(t *testing.T) {
	db, cat := setupTestDB(t)
	svc := services.NewTableService(db, cat)

	seedTable(t, db, "E1", catalog.TableAvailable)
	seedTable(t, db, "E2", catalog.TableOccupied)
	seedTable(t, db, "E3", catalog.TableOccupied)

	occupied, err := svc.FindByStatus(catalog.TableOccupied)
	assert.NoError(t, err)
	assert.Len(t, occupied, 2)

	_, err = svc.FindByStatus("BROKEN")
	assert.ErrorIs(t, err, apperrors.ErrStatusNotFound)

	counts, err := svc.StatusCounts()
	assert.NoError(t, err)
	assert.Equal(t, int64(1), counts[catalog.TableAvailable])
	assert.Equal(t, int64(2), counts[catalog.TableOccupied])
	assert.Equal(t, int64(3), counts["total"])
}
