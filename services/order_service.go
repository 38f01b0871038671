package services

import (
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/danuartha/resto-pos/apperrors"
	"github.com/danuartha/resto-pos/catalog"
	"github.com/danuartha/resto-pos/dto"
	"github.com/danuartha/resto-pos/models"
)

// OrderService memegang lifecycle order beserta item-nya, termasuk aturan
// start/pay yang ikut mengubah status meja. Semua operasi mutasi berjalan
// dalam satu transaksi: semua tertulis atau tidak sama sekali.
type OrderService struct {
	DB      *gorm.DB
	Catalog *catalog.Catalog
}

func NewOrderService(db *gorm.DB, cat *catalog.Catalog) *OrderService {
	return &OrderService{DB: db, Catalog: cat}
}

// Create membuat order baru berstatus NEW beserta item-nya. Nama dan harga
// menu di-snapshot ke setiap item saat itu juga.
func (s *OrderService) Create(req dto.OrderCreateRequest) (*models.Order, error) {
	if req.UserID == 0 {
		return nil, apperrors.InvalidData("user id is required")
	}
	if len(req.Items) == 0 {
		return nil, apperrors.InvalidData("order must contain at least one item")
	}
	for _, item := range req.Items {
		if item.MenuID == 0 {
			return nil, apperrors.InvalidData("item menu id is required")
		}
		if item.Quantity < 1 {
			return nil, apperrors.InvalidData("item quantity must be at least 1")
		}
	}

	status, err := s.Catalog.OrderStatus(catalog.OrderNew)
	if err != nil {
		return nil, err
	}

	var order models.Order
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		var user models.User
		if err := tx.First(&user, req.UserID).Error; err != nil {
			return asNotFound(err, apperrors.ErrUserNotFound)
		}

		if req.TableID != nil {
			var table models.Table
			if err := tx.First(&table, *req.TableID).Error; err != nil {
				return asNotFound(err, apperrors.ErrTableNotFound)
			}
		}

		order = models.Order{
			UserID:    req.UserID,
			TableID:   req.TableID,
			Status:    status,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		}
		if err := tx.Create(&order).Error; err != nil {
			return err
		}

		for _, item := range req.Items {
			if _, err := s.appendItem(tx, order.ID, item.MenuID, item.Quantity, item.Notes); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.loadOrder(order.ID)
}

// AddItem menambah satu item ke order yang sudah ada, dengan snapshot
// harga/nama menu yang baru.
func (s *OrderService) AddItem(orderID uint, req dto.OrderItemRequest) (*models.Order, error) {
	if orderID == 0 {
		return nil, apperrors.InvalidData("order id is required")
	}
	if req.MenuID == 0 {
		return nil, apperrors.InvalidData("item menu id is required")
	}
	if req.Quantity < 1 {
		return nil, apperrors.InvalidData("item quantity must be at least 1")
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var order models.Order
		if err := tx.First(&order, orderID).Error; err != nil {
			return asNotFound(err, apperrors.ErrOrderNotFound)
		}
		_, err := s.appendItem(tx, orderID, req.MenuID, req.Quantity, req.Notes)
		return err
	})
	if err != nil {
		return nil, err
	}

	return s.loadOrder(orderID)
}

// UpdateItem menerapkan partial update pada satu item. Item dicari dengan
// kunci gabungan (itemID, orderID); pasangan yang tidak cocok adalah
// pelanggaran integritas data, bukan not-found biasa.
func (s *OrderService) UpdateItem(orderID, itemID uint, req dto.OrderItemUpdateRequest) (*models.Order, error) {
	if orderID == 0 || itemID == 0 {
		return nil, apperrors.InvalidData("order id and item id are required")
	}
	if req.Quantity != nil && *req.Quantity < 1 {
		return nil, apperrors.InvalidData("item quantity must be at least 1")
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		item, err := findItemOfOrder(tx, itemID, orderID)
		if err != nil {
			return err
		}

		if req.Quantity != nil {
			item.Quantity = *req.Quantity
		}
		if req.Notes != nil {
			item.Notes = *req.Notes
		}
		if req.Active != nil {
			item.Active = *req.Active
		}
		item.UpdatedAt = time.Now()
		return tx.Save(item).Error
	})
	if err != nil {
		return nil, err
	}

	return s.loadOrder(orderID)
}

// RemoveItem menghapus baris item (hard delete), bukan soft-deactivate.
func (s *OrderService) RemoveItem(orderID, itemID uint) (*models.Order, error) {
	if orderID == 0 || itemID == 0 {
		return nil, apperrors.InvalidData("order id and item id are required")
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		item, err := findItemOfOrder(tx, itemID, orderID)
		if err != nil {
			return err
		}
		return tx.Delete(item).Error
	})
	if err != nil {
		return nil, err
	}

	return s.loadOrder(orderID)
}

// UpdateStatus mengganti status order dengan nama status apa pun yang
// terdaftar di katalog. Tabel transisi saat ini permisif.
func (s *OrderService) UpdateStatus(orderID uint, statusName string) (*models.Order, error) {
	if orderID == 0 {
		return nil, apperrors.InvalidData("order id is required")
	}
	if strings.TrimSpace(statusName) == "" {
		return nil, apperrors.InvalidData("status name is required")
	}

	status, err := s.Catalog.OrderStatus(statusName)
	if err != nil {
		return nil, err
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		var order models.Order
		if err := tx.First(&order, orderID).Error; err != nil {
			return asNotFound(err, apperrors.ErrOrderNotFound)
		}
		if !catalog.CanTransitionOrder(order.Status, status) {
			return apperrors.InvalidData("transition from %s to %s is not allowed", order.Status, status)
		}
		order.Status = status
		order.UpdatedAt = time.Now()
		return tx.Save(&order).Error
	})
	if err != nil {
		return nil, err
	}

	return s.loadOrder(orderID)
}

// Delete menghapus item-item dulu, baru order-nya. Dua langkah eksplisit
// karena backing store tanpa cascade harus menghapus anak sebelum induk.
func (s *OrderService) Delete(orderID uint) error {
	if orderID == 0 {
		return apperrors.InvalidData("order id is required")
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		var order models.Order
		if err := tx.First(&order, orderID).Error; err != nil {
			return asNotFound(err, apperrors.ErrOrderNotFound)
		}
		if err := tx.Where("order_id = ?", orderID).Delete(&models.OrderItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&order).Error
	})
}

// Start dipakai staff saat mendudukkan walk-in: meja dipaksa OCCUPIED dan
// order kosong berstatus NEW dibuat, keduanya dalam satu transaksi.
func (s *OrderService) Start(req dto.StartOrderRequest) (*models.Order, error) {
	if req.UserID == 0 || req.TableID == 0 {
		return nil, apperrors.InvalidData("user id and table id are required")
	}

	status, err := s.Catalog.OrderStatus(catalog.OrderNew)
	if err != nil {
		return nil, err
	}

	var order models.Order
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		var user models.User
		if err := tx.First(&user, req.UserID).Error; err != nil {
			return asNotFound(err, apperrors.ErrUserNotFound)
		}

		var table models.Table
		if err := tx.First(&table, req.TableID).Error; err != nil {
			return asNotFound(err, apperrors.ErrTableNotFound)
		}

		if err := s.markTableOccupied(tx, &table); err != nil {
			return err
		}

		tableID := table.ID
		order = models.Order{
			UserID:    req.UserID,
			TableID:   &tableID,
			Status:    status,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		}
		return tx.Create(&order).Error
	})
	if err != nil {
		return nil, err
	}

	return s.loadOrder(order.ID)
}

// Pay menandai order PAID, mencatat pembayaran, dan melepas meja (jika ada)
// kembali ke AVAILABLE.
func (s *OrderService) Pay(orderID uint, req dto.PayOrderRequest) (*models.Order, *models.Payment, error) {
	if orderID == 0 {
		return nil, nil, apperrors.InvalidData("order id is required")
	}
	if strings.TrimSpace(req.Method) == "" {
		return nil, nil, apperrors.InvalidData("payment method is required")
	}
	if req.PaidAmount == nil {
		return nil, nil, apperrors.InvalidData("paid amount is required")
	}

	status, err := s.Catalog.OrderStatus(catalog.OrderPaid)
	if err != nil {
		return nil, nil, err
	}

	var payment models.Payment
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		var order models.Order
		if err := tx.First(&order, orderID).Error; err != nil {
			return asNotFound(err, apperrors.ErrOrderNotFound)
		}

		order.Status = status
		order.UpdatedAt = time.Now()
		if err := tx.Save(&order).Error; err != nil {
			return err
		}

		// Meja dibaca ulang di sini, bukan dari relasi yang mungkin basi.
		if order.TableID != nil {
			var table models.Table
			if err := tx.First(&table, *order.TableID).Error; err != nil {
				return asNotFound(err, apperrors.ErrTableNotFound)
			}
			if err := s.releaseTable(tx, &table); err != nil {
				return err
			}
		}

		payment = models.Payment{
			OrderID: order.ID,
			Method:  req.Method,
			Amount:  *req.PaidAmount,
			Tip:     req.Tip,
			Note:    req.Note,
			PaidAt:  time.Now(),
		}
		return tx.Create(&payment).Error
	})
	if err != nil {
		return nil, nil, err
	}

	order, err := s.loadOrder(orderID)
	if err != nil {
		return nil, nil, err
	}
	return order, &payment, nil
}

// GetPaid mengembalikan semua order berstatus PAID.
func (s *OrderService) GetPaid() ([]models.Order, error) {
	var orders []models.Order
	err := s.DB.Preload("User").Preload("Table").Preload("OrderItems").
		Where("status = ?", catalog.OrderPaid).
		Order("created_at asc").
		Find(&orders).Error
	return orders, err
}

// GetOpenByTable mengembalikan order terbuka di satu meja. Order "terbuka"
// didefinisikan murni lewat eksklusi: status bukan PAID dan bukan CANCELLED.
func (s *OrderService) GetOpenByTable(tableID uint) ([]models.Order, error) {
	if tableID == 0 {
		return nil, apperrors.InvalidData("table id is required")
	}
	var orders []models.Order
	err := s.DB.Preload("User").Preload("Table").Preload("OrderItems").
		Where("table_id = ? AND status NOT IN ?", tableID, []string{catalog.OrderPaid, catalog.OrderCancelled}).
		Order("created_at asc").
		Find(&orders).Error
	return orders, err
}

// GetOpen mengembalikan semua order terbuka lintas meja.
func (s *OrderService) GetOpen() ([]models.Order, error) {
	var orders []models.Order
	err := s.DB.Preload("User").Preload("Table").Preload("OrderItems").
		Where("status NOT IN ?", []string{catalog.OrderPaid, catalog.OrderCancelled}).
		Order("created_at asc").
		Find(&orders).Error
	return orders, err
}

// GetAll -> list orders beserta items
func (s *OrderService) GetAll() ([]models.Order, error) {
	var orders []models.Order
	err := s.DB.Preload("User").Preload("Table").Preload("OrderItems").
		Order("created_at asc").
		Find(&orders).Error
	return orders, err
}

// GetByID -> detail 1 order
func (s *OrderService) GetByID(orderID uint) (*models.Order, error) {
	if orderID == 0 {
		return nil, apperrors.InvalidData("order id is required")
	}
	return s.loadOrder(orderID)
}

/*
========================================
 TABLE STATE COORDINATOR
========================================
Satu-satunya tempat event order boleh mengubah status meja. Start menduduki
meja tanpa melihat status sebelumnya; Pay melepasnya kembali.
*/

func (s *OrderService) markTableOccupied(tx *gorm.DB, table *models.Table) error {
	status, err := s.Catalog.TableStatus(catalog.TableOccupied)
	if err != nil {
		return err
	}
	table.Status = status
	table.UpdatedAt = time.Now()
	return tx.Save(table).Error
}

func (s *OrderService) releaseTable(tx *gorm.DB, table *models.Table) error {
	status, err := s.Catalog.TableStatus(catalog.TableAvailable)
	if err != nil {
		return err
	}
	table.Status = status
	table.UpdatedAt = time.Now()
	return tx.Save(table).Error
}

// appendItem membuat OrderItem baru dengan snapshot nama dan harga menu.
func (s *OrderService) appendItem(tx *gorm.DB, orderID, menuID uint, quantity int, notes string) (*models.OrderItem, error) {
	var menu models.Menu
	if err := tx.First(&menu, menuID).Error; err != nil {
		return nil, asNotFound(err, apperrors.ErrMenuNotFound)
	}

	item := models.OrderItem{
		OrderID:   orderID,
		MenuID:    menu.ID,
		MenuName:  menu.Name,
		Price:     menu.Price,
		Quantity:  quantity,
		Notes:     notes,
		Active:    true,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	if err := tx.Create(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// findItemOfOrder mencari item dengan kunci gabungan (itemID, orderID).
// Miss di sini dilaporkan sebagai InvalidData: item bisa saja ada tetapi
// milik order lain.
func findItemOfOrder(tx *gorm.DB, itemID, orderID uint) (*models.OrderItem, error) {
	var item models.OrderItem
	err := tx.Where("id = ? AND order_id = ?", itemID, orderID).First(&item).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.InvalidData("item %d does not belong to order %d", itemID, orderID)
		}
		return nil, err
	}
	return &item, nil
}

// loadOrder memuat ulang order lengkap dengan relasi display.
func (s *OrderService) loadOrder(orderID uint) (*models.Order, error) {
	var order models.Order
	err := s.DB.Preload("User").Preload("Table").Preload("OrderItems").
		First(&order, orderID).Error
	if err != nil {
		return nil, asNotFound(err, apperrors.ErrOrderNotFound)
	}
	return &order, nil
}

// asNotFound memetakan gorm.ErrRecordNotFound ke sentinel entity; error
// storage lain diteruskan apa adanya.
func asNotFound(err error, sentinel error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return sentinel
	}
	return err
}
