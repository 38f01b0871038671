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

// TableService memegang registry meja: label unik (case-sensitive), jumlah
// kursi positif, dan status dari katalog. Unique index di kolom label
// adalah pagar kedua di sisi database.
type TableService struct {
	DB      *gorm.DB
	Catalog *catalog.Catalog
}

func NewTableService(db *gorm.DB, cat *catalog.Catalog) *TableService {
	return &TableService{DB: db, Catalog: cat}
}

func (s *TableService) Create(req dto.TableCreateRequest) (*models.Table, error) {
	label := strings.TrimSpace(req.Label)
	if label == "" {
		return nil, apperrors.InvalidData("table label is required")
	}
	if req.Seats < 1 {
		return nil, apperrors.InvalidData("seats must be at least 1")
	}

	statusName := strings.TrimSpace(req.Status)
	if statusName == "" {
		statusName = catalog.TableAvailable
	}
	status, err := s.Catalog.TableStatus(statusName)
	if err != nil {
		return nil, err
	}

	active := true
	if req.Active != nil {
		active = *req.Active
	}

	var table models.Table
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := checkLabelUnique(tx, label, 0); err != nil {
			return err
		}

		table = models.Table{
			Label:     label,
			Seats:     req.Seats,
			Active:    active,
			Status:    status,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		}
		return tx.Create(&table).Error
	})
	if err != nil {
		return nil, err
	}
	return &table, nil
}

func (s *TableService) Update(id uint, req dto.TableUpdateRequest) (*models.Table, error) {
	if id == 0 {
		return nil, apperrors.InvalidData("table id is required")
	}

	var table models.Table
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&table, id).Error; err != nil {
			return asNotFound(err, apperrors.ErrTableNotFound)
		}

		if req.Label != nil {
			label := strings.TrimSpace(*req.Label)
			if label == "" {
				return apperrors.InvalidData("table label is required")
			}
			// Cek keunikan tidak menghitung label milik baris ini sendiri.
			if err := checkLabelUnique(tx, label, table.ID); err != nil {
				return err
			}
			table.Label = label
		}
		if req.Seats != nil {
			if *req.Seats < 1 {
				return apperrors.InvalidData("seats must be at least 1")
			}
			table.Seats = *req.Seats
		}
		if req.Status != nil {
			status, err := s.Catalog.TableStatus(strings.TrimSpace(*req.Status))
			if err != nil {
				return err
			}
			table.Status = status
		}
		if req.Active != nil {
			table.Active = *req.Active
		}

		table.UpdatedAt = time.Now()
		return tx.Save(&table).Error
	})
	if err != nil {
		return nil, err
	}
	return &table, nil
}

// Delete menghapus meja tanpa syarat; order terbuka atau reservasi mendatang
// yang masih menunjuk meja ini tidak dicek.
func (s *TableService) Delete(id uint) error {
	if id == 0 {
		return apperrors.InvalidData("table id is required")
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		var table models.Table
		if err := tx.First(&table, id).Error; err != nil {
			return asNotFound(err, apperrors.ErrTableNotFound)
		}
		return tx.Delete(&table).Error
	})
}

func (s *TableService) GetAll() ([]models.Table, error) {
	var tables []models.Table
	err := s.DB.Order("label asc").Find(&tables).Error
	return tables, err
}

func (s *TableService) GetByID(id uint) (*models.Table, error) {
	if id == 0 {
		return nil, apperrors.InvalidData("table id is required")
	}
	var table models.Table
	if err := s.DB.First(&table, id).Error; err != nil {
		return nil, asNotFound(err, apperrors.ErrTableNotFound)
	}
	return &table, nil
}

func (s *TableService) FindByStatus(statusName string) ([]models.Table, error) {
	status, err := s.Catalog.TableStatus(strings.TrimSpace(statusName))
	if err != nil {
		return nil, err
	}
	var tables []models.Table
	err = s.DB.Where("status = ?", status).Order("label asc").Find(&tables).Error
	return tables, err
}

// StatusCounts menghitung jumlah meja per status katalog untuk dashboard.
func (s *TableService) StatusCounts() (map[string]int64, error) {
	counts := make(map[string]int64)
	var total int64
	for _, status := range []string{catalog.TableAvailable, catalog.TableOccupied, catalog.TableReserved} {
		var count int64
		if err := s.DB.Model(&models.Table{}).Where("status = ?", status).Count(&count).Error; err != nil {
			return nil, err
		}
		counts[status] = count
		total += count
	}
	counts["total"] = total
	return counts, nil
}

// checkLabelUnique membandingkan label secara exact-match (case-sensitive)
// terhadap semua meja lain, aktif maupun tidak.
func checkLabelUnique(tx *gorm.DB, label string, excludeID uint) error {
	var existing models.Table
	query := tx.Where("label = ?", label)
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}
	err := query.First(&existing).Error
	if err == nil {
		return apperrors.ErrTableLabelExists
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	return err
}
