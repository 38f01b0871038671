package services

import (
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/danuartha/resto-pos/apperrors"
	"github.com/danuartha/resto-pos/catalog"
	"github.com/danuartha/resto-pos/dto"
	"github.com/danuartha/resto-pos/models"
)

// ReservationService menjadwalkan reservasi meja. Aturan konflik: dua
// reservasi di meja yang sama pada instant yang persis sama ditolak.
// Pengecekan di sini hanya first line of defense; unique index
// (table_id, event_time) di database menutup celah race check-then-write
// antara dua request bersamaan.
type ReservationService struct {
	DB      *gorm.DB
	Catalog *catalog.Catalog
}

func NewReservationService(db *gorm.DB, cat *catalog.Catalog) *ReservationService {
	return &ReservationService{DB: db, Catalog: cat}
}

func (s *ReservationService) Create(req dto.ReservationCreateRequest) (*models.Reservation, error) {
	if req.TableID == 0 {
		return nil, apperrors.InvalidData("table id is required")
	}
	guestName := strings.TrimSpace(req.GuestName)
	if guestName == "" {
		return nil, apperrors.InvalidData("guest name is required")
	}
	if req.PartySize < 1 {
		return nil, apperrors.InvalidData("party size must be at least 1")
	}
	if req.EventTime.IsZero() {
		return nil, apperrors.InvalidData("event time is required")
	}

	// Status kosong berarti PENDING; selain itu harus terdaftar di katalog.
	statusName := strings.TrimSpace(req.Status)
	if statusName == "" {
		statusName = catalog.ReservationPending
	}
	status, err := s.Catalog.ReservationStatus(statusName)
	if err != nil {
		return nil, err
	}

	var reservation models.Reservation
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		var table models.Table
		if err := tx.First(&table, req.TableID).Error; err != nil {
			return asNotFound(err, apperrors.ErrTableNotFound)
		}

		if err := checkTimeSlot(tx, req.TableID, req.EventTime); err != nil {
			return err
		}

		reservation = models.Reservation{
			TableID:   req.TableID,
			GuestName: guestName,
			PartySize: req.PartySize,
			Phone:     req.Phone,
			EventTime: req.EventTime,
			Status:    status,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		}
		return tx.Create(&reservation).Error
	})
	if err != nil {
		return nil, err
	}

	return s.loadReservation(reservation.ID)
}

// Update menerapkan partial update; setiap field divalidasi hanya jika
// dikirim. Perubahan event time atau meja menjalankan ulang pengecekan
// konflik terhadap meja tujuan.
func (s *ReservationService) Update(id uint, req dto.ReservationUpdateRequest) (*models.Reservation, error) {
	if id == 0 {
		return nil, apperrors.InvalidData("reservation id is required")
	}
	if req.TableID == nil && req.GuestName == nil && req.PartySize == nil &&
		req.Phone == nil && req.EventTime == nil && req.Status == nil {
		return nil, apperrors.InvalidData("update payload is empty")
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var reservation models.Reservation
		if err := tx.First(&reservation, id).Error; err != nil {
			return asNotFound(err, apperrors.ErrReservationNotFound)
		}

		if req.TableID != nil {
			if *req.TableID == 0 {
				return apperrors.InvalidData("table id is required")
			}
			var table models.Table
			if err := tx.First(&table, *req.TableID).Error; err != nil {
				return asNotFound(err, apperrors.ErrTableNotFound)
			}
			reservation.TableID = *req.TableID
		}
		if req.GuestName != nil {
			name := strings.TrimSpace(*req.GuestName)
			if name == "" {
				return apperrors.InvalidData("guest name is required")
			}
			reservation.GuestName = name
		}
		if req.PartySize != nil {
			if *req.PartySize < 1 {
				return apperrors.InvalidData("party size must be at least 1")
			}
			reservation.PartySize = *req.PartySize
		}
		if req.Phone != nil {
			reservation.Phone = *req.Phone
		}
		if req.EventTime != nil {
			if req.EventTime.IsZero() {
				return apperrors.InvalidData("event time is required")
			}
			reservation.EventTime = *req.EventTime
		}
		if req.Status != nil {
			status, err := s.Catalog.ReservationStatus(strings.TrimSpace(*req.Status))
			if err != nil {
				return err
			}
			reservation.Status = status
		}

		// Cek ulang slot bila waktu atau meja berubah. Pengecekan tidak
		// mengecualikan baris reservasi ini sendiri, mengikuti perilaku
		// sistem lama: re-save timestamp identik ikut tertolak.
		if req.EventTime != nil || req.TableID != nil {
			if err := checkTimeSlot(tx, reservation.TableID, reservation.EventTime); err != nil {
				return err
			}
		}

		reservation.UpdatedAt = time.Now()
		return tx.Save(&reservation).Error
	})
	if err != nil {
		return nil, err
	}

	return s.loadReservation(id)
}

func (s *ReservationService) Delete(id uint) error {
	if id == 0 {
		return apperrors.InvalidData("reservation id is required")
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		var reservation models.Reservation
		if err := tx.First(&reservation, id).Error; err != nil {
			return asNotFound(err, apperrors.ErrReservationNotFound)
		}
		return tx.Delete(&reservation).Error
	})
}

func (s *ReservationService) GetByStatus(statusName string) ([]models.Reservation, error) {
	if strings.TrimSpace(statusName) == "" {
		return nil, apperrors.InvalidData("status name is required")
	}
	status, err := s.Catalog.ReservationStatus(statusName)
	if err != nil {
		return nil, err
	}

	var reservations []models.Reservation
	err = s.DB.Preload("Table").
		Where("status = ?", status).
		Order("event_time asc").
		Find(&reservations).Error
	return reservations, err
}

func (s *ReservationService) GetByTableAndDateRange(tableID uint, from, to time.Time) ([]models.Reservation, error) {
	if tableID == 0 {
		return nil, apperrors.InvalidData("table id is required")
	}
	if from.IsZero() || to.IsZero() {
		return nil, apperrors.InvalidData("date range is required")
	}

	var reservations []models.Reservation
	err := s.DB.Preload("Table").
		Where("table_id = ? AND event_time BETWEEN ? AND ?", tableID, from, to).
		Order("event_time asc").
		Find(&reservations).Error
	return reservations, err
}

func (s *ReservationService) GetAll() ([]models.Reservation, error) {
	var reservations []models.Reservation
	err := s.DB.Preload("Table").Order("event_time asc").Find(&reservations).Error
	return reservations, err
}

func (s *ReservationService) GetByID(id uint) (*models.Reservation, error) {
	if id == 0 {
		return nil, apperrors.InvalidData("reservation id is required")
	}
	return s.loadReservation(id)
}

// checkTimeSlot menolak reservasi kedua di meja dan instant yang persis
// sama. Kesamaan eksak, bukan overlap durasi (slot waktu tetap).
func checkTimeSlot(tx *gorm.DB, tableID uint, eventTime time.Time) error {
	var count int64
	err := tx.Model(&models.Reservation{}).
		Where("table_id = ? AND event_time = ?", tableID, eventTime).
		Count(&count).Error
	if err != nil {
		return err
	}
	if count > 0 {
		return apperrors.ErrTimeSlotUnavailable
	}
	return nil
}

func (s *ReservationService) loadReservation(id uint) (*models.Reservation, error) {
	var reservation models.Reservation
	err := s.DB.Preload("Table").First(&reservation, id).Error
	if err != nil {
		return nil, asNotFound(err, apperrors.ErrReservationNotFound)
	}
	return &reservation, nil
}
