package catalog

import (
	"gorm.io/gorm"

	"github.com/danuartha/resto-pos/apperrors"
	"github.com/danuartha/resto-pos/models"
)

// Domain katalog status.
const (
	DomainOrder       = "order"
	DomainTable       = "table"
	DomainReservation = "reservation"
)

// Nama status order.
const (
	OrderNew        = "NEW"
	OrderInProgress = "IN_PROGRESS"
	OrderReady      = "READY"
	OrderPaid       = "PAID"
	OrderCancelled  = "CANCELLED"
)

// Nama status meja.
const (
	TableAvailable = "AVAILABLE"
	TableOccupied  = "OCCUPIED"
	TableReserved  = "RESERVED"
)

// Nama status reservasi.
const (
	ReservationPending   = "PENDING"
	ReservationConfirmed = "CONFIRMED"
	ReservationCancelled = "CANCELLED"
)

// Catalog adalah set status yang diizinkan per domain. Dimuat sekali saat
// startup dari tabel referensi dan tidak pernah dimutasi setelahnya; lookup
// nama yang tidak dikenal selalu gagal, tidak pernah diganti default.
type Catalog struct {
	byDomain map[string]map[string]struct{}
}

// Load membaca seluruh baris status dari database.
func Load(db *gorm.DB) (*Catalog, error) {
	var rows []models.Status
	if err := db.Find(&rows).Error; err != nil {
		return nil, err
	}

	c := &Catalog{byDomain: make(map[string]map[string]struct{})}
	for _, row := range rows {
		names, ok := c.byDomain[row.Domain]
		if !ok {
			names = make(map[string]struct{})
			c.byDomain[row.Domain] = names
		}
		names[row.Name] = struct{}{}
	}
	return c, nil
}

// Resolve mengembalikan nama status jika terdaftar di domain tersebut.
func (c *Catalog) Resolve(domain, name string) (string, error) {
	if names, ok := c.byDomain[domain]; ok {
		if _, ok := names[name]; ok {
			return name, nil
		}
	}
	return "", apperrors.ErrStatusNotFound
}

func (c *Catalog) OrderStatus(name string) (string, error) {
	return c.Resolve(DomainOrder, name)
}

func (c *Catalog) TableStatus(name string) (string, error) {
	return c.Resolve(DomainTable, name)
}

func (c *Catalog) ReservationStatus(name string) (string, error) {
	return c.Resolve(DomainReservation, name)
}

// Tabel transisi status order. Saat ini semua transisi antar status yang
// dikenal diizinkan (mengikuti perilaku sistem lama, misalnya PAID boleh
// kembali ke NEW). Mempersempit tabel ini adalah perubahan perilaku yang
// harus diputuskan eksplisit, bukan bug fix.
var orderTransitions = map[string][]string{
	OrderNew:        {OrderNew, OrderInProgress, OrderReady, OrderPaid, OrderCancelled},
	OrderInProgress: {OrderNew, OrderInProgress, OrderReady, OrderPaid, OrderCancelled},
	OrderReady:      {OrderNew, OrderInProgress, OrderReady, OrderPaid, OrderCancelled},
	OrderPaid:       {OrderNew, OrderInProgress, OrderReady, OrderPaid, OrderCancelled},
	OrderCancelled:  {OrderNew, OrderInProgress, OrderReady, OrderPaid, OrderCancelled},
}

// CanTransitionOrder memeriksa tabel transisi order.
func CanTransitionOrder(from, to string) bool {
	for _, allowed := range orderTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

// Seed mengembalikan baris referensi default untuk migrasi.
func Seed() []models.Status {
	var rows []models.Status
	add := func(domain string, names ...string) {
		for _, name := range names {
			rows = append(rows, models.Status{Domain: domain, Name: name})
		}
	}
	add(DomainOrder, OrderNew, OrderInProgress, OrderReady, OrderPaid, OrderCancelled)
	add(DomainTable, TableAvailable, TableOccupied, TableReserved)
	add(DomainReservation, ReservationPending, ReservationConfirmed, ReservationCancelled)
	return rows
}
