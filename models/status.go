package models

// Status adalah baris referensi untuk katalog status. Satu tabel untuk tiga
// domain (order/table/reservation), unik per (domain, name). Baris ini tidak
// pernah dibuat oleh core; hanya di-seed saat migrasi.
type Status struct {
	ID     uint   `gorm:"primaryKey"`
	Domain string `gorm:"type:varchar(20);not null;uniqueIndex:idx_status_domain_name"`
	Name   string `gorm:"type:varchar(50);not null;uniqueIndex:idx_status_domain_name"`
}
