package database

import (
	"log"
	"strings"

	"gorm.io/driver/postgres"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	_ "modernc.org/sqlite" // registers the "sqlite" driver

	"hotelreserve/internal/domain"
)

func Connect(dsn string) (*gorm.DB, error) {
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		log.Println("Connecting to PostgreSQL...")
		return gorm.Open(postgres.Open(dsn), &gorm.Config{})
	}

	log.Println("Using SQLite for local development:", dsn)

	return gorm.Open(
		gormsqlite.New(gormsqlite.Config{
			DriverName: "sqlite",
			DSN:        dsn,
		}),
		&gorm.Config{},
	)
}

// Migrate creates or updates the schema for every persisted entity.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&domain.User{},
		&domain.Hotel{},
		&domain.Room{},
		&domain.Booking{},
		&domain.Payment{},
		&domain.Review{},
	)
}

// EnsureBookingExclusion installs the storage-layer guard against two
// overlapping admissions committing for the same room. On PostgreSQL this is
// a GiST exclusion constraint over the half-open stay range; the admission
// service maps its 23P01 violation (constraint idx_no_overbooking) to the
// availability rejection. SQLite has no equivalent, there the in-process
// per-room lock is the only serialization point.
func EnsureBookingExclusion(db *gorm.DB) error {
	if db.Dialector.Name() != "postgres" {
		return nil
	}

	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS btree_gist`).Error; err != nil {
		return err
	}

	return db.Exec(`
DO $$
BEGIN
	IF NOT EXISTS (
		SELECT 1 FROM pg_constraint WHERE conname = 'idx_no_overbooking'
	) THEN
		ALTER TABLE bookings
			ADD CONSTRAINT idx_no_overbooking
			EXCLUDE USING gist (
				room_id WITH =,
				daterange(check_in::date, check_out::date, '[)') WITH &&
			)
			WHERE (status IN ('pending', 'completed'));
	END IF;
END
$$;
`).Error
}
