package database

import (
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	model "booklend_backend/internals/features/library/model"
)

// ConnectDB membuka koneksi Postgres. Handle dikembalikan, bukan disimpan
// sebagai global, supaya bisa di-inject store lain saat testing.
func ConnectDB(dsn string) (*gorm.DB, error) {
	log.Println("🔌 Koneksi ke PostgreSQL...")

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true, // 👍 cocok untuk PgBouncer (transaction pooling)
	}), &gorm.Config{})
	if err != nil {
		return nil, err
	}
	log.Println("✅ DB connected.")
	return db, nil
}

func TunePool(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		log.Printf("pool tune err: %v", err)
		return
	}
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxIdleTime(60 * time.Second)
	sqlDB.SetConnMaxLifetime(10 * time.Minute)
}

// Migrate memastikan tabel books & requests ada. Error di sini harus
// dianggap fatal oleh caller: tanpa dua tabel ini service tidak boleh serve.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.BookModel{},
		&model.LoanRequestModel{},
	)
}
