package migrations

import (
	"log"

	"gorm.io/gorm"

	"warlands/models"
)

func Migrate(db *gorm.DB) {
	// create tables
	err := db.AutoMigrate(
		&models.Owner{}, &models.Land{},
		&models.Player{}, &models.ForgeMember{},
		&models.SupportRecord{}, &models.Supporter{},
		&models.Mission{}, &models.Contribution{},
		&models.Chest{}, &models.Payout{},
	)
	if err != nil {
		log.Fatal("Migration failed:", err)
	}
	// seed the database
	Seed(db)
}

func Wipe(db *gorm.DB) {
	db.Exec(`DO $$
DECLARE
	r RECORD;
BEGIN
	FOR r IN (SELECT tablename FROM pg_tables WHERE schemaname = 'public')
	LOOP
		EXECUTE 'DROP TABLE IF EXISTS ' || quote_ident(r.tablename) || ' CASCADE';
	END LOOP;
END $$;`)
}
