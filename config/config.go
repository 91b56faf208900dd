package config

import (
	"database/sql"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var (
	DB *gorm.DB

	// ContractAddress is the ledger's own account. Admin operations and
	// inbound transfer notifications are authorized against it.
	ContractAddress string

	MaxConnections int

	Game Tuning
)

func Init() {
	var err error

	MaxConnections, err = strconv.Atoi(os.Getenv("MAX_CONNECTIONS"))
	if err != nil {
		log.Fatalf("Invalid MAX_CONNECTIONS value: %v", err)
	}

	ContractAddress = os.Getenv("CONTRACT_ADDRESS")
	if ContractAddress == "" {
		log.Fatal("CONTRACT_ADDRESS is required")
	}

	path := os.Getenv("GAME_TUNING_PATH")
	if path == "" {
		path = "game.yaml"
	}

	Game, err = LoadTuning(path)
	if err != nil {
		log.Fatalf("Failed to load game tuning: %v", err)
	}
}

func ConnectDatabase() {
	host := os.Getenv("DB_HOST")
	user := os.Getenv("DB_USER")
	password := os.Getenv("DB_PASSWORD")
	dbname := os.Getenv("DB_NAME")
	port := os.Getenv("DB_PORT")

	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=UTC",
		host,
		user,
		password,
		dbname,
		port,
	)

	database, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Connection pool configuration
	sqlDB, err := database.DB()
	if err != nil {
		log.Fatal("Failed to get database object:", err)
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	DB = database
}

func GetDBStats() sql.DBStats {
	sqlDB, err := DB.DB()
	if err != nil {
		log.Printf("Error getting database instance: %v", err)
		return sql.DBStats{}
	}
	return sqlDB.Stats()
}
