package main

import (
	"log"
	"time"

	"github.com/joho/godotenv"

	"warlands/admin"
	"warlands/config"
	"warlands/game"
	"warlands/migrations"
	"warlands/socket"
)

func main() {
	// set timezone to utc
	time.Local = time.UTC

	// load environment variables
	err := godotenv.Load()
	if err != nil {
		log.Fatal("Error loading .env file")
	}
	config.Init()

	// database connection
	config.ConnectDatabase()
	// migrations and seeders
	migrations.Migrate(config.DB)

	ledger := game.NewLedger(config.DB, config.Game, config.ContractAddress)

	// read-only inspection API
	admin.StartServer(config.DB)

	// start socket server
	socket.StartServer(ledger)
}
