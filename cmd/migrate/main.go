// Command migrate runs schema creation and the additive migrations against
// the configured database, without starting the server.
package main

import (
	"log"

	"github.com/kwetu-stack/cbc-connect/app/config"
	"github.com/kwetu-stack/cbc-connect/app/database"
)

func main() {
	log.Println("Starting migration...")

	cfg := config.Load()
	db, err := config.OpenDB(cfg)
	if err != nil {
		log.Fatal("Failed to connect to database: ", err)
	}
	defer db.Close()

	if err := database.InitSchema(db); err != nil {
		log.Fatal("Schema initialization failed: ", err)
	}
	if err := database.RunMigrations(db); err != nil {
		log.Fatal("Migration failed: ", err)
	}

	log.Println("Migration completed successfully")
}
