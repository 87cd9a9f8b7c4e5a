package database

import (
	"database/sql"
	"log"
)

// RunMigrations applies additive schema updates that are missing. Every
// step checks information_schema first so reruns are no-ops.
func RunMigrations(db *sql.DB) error {
	log.Println("Running database migrations...")

	if err := addIsDeletedColumn(db); err != nil {
		return err
	}

	log.Println("Database migrations completed successfully")
	return nil
}

// addIsDeletedColumn backfills the soft-delete flag on observation ledgers
// created before the flag existed. Existing rows stay visible (false).
func addIsDeletedColumn(db *sql.DB) error {
	query := `
		DO $$
		BEGIN
			IF NOT EXISTS (
				SELECT 1
				FROM information_schema.columns
				WHERE table_name = 'observations'
				AND column_name = 'is_deleted'
			) THEN
				ALTER TABLE observations ADD COLUMN is_deleted BOOLEAN NOT NULL DEFAULT false;
				RAISE NOTICE 'Added is_deleted column to observations';
			END IF;
		END $$;
	`
	_, err := db.Exec(query)
	if err != nil {
		log.Printf("Failed to run migration for is_deleted column: %v", err)
		return err
	}
	return nil
}
