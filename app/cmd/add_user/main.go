// Command add_user provisions an account from the command line.
//
//	go run ./app/cmd/add_user -email amina@school.test -password password123 \
//	    -name "Amina Hassan" -subject Mathematics -role teacher
package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/kwetu-stack/cbc-connect/app/config"
	"github.com/kwetu-stack/cbc-connect/app/database"
	"github.com/kwetu-stack/cbc-connect/app/services"
)

func main() {
	email := flag.String("email", "", "account email")
	password := flag.String("password", "", "account password")
	name := flag.String("name", "", "display name")
	subject := flag.String("subject", "", "teaching subject (teacher role only)")
	role := flag.String("role", "teacher", "role: teacher or principal")
	flag.Parse()

	cfg := config.Load()
	db, err := config.OpenDB(cfg)
	if err != nil {
		log.Fatal("Failed to connect to database: ", err)
	}
	defer db.Close()

	if err := database.InitSchema(db); err != nil {
		log.Fatal("Failed to initialize schema: ", err)
	}
	if err := database.RunMigrations(db); err != nil {
		log.Fatal("Failed to run migrations: ", err)
	}

	store := database.NewStore(db)
	authSvc := services.NewAuthService(store, store, cfg.BcryptCost)

	id, err := authSvc.ProvisionUser(services.NewUser{
		Email:    *email,
		Password: *password,
		Name:     *name,
		Subject:  *subject,
		Role:     *role,
	})
	if err != nil {
		log.Fatal("Error creating user: ", err)
	}

	fmt.Printf("User ready: %s (%s) id=%s\n", *email, *role, id)
}
