package services

import (
	"log"

	"github.com/kwetu-stack/cbc-connect/app/models"
)

// SeedDemoUsers provisions the first-run demo accounts. Enabled by the
// SEED_DEMO config toggle; safe to run on every boot since provisioning is
// idempotent on email.
func SeedDemoUsers(auth *AuthService) error {
	demo := []NewUser{
		{
			Email:    "amina@school.test",
			Password: "password123",
			Name:     "Amina Hassan",
			Subject:  "Mathematics",
			Role:     models.RoleTeacher,
		},
		{
			Email:    "head@school.test",
			Password: "principal123",
			Name:     "Joseph Ndungu",
			Role:     models.RolePrincipal,
		},
	}

	for _, nu := range demo {
		if _, err := auth.ProvisionUser(nu); err != nil {
			return err
		}
		log.Printf("demo account ready: %s (%s)", nu.Email, nu.Role)
	}
	return nil
}
