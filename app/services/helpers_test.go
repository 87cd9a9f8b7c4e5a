package services_test

import (
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/kwetu-stack/cbc-connect/app/database/inmem"
	"github.com/kwetu-stack/cbc-connect/app/models"
	"github.com/kwetu-stack/cbc-connect/app/services"
)

type fixture struct {
	store     *inmem.Store
	auth      *services.AuthService
	directory *services.DirectoryService
	ledger    *services.LedgerService
	reports   *services.ReportService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	store := inmem.NewStore()
	directory := services.NewDirectoryService(store)
	return &fixture{
		store:     store,
		auth:      services.NewAuthService(store, store, bcrypt.MinCost),
		directory: directory,
		ledger:    services.NewLedgerService(store, directory),
		reports:   services.NewReportService(store),
	}
}

// seedTeacher provisions a teacher account, runs the login-time directory
// bootstrap, and returns the user plus directory teacher id.
func (f *fixture) seedTeacher(t *testing.T, email, name string) (*models.User, string) {
	t.Helper()

	if _, err := f.auth.ProvisionUser(services.NewUser{
		Email:    email,
		Password: "password123",
		Name:     name,
		Subject:  "Mathematics",
		Role:     models.RoleTeacher,
	}); err != nil {
		t.Fatalf("ProvisionUser(%s) error = %v", email, err)
	}

	usr, err := f.auth.Authenticate(email, "password123")
	if err != nil {
		t.Fatalf("Authenticate(%s) error = %v", email, err)
	}

	teacherID, err := f.auth.BootstrapTeacher(usr)
	if err != nil {
		t.Fatalf("BootstrapTeacher(%s) error = %v", email, err)
	}
	return usr, teacherID
}

// firstLearner seeds and returns the roster head of the teacher's first
// class.
func (f *fixture) firstLearner(t *testing.T, teacherID string) *models.Learner {
	t.Helper()

	classList, err := f.directory.ClassesForTeacher(teacherID)
	if err != nil {
		t.Fatalf("ClassesForTeacher() error = %v", err)
	}
	if len(classList) == 0 {
		t.Fatal("teacher has no classes")
	}

	_, learners, err := f.directory.LearnersForClass(classList[0].ID, teacherID)
	if err != nil {
		t.Fatalf("LearnersForClass() error = %v", err)
	}
	if len(learners) == 0 {
		t.Fatal("class has no learners")
	}
	return learners[0]
}

func validInput() services.ObservationInput {
	return services.ObservationInput{
		Activity: "Counting",
		Skill:    "Numeracy",
		Level:    "Emerging",
	}
}
