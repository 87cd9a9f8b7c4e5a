package services

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"golang.org/x/crypto/bcrypt"

	"github.com/kwetu-stack/cbc-connect/app/models"
)

// dummyHash is compared against when the email lookup misses, so a miss
// costs the same as a wrong password. It is a bcrypt digest of a value no
// caller can submit usefully.
const dummyHash = "$2a$12$K0ByB.6YI2/OYrB4fQOYLe6Tv0datUVf6VZ/2Jzwm879BW5K1cHey"

type AuthService struct {
	users     UserStore
	directory DirectoryStore
	cost      int
	validate  *validator.Validate
}

func NewAuthService(users UserStore, directory DirectoryStore, bcryptCost int) *AuthService {
	return &AuthService{
		users:     users,
		directory: directory,
		cost:      bcryptCost,
		validate:  validator.New(),
	}
}

// NormalizeEmail is the single email canonicalization rule: trimmed and
// lower-cased. Lookups and writes both go through it.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Authenticate verifies a credential pair. Every failure mode returns
// ErrInvalidCredentials; the caller learns nothing about which factor was
// wrong.
func (s *AuthService) Authenticate(email, password string) (*models.User, error) {
	usr, err := s.users.GetActiveUserByEmail(NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			bcrypt.CompareHashAndPassword([]byte(dummyHash), []byte(password))
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(usr.Password), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}
	return usr, nil
}

// BootstrapTeacher makes sure the directory side of a teacher credential
// exists: the teachers row keyed by email, and the starter classes when the
// teacher owns none. Principals own nothing and are skipped. Returns the
// teacher id to carry in the session ("" for principals).
func (s *AuthService) BootstrapTeacher(usr *models.User) (string, error) {
	if usr.Role != models.RoleTeacher {
		return "", nil
	}

	teacherID, err := s.directory.GetOrCreateTeacher(usr.Email, usr.Name, usr.Subject)
	if err != nil {
		return "", err
	}
	if err := s.directory.SeedDefaultClasses(teacherID); err != nil {
		return "", err
	}
	return teacherID, nil
}

// NewUser is the provisioning input used by the add_user CLI and the demo
// seeder.
type NewUser struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=8"`
	Name     string `validate:"required"`
	Subject  string
	Role     string `validate:"required,oneof=teacher principal"`
}

// ProvisionUser creates an account with a hashed password. It is idempotent
// on email: an existing active account is left untouched and its id
// returned.
func (s *AuthService) ProvisionUser(nu NewUser) (string, error) {
	nu.Email = NormalizeEmail(nu.Email)
	if err := s.validate.Struct(nu); err != nil {
		return "", asFieldErrors(err)
	}

	if existing, err := s.users.GetActiveUserByEmail(nu.Email); err == nil {
		return existing.ID, nil
	} else if !errors.Is(err, ErrNotFound) {
		return "", err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(nu.Password), s.cost)
	if err != nil {
		return "", err
	}

	return s.users.CreateUser(&models.User{
		Email:     nu.Email,
		Password:  string(hash),
		Name:      nu.Name,
		Subject:   nu.Subject,
		Role:      nu.Role,
		IsActive:  true,
		CreatedAt: time.Now(),
	})
}

// asFieldErrors converts validator output into the taxonomy's
// ValidationError.
func asFieldErrors(err error) error {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}
	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		fields[strings.ToLower(fe.Field())] = "failed " + fe.Tag() + " check"
	}
	return &ValidationError{Fields: fields}
}
