package database

import (
	"github.com/kwetu-stack/cbc-connect/app/models"
)

func (s *Store) GetActiveUserByEmail(email string) (*models.User, error) {
	usr := &models.User{}
	query := `SELECT id, email, password, name, subject, role, is_active, created_at
			  FROM users WHERE email = $1 AND is_active = true`

	err := s.db.QueryRow(query, email).Scan(
		&usr.ID, &usr.Email, &usr.Password, &usr.Name,
		&usr.Subject, &usr.Role, &usr.IsActive, &usr.CreatedAt,
	)
	if err != nil {
		return nil, notFound(err)
	}
	return usr, nil
}

func (s *Store) CreateUser(u *models.User) (string, error) {
	query := `INSERT INTO users (email, password, name, subject, role, is_active)
			  VALUES ($1, $2, $3, $4, $5, $6)
			  RETURNING id`

	var id string
	err := s.db.QueryRow(query, u.Email, u.Password, u.Name, u.Subject, u.Role, u.IsActive).Scan(&id)
	if err != nil {
		return "", err
	}
	return id, nil
}
