package models

import "time"

// Teacher is the directory record behind a user with the teacher role.
// It is created lazily on the first successful login for that email.
type Teacher struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Subject   string    `json:"subject"`
	CreatedAt time.Time `json:"created_at"`
}
