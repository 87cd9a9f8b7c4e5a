package models

import "time"

type Learner struct {
	ID        string    `json:"id"`
	ClassID   string    `json:"class_id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// LearnerDetail is a learner joined to its class and the class's owning
// teacher. Ownership checks and the class-name snapshot on new
// observations both read from this.
type LearnerDetail struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	ClassID      string `json:"class_id"`
	ClassName    string `json:"class_name"`
	ClassSubject string `json:"class_subject"`
	TeacherID    string `json:"teacher_id"`
}
