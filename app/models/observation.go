package models

import "time"

// Observation is an append-mostly ledger row. ClassName is a snapshot of
// the learner's class name at record time; later class renames do not
// rewrite history. Rows are never physically removed — IsDeleted retires
// them from normal reads.
type Observation struct {
	ID        string    `json:"id"`
	TeacherID string    `json:"teacher_id"`
	ClassName string    `json:"class_name"`
	LearnerID string    `json:"learner_id"`
	Activity  string    `json:"activity"`
	Skill     string    `json:"skill"`
	Level     string    `json:"level"`
	Note      *string   `json:"note,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	IsDeleted bool      `json:"is_deleted"`
}

// ObservationDetail is an observation joined to the learner and the
// learner's current class, as shown on list and report pages.
type ObservationDetail struct {
	ID          string    `json:"id"`
	ClassName   string    `json:"class_name"`
	LearnerName string    `json:"learner_name"`
	Activity    string    `json:"activity"`
	Skill       string    `json:"skill"`
	Level       string    `json:"level"`
	Note        *string   `json:"note,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}
