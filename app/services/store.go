package services

import "github.com/kwetu-stack/cbc-connect/app/models"

// The store contracts the services run on. app/database satisfies all of
// them against Postgres; app/database/inmem satisfies them in memory for
// tests and local development. Store methods return ErrNotFound for rows
// that do not exist.

type UserStore interface {
	// GetActiveUserByEmail looks up one active user by already-normalized
	// email. Inactive accounts are invisible here.
	GetActiveUserByEmail(email string) (*models.User, error)
	CreateUser(u *models.User) (string, error)
}

type DirectoryStore interface {
	GetOrCreateTeacher(email, name, subject string) (string, error)
	// SeedDefaultClasses inserts the starter class set only when the
	// teacher owns no classes at all.
	SeedDefaultClasses(teacherID string) error
	ClassesForTeacher(teacherID string) ([]*models.Class, error)
	ClassByID(classID string) (*models.Class, error)
	// SeedDefaultLearners inserts the starter learner set only when the
	// class has no learners at all.
	SeedDefaultLearners(classID string) error
	LearnersForClass(classID string) ([]*models.Learner, error)
	LearnerWithClass(learnerID string) (*models.LearnerDetail, error)
}

type LedgerStore interface {
	InsertObservation(o *models.Observation) (string, error)
	// UpdateObservation applies only to rows matching id, owner and
	// is_deleted=false, and reports how many rows matched.
	UpdateObservation(id, teacherID, activity, skill, level string, note *string) (int64, error)
	SoftDeleteObservation(id, teacherID string) (int64, error)
	// ObservationForTeacher does not filter soft-deleted rows; it is the
	// one audit-grade read.
	ObservationForTeacher(id, teacherID string) (*models.Observation, error)
	ObservationsForTeacher(teacherID string) ([]*models.ObservationDetail, error)
	RecentObservations(teacherID string, limit int) ([]*models.ObservationDetail, error)
}

type ReportStore interface {
	WeeklySummary(teacherID string) (*models.WeeklySummary, error)
	TeacherSummaries() ([]*models.TeacherSummary, error)
	DashboardStats() (*models.DashboardStats, error)
}
