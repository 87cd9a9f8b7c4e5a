package database

import (
	"database/sql"
	"errors"

	"github.com/kwetu-stack/cbc-connect/app/models"
)

// defaultClasses is the starter set seeded for a teacher who owns no
// classes yet.
var defaultClasses = []struct {
	Name    string
	Subject string
}{
	{"Grade 10 A", "Mathematics"},
	{"Grade 10 B", "Mathematics"},
	{"Grade 11 Science", "Mathematics"},
}

// defaultLearners is the starter roster seeded into an empty class.
var defaultLearners = []string{
	"Faith Achieng",
	"Brian Kamau",
	"Mark Otieno",
	"Sarah Wanjiku",
	"John Mwangi",
}

func (s *Store) GetOrCreateTeacher(email, name, subject string) (string, error) {
	var id string
	err := s.db.QueryRow(`SELECT id FROM teachers WHERE email = $1`, email).Scan(&id)
	if err == nil {
		return id, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return "", err
	}

	query := `INSERT INTO teachers (email, name, subject) VALUES ($1, $2, $3) RETURNING id`
	if err := s.db.QueryRow(query, email, name, subject).Scan(&id); err != nil {
		return "", err
	}
	return id, nil
}

func (s *Store) SeedDefaultClasses(teacherID string) error {
	var count int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM classes WHERE teacher_id = $1`, teacherID).Scan(&count)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	for _, class := range defaultClasses {
		_, err := s.db.Exec(
			`INSERT INTO classes (teacher_id, name, subject) VALUES ($1, $2, $3)`,
			teacherID, class.Name, class.Subject,
		)
		if err != nil {
			return err
		}
	}
	return nil
}

func (s *Store) ClassesForTeacher(teacherID string) ([]*models.Class, error) {
	query := `SELECT id, teacher_id, name, subject, created_at
			  FROM classes WHERE teacher_id = $1 ORDER BY name`

	rows, err := s.db.Query(query, teacherID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var classes []*models.Class
	for rows.Next() {
		class := &models.Class{}
		if err := rows.Scan(&class.ID, &class.TeacherID, &class.Name, &class.Subject, &class.CreatedAt); err != nil {
			return nil, err
		}
		classes = append(classes, class)
	}
	return classes, rows.Err()
}

func (s *Store) ClassByID(classID string) (*models.Class, error) {
	class := &models.Class{}
	query := `SELECT id, teacher_id, name, subject, created_at FROM classes WHERE id = $1`

	err := s.db.QueryRow(query, classID).Scan(
		&class.ID, &class.TeacherID, &class.Name, &class.Subject, &class.CreatedAt,
	)
	if err != nil {
		return nil, notFound(err)
	}
	return class, nil
}

func (s *Store) SeedDefaultLearners(classID string) error {
	var count int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM learners WHERE class_id = $1`, classID).Scan(&count)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	for _, name := range defaultLearners {
		_, err := s.db.Exec(`INSERT INTO learners (class_id, name) VALUES ($1, $2)`, classID, name)
		if err != nil {
			return err
		}
	}
	return nil
}

func (s *Store) LearnersForClass(classID string) ([]*models.Learner, error) {
	query := `SELECT id, class_id, name, created_at
			  FROM learners WHERE class_id = $1 ORDER BY name`

	rows, err := s.db.Query(query, classID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var learners []*models.Learner
	for rows.Next() {
		learner := &models.Learner{}
		if err := rows.Scan(&learner.ID, &learner.ClassID, &learner.Name, &learner.CreatedAt); err != nil {
			return nil, err
		}
		learners = append(learners, learner)
	}
	return learners, rows.Err()
}

func (s *Store) LearnerWithClass(learnerID string) (*models.LearnerDetail, error) {
	learner := &models.LearnerDetail{}
	query := `
		SELECT
			learners.id,
			learners.name,
			classes.id,
			classes.name,
			classes.subject,
			classes.teacher_id
		FROM learners
		JOIN classes ON learners.class_id = classes.id
		WHERE learners.id = $1
	`

	err := s.db.QueryRow(query, learnerID).Scan(
		&learner.ID, &learner.Name, &learner.ClassID,
		&learner.ClassName, &learner.ClassSubject, &learner.TeacherID,
	)
	if err != nil {
		return nil, notFound(err)
	}
	return learner, nil
}
