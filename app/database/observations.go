package database

import (
	"database/sql"

	"github.com/kwetu-stack/cbc-connect/app/models"
)

func scanObservationDetails(rows *sql.Rows) ([]*models.ObservationDetail, error) {
	var observations []*models.ObservationDetail
	for rows.Next() {
		obs := &models.ObservationDetail{}
		err := rows.Scan(
			&obs.ID, &obs.ClassName, &obs.LearnerName,
			&obs.Activity, &obs.Skill, &obs.Level, &obs.Note, &obs.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		observations = append(observations, obs)
	}
	return observations, rows.Err()
}

func (s *Store) InsertObservation(o *models.Observation) (string, error) {
	query := `
		INSERT INTO observations (teacher_id, class_name, learner_id, activity, skill, level, note)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`

	var id string
	err := s.db.QueryRow(query,
		o.TeacherID, o.ClassName, o.LearnerID, o.Activity, o.Skill, o.Level, o.Note,
	).Scan(&id)
	if err != nil {
		return "", err
	}
	return id, nil
}

// UpdateObservation rewrites the assessment fields of one live, owned row.
// The WHERE predicate doubles as the ownership check: zero rows affected
// means wrong owner, already deleted, or no such id.
func (s *Store) UpdateObservation(id, teacherID, activity, skill, level string, note *string) (int64, error) {
	query := `
		UPDATE observations
		SET activity = $1, skill = $2, level = $3, note = $4
		WHERE id = $5 AND teacher_id = $6 AND is_deleted = false
	`

	res, err := s.db.Exec(query, activity, skill, level, note, id, teacherID)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (s *Store) SoftDeleteObservation(id, teacherID string) (int64, error) {
	query := `
		UPDATE observations
		SET is_deleted = true
		WHERE id = $1 AND teacher_id = $2 AND is_deleted = false
	`

	res, err := s.db.Exec(query, id, teacherID)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// ObservationForTeacher is the audit read: it returns the row even when
// soft-deleted, but still only to its owner.
func (s *Store) ObservationForTeacher(id, teacherID string) (*models.Observation, error) {
	obs := &models.Observation{}
	query := `
		SELECT id, teacher_id, class_name, learner_id, activity, skill, level, note, created_at, is_deleted
		FROM observations
		WHERE id = $1 AND teacher_id = $2
	`

	err := s.db.QueryRow(query, id, teacherID).Scan(
		&obs.ID, &obs.TeacherID, &obs.ClassName, &obs.LearnerID,
		&obs.Activity, &obs.Skill, &obs.Level, &obs.Note,
		&obs.CreatedAt, &obs.IsDeleted,
	)
	if err != nil {
		return nil, notFound(err)
	}
	return obs, nil
}

func (s *Store) ObservationsForTeacher(teacherID string) ([]*models.ObservationDetail, error) {
	query := `
		SELECT
			observations.id,
			observations.class_name,
			learners.name,
			observations.activity,
			observations.skill,
			observations.level,
			observations.note,
			observations.created_at
		FROM observations
		JOIN learners ON observations.learner_id = learners.id
		WHERE observations.teacher_id = $1 AND observations.is_deleted = false
		ORDER BY observations.created_at DESC
	`

	rows, err := s.db.Query(query, teacherID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanObservationDetails(rows)
}

func (s *Store) RecentObservations(teacherID string, limit int) ([]*models.ObservationDetail, error) {
	query := `
		SELECT
			observations.id,
			observations.class_name,
			learners.name,
			observations.activity,
			observations.skill,
			observations.level,
			observations.note,
			observations.created_at
		FROM observations
		JOIN learners ON observations.learner_id = learners.id
		WHERE observations.teacher_id = $1 AND observations.is_deleted = false
		ORDER BY observations.created_at DESC
		LIMIT $2
	`

	rows, err := s.db.Query(query, teacherID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanObservationDetails(rows)
}
