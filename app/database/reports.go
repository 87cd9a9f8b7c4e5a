package database

import (
	"database/sql"
	"errors"

	"github.com/kwetu-stack/cbc-connect/app/models"
)

// WeeklySummary counts one teacher's trailing-7-day activity. The window
// compares DATE-truncated values, so "7 days ago" is a calendar boundary,
// not a 168-hour cutoff. The principal rollups below use timestamp windows;
// the asymmetry is kept on purpose.
func (s *Store) WeeklySummary(teacherID string) (*models.WeeklySummary, error) {
	summary := &models.WeeklySummary{}
	query := `
		SELECT
			COUNT(*),
			COUNT(DISTINCT learner_id),
			COUNT(DISTINCT skill)
		FROM observations
		WHERE teacher_id = $1
		  AND is_deleted = false
		  AND created_at::date >= CURRENT_DATE - 7
	`

	err := s.db.QueryRow(query, teacherID).Scan(&summary.Total, &summary.Learners, &summary.Skills)
	if err != nil {
		return nil, err
	}
	return summary, nil
}

// TeacherSummaries builds the principal's per-teacher rollup. Learner
// counts go through LEFT JOINs so teachers with empty (or no) classes still
// appear with zeros.
func (s *Store) TeacherSummaries() ([]*models.TeacherSummary, error) {
	query := `
		SELECT
			teachers.id,
			teachers.name,
			teachers.subject,
			COUNT(DISTINCT learners.id),
			COUNT(DISTINCT observations.id) FILTER (WHERE observations.is_deleted = false),
			COUNT(DISTINCT observations.id) FILTER (
				WHERE observations.is_deleted = false
				  AND observations.created_at >= NOW() - INTERVAL '7 days'
			)
		FROM teachers
		LEFT JOIN classes ON classes.teacher_id = teachers.id
		LEFT JOIN learners ON learners.class_id = classes.id
		LEFT JOIN observations ON observations.teacher_id = teachers.id
		GROUP BY teachers.id, teachers.name, teachers.subject
		ORDER BY teachers.name, teachers.id
	`

	rows, err := s.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var summaries []*models.TeacherSummary
	for rows.Next() {
		sum := &models.TeacherSummary{}
		err := rows.Scan(
			&sum.TeacherID, &sum.Name, &sum.Subject,
			&sum.TotalLearners, &sum.TotalObservations, &sum.WeekObservations,
		)
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, sum)
	}
	return summaries, rows.Err()
}

// DashboardStats is the school-wide rollup on the principal dashboard.
// Soft-deleted observations are excluded here too. Most-active ties break
// on teacher id ascending so the answer is stable.
func (s *Store) DashboardStats() (*models.DashboardStats, error) {
	stats := &models.DashboardStats{}

	err := s.db.QueryRow(`SELECT COUNT(*) FROM teachers`).Scan(&stats.TotalTeachers)
	if err != nil {
		return nil, err
	}

	err = s.db.QueryRow(`SELECT COUNT(*) FROM learners`).Scan(&stats.TotalLearners)
	if err != nil {
		return nil, err
	}

	err = s.db.QueryRow(
		`SELECT COUNT(*) FROM observations WHERE is_deleted = false`,
	).Scan(&stats.TotalObservations)
	if err != nil {
		return nil, err
	}

	err = s.db.QueryRow(`
		SELECT COUNT(*) FROM observations
		WHERE is_deleted = false
		  AND created_at >= NOW() - INTERVAL '7 days'
	`).Scan(&stats.WeekObservations)
	if err != nil {
		return nil, err
	}

	err = s.db.QueryRow(`
		SELECT teachers.name
		FROM teachers
		JOIN observations ON observations.teacher_id = teachers.id
		WHERE observations.is_deleted = false
		  AND observations.created_at >= NOW() - INTERVAL '7 days'
		GROUP BY teachers.id, teachers.name
		ORDER BY COUNT(*) DESC, teachers.id ASC
		LIMIT 1
	`).Scan(&stats.MostActiveTeacher)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}

	return stats, nil
}
