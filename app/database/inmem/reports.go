package inmem

import (
	"sort"
	"time"

	"github.com/kwetu-stack/cbc-connect/app/models"
)

// weekStartDate is the calendar boundary of the trailing-7-day window used
// by the per-teacher summary: midnight, seven days before "now"'s date.
func weekStartDate(now time.Time) time.Time {
	y, m, d := now.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, now.Location()).AddDate(0, 0, -7)
}

func (s *Store) WeeklySummary(teacherID string) (*models.WeeklySummary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	start := weekStartDate(s.Now())
	learners := make(map[string]struct{})
	skills := make(map[string]struct{})
	summary := &models.WeeklySummary{}

	for _, obs := range s.observations {
		if obs.TeacherID != teacherID || obs.IsDeleted || obs.CreatedAt.Before(start) {
			continue
		}
		summary.Total++
		learners[obs.LearnerID] = struct{}{}
		skills[obs.Skill] = struct{}{}
	}
	summary.Learners = len(learners)
	summary.Skills = len(skills)
	return summary, nil
}

func (s *Store) TeacherSummaries() ([]*models.TeacherSummary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	cutoff := s.Now().Add(-7 * 24 * time.Hour)
	var summaries []*models.TeacherSummary

	for _, teacher := range s.teachers {
		sum := &models.TeacherSummary{
			TeacherID: teacher.ID,
			Name:      teacher.Name,
			Subject:   teacher.Subject,
		}
		for _, learner := range s.learners {
			if class, ok := s.classes[learner.ClassID]; ok && class.TeacherID == teacher.ID {
				sum.TotalLearners++
			}
		}
		for _, obs := range s.observations {
			if obs.TeacherID != teacher.ID || obs.IsDeleted {
				continue
			}
			sum.TotalObservations++
			if !obs.CreatedAt.Before(cutoff) {
				sum.WeekObservations++
			}
		}
		summaries = append(summaries, sum)
	}

	sort.Slice(summaries, func(i, j int) bool {
		if summaries[i].Name == summaries[j].Name {
			return summaries[i].TeacherID < summaries[j].TeacherID
		}
		return summaries[i].Name < summaries[j].Name
	})
	return summaries, nil
}

func (s *Store) DashboardStats() (*models.DashboardStats, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	cutoff := s.Now().Add(-7 * 24 * time.Hour)
	stats := &models.DashboardStats{
		TotalTeachers: len(s.teachers),
		TotalLearners: len(s.learners),
	}

	weekCounts := make(map[string]int)
	for _, obs := range s.observations {
		if obs.IsDeleted {
			continue
		}
		stats.TotalObservations++
		if !obs.CreatedAt.Before(cutoff) {
			stats.WeekObservations++
			weekCounts[obs.TeacherID]++
		}
	}

	// Highest count wins; ties break on teacher id ascending.
	bestID := ""
	for id, count := range weekCounts {
		if bestID == "" || count > weekCounts[bestID] || (count == weekCounts[bestID] && id < bestID) {
			bestID = id
		}
	}
	if teacher, ok := s.teachers[bestID]; ok {
		stats.MostActiveTeacher = teacher.Name
	}
	return stats, nil
}
