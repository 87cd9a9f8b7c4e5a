// Package inmem is a map-backed implementation of the service store
// contracts. It backs the service tests and works as a throwaway local
// backend; semantics mirror the Postgres store, including seed-if-absent
// and soft-delete behavior.
package inmem

import (
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/kwetu-stack/cbc-connect/app/models"
	"github.com/kwetu-stack/cbc-connect/app/services"
)

type Store struct {
	mu           sync.RWMutex
	users        map[string]*models.User
	teachers     map[string]*models.Teacher
	classes      map[string]*models.Class
	learners     map[string]*models.Learner
	observations map[string]*models.Observation

	// Now is swappable so tests can pin the clock.
	Now func() time.Time
}

func NewStore() *Store {
	return &Store{
		users:        make(map[string]*models.User),
		teachers:     make(map[string]*models.Teacher),
		classes:      make(map[string]*models.Class),
		learners:     make(map[string]*models.Learner),
		observations: make(map[string]*models.Observation),
		Now:          time.Now,
	}
}

func (s *Store) GetActiveUserByEmail(email string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, usr := range s.users {
		if usr.Email == email && usr.IsActive {
			clone := *usr
			return &clone, nil
		}
	}
	return nil, services.ErrNotFound
}

func (s *Store) CreateUser(u *models.User) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	clone := *u
	clone.ID = uuid.NewString()
	if clone.CreatedAt.IsZero() {
		clone.CreatedAt = s.Now()
	}
	s.users[clone.ID] = &clone
	return clone.ID, nil
}

// SetUserActive flips an account's active flag; tests use it to model
// deactivated accounts.
func (s *Store) SetUserActive(userID string, active bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if usr, ok := s.users[userID]; ok {
		usr.IsActive = active
	}
}

func (s *Store) GetOrCreateTeacher(email, name, subject string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, t := range s.teachers {
		if t.Email == email {
			return t.ID, nil
		}
	}

	teacher := &models.Teacher{
		ID:        uuid.NewString(),
		Email:     email,
		Name:      name,
		Subject:   subject,
		CreatedAt: s.Now(),
	}
	s.teachers[teacher.ID] = teacher
	return teacher.ID, nil
}

func (s *Store) SeedDefaultClasses(teacherID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, class := range s.classes {
		if class.TeacherID == teacherID {
			return nil
		}
	}

	starter := []struct{ name, subject string }{
		{"Grade 10 A", "Mathematics"},
		{"Grade 10 B", "Mathematics"},
		{"Grade 11 Science", "Mathematics"},
	}
	for _, c := range starter {
		class := &models.Class{
			ID:        uuid.NewString(),
			TeacherID: teacherID,
			Name:      c.name,
			Subject:   c.subject,
			CreatedAt: s.Now(),
		}
		s.classes[class.ID] = class
	}
	return nil
}

func (s *Store) ClassesForTeacher(teacherID string) ([]*models.Class, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var classes []*models.Class
	for _, class := range s.classes {
		if class.TeacherID == teacherID {
			clone := *class
			classes = append(classes, &clone)
		}
	}
	sort.Slice(classes, func(i, j int) bool { return classes[i].Name < classes[j].Name })
	return classes, nil
}

func (s *Store) ClassByID(classID string) (*models.Class, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if class, ok := s.classes[classID]; ok {
		clone := *class
		return &clone, nil
	}
	return nil, services.ErrNotFound
}

func (s *Store) SeedDefaultLearners(classID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, learner := range s.learners {
		if learner.ClassID == classID {
			return nil
		}
	}

	starter := []string{"Faith Achieng", "Brian Kamau", "Mark Otieno", "Sarah Wanjiku", "John Mwangi"}
	for _, name := range starter {
		learner := &models.Learner{
			ID:        uuid.NewString(),
			ClassID:   classID,
			Name:      name,
			CreatedAt: s.Now(),
		}
		s.learners[learner.ID] = learner
	}
	return nil
}

func (s *Store) LearnersForClass(classID string) ([]*models.Learner, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var learners []*models.Learner
	for _, learner := range s.learners {
		if learner.ClassID == classID {
			clone := *learner
			learners = append(learners, &clone)
		}
	}
	sort.Slice(learners, func(i, j int) bool { return learners[i].Name < learners[j].Name })
	return learners, nil
}

func (s *Store) LearnerWithClass(learnerID string) (*models.LearnerDetail, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	learner, ok := s.learners[learnerID]
	if !ok {
		return nil, services.ErrNotFound
	}
	class, ok := s.classes[learner.ClassID]
	if !ok {
		return nil, services.ErrNotFound
	}
	return &models.LearnerDetail{
		ID:           learner.ID,
		Name:         learner.Name,
		ClassID:      class.ID,
		ClassName:    class.Name,
		ClassSubject: class.Subject,
		TeacherID:    class.TeacherID,
	}, nil
}

func (s *Store) InsertObservation(o *models.Observation) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	clone := *o
	clone.ID = uuid.NewString()
	if clone.CreatedAt.IsZero() {
		clone.CreatedAt = s.Now()
	}
	s.observations[clone.ID] = &clone
	return clone.ID, nil
}

func (s *Store) UpdateObservation(id, teacherID, activity, skill, level string, note *string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	obs, ok := s.observations[id]
	if !ok || obs.TeacherID != teacherID || obs.IsDeleted {
		return 0, nil
	}
	obs.Activity = activity
	obs.Skill = skill
	obs.Level = level
	obs.Note = note
	return 1, nil
}

func (s *Store) SoftDeleteObservation(id, teacherID string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	obs, ok := s.observations[id]
	if !ok || obs.TeacherID != teacherID || obs.IsDeleted {
		return 0, nil
	}
	obs.IsDeleted = true
	return 1, nil
}

func (s *Store) ObservationForTeacher(id, teacherID string) (*models.Observation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	obs, ok := s.observations[id]
	if !ok || obs.TeacherID != teacherID {
		return nil, services.ErrNotFound
	}
	clone := *obs
	return &clone, nil
}

func (s *Store) ObservationsForTeacher(teacherID string) ([]*models.ObservationDetail, error) {
	return s.listObservations(teacherID, 0)
}

func (s *Store) RecentObservations(teacherID string, limit int) ([]*models.ObservationDetail, error) {
	return s.listObservations(teacherID, limit)
}

func (s *Store) listObservations(teacherID string, limit int) ([]*models.ObservationDetail, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var details []*models.ObservationDetail
	for _, obs := range s.observations {
		if obs.TeacherID != teacherID || obs.IsDeleted {
			continue
		}
		learnerName := ""
		if learner, ok := s.learners[obs.LearnerID]; ok {
			learnerName = learner.Name
		}
		details = append(details, &models.ObservationDetail{
			ID:          obs.ID,
			ClassName:   obs.ClassName,
			LearnerName: learnerName,
			Activity:    obs.Activity,
			Skill:       obs.Skill,
			Level:       obs.Level,
			Note:        obs.Note,
			CreatedAt:   obs.CreatedAt,
		})
	}
	sort.Slice(details, func(i, j int) bool {
		if details[i].CreatedAt.Equal(details[j].CreatedAt) {
			return strings.Compare(details[i].ID, details[j].ID) < 0
		}
		return details[i].CreatedAt.After(details[j].CreatedAt)
	})
	if limit > 0 && len(details) > limit {
		details = details[:limit]
	}
	return details, nil
}
