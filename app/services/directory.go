package services

import (
	"github.com/kwetu-stack/cbc-connect/app/models"
)

type DirectoryService struct {
	store DirectoryStore
}

func NewDirectoryService(store DirectoryStore) *DirectoryService {
	return &DirectoryService{store: store}
}

func (s *DirectoryService) ClassesForTeacher(teacherID string) ([]*models.Class, error) {
	return s.store.ClassesForTeacher(teacherID)
}

// ClassForTeacher resolves a class id supplied by the client and enforces
// ownership: a class owned by someone else is Forbidden, a missing one is
// NotFound.
func (s *DirectoryService) ClassForTeacher(classID, teacherID string) (*models.Class, error) {
	class, err := s.store.ClassByID(classID)
	if err != nil {
		return nil, err
	}
	if class.TeacherID != teacherID {
		return nil, ErrForbidden
	}
	return class, nil
}

// LearnersForClass returns the class roster, seeding the starter learners
// first when the class is empty. The ownership check runs before any write.
func (s *DirectoryService) LearnersForClass(classID, teacherID string) (*models.Class, []*models.Learner, error) {
	class, err := s.ClassForTeacher(classID, teacherID)
	if err != nil {
		return nil, nil, err
	}
	if err := s.store.SeedDefaultLearners(classID); err != nil {
		return nil, nil, err
	}
	learners, err := s.store.LearnersForClass(classID)
	if err != nil {
		return nil, nil, err
	}
	return class, learners, nil
}

// LearnerForTeacher resolves a learner id supplied by the client and
// enforces transitive ownership through its class.
func (s *DirectoryService) LearnerForTeacher(learnerID, teacherID string) (*models.LearnerDetail, error) {
	learner, err := s.store.LearnerWithClass(learnerID)
	if err != nil {
		return nil, err
	}
	if learner.TeacherID != teacherID {
		return nil, ErrForbidden
	}
	return learner, nil
}
