package services

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/kwetu-stack/cbc-connect/app/models"
)

// ObservationInput is one submitted observation form. Fields are validated
// after whitespace trimming; Note stays optional.
type ObservationInput struct {
	Activity string `validate:"required"`
	Skill    string `validate:"required"`
	Level    string `validate:"required"`
	Note     string
}

func (in *ObservationInput) trim() {
	in.Activity = strings.TrimSpace(in.Activity)
	in.Skill = strings.TrimSpace(in.Skill)
	in.Level = strings.TrimSpace(in.Level)
	in.Note = strings.TrimSpace(in.Note)
}

func (in *ObservationInput) notePtr() *string {
	if in.Note == "" {
		return nil
	}
	note := in.Note
	return &note
}

type LedgerService struct {
	store     LedgerStore
	directory *DirectoryService
	validate  *validator.Validate
}

func NewLedgerService(store LedgerStore, directory *DirectoryService) *LedgerService {
	return &LedgerService{
		store:     store,
		directory: directory,
		validate:  validator.New(),
	}
}

// Record creates one observation for a learner the teacher owns. The
// learner's current class name is captured as a snapshot; renaming the
// class later does not rewrite history.
func (s *LedgerService) Record(teacherID, learnerID string, in ObservationInput) (string, error) {
	in.trim()
	if err := s.validate.Struct(&in); err != nil {
		return "", asFieldErrors(err)
	}

	learner, err := s.directory.LearnerForTeacher(learnerID, teacherID)
	if err != nil {
		return "", err
	}

	return s.store.InsertObservation(&models.Observation{
		TeacherID: teacherID,
		ClassName: learner.ClassName,
		LearnerID: learner.ID,
		Activity:  in.Activity,
		Skill:     in.Skill,
		Level:     in.Level,
		Note:      in.notePtr(),
		CreatedAt: time.Now(),
	})
}

// Edit rewrites an observation's assessment fields. Wrong owner, deleted
// and nonexistent all come back as ErrNotFound.
func (s *LedgerService) Edit(observationID, teacherID string, in ObservationInput) error {
	in.trim()
	if err := s.validate.Struct(&in); err != nil {
		return asFieldErrors(err)
	}

	n, err := s.store.UpdateObservation(observationID, teacherID, in.Activity, in.Skill, in.Level, in.notePtr())
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// SoftDelete retires an observation. The row stays in the ledger forever;
// only is_deleted flips. Deleting a row that is already retired reports
// ErrNotFound, same as a row that never existed.
func (s *LedgerService) SoftDelete(observationID, teacherID string) error {
	n, err := s.store.SoftDeleteObservation(observationID, teacherID)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// Get fetches one owned observation regardless of its deleted flag.
func (s *LedgerService) Get(observationID, teacherID string) (*models.Observation, error) {
	return s.store.ObservationForTeacher(observationID, teacherID)
}

// GetForEdit is Get restricted to live rows, for preloading the edit form.
func (s *LedgerService) GetForEdit(observationID, teacherID string) (*models.Observation, error) {
	obs, err := s.store.ObservationForTeacher(observationID, teacherID)
	if err != nil {
		return nil, err
	}
	if obs.IsDeleted {
		return nil, ErrNotFound
	}
	return obs, nil
}

func (s *LedgerService) List(teacherID string) ([]*models.ObservationDetail, error) {
	return s.store.ObservationsForTeacher(teacherID)
}

func (s *LedgerService) Recent(teacherID string, limit int) ([]*models.ObservationDetail, error) {
	return s.store.RecentObservations(teacherID, limit)
}
