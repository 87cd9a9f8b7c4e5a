package services_test

import (
	"errors"
	"testing"

	"github.com/kwetu-stack/cbc-connect/app/services"
)

func TestRecordObservationEndToEnd(t *testing.T) {
	f := newFixture(t)

	// The first-run flow: login bootstraps the directory, opening a class
	// seeds its roster, and recording stores one live row.
	_, teacherID := f.seedTeacher(t, "amina@school.test", "Amina Hassan")

	classList, err := f.directory.ClassesForTeacher(teacherID)
	if err != nil {
		t.Fatalf("ClassesForTeacher() error = %v", err)
	}
	if len(classList) != 3 {
		t.Fatalf("classes = %d, want 3", len(classList))
	}

	learner := f.firstLearner(t, teacherID)

	id, err := f.ledger.Record(teacherID, learner.ID, validInput())
	if err != nil {
		t.Fatalf("Record() error = %v", err)
	}

	obs, err := f.ledger.Get(id, teacherID)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if obs.TeacherID != teacherID {
		t.Errorf("teacher id = %q, want %q", obs.TeacherID, teacherID)
	}
	if obs.IsDeleted {
		t.Error("new observation is marked deleted")
	}
	if obs.ClassName != classList[0].Name {
		t.Errorf("class name snapshot = %q, want %q", obs.ClassName, classList[0].Name)
	}
}

func TestSeedLearnersIdempotent(t *testing.T) {
	f := newFixture(t)
	_, teacherID := f.seedTeacher(t, "amina@school.test", "Amina Hassan")

	classList, _ := f.directory.ClassesForTeacher(teacherID)

	for i := 0; i < 2; i++ {
		_, learners, err := f.directory.LearnersForClass(classList[0].ID, teacherID)
		if err != nil {
			t.Fatalf("LearnersForClass() pass %d error = %v", i+1, err)
		}
		if len(learners) != 5 {
			t.Errorf("pass %d: learners = %d, want 5", i+1, len(learners))
		}
	}
}

func TestOwnershipEnforced(t *testing.T) {
	f := newFixture(t)
	_, aminaID := f.seedTeacher(t, "amina@school.test", "Amina Hassan")
	_, otienoID := f.seedTeacher(t, "otieno@school.test", "David Otieno")

	learner := f.firstLearner(t, aminaID)

	// Another teacher must not write against amina's learner.
	if _, err := f.ledger.Record(otienoID, learner.ID, validInput()); !errors.Is(err, services.ErrForbidden) {
		t.Errorf("Record() by non-owner error = %v, want ErrForbidden", err)
	}

	// The learner list is equally fenced.
	if _, _, err := f.directory.LearnersForClass(learner.ClassID, otienoID); !errors.Is(err, services.ErrForbidden) {
		t.Errorf("LearnersForClass() by non-owner error = %v, want ErrForbidden", err)
	}

	// Edits and deletes of someone else's observation surface as NotFound
	// so ids cannot be probed.
	id, err := f.ledger.Record(aminaID, learner.ID, validInput())
	if err != nil {
		t.Fatalf("Record() error = %v", err)
	}
	if err := f.ledger.Edit(id, otienoID, validInput()); !errors.Is(err, services.ErrNotFound) {
		t.Errorf("Edit() by non-owner error = %v, want ErrNotFound", err)
	}
	if err := f.ledger.SoftDelete(id, otienoID); !errors.Is(err, services.ErrNotFound) {
		t.Errorf("SoftDelete() by non-owner error = %v, want ErrNotFound", err)
	}
}

func TestValidationRequiresCoreFields(t *testing.T) {
	f := newFixture(t)
	_, teacherID := f.seedTeacher(t, "amina@school.test", "Amina Hassan")
	learner := f.firstLearner(t, teacherID)

	tests := []struct {
		name  string
		input services.ObservationInput
		field string
	}{
		{name: "blank activity", input: services.ObservationInput{Activity: "   ", Skill: "Numeracy", Level: "Emerging"}, field: "activity"},
		{name: "blank skill", input: services.ObservationInput{Activity: "Counting", Skill: "", Level: "Emerging"}, field: "skill"},
		{name: "blank level", input: services.ObservationInput{Activity: "Counting", Skill: "Numeracy", Level: " "}, field: "level"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.ledger.Record(teacherID, learner.ID, tt.input)
			verr, ok := services.AsValidationError(err)
			if !ok {
				t.Fatalf("Record() error = %v, want ValidationError", err)
			}
			if _, found := verr.Fields[tt.field]; !found {
				t.Errorf("ValidationError fields = %v, want %q flagged", verr.Fields, tt.field)
			}
		})
	}

	// Nothing was written.
	list, err := f.ledger.List(teacherID)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(list) != 0 {
		t.Errorf("observations after failed validation = %d, want 0", len(list))
	}
}

func TestSoftDeleteSemantics(t *testing.T) {
	f := newFixture(t)
	_, teacherID := f.seedTeacher(t, "amina@school.test", "Amina Hassan")
	learner := f.firstLearner(t, teacherID)

	id, err := f.ledger.Record(teacherID, learner.ID, validInput())
	if err != nil {
		t.Fatalf("Record() error = %v", err)
	}

	if err := f.ledger.SoftDelete(id, teacherID); err != nil {
		t.Fatalf("SoftDelete() error = %v", err)
	}

	// Gone from normal reads.
	list, err := f.ledger.List(teacherID)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(list) != 0 {
		t.Errorf("observations after delete = %d, want 0", len(list))
	}

	// Still present for the direct owner lookup, flagged deleted.
	obs, err := f.ledger.Get(id, teacherID)
	if err != nil {
		t.Fatalf("Get() after delete error = %v", err)
	}
	if !obs.IsDeleted {
		t.Error("deleted observation not flagged")
	}
}

func TestEditAndDeleteNotFoundConflation(t *testing.T) {
	f := newFixture(t)
	_, teacherID := f.seedTeacher(t, "amina@school.test", "Amina Hassan")
	learner := f.firstLearner(t, teacherID)

	deleted, err := f.ledger.Record(teacherID, learner.ID, validInput())
	if err != nil {
		t.Fatalf("Record() error = %v", err)
	}
	if err := f.ledger.SoftDelete(deleted, teacherID); err != nil {
		t.Fatalf("SoftDelete() error = %v", err)
	}

	// Nonexistent and already-deleted ids answer identically.
	for _, id := range []string{"no-such-id", deleted} {
		if err := f.ledger.Edit(id, teacherID, validInput()); !errors.Is(err, services.ErrNotFound) {
			t.Errorf("Edit(%q) error = %v, want ErrNotFound", id, err)
		}
		if err := f.ledger.SoftDelete(id, teacherID); !errors.Is(err, services.ErrNotFound) {
			t.Errorf("SoftDelete(%q) error = %v, want ErrNotFound", id, err)
		}
	}
}

func TestEditRewritesLiveRow(t *testing.T) {
	f := newFixture(t)
	_, teacherID := f.seedTeacher(t, "amina@school.test", "Amina Hassan")
	learner := f.firstLearner(t, teacherID)

	id, err := f.ledger.Record(teacherID, learner.ID, validInput())
	if err != nil {
		t.Fatalf("Record() error = %v", err)
	}

	update := services.ObservationInput{
		Activity: "Skip counting",
		Skill:    "Numeracy",
		Level:    "Proficient",
		Note:     "much improved",
	}
	if err := f.ledger.Edit(id, teacherID, update); err != nil {
		t.Fatalf("Edit() error = %v", err)
	}

	obs, err := f.ledger.Get(id, teacherID)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if obs.Activity != "Skip counting" || obs.Level != "Proficient" {
		t.Errorf("edit not applied: %+v", obs)
	}
	if obs.Note == nil || *obs.Note != "much improved" {
		t.Errorf("note = %v, want 'much improved'", obs.Note)
	}
}
