package services_test

import (
	"testing"
	"time"

	"github.com/kwetu-stack/cbc-connect/app/models"
)

// recordAt writes an observation directly to the store with a pinned
// timestamp, bypassing the service clock.
func recordAt(t *testing.T, f *fixture, teacherID, learnerID, className, skill string, at time.Time) {
	t.Helper()
	_, err := f.store.InsertObservation(&models.Observation{
		TeacherID: teacherID,
		ClassName: className,
		LearnerID: learnerID,
		Activity:  "Counting",
		Skill:     skill,
		Level:     "Emerging",
		CreatedAt: at,
	})
	if err != nil {
		t.Fatalf("InsertObservation() error = %v", err)
	}
}

func TestWeeklySummaryCounts(t *testing.T) {
	f := newFixture(t)
	_, teacherID := f.seedTeacher(t, "amina@school.test", "Amina Hassan")

	classList, _ := f.directory.ClassesForTeacher(teacherID)
	_, learners, err := f.directory.LearnersForClass(classList[0].ID, teacherID)
	if err != nil {
		t.Fatalf("LearnersForClass() error = %v", err)
	}

	now := time.Now()
	className := classList[0].Name

	// Three observations inside the window: two distinct skills across two
	// distinct learners. One more from ten days ago must not count.
	recordAt(t, f, teacherID, learners[0].ID, className, "Numeracy", now)
	recordAt(t, f, teacherID, learners[0].ID, className, "Literacy", now.Add(-24*time.Hour))
	recordAt(t, f, teacherID, learners[1].ID, className, "Numeracy", now.Add(-48*time.Hour))
	recordAt(t, f, teacherID, learners[2].ID, className, "Numeracy", now.Add(-10*24*time.Hour))

	summary, err := f.reports.WeeklySummary(teacherID)
	if err != nil {
		t.Fatalf("WeeklySummary() error = %v", err)
	}
	if summary.Total != 3 || summary.Learners != 2 || summary.Skills != 2 {
		t.Errorf("summary = %+v, want total=3 learners=2 skills=2", summary)
	}
}

func TestWeeklySummaryExcludesDeleted(t *testing.T) {
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

	summary, err := f.reports.WeeklySummary(teacherID)
	if err != nil {
		t.Fatalf("WeeklySummary() error = %v", err)
	}
	if summary.Total != 0 {
		t.Errorf("total = %d, want 0 after soft delete", summary.Total)
	}
}

func TestTeacherSummariesCountZeroLearnerTeachers(t *testing.T) {
	f := newFixture(t)

	// Amina has a seeded roster; Otieno has classes but never opened one,
	// so no learners. Both must appear.
	_, aminaID := f.seedTeacher(t, "amina@school.test", "Amina Hassan")
	f.firstLearner(t, aminaID)
	_, otienoID := f.seedTeacher(t, "otieno@school.test", "David Otieno")

	summaries, err := f.reports.TeacherSummaries()
	if err != nil {
		t.Fatalf("TeacherSummaries() error = %v", err)
	}
	if len(summaries) != 2 {
		t.Fatalf("summaries = %d, want 2", len(summaries))
	}

	byID := make(map[string]*models.TeacherSummary)
	for _, sum := range summaries {
		byID[sum.TeacherID] = sum
	}
	if byID[aminaID].TotalLearners != 5 {
		t.Errorf("amina learners = %d, want 5", byID[aminaID].TotalLearners)
	}
	if byID[otienoID].TotalLearners != 0 {
		t.Errorf("otieno learners = %d, want 0", byID[otienoID].TotalLearners)
	}
}

func TestDashboardStats(t *testing.T) {
	f := newFixture(t)

	_, aminaID := f.seedTeacher(t, "amina@school.test", "Amina Hassan")
	aminasLearner := f.firstLearner(t, aminaID)
	_, otienoID := f.seedTeacher(t, "otieno@school.test", "David Otieno")
	otienosLearner := f.firstLearner(t, otienoID)

	classList, _ := f.directory.ClassesForTeacher(aminaID)
	now := time.Now()

	// Amina: two this week. Otieno: one this week, one stale.
	recordAt(t, f, aminaID, aminasLearner.ID, classList[0].Name, "Numeracy", now)
	recordAt(t, f, aminaID, aminasLearner.ID, classList[0].Name, "Literacy", now.Add(-time.Hour))
	recordAt(t, f, otienoID, otienosLearner.ID, "Grade 10 A", "Numeracy", now)
	recordAt(t, f, otienoID, otienosLearner.ID, "Grade 10 A", "Numeracy", now.Add(-10*24*time.Hour))

	stats, err := f.reports.DashboardStats()
	if err != nil {
		t.Fatalf("DashboardStats() error = %v", err)
	}

	if stats.TotalTeachers != 2 {
		t.Errorf("teachers = %d, want 2", stats.TotalTeachers)
	}
	if stats.TotalLearners != 10 {
		t.Errorf("learners = %d, want 10", stats.TotalLearners)
	}
	if stats.TotalObservations != 4 {
		t.Errorf("observations = %d, want 4", stats.TotalObservations)
	}
	if stats.WeekObservations != 3 {
		t.Errorf("week observations = %d, want 3", stats.WeekObservations)
	}
	if stats.MostActiveTeacher != "Amina Hassan" {
		t.Errorf("most active = %q, want Amina Hassan", stats.MostActiveTeacher)
	}
}
