package services

import "github.com/kwetu-stack/cbc-connect/app/models"

type ReportService struct {
	store ReportStore
}

func NewReportService(store ReportStore) *ReportService {
	return &ReportService{store: store}
}

func (s *ReportService) WeeklySummary(teacherID string) (*models.WeeklySummary, error) {
	return s.store.WeeklySummary(teacherID)
}

func (s *ReportService) TeacherSummaries() ([]*models.TeacherSummary, error) {
	return s.store.TeacherSummaries()
}

func (s *ReportService) DashboardStats() (*models.DashboardStats, error) {
	return s.store.DashboardStats()
}
