package models

// WeeklySummary aggregates one teacher's trailing-7-day activity.
type WeeklySummary struct {
	Total    int `json:"total"`
	Learners int `json:"learners"`
	Skills   int `json:"skills"`
}

// TeacherSummary is one row of the principal's per-teacher rollup.
type TeacherSummary struct {
	TeacherID         string `json:"teacher_id"`
	Name              string `json:"name"`
	Subject           string `json:"subject"`
	TotalLearners     int    `json:"total_learners"`
	TotalObservations int    `json:"total_observations"`
	WeekObservations  int    `json:"week_observations"`
}

// DashboardStats is the principal's school-wide rollup.
type DashboardStats struct {
	TotalTeachers     int    `json:"total_teachers"`
	TotalLearners     int    `json:"total_learners"`
	TotalObservations int    `json:"total_observations"`
	WeekObservations  int    `json:"week_observations"`
	MostActiveTeacher string `json:"most_active_teacher"`
}
