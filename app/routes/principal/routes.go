package principal

import (
	"github.com/gofiber/fiber/v2"

	"github.com/kwetu-stack/cbc-connect/app/routes/auth"
	"github.com/kwetu-stack/cbc-connect/app/services"
)

type Handler struct {
	reports *services.ReportService
}

func SetupPrincipalRoutes(app *fiber.App, secret []byte, reports *services.ReportService) {
	h := &Handler{reports: reports}

	app.Get("/principal/dashboard", auth.RequirePrincipal(secret), h.DashboardPage)
}

// DashboardPage is the principal's read-only view: school-wide totals plus
// a per-teacher rollup. Principals never reach any write route.
func (h *Handler) DashboardPage(c *fiber.Ctx) error {
	sess := auth.SessionFromContext(c)

	stats, err := h.reports.DashboardStats()
	if err != nil {
		return auth.MapServiceError(err)
	}
	summaries, err := h.reports.TeacherSummaries()
	if err != nil {
		return auth.MapServiceError(err)
	}

	return c.Render("principal/dashboard", fiber.Map{
		"Title":       "Principal Dashboard - CBC Connect",
		"CurrentPage": "principal",
		"Session":     sess,
		"Stats":       stats,
		"Teachers":    summaries,
	})
}
