package dashboard

import (
	"github.com/gofiber/fiber/v2"

	"github.com/kwetu-stack/cbc-connect/app/routes/auth"
	"github.com/kwetu-stack/cbc-connect/app/services"
)

type Handler struct {
	reports *services.ReportService
	ledger  *services.LedgerService
}

func SetupDashboardRoutes(app *fiber.App, secret []byte, reports *services.ReportService, ledger *services.LedgerService) {
	h := &Handler{reports: reports, ledger: ledger}

	app.Get("/dashboard", auth.RequireTeacher(secret), h.DashboardPage)
}

// DashboardPage shows the teacher's weekly summary plus the five most
// recent observations.
func (h *Handler) DashboardPage(c *fiber.Ctx) error {
	sess := auth.SessionFromContext(c)

	summary, err := h.reports.WeeklySummary(sess.TeacherID)
	if err != nil {
		return auth.MapServiceError(err)
	}
	recent, err := h.ledger.Recent(sess.TeacherID, 5)
	if err != nil {
		return auth.MapServiceError(err)
	}

	return c.Render("dashboard/index", fiber.Map{
		"Title":       "Dashboard - CBC Connect",
		"CurrentPage": "dashboard",
		"Session":     sess,
		"Summary":     summary,
		"Recent":      recent,
	})
}
