package reports

import (
	"encoding/csv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/kwetu-stack/cbc-connect/app/routes/auth"
	"github.com/kwetu-stack/cbc-connect/app/services"
)

// exportLimit caps the report views; observations beyond this stay in the
// ledger but are not rendered.
const exportLimit = 1000

type Handler struct {
	reports *services.ReportService
	ledger  *services.LedgerService
}

func SetupReportsRoutes(app *fiber.App, secret []byte, reports *services.ReportService, ledger *services.LedgerService) {
	h := &Handler{reports: reports, ledger: ledger}

	teacher := auth.RequireTeacher(secret)
	app.Get("/week", teacher, h.WeekPage)
	app.Get("/reports", teacher, h.ReportsPage)
	app.Get("/reports/export", teacher, h.ExportCSV)
}

func (h *Handler) WeekPage(c *fiber.Ctx) error {
	sess := auth.SessionFromContext(c)

	summary, err := h.reports.WeeklySummary(sess.TeacherID)
	if err != nil {
		return auth.MapServiceError(err)
	}

	return c.Render("reports/week", fiber.Map{
		"Title":       "Weekly Summary - CBC Connect",
		"CurrentPage": "week",
		"Session":     sess,
		"Summary":     summary,
	})
}

func (h *Handler) ReportsPage(c *fiber.Ctx) error {
	sess := auth.SessionFromContext(c)

	observations, err := h.ledger.Recent(sess.TeacherID, exportLimit)
	if err != nil {
		return auth.MapServiceError(err)
	}

	return c.Render("reports/index", fiber.Map{
		"Title":        "Reports - CBC Connect",
		"CurrentPage":  "reports",
		"Session":      sess,
		"Observations": observations,
	})
}

// ExportCSV streams the same report rows as a download.
func (h *Handler) ExportCSV(c *fiber.Ctx) error {
	sess := auth.SessionFromContext(c)

	observations, err := h.ledger.Recent(sess.TeacherID, exportLimit)
	if err != nil {
		return auth.MapServiceError(err)
	}

	var sb strings.Builder
	w := csv.NewWriter(&sb)
	w.Write([]string{"date", "class", "learner", "activity", "skill", "level", "note"})
	for _, obs := range observations {
		note := ""
		if obs.Note != nil {
			note = *obs.Note
		}
		w.Write([]string{
			obs.CreatedAt.Format(time.RFC3339),
			obs.ClassName,
			obs.LearnerName,
			obs.Activity,
			obs.Skill,
			obs.Level,
			note,
		})
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return err
	}

	c.Set(fiber.HeaderContentType, "text/csv")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="observations.csv"`)
	return c.SendString(sb.String())
}
