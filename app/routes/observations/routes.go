package observations

import (
	"github.com/gofiber/fiber/v2"

	"github.com/kwetu-stack/cbc-connect/app/routes/auth"
	"github.com/kwetu-stack/cbc-connect/app/services"
)

type Handler struct {
	directory *services.DirectoryService
	ledger    *services.LedgerService
}

func SetupObservationsRoutes(app *fiber.App, secret []byte, directory *services.DirectoryService, ledger *services.LedgerService) {
	h := &Handler{directory: directory, ledger: ledger}

	teacher := auth.RequireTeacher(secret)
	app.Get("/observe", teacher, h.ObserveForm)
	app.Post("/observe", teacher, h.ObserveSubmit)
	app.Get("/observations", teacher, h.ObservationsPage)
	app.Get("/observations/:id/edit", teacher, h.EditForm)
	app.Post("/observations/:id/edit", teacher, h.EditSubmit)
	app.Post("/observations/:id/delete", teacher, h.Delete)
}

func formInput(c *fiber.Ctx) services.ObservationInput {
	return services.ObservationInput{
		Activity: c.FormValue("activity"),
		Skill:    c.FormValue("skill"),
		Level:    c.FormValue("level"),
		Note:     c.FormValue("note"),
	}
}

func (h *Handler) ObserveForm(c *fiber.Ctx) error {
	sess := auth.SessionFromContext(c)

	learnerID := c.Query("learner_id")
	if learnerID == "" {
		return c.Redirect("/classes")
	}

	learner, err := h.directory.LearnerForTeacher(learnerID, sess.TeacherID)
	if err != nil {
		return auth.MapServiceError(err)
	}

	return c.Render("observations/new", fiber.Map{
		"Title":       "Record Observation - CBC Connect",
		"CurrentPage": "classes",
		"Session":     sess,
		"Learner":     learner,
	})
}

// ObserveSubmit records one observation. A validation failure redisplays
// the form with everything the teacher typed still in place.
func (h *Handler) ObserveSubmit(c *fiber.Ctx) error {
	sess := auth.SessionFromContext(c)

	learnerID := c.Query("learner_id")
	if learnerID == "" {
		return c.Redirect("/classes")
	}

	input := formInput(c)
	_, err := h.ledger.Record(sess.TeacherID, learnerID, input)
	if err != nil {
		if verr, ok := services.AsValidationError(err); ok {
			learner, lerr := h.directory.LearnerForTeacher(learnerID, sess.TeacherID)
			if lerr != nil {
				return auth.MapServiceError(lerr)
			}
			return c.Status(fiber.StatusUnprocessableEntity).Render("observations/new", fiber.Map{
				"Title":       "Record Observation - CBC Connect",
				"CurrentPage": "classes",
				"Session":     sess,
				"Learner":     learner,
				"Input":       input,
				"Errors":      verr.Fields,
				"Error":       "Activity, skill and level are all required.",
			})
		}
		return auth.MapServiceError(err)
	}

	learner, err := h.directory.LearnerForTeacher(learnerID, sess.TeacherID)
	if err != nil {
		return c.Redirect("/classes")
	}
	return c.Redirect("/learners?class_id=" + learner.ClassID)
}

func (h *Handler) ObservationsPage(c *fiber.Ctx) error {
	sess := auth.SessionFromContext(c)

	observations, err := h.ledger.List(sess.TeacherID)
	if err != nil {
		return auth.MapServiceError(err)
	}

	return c.Render("observations/index", fiber.Map{
		"Title":        "Observations - CBC Connect",
		"CurrentPage":  "observations",
		"Session":      sess,
		"Observations": observations,
	})
}

func (h *Handler) EditForm(c *fiber.Ctx) error {
	sess := auth.SessionFromContext(c)

	obs, err := h.ledger.GetForEdit(c.Params("id"), sess.TeacherID)
	if err != nil {
		return auth.MapServiceError(err)
	}

	return c.Render("observations/edit", fiber.Map{
		"Title":       "Edit Observation - CBC Connect",
		"CurrentPage": "observations",
		"Session":     sess,
		"Observation": obs,
	})
}

func (h *Handler) EditSubmit(c *fiber.Ctx) error {
	sess := auth.SessionFromContext(c)
	observationID := c.Params("id")

	input := formInput(c)
	if err := h.ledger.Edit(observationID, sess.TeacherID, input); err != nil {
		if verr, ok := services.AsValidationError(err); ok {
			obs, gerr := h.ledger.GetForEdit(observationID, sess.TeacherID)
			if gerr != nil {
				return auth.MapServiceError(gerr)
			}
			return c.Status(fiber.StatusUnprocessableEntity).Render("observations/edit", fiber.Map{
				"Title":       "Edit Observation - CBC Connect",
				"CurrentPage": "observations",
				"Session":     sess,
				"Observation": obs,
				"Input":       input,
				"Errors":      verr.Fields,
				"Error":       "Activity, skill and level are all required.",
			})
		}
		return auth.MapServiceError(err)
	}

	return c.Redirect("/observations")
}

func (h *Handler) Delete(c *fiber.Ctx) error {
	sess := auth.SessionFromContext(c)

	if err := h.ledger.SoftDelete(c.Params("id"), sess.TeacherID); err != nil {
		return auth.MapServiceError(err)
	}
	return c.Redirect("/observations")
}
