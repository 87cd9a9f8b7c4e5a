package classes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/kwetu-stack/cbc-connect/app/routes/auth"
	"github.com/kwetu-stack/cbc-connect/app/services"
)

type Handler struct {
	directory *services.DirectoryService
}

func SetupClassesRoutes(app *fiber.App, secret []byte, directory *services.DirectoryService) {
	h := &Handler{directory: directory}

	app.Get("/classes", auth.RequireTeacher(secret), h.ClassesPage)
	app.Get("/learners", auth.RequireTeacher(secret), h.LearnersPage)
}

func (h *Handler) ClassesPage(c *fiber.Ctx) error {
	sess := auth.SessionFromContext(c)

	classes, err := h.directory.ClassesForTeacher(sess.TeacherID)
	if err != nil {
		return auth.MapServiceError(err)
	}

	return c.Render("classes/index", fiber.Map{
		"Title":       "My Classes - CBC Connect",
		"CurrentPage": "classes",
		"Session":     sess,
		"Classes":     classes,
	})
}

// LearnersPage lists one owned class's roster, seeding the starter
// learners into an empty class first. The ownership check runs before the
// seed writes anything.
func (h *Handler) LearnersPage(c *fiber.Ctx) error {
	sess := auth.SessionFromContext(c)

	classID := c.Query("class_id")
	if classID == "" {
		return c.Redirect("/classes")
	}

	class, learners, err := h.directory.LearnersForClass(classID, sess.TeacherID)
	if err != nil {
		return auth.MapServiceError(err)
	}

	return c.Render("classes/learners", fiber.Map{
		"Title":       "Learners - CBC Connect",
		"CurrentPage": "classes",
		"Session":     sess,
		"Class":       class,
		"Learners":    learners,
	})
}
