package auth

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/kwetu-stack/cbc-connect/app/models"
	"github.com/kwetu-stack/cbc-connect/app/services"
)

type Handler struct {
	auth   *services.AuthService
	secret []byte
}

func SetupAuthRoutes(app *fiber.App, authSvc *services.AuthService, secret []byte) {
	h := &Handler{auth: authSvc, secret: secret}

	auth := app.Group("/auth")
	auth.Get("/login", h.ShowTeacherLoginPage)
	auth.Post("/login", h.TeacherLogin)
	auth.Get("/principal", h.ShowPrincipalLoginPage)
	auth.Post("/principal", h.PrincipalLogin)
	auth.Post("/logout", h.Logout)
}

func (h *Handler) ShowTeacherLoginPage(c *fiber.Ctx) error {
	if sess := resolveSession(c, h.secret); sess != nil && sess.Role == models.RoleTeacher {
		return c.Redirect("/dashboard")
	}
	return c.Render("auth/login", fiber.Map{
		"Title": "Teacher Login - CBC Connect",
	})
}

func (h *Handler) TeacherLogin(c *fiber.Ctx) error {
	return h.login(c, models.RoleTeacher, "auth/login", "/dashboard")
}

func (h *Handler) ShowPrincipalLoginPage(c *fiber.Ctx) error {
	if sess := resolveSession(c, h.secret); sess != nil && sess.Role == models.RolePrincipal {
		return c.Redirect("/principal/dashboard")
	}
	return c.Render("auth/principal", fiber.Map{
		"Title": "Principal Login - CBC Connect",
	})
}

func (h *Handler) PrincipalLogin(c *fiber.Ctx) error {
	return h.login(c, models.RolePrincipal, "auth/principal", "/principal/dashboard")
}

// login is the shared flow behind both login forms. Every failure renders
// the same generic message; nothing distinguishes unknown email, wrong
// password, inactive account, or a credential for the other role.
func (h *Handler) login(c *fiber.Ctx, role, view, target string) error {
	email := c.FormValue("email")
	password := c.FormValue("password")

	fail := func() error {
		return c.Status(fiber.StatusUnauthorized).Render(view, fiber.Map{
			"Title": "Login - CBC Connect",
			"Error": "Invalid login details",
			"Email": email,
		})
	}

	usr, err := h.auth.Authenticate(email, password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			return fail()
		}
		return err
	}
	if usr.Role != role {
		return fail()
	}

	teacherID, err := h.auth.BootstrapTeacher(usr)
	if err != nil {
		return err
	}

	token, err := GenerateSessionToken(h.secret, Session{
		UserID:    usr.ID,
		Email:     usr.Email,
		Name:      usr.Name,
		Role:      usr.Role,
		TeacherID: teacherID,
	})
	if err != nil {
		return err
	}

	SetSessionCookie(c, token)
	return c.Redirect(target)
}

func (h *Handler) Logout(c *fiber.Ctx) error {
	target := "/auth/login"
	if sess := resolveSession(c, h.secret); sess != nil && sess.Role == models.RolePrincipal {
		target = "/auth/principal"
	}
	ClearSessionCookie(c)
	return c.Redirect(target)
}
