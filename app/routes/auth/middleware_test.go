package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
)

// guardApp mounts one teacher-only and one principal-only route behind the
// real middleware.
func guardApp(secret []byte) *fiber.App {
	app := fiber.New()
	app.Get("/dashboard", RequireTeacher(secret), func(c *fiber.Ctx) error {
		return c.SendString("teacher ok")
	})
	app.Get("/principal/dashboard", RequirePrincipal(secret), func(c *fiber.Ctx) error {
		return c.SendString("principal ok")
	})
	app.Get("/api/observations", RequireTeacher(secret), func(c *fiber.Ctx) error {
		return c.SendString("api ok")
	})
	return app
}

func TestRequireRole(t *testing.T) {
	secret := []byte("test-secret")
	app := guardApp(secret)

	teacherToken, err := GenerateSessionToken(secret, Session{UserID: "u-1", Role: "teacher", TeacherID: "t-1"})
	if err != nil {
		t.Fatalf("GenerateSessionToken() error = %v", err)
	}
	principalToken, err := GenerateSessionToken(secret, Session{UserID: "u-2", Role: "principal"})
	if err != nil {
		t.Fatalf("GenerateSessionToken() error = %v", err)
	}

	tests := []struct {
		name       string
		path       string
		token      string
		wantStatus int
		// anonymous web requests redirect to the login page for the
		// route's role class; wrong-role requests must terminate at 403.
		wantLocation string
	}{
		{name: "anonymous teacher route", path: "/dashboard", wantStatus: http.StatusFound, wantLocation: "/auth/login"},
		{name: "anonymous principal route", path: "/principal/dashboard", wantStatus: http.StatusFound, wantLocation: "/auth/principal"},
		{name: "anonymous api route", path: "/api/observations", wantStatus: http.StatusUnauthorized},
		{name: "teacher on teacher route", path: "/dashboard", token: teacherToken, wantStatus: http.StatusOK},
		{name: "principal on principal route", path: "/principal/dashboard", token: principalToken, wantStatus: http.StatusOK},
		{name: "principal on teacher route", path: "/dashboard", token: principalToken, wantStatus: http.StatusForbidden},
		{name: "teacher on principal route", path: "/principal/dashboard", token: teacherToken, wantStatus: http.StatusForbidden},
		{name: "teacher on api route", path: "/api/observations", token: teacherToken, wantStatus: http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.token != "" {
				req.AddCookie(&http.Cookie{Name: sessionCookie, Value: tt.token})
			}

			resp, err := app.Test(req)
			if err != nil {
				t.Fatalf("app.Test() error = %v", err)
			}
			defer resp.Body.Close()

			if resp.StatusCode != tt.wantStatus {
				t.Errorf("status = %d, want %d", resp.StatusCode, tt.wantStatus)
			}
			if tt.wantLocation != "" && resp.Header.Get("Location") != tt.wantLocation {
				t.Errorf("location = %q, want %q", resp.Header.Get("Location"), tt.wantLocation)
			}
		})
	}
}

func TestBearerHeaderAccepted(t *testing.T) {
	secret := []byte("test-secret")
	app := guardApp(secret)

	token, err := GenerateSessionToken(secret, Session{UserID: "u-1", Role: "teacher"})
	if err != nil {
		t.Fatalf("GenerateSessionToken() error = %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/observations", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test() error = %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d, want %d", resp.StatusCode, http.StatusOK)
	}
}
