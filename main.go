package main

import (
	"encoding/json"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/template/html/v2"

	"github.com/kwetu-stack/cbc-connect/app/config"
	"github.com/kwetu-stack/cbc-connect/app/database"
	"github.com/kwetu-stack/cbc-connect/app/routes/auth"
	"github.com/kwetu-stack/cbc-connect/app/routes/classes"
	"github.com/kwetu-stack/cbc-connect/app/routes/dashboard"
	"github.com/kwetu-stack/cbc-connect/app/routes/observations"
	"github.com/kwetu-stack/cbc-connect/app/routes/principal"
	"github.com/kwetu-stack/cbc-connect/app/routes/reports"
	"github.com/kwetu-stack/cbc-connect/app/services"
)

// customErrorHandler renders error pages for web requests and JSON for
// /api paths. Store-level failures land here as generic 500s with no
// internal detail exposed.
func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	if strings.HasPrefix(c.Path(), "/api") {
		msg := err.Error()
		if code == fiber.StatusInternalServerError {
			msg = "internal server error"
		}
		return c.Status(code).JSON(fiber.Map{
			"success": false,
			"error":   msg,
			"code":    code,
		})
	}

	switch code {
	case fiber.StatusNotFound:
		return c.Status(code).Render("error", fiber.Map{
			"Title":        "Not Found - CBC Connect",
			"ErrorCode":    "404",
			"ErrorTitle":   "Not Found",
			"ErrorMessage": "That record does not exist.",
		})
	case fiber.StatusForbidden:
		return c.Status(code).Render("error", fiber.Map{
			"Title":        "Access Forbidden - CBC Connect",
			"ErrorCode":    "403",
			"ErrorTitle":   "Access Forbidden",
			"ErrorMessage": "You don't have permission to access this resource.",
		})
	case fiber.StatusUnauthorized:
		return c.Status(code).Render("error", fiber.Map{
			"Title":        "Unauthorized - CBC Connect",
			"ErrorCode":    "401",
			"ErrorTitle":   "Unauthorized",
			"ErrorMessage": "Please log in to access this resource.",
		})
	default:
		return c.Status(code).Render("error", fiber.Map{
			"Title":        "Server Error - CBC Connect",
			"ErrorCode":    "500",
			"ErrorTitle":   "Internal Server Error",
			"ErrorMessage": "We're experiencing technical difficulties. Please try again later.",
		})
	}
}

func main() {
	cfg := config.Load()

	db, err := config.OpenDB(cfg)
	if err != nil {
		log.Fatal("Failed to connect to database: ", err)
	}
	defer db.Close()

	if err := database.InitSchema(db); err != nil {
		log.Fatal("Failed to initialize schema: ", err)
	}
	if err := database.RunMigrations(db); err != nil {
		log.Fatal("Failed to run migrations: ", err)
	}

	store := database.NewStore(db)
	authSvc := services.NewAuthService(store, store, cfg.BcryptCost)
	directorySvc := services.NewDirectoryService(store)
	ledgerSvc := services.NewLedgerService(store, directorySvc)
	reportSvc := services.NewReportService(store)

	if cfg.SeedDemo {
		if err := services.SeedDemoUsers(authSvc); err != nil {
			log.Fatal("Failed to seed demo accounts: ", err)
		}
	}

	engine := html.New("./app/templates", ".html")
	engine.AddFunc("json", func(v interface{}) (string, error) {
		b, err := json.Marshal(v)
		return string(b), err
	})

	app := fiber.New(fiber.Config{
		Views:             engine,
		ViewsLayout:       "layouts/main",
		PassLocalsToViews: true,
		ErrorHandler:      customErrorHandler,
	})

	app.Use(logger.New())
	app.Use(cors.New())

	app.Get("/", func(c *fiber.Ctx) error {
		return c.Redirect("/auth/login")
	})

	secret := []byte(cfg.JWTSecret)
	auth.SetupAuthRoutes(app, authSvc, secret)
	dashboard.SetupDashboardRoutes(app, secret, reportSvc, ledgerSvc)
	classes.SetupClassesRoutes(app, secret, directorySvc)
	observations.SetupObservationsRoutes(app, secret, directorySvc, ledgerSvc)
	reports.SetupReportsRoutes(app, secret, reportSvc, ledgerSvc)
	principal.SetupPrincipalRoutes(app, secret, reportSvc)

	app.Use("*", func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusNotFound, "Page not found")
	})

	addr := ":" + cfg.AppPort
	log.Printf("Server starting on %s", addr)
	log.Fatal(app.Listen(addr))
}
