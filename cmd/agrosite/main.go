package main

import (
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/csrf"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	html "github.com/gofiber/template/html/v2"

	"agrosite/internal/config"
	"agrosite/internal/http/handlers"
	applog "agrosite/internal/log"
	"agrosite/internal/repos"
	"agrosite/internal/services"
)

func main() {
	cfg := config.Load()

	// Optional file logging
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			log.Printf("[warn] could not open log file %s: %v", cfg.LogFile, err)
		} else {
			mw := io.MultiWriter(os.Stdout, f)
			log.SetOutput(mw)
		}
	}

	db, err := repos.OpenDB(cfg.DBDSN)
	if err != nil {
		log.Fatal(err)
	}
	if err := repos.EnsureAdmin(db, cfg.AdminUser, cfg.AdminPass); err != nil {
		log.Fatal(err)
	}

	// Auth wiring
	userRepo := repos.NewUserRepo(db)
	authSvc := &services.AuthService{Users: userRepo}
	authH := &handlers.AuthHandler{Auth: authSvc}

	// Templates & app
	engine := html.New("./web/templates", ".html")

	app := fiber.New(fiber.Config{
		Views: engine,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			applog.Error(c, "server.error", err, nil)
			// Avoid leaking internals; best-effort render
			if rerr := c.Status(fiber.StatusInternalServerError).Render("notfound", fiber.Map{
				"Message": "Что-то пошло не так. Попробуйте еще раз.",
			}); rerr != nil {
				return c.Status(fiber.StatusInternalServerError).SendString("Что-то пошло не так. Попробуйте еще раз.")
			}
			return nil
		},
	})
	// Forms are small; only the upload routes need multipart headroom.
	app.Server().MaxRequestBodySize = 12 << 20

	// ---------- Middlewares ----------
	app.Use(requestid.New())
	app.Use(logger.New())
	app.Use(helmet.New())
	// Attach user to context if logged in (for templates/headers)
	app.Use(func(c *fiber.Ctx) error {
		if sid := c.Cookies("sid"); sid != "" {
			if u, err := authSvc.CurrentUser(sid); err == nil && u != nil {
				c.Locals("user", u)
			}
		}
		return c.Next()
	})
	app.Use(limiter.New(limiter.Config{
		Max:        120,
		Expiration: time.Minute,
		Next: func(c *fiber.Ctx) bool {
			p := string(c.Request().URI().Path())
			return strings.HasPrefix(p, "/static/") || strings.HasPrefix(p, "/media/")
		},
	}))
	app.Use(csrf.New(csrf.Config{
		KeyLookup:      "form:csrf",
		CookieName:     "csrf_",
		CookieSameSite: "Lax",
		CookieSecure:   false, // set true behind HTTPS
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			applog.Security(c, "csrf.fail", nil)
			return c.Status(fiber.StatusForbidden).Render("notfound", fiber.Map{"Message": "Проверка безопасности не пройдена. Обновите страницу и попробуйте снова."})
		},
	}))
	app.Use(func(c *fiber.Ctx) error {
		if tok := c.Locals("csrf"); tok != nil {
			c.Locals("CSRFToken", tok.(string))
		}
		return c.Next()
	})

	// ---------- Static assets ----------
	mediaDir := cfg.MediaDir
	if !filepath.IsAbs(mediaDir) {
		if abs, err := filepath.Abs(mediaDir); err == nil {
			mediaDir = abs
		}
	}
	log.Printf("[static] /static -> ./web/static")
	log.Printf("[static] /media  -> %s", mediaDir)

	app.Static("/static", "./web/static")
	// Guarded media to avoid traversal
	app.Get("/media/*", func(c *fiber.Ctx) error {
		path := c.Params("*")
		rawLower := strings.ToLower(path)
		// Block encoded traversal attempts as well as raw .. or null bytes
		if strings.Contains(rawLower, "..") || strings.Contains(rawLower, "%2e") || strings.Contains(rawLower, "\x00") {
			applog.Security(c, "media.traversal.block", map[string]any{"path": path})
			return c.SendStatus(fiber.StatusNotFound)
		}
		clean := filepath.Clean(path)
		if clean == "." || strings.Contains(clean, "..") || filepath.IsAbs(clean) {
			applog.Security(c, "media.traversal.block", map[string]any{"path": path})
			return c.SendStatus(fiber.StatusNotFound)
		}
		full := filepath.Join(mediaDir, clean)
		return c.SendFile(full, true)
	})

	// ---------- App handlers ----------
	deps := handlers.NewDeps(db, cfg, authSvc)

	// Public pages
	app.Get("/", deps.PageHandler.Home)
	app.Get("/about", deps.PageHandler.About)
	app.Get("/contacts", deps.PageHandler.Contacts)
	app.Post("/contacts", deps.PageHandler.SubmitContact)
	app.Get("/feedback", deps.PageHandler.Feedback)

	// Products
	app.Get("/products", deps.ProductHandler.List)
	app.Get("/products/:id", deps.ProductHandler.Detail)
	app.Post("/products/:id/order", deps.ProductHandler.Order)

	// News
	app.Get("/news", deps.NewsHandler.List)
	app.Get("/news/:id", deps.NewsHandler.Detail)

	// Careers
	app.Get("/careers", deps.CareersHandler.List)
	app.Post("/careers/apply", deps.CareersHandler.Apply)

	// Auth routes (login throttled)
	app.Get("/login", authH.LoginForm)
	app.Post("/login", limiter.New(limiter.Config{
		Max:        5,
		Expiration: 10 * time.Minute,
		LimitReached: func(c *fiber.Ctx) error {
			applog.Security(c, "rate.login.hit", nil)
			return c.Status(fiber.StatusTooManyRequests).Render("login", fiber.Map{"Err": "Слишком много попыток. Попробуйте позже."})
		},
	}), authH.Login)
	app.Post("/logout", authH.Logout)

	// Admin
	adminH := deps.AdminHandler
	admin := app.Group("/admin", handlers.RequireAdmin(authSvc))
	admin.Get("/", adminH.Dashboard)
	admin.Get("/products", adminH.ProductsPage)
	admin.Post("/products", adminH.AddProduct)
	admin.Post("/products/:id", adminH.EditProduct)
	admin.Post("/products/:id/delete", adminH.DeleteProduct)
	admin.Get("/vacancies", adminH.VacanciesPage)
	admin.Post("/vacancies", adminH.AddVacancy)
	admin.Post("/vacancies/:id", adminH.EditVacancy)
	admin.Post("/vacancies/:id/delete", adminH.DeleteVacancy)
	admin.Get("/news", adminH.NewsPage)
	admin.Post("/news", adminH.AddNews)
	admin.Post("/news/:id", adminH.EditNews)
	admin.Post("/news/:id/delete", adminH.DeleteNews)
	admin.Get("/inquiries", adminH.InquiriesPage)
	admin.Post("/inquiries/:id/status", adminH.UpdateInquiryStatus)
	admin.Post("/inquiries/:id/delete", adminH.DeleteInquiry)
	admin.Get("/inquiries/:id/print", adminH.PrintInquiry)

	// Health & 404
	app.Get("/healthz", func(c *fiber.Ctx) error { return c.JSON(fiber.Map{"ok": true}) })
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(404).Render("notfound", fiber.Map{"Message": "Страница не найдена"})
	})

	log.Fatal(app.Listen(":" + cfg.Port))
}
