package handlers_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/csrf"
	html "github.com/gofiber/template/html/v2"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"

	"agrosite/internal/config"
	"agrosite/internal/http/handlers"
	"agrosite/internal/repos"
	"agrosite/internal/services"
)

const testAdminPass = "Adm1n-pass!"

// newSiteApp wires the full route table against an in-memory store, the same
// shape as main() minus logging and rate limits.
func newSiteApp(t *testing.T) (*fiber.App, *sqlx.DB, *services.AuthService) {
	t.Helper()

	db, err := repos.OpenDB(":memory:")
	require.NoError(t, err)
	require.NoError(t, repos.EnsureAdmin(db, "admin", testAdminPass))

	cfg := config.Config{MediaDir: t.TempDir()}

	authSvc := &services.AuthService{Users: repos.NewUserRepo(db)}
	authH := &handlers.AuthHandler{Auth: authSvc}

	engine := html.New("../../../web/templates", ".html")
	app := fiber.New(fiber.Config{Views: engine})
	app.Use(csrf.New(csrf.Config{KeyLookup: "form:csrf", CookieName: "csrf_", CookieSameSite: "Lax"}))
	app.Use(func(c *fiber.Ctx) error {
		if tok := c.Locals("csrf"); tok != nil {
			c.Locals("CSRFToken", tok.(string))
		}
		return c.Next()
	})

	deps := handlers.NewDeps(db, cfg, authSvc)

	app.Get("/", deps.PageHandler.Home)
	app.Get("/contacts", deps.PageHandler.Contacts)
	app.Post("/contacts", deps.PageHandler.SubmitContact)
	app.Get("/feedback", deps.PageHandler.Feedback)
	app.Get("/products", deps.ProductHandler.List)
	app.Get("/products/:id", deps.ProductHandler.Detail)
	app.Post("/products/:id/order", deps.ProductHandler.Order)
	app.Get("/news", deps.NewsHandler.List)
	app.Get("/news/:id", deps.NewsHandler.Detail)
	app.Get("/careers", deps.CareersHandler.List)
	app.Post("/careers/apply", deps.CareersHandler.Apply)
	app.Get("/login", authH.LoginForm)
	app.Post("/login", authH.Login)
	app.Post("/logout", authH.Logout)

	admin := app.Group("/admin", handlers.RequireAdmin(authSvc))
	admin.Get("/", deps.AdminHandler.Dashboard)
	admin.Get("/products", deps.AdminHandler.ProductsPage)
	admin.Post("/products", deps.AdminHandler.AddProduct)
	admin.Post("/products/:id", deps.AdminHandler.EditProduct)
	admin.Post("/products/:id/delete", deps.AdminHandler.DeleteProduct)
	admin.Get("/inquiries", deps.AdminHandler.InquiriesPage)
	admin.Post("/inquiries/:id/status", deps.AdminHandler.UpdateInquiryStatus)
	admin.Post("/inquiries/:id/delete", deps.AdminHandler.DeleteInquiry)
	admin.Get("/inquiries/:id/print", deps.AdminHandler.PrintInquiry)

	app.Use(func(c *fiber.Ctx) error {
		return c.Status(404).Render("notfound", fiber.Map{"Message": "Страница не найдена"})
	})

	return app, db, authSvc
}

func cookieValue(resp *http.Response, name string) string {
	for _, c := range resp.Cookies() {
		if c.Name == name {
			return c.Value
		}
	}
	return ""
}

// fetchCSRF primes the token the way a browser would, by loading any page.
func fetchCSRF(t *testing.T, app *fiber.App) string {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest("GET", "/contacts", nil))
	require.NoError(t, err)
	tok := cookieValue(resp, "csrf_")
	require.NotEmpty(t, tok, "csrf token missing")
	return tok
}

func postForm(t *testing.T, app *fiber.App, path, csrfTok string, form url.Values, cookies ...*http.Cookie) *http.Response {
	t.Helper()
	form.Set("csrf", csrfTok)
	req := httptest.NewRequest("POST", path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.AddCookie(&http.Cookie{Name: "csrf_", Value: csrfTok})
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	resp, err := app.Test(req, 10000)
	require.NoError(t, err)
	return resp
}

func bodyOf(t *testing.T, resp *http.Response) string {
	t.Helper()
	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(b)
}
