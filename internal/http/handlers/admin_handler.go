package handlers

import (
	"errors"
	"time"

	"agrosite/internal/config"
	"agrosite/internal/domain"
	applog "agrosite/internal/log"
	"agrosite/internal/services"
	"agrosite/internal/validate"

	"github.com/gofiber/fiber/v2"
)

// AdminHandler implements the editor panel: four CRUD tab pages layered
// directly on the content and inquiry stores, plus the inquiry print view.
type AdminHandler struct {
	Content   *services.ContentService
	Inquiries *services.InquiryService
	Cfg       config.Config
}

// GET /admin
func (h *AdminHandler) Dashboard(c *fiber.Ctx) error {
	products, err := h.Content.ListProducts()
	if err != nil {
		return fiber.ErrInternalServerError
	}
	vacancies, err := h.Content.ListVacancies()
	if err != nil {
		return fiber.ErrInternalServerError
	}
	news, err := h.Content.ListNews()
	if err != nil {
		return fiber.ErrInternalServerError
	}
	inquiries, err := h.Inquiries.List()
	if err != nil {
		return fiber.ErrInternalServerError
	}
	newCount := 0
	for _, q := range inquiries {
		if q.Status == domain.StatusNew {
			newCount++
		}
	}
	return render(c, "admin_dashboard", fiber.Map{
		"ProductCount": len(products),
		"VacancyCount": len(vacancies),
		"NewsCount":    len(news),
		"InquiryCount": len(inquiries),
		"NewInquiries": newCount,
	})
}

// ---- Products tab ----

// GET /admin/products
func (h *AdminHandler) ProductsPage(c *fiber.Ctx) error {
	products, err := h.Content.ListProducts()
	if err != nil {
		applog.Error(c, "admin.products.list.fail", err, nil)
		return fiber.ErrInternalServerError
	}
	cats, err := h.Content.ListCategories()
	if err != nil {
		return fiber.ErrInternalServerError
	}
	data := fiber.Map{"Products": products, "Categories": cats}
	if id, ok := validate.ID(c.Query("edit")); ok {
		if p, err := h.Content.GetProduct(id); err == nil {
			data["Edit"] = p
		}
	}
	return render(c, "admin_products", data)
}

func (h *AdminHandler) productFromForm(c *fiber.Ctx) (domain.Product, bool) {
	name, okName := validate.Required(c.FormValue("name"), 200)
	category, okCat := validate.Category(c.FormValue("category"))
	if !okName || !okCat {
		return domain.Product{}, false
	}
	image := c.FormValue("image")
	if path, err := saveUpload(c, "image_file", h.Cfg.MediaDir, imageExts); err == nil {
		image = path
	} else if !errors.Is(err, errNoFile) {
		return domain.Product{}, false
	}
	return domain.Product{
		Name:        name,
		Description: c.FormValue("description"),
		Image:       image,
		Price:       c.FormValue("price"),
		Category:    category,
		Unit:        c.FormValue("unit"),
	}, true
}

// POST /admin/products
func (h *AdminHandler) AddProduct(c *fiber.Ctx) error {
	p, ok := h.productFromForm(c)
	if !ok {
		return c.Status(400).SendString("invalid input")
	}
	id, err := h.Content.AddProduct(p)
	if err != nil {
		applog.Error(c, "admin.products.add.fail", err, nil)
		return c.Status(400).SendString("could not save product")
	}
	applog.Audit(c, "admin.products.add", map[string]any{"product_id": id, "name": p.Name})
	return c.Redirect("/admin/products")
}

// POST /admin/products/:id
func (h *AdminHandler) EditProduct(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Status(400).SendString("invalid id")
	}
	p, okForm := h.productFromForm(c)
	if !okForm {
		return c.Status(400).SendString("invalid input")
	}
	p.ID = id
	if err := h.Content.EditProduct(p); err != nil {
		applog.Error(c, "admin.products.edit.fail", err, map[string]any{"product_id": id})
		return c.Status(400).SendString("could not save product")
	}
	applog.Audit(c, "admin.products.edit", map[string]any{"product_id": id})
	return c.Redirect("/admin/products")
}

// POST /admin/products/:id/delete
func (h *AdminHandler) DeleteProduct(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Status(400).SendString("invalid id")
	}
	if err := h.Content.RemoveProduct(id); err != nil {
		applog.Error(c, "admin.products.delete.fail", err, map[string]any{"product_id": id})
		return c.Status(400).SendString("could not delete product")
	}
	applog.Audit(c, "admin.products.delete", map[string]any{"product_id": id})
	return c.Redirect("/admin/products")
}

// ---- Vacancies tab ----

// GET /admin/vacancies
func (h *AdminHandler) VacanciesPage(c *fiber.Ctx) error {
	vacancies, err := h.Content.ListVacancies()
	if err != nil {
		applog.Error(c, "admin.vacancies.list.fail", err, nil)
		return fiber.ErrInternalServerError
	}
	data := fiber.Map{"Vacancies": vacancies}
	if id, ok := validate.ID(c.Query("edit")); ok {
		if v, err := h.Content.GetVacancy(id); err == nil {
			data["Edit"] = v
		}
	}
	return render(c, "admin_vacancies", data)
}

func vacancyFromForm(c *fiber.Ctx) (domain.Vacancy, bool) {
	title, ok := validate.Required(c.FormValue("title"), 200)
	if !ok {
		return domain.Vacancy{}, false
	}
	return domain.Vacancy{
		Title:           title,
		Department:      c.FormValue("department"),
		Location:        c.FormValue("location"),
		Salary:          c.FormValue("salary"),
		Description:     c.FormValue("description"),
		RequirementsRaw: c.FormValue("requirements"), // one requirement per line
	}, true
}

// POST /admin/vacancies
func (h *AdminHandler) AddVacancy(c *fiber.Ctx) error {
	v, ok := vacancyFromForm(c)
	if !ok {
		return c.Status(400).SendString("invalid input")
	}
	id, err := h.Content.AddVacancy(v)
	if err != nil {
		applog.Error(c, "admin.vacancies.add.fail", err, nil)
		return c.Status(400).SendString("could not save vacancy")
	}
	applog.Audit(c, "admin.vacancies.add", map[string]any{"vacancy_id": id, "title": v.Title})
	return c.Redirect("/admin/vacancies")
}

// POST /admin/vacancies/:id
func (h *AdminHandler) EditVacancy(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Status(400).SendString("invalid id")
	}
	v, okForm := vacancyFromForm(c)
	if !okForm {
		return c.Status(400).SendString("invalid input")
	}
	v.ID = id
	if err := h.Content.EditVacancy(v); err != nil {
		applog.Error(c, "admin.vacancies.edit.fail", err, map[string]any{"vacancy_id": id})
		return c.Status(400).SendString("could not save vacancy")
	}
	applog.Audit(c, "admin.vacancies.edit", map[string]any{"vacancy_id": id})
	return c.Redirect("/admin/vacancies")
}

// POST /admin/vacancies/:id/delete
func (h *AdminHandler) DeleteVacancy(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Status(400).SendString("invalid id")
	}
	if err := h.Content.RemoveVacancy(id); err != nil {
		applog.Error(c, "admin.vacancies.delete.fail", err, map[string]any{"vacancy_id": id})
		return c.Status(400).SendString("could not delete vacancy")
	}
	applog.Audit(c, "admin.vacancies.delete", map[string]any{"vacancy_id": id})
	return c.Redirect("/admin/vacancies")
}

// ---- News tab ----

// GET /admin/news
func (h *AdminHandler) NewsPage(c *fiber.Ctx) error {
	news, err := h.Content.ListNews()
	if err != nil {
		applog.Error(c, "admin.news.list.fail", err, nil)
		return fiber.ErrInternalServerError
	}
	data := fiber.Map{"News": news}
	if id, ok := validate.ID(c.Query("edit")); ok {
		if n, err := h.Content.GetNews(id); err == nil {
			data["Edit"] = n
		}
	}
	return render(c, "admin_news", data)
}

func (h *AdminHandler) newsFromForm(c *fiber.Ctx) (domain.News, bool) {
	title, ok := validate.Required(c.FormValue("title"), 200)
	if !ok {
		return domain.News{}, false
	}
	image := c.FormValue("image")
	if path, err := saveUpload(c, "image_file", h.Cfg.MediaDir, imageExts); err == nil {
		image = path
	} else if !errors.Is(err, errNoFile) {
		return domain.News{}, false
	}
	return domain.News{
		Title:   title,
		Content: c.FormValue("content"),
		Image:   image,
	}, true
}

// POST /admin/news
func (h *AdminHandler) AddNews(c *fiber.Ctx) error {
	n, ok := h.newsFromForm(c)
	if !ok {
		return c.Status(400).SendString("invalid input")
	}
	id, err := h.Content.AddNews(n)
	if err != nil {
		applog.Error(c, "admin.news.add.fail", err, nil)
		return c.Status(400).SendString("could not save news")
	}
	applog.Audit(c, "admin.news.add", map[string]any{"news_id": id, "title": n.Title})
	return c.Redirect("/admin/news")
}

// POST /admin/news/:id
func (h *AdminHandler) EditNews(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Status(400).SendString("invalid id")
	}
	n, okForm := h.newsFromForm(c)
	if !okForm {
		return c.Status(400).SendString("invalid input")
	}
	n.ID = id
	if err := h.Content.EditNews(n); err != nil {
		applog.Error(c, "admin.news.edit.fail", err, map[string]any{"news_id": id})
		return c.Status(400).SendString("could not save news")
	}
	applog.Audit(c, "admin.news.edit", map[string]any{"news_id": id})
	return c.Redirect("/admin/news")
}

// POST /admin/news/:id/delete
func (h *AdminHandler) DeleteNews(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Status(400).SendString("invalid id")
	}
	if err := h.Content.RemoveNews(id); err != nil {
		applog.Error(c, "admin.news.delete.fail", err, map[string]any{"news_id": id})
		return c.Status(400).SendString("could not delete news")
	}
	applog.Audit(c, "admin.news.delete", map[string]any{"news_id": id})
	return c.Redirect("/admin/news")
}

// ---- Inquiries tab ----

// GET /admin/inquiries
func (h *AdminHandler) InquiriesPage(c *fiber.Ctx) error {
	inquiries, err := h.Inquiries.List()
	if err != nil {
		applog.Error(c, "admin.inquiries.list.fail", err, nil)
		return fiber.ErrInternalServerError
	}
	if status, ok := validate.Status(c.Query("status")); ok {
		filtered := inquiries[:0:0]
		for _, q := range inquiries {
			if q.Status == status {
				filtered = append(filtered, q)
			}
		}
		inquiries = filtered
	}
	return render(c, "admin_inquiries", fiber.Map{
		"Inquiries": inquiries,
		"Status":    c.Query("status"),
	})
}

// POST /admin/inquiries/:id/status
func (h *AdminHandler) UpdateInquiryStatus(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	status, okStatus := validate.Status(c.FormValue("status"))
	if !ok || !okStatus {
		return c.Status(400).SendString("invalid id or status")
	}
	if err := h.Inquiries.UpdateStatus(id, status); err != nil {
		applog.Error(c, "admin.inquiries.status.fail", err, map[string]any{"inquiry_id": id})
		return c.Status(400).SendString("could not update status")
	}
	applog.Audit(c, "admin.inquiries.status", map[string]any{"inquiry_id": id, "status": status})
	return c.Redirect("/admin/inquiries")
}

// POST /admin/inquiries/:id/delete
func (h *AdminHandler) DeleteInquiry(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Status(400).SendString("invalid id")
	}
	if err := h.Inquiries.Delete(id); err != nil {
		applog.Error(c, "admin.inquiries.delete.fail", err, map[string]any{"inquiry_id": id})
		return c.Status(400).SendString("could not delete inquiry")
	}
	applog.Audit(c, "admin.inquiries.delete", map[string]any{"inquiry_id": id})
	return c.Redirect("/admin/inquiries")
}

// GET /admin/inquiries/:id/print renders a minimal page that opens the
// browser's native print dialog.
func (h *AdminHandler) PrintInquiry(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		c.Status(fiber.StatusNotFound)
		return render(c, "notfound", fiber.Map{"Message": "Заявка не найдена"})
	}
	q, err := h.Inquiries.Get(id)
	if err != nil {
		c.Status(fiber.StatusNotFound)
		return render(c, "notfound", fiber.Map{"Message": "Заявка не найдена"})
	}
	return c.Render("inquiry_print", fiber.Map{
		"Inquiry":   q,
		"PrintedAt": time.Now().Format("02.01.2006 15:04"),
	})
}
