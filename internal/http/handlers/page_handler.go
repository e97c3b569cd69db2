package handlers

import (
	"agrosite/internal/config"
	"agrosite/internal/domain"
	applog "agrosite/internal/log"
	"agrosite/internal/services"

	"github.com/gofiber/fiber/v2"
)

type PageHandler struct {
	Content   *services.ContentService
	Inquiries *services.InquiryService
	Cfg       config.Config
}

// Home shows the hero section, a product teaser and the three latest news.
func (h *PageHandler) Home(c *fiber.Ctx) error {
	news, err := h.Content.NewsView(services.NewsFilter{Sort: services.SortDateDesc, Show: 3})
	if err != nil {
		applog.Error(c, "home.news.fail", err, nil)
		return fiber.ErrInternalServerError
	}
	products, err := h.Content.ProductView(services.ProductFilter{Show: 3})
	if err != nil {
		applog.Error(c, "home.products.fail", err, nil)
		return fiber.ErrInternalServerError
	}
	return render(c, "home", fiber.Map{
		"News":     news.Items,
		"Products": products.Items,
	})
}

func (h *PageHandler) About(c *fiber.Ctx) error {
	return render(c, "about", fiber.Map{})
}

// Contacts renders the contact info, the map widget and the contact form.
func (h *PageHandler) Contacts(c *fiber.Ctx) error {
	return render(c, "contacts", fiber.Map{
		"Sent":         c.Query("sent") == "1",
		"Action":       "/contacts",
		"MapScriptURL": h.Cfg.MapScriptURL,
		"MapLat":       h.Cfg.MapLat,
		"MapLng":       h.Cfg.MapLng,
	})
}

// Feedback renders the two-tab contact/resume page.
func (h *PageHandler) Feedback(c *fiber.Ctx) error {
	return render(c, "feedback", fiber.Map{
		"Sent":   c.Query("sent") == "1",
		"Tab":    c.Query("tab", "contact"),
		"Action": "/contacts",
		"From":   "feedback",
	})
}

// SubmitContact handles POST /contacts from the contacts and feedback pages.
func (h *PageHandler) SubmitContact(c *fiber.Ctx) error {
	f := parseInquiryForm(c, true)
	from := c.FormValue("from")
	if !f.OK() {
		applog.Info(c, "contact.validation.fail", map[string]any{"fields": len(f.Errs)})
		tmpl := "contacts"
		data := fiber.Map{
			"Form": f, "Errs": f.Errs,
			"Action":       "/contacts",
			"MapScriptURL": h.Cfg.MapScriptURL,
			"MapLat":       h.Cfg.MapLat,
			"MapLng":       h.Cfg.MapLng,
		}
		if from == "feedback" {
			tmpl = "feedback"
			data = fiber.Map{
				"Form": f, "Errs": f.Errs,
				"Tab": "contact", "Action": "/contacts", "From": "feedback",
			}
		}
		c.Status(fiber.StatusUnprocessableEntity)
		return render(c, tmpl, data)
	}

	id, err := h.Inquiries.Add(domain.Inquiry{
		Type:    domain.InquiryContact,
		Name:    f.Name,
		Email:   f.Email,
		Phone:   f.Phone,
		Message: f.Message,
	})
	if err != nil {
		applog.Error(c, "contact.save.fail", err, nil)
		return fiber.ErrInternalServerError
	}
	applog.Info(c, "contact.saved", map[string]any{"inquiry_id": id})
	if from == "feedback" {
		return c.Redirect("/feedback?sent=1")
	}
	return c.Redirect("/contacts?sent=1")
}
