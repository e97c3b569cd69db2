package handlers

import (
	"fmt"

	"agrosite/internal/domain"
	applog "agrosite/internal/log"
	"agrosite/internal/services"
	"agrosite/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type ProductHandler struct {
	Content   *services.ContentService
	Inquiries *services.InquiryService
}

// List renders the product grid with the category filter and search box.
func (h *ProductHandler) List(c *fiber.Ctx) error {
	category := c.Query("category", "all")
	if category != "all" {
		if _, ok := validate.Category(category); !ok {
			category = "all"
		}
	}
	view, err := h.Content.ProductView(services.ProductFilter{
		Query:    c.Query("q"),
		Category: category,
		Show:     validate.Show(c.Query("show"), 0),
	})
	if err != nil {
		applog.Error(c, "products.list.fail", err, nil)
		return fiber.ErrInternalServerError
	}
	cats, err := h.Content.ListCategories()
	if err != nil {
		applog.Error(c, "products.categories.fail", err, nil)
		return fiber.ErrInternalServerError
	}
	return render(c, "products", fiber.Map{
		"Products":   view.Items,
		"Total":      view.Total,
		"HasMore":    view.HasMore,
		"Categories": cats,
		"Category":   category,
		"Q":          c.Query("q"),
	})
}

func (h *ProductHandler) Detail(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		c.Status(fiber.StatusNotFound)
		return render(c, "notfound", fiber.Map{"Message": "Продукт не найден"})
	}
	p, err := h.Content.GetProduct(id)
	if err != nil {
		c.Status(fiber.StatusNotFound)
		return render(c, "notfound", fiber.Map{"Message": "Продукт не найден"})
	}
	return render(c, "product", fiber.Map{
		"P":            p,
		"CategoryName": h.Content.CategoryName(p.Category),
		"Sent":         c.Query("sent") == "1",
		"Action":       fmt.Sprintf("/products/%d/order", id),
	})
}

// Order handles POST /products/:id/order, the product order form. The
// submission is an inquiry with a denormalized product name, not an order
// pipeline.
func (h *ProductHandler) Order(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		c.Status(fiber.StatusNotFound)
		return render(c, "notfound", fiber.Map{"Message": "Продукт не найден"})
	}
	p, err := h.Content.GetProduct(id)
	if err != nil {
		c.Status(fiber.StatusNotFound)
		return render(c, "notfound", fiber.Map{"Message": "Продукт не найден"})
	}

	f := parseInquiryForm(c, true)
	if !f.OK() {
		c.Status(fiber.StatusUnprocessableEntity)
		return render(c, "product", fiber.Map{
			"P":            p,
			"CategoryName": h.Content.CategoryName(p.Category),
			"Form":         f,
			"Errs":         f.Errs,
			"Action":       fmt.Sprintf("/products/%d/order", id),
		})
	}

	qty := c.FormValue("quantity")
	msg := f.Message
	if qty != "" {
		msg = "Количество: " + qty + " " + p.Unit + "\n" + msg
	}
	inqID, err := h.Inquiries.Add(domain.Inquiry{
		Type:        domain.InquiryProduct,
		Name:        f.Name,
		Email:       f.Email,
		Phone:       f.Phone,
		Message:     msg,
		ProductName: p.Name,
	})
	if err != nil {
		applog.Error(c, "order.save.fail", err, map[string]any{"product_id": id})
		return fiber.ErrInternalServerError
	}
	applog.Info(c, "order.saved", map[string]any{"inquiry_id": inqID, "product": p.Name})
	return c.Redirect(fmt.Sprintf("/products/%d?sent=1", id))
}
