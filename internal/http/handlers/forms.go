package handlers

import (
	"agrosite/internal/validate"

	"github.com/gofiber/fiber/v2"
)

// inquiryForm carries the shared lead-capture fields plus per-field errors for
// inline re-rendering.
type inquiryForm struct {
	Name    string
	Email   string
	Phone   string
	Message string
	Errs    map[string]string
}

func (f inquiryForm) OK() bool { return len(f.Errs) == 0 }

func parseInquiryForm(c *fiber.Ctx, requireMessage bool) inquiryForm {
	f := inquiryForm{
		Name:    c.FormValue("name"),
		Email:   c.FormValue("email"),
		Phone:   c.FormValue("phone"),
		Message: c.FormValue("message"),
		Errs:    map[string]string{},
	}

	if name, ok := validate.Required(f.Name, 100); ok {
		f.Name = name
	} else {
		f.Errs["name"] = "Имя обязательно"
	}

	if email, ok := validate.Email(f.Email); ok {
		f.Email = email
	} else if f.Email == "" {
		f.Errs["email"] = "Email обязателен"
	} else {
		f.Errs["email"] = "Неверный формат email"
	}

	if phone, ok := validate.Phone(f.Phone); ok {
		f.Phone = phone
	} else if f.Phone == "" {
		f.Errs["phone"] = "Телефон обязателен"
	} else {
		f.Errs["phone"] = "Неверный формат телефона"
	}

	if requireMessage {
		if msg, ok := validate.Required(f.Message, 5000); ok {
			f.Message = msg
		} else {
			f.Errs["message"] = "Сообщение обязательно"
		}
	}

	return f
}
