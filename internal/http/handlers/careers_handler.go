package handlers

import (
	"errors"

	"agrosite/internal/config"
	"agrosite/internal/domain"
	applog "agrosite/internal/log"
	"agrosite/internal/services"
	"agrosite/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type CareersHandler struct {
	Content   *services.ContentService
	Inquiries *services.InquiryService
	Cfg       config.Config
}

// List renders the vacancy cards with the department filter and search box.
func (h *CareersHandler) List(c *fiber.Ctx) error {
	dept := c.Query("department", "all")
	vacancies, err := h.Content.VacancyView(services.VacancyFilter{
		Query:      c.Query("q"),
		Department: dept,
	})
	if err != nil {
		applog.Error(c, "careers.list.fail", err, nil)
		return fiber.ErrInternalServerError
	}
	depts, err := h.Content.Departments()
	if err != nil {
		applog.Error(c, "careers.departments.fail", err, nil)
		return fiber.ErrInternalServerError
	}
	return render(c, "careers", fiber.Map{
		"Vacancies":    vacancies,
		"Departments":  depts,
		"Department":   dept,
		"Q":            c.Query("q"),
		"Sent":         c.Query("sent") == "1",
		"VacancyTitle": c.Query("apply"),
	})
}

// Apply handles POST /careers/apply, the resume/application form. It is used both
// for a specific vacancy and for unsolicited resumes from the feedback page.
// The resume file is written to the media dir before the inquiry is inserted.
func (h *CareersHandler) Apply(c *fiber.Ctx) error {
	f := parseInquiryForm(c, false)

	experience, ok := validate.Required(c.FormValue("experience"), 500)
	if !ok {
		f.Errs["experience"] = "Опыт работы обязателен"
	}
	coverLetter := c.FormValue("cover_letter")

	resumePath, upErr := saveUpload(c, "resume", h.Cfg.MediaDir, resumeExts)
	switch {
	case upErr == nil:
	case errors.Is(upErr, errNoFile):
		f.Errs["resume"] = "Резюме обязательно"
	case errors.Is(upErr, errBadExt):
		f.Errs["resume"] = "Допустимые форматы: PDF, DOC, DOCX"
	case errors.Is(upErr, errTooBig):
		f.Errs["resume"] = "Файл больше 10 МБ"
	default:
		applog.Error(c, "apply.upload.fail", upErr, nil)
		return fiber.ErrInternalServerError
	}

	vacancyTitle := c.FormValue("vacancy_title")
	from := c.FormValue("from")

	if !f.OK() {
		c.Status(fiber.StatusUnprocessableEntity)
		if from == "feedback" {
			return render(c, "feedback", fiber.Map{"Form": f, "Errs": f.Errs, "Tab": "resume"})
		}
		return h.renderCareersWithErrors(c, f, vacancyTitle)
	}

	msg := "Опыт работы: " + experience
	if coverLetter != "" {
		msg += "\n\n" + coverLetter
	}
	id, err := h.Inquiries.Add(domain.Inquiry{
		Type:         domain.InquiryVacancy,
		Name:         f.Name,
		Email:        f.Email,
		Phone:        f.Phone,
		Message:      msg,
		VacancyTitle: vacancyTitle,
		ResumeFile:   resumePath,
	})
	if err != nil {
		applog.Error(c, "apply.save.fail", err, nil)
		return fiber.ErrInternalServerError
	}
	applog.Info(c, "apply.saved", map[string]any{"inquiry_id": id, "vacancy": vacancyTitle})
	if from == "feedback" {
		return c.Redirect("/feedback?sent=1&tab=resume")
	}
	return c.Redirect("/careers?sent=1")
}

func (h *CareersHandler) renderCareersWithErrors(c *fiber.Ctx, f inquiryForm, vacancyTitle string) error {
	vacancies, err := h.Content.VacancyView(services.VacancyFilter{})
	if err != nil {
		return fiber.ErrInternalServerError
	}
	depts, err := h.Content.Departments()
	if err != nil {
		return fiber.ErrInternalServerError
	}
	return render(c, "careers", fiber.Map{
		"Vacancies":    vacancies,
		"Departments":  depts,
		"Department":   "all",
		"Q":            "",
		"Form":         f,
		"Errs":         f.Errs,
		"VacancyTitle": vacancyTitle,
	})
}
