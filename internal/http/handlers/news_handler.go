package handlers

import (
	applog "agrosite/internal/log"
	"agrosite/internal/services"
	"agrosite/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type NewsHandler struct {
	Content *services.ContentService
}

const newsPageSize = 6

// List renders the news feed with search, date-bucket filter, sort and the
// "load more" cursor. The cursor only widens the window over the
// already-filtered list.
func (h *NewsHandler) List(c *fiber.Ctx) error {
	period := c.Query("period", services.PeriodAll)
	switch period {
	case services.PeriodAll, services.PeriodLastWeek, services.PeriodLastMonth, services.PeriodLastYear:
	default:
		period = services.PeriodAll
	}
	srt := validate.Sort(c.Query("sort"))
	show := validate.Show(c.Query("show"), newsPageSize)

	view, err := h.Content.NewsView(services.NewsFilter{
		Query:  c.Query("q"),
		Period: period,
		Sort:   srt,
		Show:   show,
	})
	if err != nil {
		applog.Error(c, "news.list.fail", err, nil)
		return fiber.ErrInternalServerError
	}
	return render(c, "news", fiber.Map{
		"News":     view.Items,
		"Total":    view.Total,
		"HasMore":  view.HasMore,
		"NextShow": show + 3,
		"Q":        c.Query("q"),
		"Period":   period,
		"Sort":     srt,
	})
}

func (h *NewsHandler) Detail(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		c.Status(fiber.StatusNotFound)
		return render(c, "notfound", fiber.Map{"Message": "Новость не найдена"})
	}
	n, err := h.Content.GetNews(id)
	if err != nil {
		c.Status(fiber.StatusNotFound)
		return render(c, "notfound", fiber.Map{"Message": "Новость не найдена"})
	}
	// Three other recent items for the "more news" strip.
	more, err := h.Content.NewsView(services.NewsFilter{Sort: services.SortDateDesc, Show: 4})
	if err != nil {
		applog.Error(c, "news.more.fail", err, nil)
		return fiber.ErrInternalServerError
	}
	others := more.Items[:0:0]
	for _, item := range more.Items {
		if item.ID != n.ID && len(others) < 3 {
			others = append(others, item)
		}
	}
	return render(c, "news_item", fiber.Map{"N": n, "More": others})
}
