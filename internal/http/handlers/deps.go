package handlers

import (
	"agrosite/internal/config"
	"agrosite/internal/repos"
	"agrosite/internal/services"

	"github.com/jmoiron/sqlx"
)

type Deps struct {
	PageHandler    *PageHandler
	ProductHandler *ProductHandler
	NewsHandler    *NewsHandler
	CareersHandler *CareersHandler
	AdminHandler   *AdminHandler
}

func NewDeps(db *sqlx.DB, cfg config.Config, auth *services.AuthService) *Deps {
	catRepo := repos.NewCategoryRepo(db)
	prodRepo := repos.NewProductRepo(db)
	vacRepo := repos.NewVacancyRepo(db)
	newsRepo := repos.NewNewsRepo(db)
	inqRepo := repos.NewInquiryRepo(db)

	contentSvc := services.NewContentService(catRepo, prodRepo, vacRepo, newsRepo)
	inquirySvc := services.NewInquiryService(inqRepo)

	return &Deps{
		PageHandler:    &PageHandler{Content: contentSvc, Inquiries: inquirySvc, Cfg: cfg},
		ProductHandler: &ProductHandler{Content: contentSvc, Inquiries: inquirySvc},
		NewsHandler:    &NewsHandler{Content: contentSvc},
		CareersHandler: &CareersHandler{Content: contentSvc, Inquiries: inquirySvc, Cfg: cfg},
		AdminHandler:   &AdminHandler{Content: contentSvc, Inquiries: inquirySvc, Cfg: cfg},
	}
}
