// Package services holds the application state services: the content store
// (products, vacancies, news), the inquiry store and editor authentication.
// Services are constructed once at start and passed by reference to every
// consumer; nothing in the application reaches for globals.
package services

import (
	"database/sql"
	"errors"

	"agrosite/internal/domain"
	"agrosite/internal/repos"
)

// ContentService owns the site content collections. Every mutation goes
// straight through to the store; list views always materialize the full
// collection and derive filtered/sorted views in memory.
type ContentService struct {
	Categories *repos.CategoryRepo
	Products   *repos.ProductRepo
	Vacancies  *repos.VacancyRepo
	News       *repos.NewsRepo
}

func NewContentService(cats *repos.CategoryRepo, prods *repos.ProductRepo, vacs *repos.VacancyRepo, news *repos.NewsRepo) *ContentService {
	return &ContentService{Categories: cats, Products: prods, Vacancies: vacs, News: news}
}

func (s *ContentService) ListCategories() ([]domain.Category, error) {
	return s.Categories.List()
}

// CategoryName resolves a category id to its display label, falling back to
// the raw id for unknown values.
func (s *ContentService) CategoryName(id string) string {
	cats, err := s.Categories.List()
	if err != nil {
		return id
	}
	for _, c := range cats {
		if c.ID == id {
			return c.Name
		}
	}
	return id
}

// ---- Products ----

func (s *ContentService) ListProducts() ([]domain.Product, error) { return s.Products.List() }

func (s *ContentService) GetProduct(id int64) (domain.Product, error) {
	p, err := s.Products.Get(id)
	if errors.Is(err, sql.ErrNoRows) {
		return p, ErrNotFound
	}
	return p, err
}

func (s *ContentService) AddProduct(p domain.Product) (int64, error) { return s.Products.Add(p) }
func (s *ContentService) EditProduct(p domain.Product) error         { return s.Products.Edit(p) }
func (s *ContentService) RemoveProduct(id int64) error               { return s.Products.Remove(id) }

// ---- Vacancies ----

func (s *ContentService) ListVacancies() ([]domain.Vacancy, error) { return s.Vacancies.List() }

func (s *ContentService) GetVacancy(id int64) (domain.Vacancy, error) {
	v, err := s.Vacancies.Get(id)
	if errors.Is(err, sql.ErrNoRows) {
		return v, ErrNotFound
	}
	return v, err
}

func (s *ContentService) AddVacancy(v domain.Vacancy) (int64, error) { return s.Vacancies.Add(v) }
func (s *ContentService) EditVacancy(v domain.Vacancy) error         { return s.Vacancies.Edit(v) }
func (s *ContentService) RemoveVacancy(id int64) error               { return s.Vacancies.Remove(id) }

// ---- News ----

func (s *ContentService) ListNews() ([]domain.News, error) { return s.News.List() }

func (s *ContentService) GetNews(id int64) (domain.News, error) {
	n, err := s.News.Get(id)
	if errors.Is(err, sql.ErrNoRows) {
		return n, ErrNotFound
	}
	return n, err
}

func (s *ContentService) AddNews(n domain.News) (int64, error) { return s.News.Add(n) }
func (s *ContentService) EditNews(n domain.News) error         { return s.News.Edit(n) }
func (s *ContentService) RemoveNews(id int64) error            { return s.News.Remove(id) }
