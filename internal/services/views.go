package services

import (
	"sort"
	"strings"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"agrosite/internal/domain"
)

// Derived list views. The contract mirrors the public pages: case-insensitive
// substring search over one or two text fields, an optional category or
// date-bucket filter, a comparator sort, and a visible-count cursor ("load
// more" slices the already-filtered list, it never re-queries).

const (
	SortDateDesc  = "date-desc"
	SortDateAsc   = "date-asc"
	SortTitleAsc  = "title-asc"
	SortTitleDesc = "title-desc"
)

// News date-bucket filters.
const (
	PeriodAll       = "all"
	PeriodLastWeek  = "last-week"
	PeriodLastMonth = "last-month"
	PeriodLastYear  = "last-year"
)

type ProductFilter struct {
	Query    string
	Category string // empty or "all" means no filter
	Show     int    // 0 means show everything
}

type ProductView struct {
	Items   []domain.Product
	Total   int // size of the filtered list before the cursor is applied
	HasMore bool
}

func (s *ContentService) ProductView(f ProductFilter) (ProductView, error) {
	all, err := s.Products.List()
	if err != nil {
		return ProductView{}, err
	}
	filtered := make([]domain.Product, 0, len(all))
	q := strings.ToLower(strings.TrimSpace(f.Query))
	for _, p := range all {
		if f.Category != "" && f.Category != "all" && p.Category != f.Category {
			continue
		}
		if q != "" &&
			!strings.Contains(strings.ToLower(p.Name), q) &&
			!strings.Contains(strings.ToLower(p.Description), q) {
			continue
		}
		filtered = append(filtered, p)
	}
	items, hasMore := window(filtered, f.Show)
	return ProductView{Items: items, Total: len(filtered), HasMore: hasMore}, nil
}

type NewsFilter struct {
	Query  string
	Period string // all | last-week | last-month | last-year
	Sort   string
	Show   int
	// Now anchors the date buckets; the zero value means time.Now().
	Now time.Time
}

type NewsView struct {
	Items   []domain.News
	Total   int
	HasMore bool
}

func (s *ContentService) NewsView(f NewsFilter) (NewsView, error) {
	all, err := s.News.List()
	if err != nil {
		return NewsView{}, err
	}
	now := f.Now
	if now.IsZero() {
		now = time.Now()
	}
	var cutoff time.Time
	switch f.Period {
	case PeriodLastWeek:
		cutoff = now.AddDate(0, 0, -7)
	case PeriodLastMonth:
		cutoff = now.AddDate(0, -1, 0)
	case PeriodLastYear:
		cutoff = now.AddDate(-1, 0, 0)
	}

	filtered := make([]domain.News, 0, len(all))
	q := strings.ToLower(strings.TrimSpace(f.Query))
	for _, n := range all {
		if q != "" &&
			!strings.Contains(strings.ToLower(n.Title), q) &&
			!strings.Contains(strings.ToLower(n.Content), q) {
			continue
		}
		if !cutoff.IsZero() && parseWhen(n.CreatedAt).Before(cutoff) {
			continue
		}
		filtered = append(filtered, n)
	}

	sortNews(filtered, f.Sort)
	items, hasMore := window(filtered, f.Show)
	return NewsView{Items: items, Total: len(filtered), HasMore: hasMore}, nil
}

func sortNews(items []domain.News, key string) {
	switch key {
	case SortDateAsc:
		sort.SliceStable(items, func(i, j int) bool {
			return parseWhen(items[i].CreatedAt).Before(parseWhen(items[j].CreatedAt))
		})
	case SortTitleAsc, SortTitleDesc:
		// Titles are Russian; byte order would interleave case and put ё in
		// the wrong place, so compare with the collator.
		col := collate.New(language.Russian)
		sort.SliceStable(items, func(i, j int) bool {
			c := col.CompareString(items[i].Title, items[j].Title)
			if key == SortTitleDesc {
				return c > 0
			}
			return c < 0
		})
	default: // SortDateDesc
		sort.SliceStable(items, func(i, j int) bool {
			return parseWhen(items[j].CreatedAt).Before(parseWhen(items[i].CreatedAt))
		})
	}
}

type VacancyFilter struct {
	Query      string
	Department string
}

func (s *ContentService) VacancyView(f VacancyFilter) ([]domain.Vacancy, error) {
	all, err := s.Vacancies.List()
	if err != nil {
		return nil, err
	}
	filtered := make([]domain.Vacancy, 0, len(all))
	q := strings.ToLower(strings.TrimSpace(f.Query))
	for _, v := range all {
		if f.Department != "" && f.Department != "all" && v.Department != f.Department {
			continue
		}
		if q != "" &&
			!strings.Contains(strings.ToLower(v.Title), q) &&
			!strings.Contains(strings.ToLower(v.Description), q) {
			continue
		}
		filtered = append(filtered, v)
	}
	return filtered, nil
}

// Departments lists the distinct vacancy departments in collection order, for
// the careers page filter control.
func (s *ContentService) Departments() ([]string, error) {
	all, err := s.Vacancies.List()
	if err != nil {
		return nil, err
	}
	seen := map[string]bool{}
	var out []string
	for _, v := range all {
		if v.Department != "" && !seen[v.Department] {
			seen[v.Department] = true
			out = append(out, v.Department)
		}
	}
	return out, nil
}

func window[T any](items []T, show int) ([]T, bool) {
	if show <= 0 || show >= len(items) {
		return items, false
	}
	return items[:show], true
}

var whenFormats = []string{
	"2006-01-02 15:04:05",
	time.RFC3339,
	"2006-01-02",
}

// parseWhen reads a stored timestamp; unparseable values sort as the zero time.
func parseWhen(s string) time.Time {
	for _, f := range whenFormats {
		if t, err := time.Parse(f, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
