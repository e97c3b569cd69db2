package domain

import "strings"

// Product categories (fixed label set).
const (
	CategoryGrain     = "grain"
	CategoryBeans     = "beans"
	CategoryLivestock = "livestock"
	CategoryServices  = "services"
)

// Inquiry types.
const (
	InquiryProduct = "product"
	InquiryVacancy = "vacancy"
	InquiryContact = "contact"
)

// Inquiry statuses, advanced manually by an editor.
const (
	StatusNew        = "new"
	StatusInProgress = "in-progress"
	StatusCompleted  = "completed"
)

type Category struct {
	ID   string `db:"id"`
	Name string `db:"name"`
}

type Product struct {
	ID          int64  `db:"id"`
	Name        string `db:"name"`
	Description string `db:"description"`
	Image       string `db:"image"` // external URL or a /media/... path
	Price       string `db:"price"` // free text, e.g. "от 650 руб/т"
	Category    string `db:"category"`
	Unit        string `db:"unit"` // free text label: kg/l/piece
	CreatedAt   string `db:"created_at"`
}

type Vacancy struct {
	ID          int64  `db:"id"`
	Title       string `db:"title"`
	Department  string `db:"department"`
	Location    string `db:"location"`
	Salary      string `db:"salary"` // free text
	Description string `db:"description"`
	// Newline-joined in storage; split with Requirements().
	RequirementsRaw string `db:"requirements"`
	CreatedAt       string `db:"created_at"`
}

// Requirements splits the stored text area content into its non-empty lines.
func (v Vacancy) Requirements() []string {
	var out []string
	for _, line := range strings.Split(v.RequirementsRaw, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			out = append(out, line)
		}
	}
	return out
}

type News struct {
	ID        int64  `db:"id"`
	Title     string `db:"title"`
	Content   string `db:"content"`
	Image     string `db:"image"`
	CreatedAt string `db:"created_at"`
}

// Excerpt returns a shortened preview of the content for list cards.
func (n News) Excerpt() string {
	r := []rune(n.Content)
	if len(r) <= 150 {
		return n.Content
	}
	return string(r[:150]) + "..."
}

// Inquiry is a visitor submission from any public-facing form. Visitors never
// mutate an inquiry after creation; status and deletion are editor-only.
type Inquiry struct {
	ID           int64  `db:"id"`
	Type         string `db:"type"` // product | vacancy | contact
	Name         string `db:"name"`
	Email        string `db:"email"`
	Phone        string `db:"phone"`
	Message      string `db:"message"`
	ProductName  string `db:"product_name"`  // denormalized copy, not a foreign key
	VacancyTitle string `db:"vacancy_title"` // denormalized copy, not a foreign key
	ResumeFile   string `db:"resume_file"`   // stored media path, vacancy type only
	CreatedAt    string `db:"created_at"`
	Status       string `db:"status"` // new | in-progress | completed
}
