package repos

import (
	"agrosite/internal/domain"

	"github.com/jmoiron/sqlx"
)

type InquiryRepo struct{ db *sqlx.DB }

func NewInquiryRepo(db *sqlx.DB) *InquiryRepo { return &InquiryRepo{db: db} }

func (r *InquiryRepo) List() ([]domain.Inquiry, error) {
	out := []domain.Inquiry{}
	err := r.db.Select(&out, `
	  SELECT id, type, name, email, phone, message, product_name, vacancy_title,
	         resume_file, created_at, status
	  FROM inquiries
	  ORDER BY created_at DESC, id DESC`)
	return out, err
}

func (r *InquiryRepo) Get(id int64) (domain.Inquiry, error) {
	var q domain.Inquiry
	err := r.db.Get(&q, `
	  SELECT id, type, name, email, phone, message, product_name, vacancy_title,
	         resume_file, created_at, status
	  FROM inquiries WHERE id = ?`, id)
	return q, err
}

// Add appends a submission; the store stamps the date and the 'new' status.
func (r *InquiryRepo) Add(q domain.Inquiry) (int64, error) {
	res, err := r.db.Exec(`
	  INSERT INTO inquiries(type, name, email, phone, message, product_name, vacancy_title, resume_file)
	  VALUES(?,?,?,?,?,?,?,?)`,
		q.Type, q.Name, q.Email, q.Phone, q.Message, q.ProductName, q.VacancyTitle, q.ResumeFile)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// UpdateStatus overwrites the status field by id.
func (r *InquiryRepo) UpdateStatus(id int64, status string) error {
	_, err := r.db.Exec(`UPDATE inquiries SET status=? WHERE id=?`, status, id)
	return err
}

func (r *InquiryRepo) Delete(id int64) error {
	_, err := r.db.Exec(`DELETE FROM inquiries WHERE id=?`, id)
	return err
}
