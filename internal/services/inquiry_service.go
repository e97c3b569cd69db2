package services

import (
	"database/sql"
	"errors"

	"agrosite/internal/domain"
	"agrosite/internal/repos"
)

// InquiryService is the append-only log of visitor submissions. Only the
// status field is mutable afterwards, and only by an editor.
type InquiryService struct {
	Inquiries *repos.InquiryRepo
}

func NewInquiryService(r *repos.InquiryRepo) *InquiryService {
	return &InquiryService{Inquiries: r}
}

func (s *InquiryService) List() ([]domain.Inquiry, error) { return s.Inquiries.List() }

func (s *InquiryService) Get(id int64) (domain.Inquiry, error) {
	q, err := s.Inquiries.Get(id)
	if errors.Is(err, sql.ErrNoRows) {
		return q, ErrNotFound
	}
	return q, err
}

// Add appends the submission; the store stamps the date and forces status to
// "new" regardless of what the caller put in the record.
func (s *InquiryService) Add(q domain.Inquiry) (int64, error) {
	q.Status = domain.StatusNew
	return s.Inquiries.Add(q)
}

func (s *InquiryService) UpdateStatus(id int64, status string) error {
	return s.Inquiries.UpdateStatus(id, status)
}

// Delete is idempotent; deleting an id twice is not an error.
func (s *InquiryService) Delete(id int64) error {
	return s.Inquiries.Delete(id)
}
