package services_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"agrosite/internal/domain"
	"agrosite/internal/repos"
	"agrosite/internal/services"
)

func inquirySvc(t *testing.T) *services.InquiryService {
	t.Helper()
	db, err := repos.OpenDB(":memory:")
	require.NoError(t, err)
	return services.NewInquiryService(repos.NewInquiryRepo(db))
}

func TestInquiryAddForcesNewStatus(t *testing.T) {
	svc := inquirySvc(t)

	// A submission cannot smuggle in a pre-set status.
	id, err := svc.Add(domain.Inquiry{
		Type:    domain.InquiryProduct,
		Name:    "Пётр",
		Email:   "petr@example.com",
		Phone:   "+375291234567",
		Message: "Количество: 10 т",
		Status:  domain.StatusCompleted,
	})
	require.NoError(t, err)

	got, err := svc.Get(id)
	require.NoError(t, err)
	require.Equal(t, domain.StatusNew, got.Status)
	require.Equal(t, "Пётр", got.Name)
}

func TestInquiryLifecycle(t *testing.T) {
	svc := inquirySvc(t)

	id, err := svc.Add(domain.Inquiry{
		Type:         domain.InquiryVacancy,
		Name:         "Анна",
		Email:        "anna@example.com",
		Phone:        "+375331112233",
		VacancyTitle: "Агроном",
		ResumeFile:   "/media/uploads/resume.pdf",
	})
	require.NoError(t, err)

	require.NoError(t, svc.UpdateStatus(id, domain.StatusInProgress))
	got, err := svc.Get(id)
	require.NoError(t, err)
	require.Equal(t, domain.StatusInProgress, got.Status)
	require.Equal(t, "Агроном", got.VacancyTitle)

	require.NoError(t, svc.Delete(id))
	require.NoError(t, svc.Delete(id)) // idempotent
	_, err = svc.Get(id)
	require.ErrorIs(t, err, services.ErrNotFound)
}

func TestInquiryListNewestFirst(t *testing.T) {
	svc := inquirySvc(t)

	var last int64
	for _, name := range []string{"первый", "второй", "третий"} {
		id, err := svc.Add(domain.Inquiry{Type: domain.InquiryContact, Name: name, Email: "x@example.com"})
		require.NoError(t, err)
		last = id
	}

	list, err := svc.List()
	require.NoError(t, err)
	require.Len(t, list, 3)
	require.Equal(t, last, list[0].ID)
	require.Equal(t, "третий", list[0].Name)
}
