package handlers_test

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/require"

	"agrosite/internal/domain"
)

func TestContactFormRejectsInvalidInput(t *testing.T) {
	app, db, _ := newSiteApp(t)
	tok := fetchCSRF(t, app)

	resp := postForm(t, app, "/contacts", tok, url.Values{
		"name":    {"Иван"},
		"email":   {"not-an-email"},
		"phone":   {"+375291234567"},
		"message": {"Здравствуйте"},
	})
	require.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	require.Contains(t, bodyOf(t, resp), "Неверный формат email")

	var n int
	require.NoError(t, db.Get(&n, `SELECT COUNT(*) FROM inquiries`))
	require.Zero(t, n, "invalid submission must not be stored")
}

func TestContactFormRequiresEveryField(t *testing.T) {
	app, db, _ := newSiteApp(t)
	tok := fetchCSRF(t, app)

	resp := postForm(t, app, "/contacts", tok, url.Values{})
	require.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	body := bodyOf(t, resp)
	require.Contains(t, body, "Имя обязательно")
	require.Contains(t, body, "Email обязателен")
	require.Contains(t, body, "Телефон обязателен")
	require.Contains(t, body, "Сообщение обязательно")

	var n int
	require.NoError(t, db.Get(&n, `SELECT COUNT(*) FROM inquiries`))
	require.Zero(t, n)
}

func TestContactFormStoresValidSubmission(t *testing.T) {
	app, db, _ := newSiteApp(t)
	tok := fetchCSRF(t, app)

	resp := postForm(t, app, "/contacts", tok, url.Values{
		"name":    {"Иван Иванов"},
		"email":   {"ivan@example.com"},
		"phone":   {"+375291234567"},
		"message": {"Интересует сотрудничество"},
	})
	require.Equal(t, http.StatusFound, resp.StatusCode)
	require.Equal(t, "/contacts?sent=1", resp.Header.Get("Location"))

	var q domain.Inquiry
	require.NoError(t, db.Get(&q, `SELECT type, name, email, status FROM inquiries`))
	require.Equal(t, domain.InquiryContact, q.Type)
	require.Equal(t, "Иван Иванов", q.Name)
	require.Equal(t, domain.StatusNew, q.Status)
}

func TestContactFormFromFeedbackRedirectsBack(t *testing.T) {
	app, _, _ := newSiteApp(t)
	tok := fetchCSRF(t, app)

	resp := postForm(t, app, "/contacts", tok, url.Values{
		"from":    {"feedback"},
		"name":    {"Мария"},
		"email":   {"maria@example.com"},
		"phone":   {"+375331112233"},
		"message": {"Вопрос по вакансиям"},
	})
	require.Equal(t, http.StatusFound, resp.StatusCode)
	require.Equal(t, "/feedback?sent=1", resp.Header.Get("Location"))
}

func TestContactFormWithoutCSRFTokenIsRejected(t *testing.T) {
	app, db, _ := newSiteApp(t)

	resp := postForm(t, app, "/contacts", "", url.Values{
		"name":    {"Иван"},
		"email":   {"ivan@example.com"},
		"phone":   {"+375291234567"},
		"message": {"Привет"},
	})
	require.Equal(t, http.StatusForbidden, resp.StatusCode)

	var n int
	require.NoError(t, db.Get(&n, `SELECT COUNT(*) FROM inquiries`))
	require.Zero(t, n)
}
