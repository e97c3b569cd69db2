package handlers_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/require"

	"agrosite/internal/domain"
)

func TestProductOrderStoresInquiryWithQuantity(t *testing.T) {
	app, db, _ := newSiteApp(t)
	tok := fetchCSRF(t, app)

	var p domain.Product
	require.NoError(t, db.Get(&p, `SELECT id, name, unit FROM products WHERE name='Пшеница озимая'`))

	resp := postForm(t, app, fmt.Sprintf("/products/%d/order", p.ID), tok, url.Values{
		"name":     {"Сергей"},
		"email":    {"sergey@example.com"},
		"phone":    {"+375291234567"},
		"message":  {"Прошу выставить счет"},
		"quantity": {"10"},
	})
	require.Equal(t, http.StatusFound, resp.StatusCode)
	require.Equal(t, fmt.Sprintf("/products/%d?sent=1", p.ID), resp.Header.Get("Location"))

	var q domain.Inquiry
	require.NoError(t, db.Get(&q, `SELECT type, message, product_name, status FROM inquiries`))
	require.Equal(t, domain.InquiryProduct, q.Type)
	require.Equal(t, "Пшеница озимая", q.ProductName)
	require.Equal(t, domain.StatusNew, q.Status)
	require.Equal(t, "Количество: 10 т\nПрошу выставить счет", q.Message)
}

func TestProductOrderInvalidInputReRendersForm(t *testing.T) {
	app, db, _ := newSiteApp(t)
	tok := fetchCSRF(t, app)

	var id int64
	require.NoError(t, db.Get(&id, `SELECT id FROM products LIMIT 1`))

	resp := postForm(t, app, fmt.Sprintf("/products/%d/order", id), tok, url.Values{
		"name":  {"Сергей"},
		"phone": {"12"},
	})
	require.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	body := bodyOf(t, resp)
	require.Contains(t, body, "Email обязателен")
	require.Contains(t, body, "Неверный формат телефона")

	var n int
	require.NoError(t, db.Get(&n, `SELECT COUNT(*) FROM inquiries`))
	require.Zero(t, n)
}

func TestProductOrderUnknownIDIs404(t *testing.T) {
	app, _, _ := newSiteApp(t)
	tok := fetchCSRF(t, app)

	resp := postForm(t, app, "/products/99999/order", tok, url.Values{
		"name":    {"Сергей"},
		"email":   {"sergey@example.com"},
		"phone":   {"+375291234567"},
		"message": {"Заказ"},
	})
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestProductDetailPages(t *testing.T) {
	app, db, _ := newSiteApp(t)

	var id int64
	require.NoError(t, db.Get(&id, `SELECT id FROM products WHERE name='Молоко'`))

	resp, err := app.Test(httptest.NewRequest("GET", fmt.Sprintf("/products/%d", id), nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body := bodyOf(t, resp)
	require.Contains(t, body, "Молоко")
	require.Contains(t, body, "Животноводство")

	resp, err = app.Test(httptest.NewRequest("GET", "/products/99999", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("GET", "/products/abc", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}
