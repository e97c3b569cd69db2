package handlers_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewsListAndLoadMore(t *testing.T) {
	app, db, _ := newSiteApp(t)

	// Pad the seeded feed past one page.
	for i := 0; i < 5; i++ {
		_, err := db.Exec(`INSERT INTO news(title, content) VALUES(?, '')`, fmt.Sprintf("Доп. новость %d", i))
		require.NoError(t, err)
	}

	resp, err := app.Test(httptest.NewRequest("GET", "/news", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body := bodyOf(t, resp)
	// 8 items total, page size 6: the load-more link widens the window.
	require.Contains(t, body, "show=9")

	resp, err = app.Test(httptest.NewRequest("GET", "/news?show=50", nil))
	require.NoError(t, err)
	require.NotContains(t, bodyOf(t, resp), "show=53")
}

func TestNewsListSearchFiltersFeed(t *testing.T) {
	app, _, _ := newSiteApp(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/news?q="+url.QueryEscape("уборочная"), nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body := bodyOf(t, resp)
	require.Contains(t, body, "Завершена уборочная кампания")
	require.NotContains(t, body, "Открыт новый молочно-товарный комплекс")

	resp, err = app.Test(httptest.NewRequest("GET", "/news?q="+url.QueryEscape("нет такой новости"), nil))
	require.NoError(t, err)
	require.Contains(t, bodyOf(t, resp), "По вашему запросу новостей не найдено")
}

func TestNewsDetailShowsMoreStrip(t *testing.T) {
	app, db, _ := newSiteApp(t)

	var id int64
	require.NoError(t, db.Get(&id, `SELECT id FROM news WHERE title='Завершена уборочная кампания'`))

	resp, err := app.Test(httptest.NewRequest("GET", fmt.Sprintf("/news/%d", id), nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body := bodyOf(t, resp)
	require.Contains(t, body, "Завершена уборочная кампания")
	// The "more news" strip skips the article being read.
	require.Contains(t, body, "Обновление машинно-тракторного парка")

	resp, err = app.Test(httptest.NewRequest("GET", "/news/99999", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	require.Contains(t, bodyOf(t, resp), "Новость не найдена")
}
