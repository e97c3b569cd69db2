package validate_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"agrosite/internal/validate"
)

func TestEmail(t *testing.T) {
	for _, s := range []string{"ivan@example.com", "a.b+c@mail.ru", "x@agro.by"} {
		got, ok := validate.Email(s)
		require.True(t, ok, s)
		require.Equal(t, s, got)
	}
	for _, s := range []string{"", "foo", "foo@bar", "@example.com", "a b@example.com"} {
		_, ok := validate.Email(s)
		require.False(t, ok, s)
	}
}

func TestPhone(t *testing.T) {
	for _, s := range []string{"+375291234567", "375 291 2345", "(375)291-2345", "123.456.7890"} {
		_, ok := validate.Phone(s)
		require.True(t, ok, s)
	}
	for _, s := range []string{"", "abc", "12", "+1"} {
		_, ok := validate.Phone(s)
		require.False(t, ok, s)
	}
}

func TestRequired(t *testing.T) {
	got, ok := validate.Required("  Иван  ", 100)
	require.True(t, ok)
	require.Equal(t, "Иван", got)

	_, ok = validate.Required("   ", 100)
	require.False(t, ok)

	// Max length counts runes, not bytes.
	_, ok = validate.Required("ааааа", 5)
	require.True(t, ok)
	_, ok = validate.Required("аааааа", 5)
	require.False(t, ok)
}

func TestID(t *testing.T) {
	id, ok := validate.ID("42")
	require.True(t, ok)
	require.Equal(t, int64(42), id)

	for _, s := range []string{"", "-1", "abc", "1.5", "9999999999999999999"} {
		_, ok := validate.ID(s)
		require.False(t, ok, s)
	}
}

func TestSortAndShow(t *testing.T) {
	require.Equal(t, "date-desc", validate.Sort(""))
	require.Equal(t, "date-desc", validate.Sort("bogus"))
	require.Equal(t, "title-asc", validate.Sort("title-asc"))

	require.Equal(t, 6, validate.Show("", 6))
	require.Equal(t, 6, validate.Show("0", 6))
	require.Equal(t, 6, validate.Show("-3", 6))
	require.Equal(t, 12, validate.Show("12", 6))
	require.Equal(t, 500, validate.Show("100000", 6))
}

func TestCategoryAndStatus(t *testing.T) {
	for _, s := range []string{"grain", "beans", "livestock", "services"} {
		_, ok := validate.Category(s)
		require.True(t, ok, s)
	}
	_, ok := validate.Category("all")
	require.False(t, ok)

	for _, s := range []string{"new", "in-progress", "completed"} {
		_, ok := validate.Status(s)
		require.True(t, ok, s)
	}
	_, ok = validate.Status("done")
	require.False(t, ok)
}
