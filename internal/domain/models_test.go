package domain_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"agrosite/internal/domain"
)

func TestVacancyRequirementsSplitsLines(t *testing.T) {
	v := domain.Vacancy{RequirementsRaw: "Высшее образование\n\n  Опыт от 3 лет  \nЗнание 1С\n"}
	require.Equal(t, []string{"Высшее образование", "Опыт от 3 лет", "Знание 1С"}, v.Requirements())

	require.Nil(t, domain.Vacancy{}.Requirements())
}

func TestNewsExcerptCountsRunes(t *testing.T) {
	short := domain.News{Content: "Коротко"}
	require.Equal(t, "Коротко", short.Excerpt())

	long := domain.News{Content: strings.Repeat("ж", 200)}
	got := long.Excerpt()
	require.Equal(t, strings.Repeat("ж", 150)+"...", got)
	require.Len(t, []rune(got), 153)
}
