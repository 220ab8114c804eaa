package catalog

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lehmann314159/heimwerker/internal/models"
)

func cardIDs(cards []models.Card) []string {
	ids := make([]string, 0, len(cards))
	for _, c := range cards {
		ids = append(ids, c.VideoID)
	}
	return ids
}

func TestDefaultCatalogLoads(t *testing.T) {
	c := Default()
	require.Equal(t, 10, c.Len())

	v, ok := c.Video("3TPXAaTwtjQ")
	require.True(t, ok)
	assert.Equal(t, "spachteln", v.Category)
	assert.Equal(t, "79K", v.Views)
	assert.Equal(t, "KREATIVTOBI", v.Channel)

	_, ok = c.Video("missing")
	assert.False(t, ok)
}

func TestParseRejectsMalformedTable(t *testing.T) {
	_, err := Parse([]byte(`{"not":"a list"}`))
	assert.Error(t, err)
}

func TestCategoryFallbacks(t *testing.T) {
	c := Default()
	assert.Equal(t, "🏠 Attic Conversion", c.CategoryName("dachausbau", "en"))
	assert.Equal(t, "🏠", c.CategoryIcon("dachausbau"))

	// the shipped data uses keys missing from the table
	assert.Equal(t, "waende", c.CategoryName("waende", "de"))
	assert.Equal(t, GenericIcon, c.CategoryIcon("waende"))
}

func TestFilterEveryCardMatches(t *testing.T) {
	c := Default()
	queries := []string{"", "decke", "KNAUF", "ceiling", " ", "zz"}
	filters := []string{models.AllCategories, "decken", "werkzeuge", "vorwand"}
	for _, lang := range []string{"de", "en"} {
		for _, q := range queries {
			for _, f := range filters {
				for _, v := range c.Filter(Query{Language: lang, Search: q, Category: f}) {
					text := strings.ToLower(v.Title.In(lang)) + "\x00" + strings.ToLower(v.Description.In(lang))
					assert.Contains(t, text, strings.ToLower(q))
					if f != models.AllCategories {
						assert.Equal(t, f, v.Category)
					}
				}
			}
		}
	}
}

func TestComputeGroupedCoversWholeTable(t *testing.T) {
	c := Default()
	view := c.Compute(Query{Language: "de", Category: models.AllCategories})
	require.False(t, view.Empty)
	require.False(t, view.Flat)

	var order []string
	seen := map[string]bool{}
	total := 0
	for _, s := range view.Sections {
		order = append(order, s.Category)
		assert.Equal(t, len(s.Cards), s.Count)
		for _, card := range s.Cards {
			assert.False(t, seen[card.VideoID], "duplicate %s", card.VideoID)
			seen[card.VideoID] = true
			total++
		}
	}
	assert.Equal(t, c.Len(), total)
	assert.Equal(t, []string{"dachausbau", "waende", "decken", "werkzeuge", "spachteln", "grundlagen"}, order)
	assert.Equal(t, "🏠 Dachausbau", view.Sections[0].Name)
	assert.Equal(t, "waende", view.Sections[1].Name)
}

func TestComputeSearchIsFlat(t *testing.T) {
	view := Default().Compute(Query{Language: "de", Search: "spachteln", Category: models.AllCategories})
	assert.True(t, view.Flat)
	assert.Empty(t, view.Sections)
	assert.Equal(t, []string{"DpEXwahrqSE", "3TPXAaTwtjQ"}, cardIDs(view.Cards))
}

func TestComputeCategoryFilterAloneIsFlat(t *testing.T) {
	view := Default().Compute(Query{Language: "de", Category: "dachausbau"})
	assert.True(t, view.Flat)
	assert.Equal(t, []string{"jcvno6SMrBM", "Q0DrHFNzLiQ"}, cardIDs(view.Cards))
}

func TestComputeNoResults(t *testing.T) {
	for _, f := range []string{models.AllCategories, "decken", "unknown"} {
		view := Default().Compute(Query{Language: "en", Search: "zzzznoresults", Category: f})
		assert.True(t, view.Empty)
		assert.Empty(t, view.Cards)
		assert.Empty(t, view.Sections)
	}
}

func TestComputeIsIdempotent(t *testing.T) {
	c := Default()
	q := Query{Language: "en", Search: "knauf", Category: models.AllCategories}
	assert.Equal(t, c.Compute(q), c.Compute(q))
}

func TestSearchUsesActiveLanguageText(t *testing.T) {
	c := Default()
	de := c.Filter(Query{Language: "de", Search: "ceiling"})
	en := c.Filter(Query{Language: "en", Search: "ceiling"})
	assert.Empty(t, de)
	assert.Len(t, en, 5)
}

func TestMissingTranslationFallsBackToGerman(t *testing.T) {
	v := models.Video{
		Title:       models.Text{"de": "Gipskarton schneiden"},
		Description: models.Text{"de": "Anleitung", "en": ""},
		Category:    "werkzeuge",
		YouTubeID:   "abc",
		Rating:      3,
	}
	c := New([]models.Video{v}, Categories)
	assert.True(t, Matches(v, Query{Language: "en", Search: "gipskarton"}))
	assert.True(t, Matches(v, Query{Language: "en", Search: "anleitung"}))

	card := c.Card(v, "en")
	assert.Equal(t, "Gipskarton schneiden", card.Title)
	assert.Equal(t, "🛠️ Tools", card.CategoryName)
}

func TestEmptyCategoryGroupsUnderBasics(t *testing.T) {
	videos := []models.Video{
		{Title: models.Text{"de": "a"}, YouTubeID: "a"},
		{Title: models.Text{"de": "b"}, YouTubeID: "b", Category: "grundlagen"},
	}
	groups := GroupByCategory(videos)
	require.Len(t, groups, 1)
	assert.Equal(t, "grundlagen", groups[0].Category)
	assert.Len(t, groups[0].Videos, 2)
}

func TestStars(t *testing.T) {
	cases := []struct {
		rating float64
		want   int
	}{
		{5, 5}, {4.1, 4}, {4.5, 5}, {0.4, 0}, {0, 0}, {7.2, 7}, {-3, 0},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, strings.Count(Stars(tc.rating), "⭐"), "rating %v", tc.rating)
	}
}

func TestCardProjection(t *testing.T) {
	c := Default()
	v, _ := c.Video("QGodfn8jV-c")
	card := c.Card(v, "en")
	assert.Equal(t, "video-QGodfn8jV-c", card.ID)
	assert.Equal(t, "https://img.youtube.com/vi/QGodfn8jV-c/mqdefault.jpg", card.Thumbnail)
	assert.Equal(t, "📚", card.Icon)
	assert.Equal(t, "4.1", card.Rating)
	assert.Equal(t, "⭐⭐⭐⭐", card.Stars)
	assert.Equal(t, "1.5M views", card.Views)

	d := c.Detail(v, "de")
	assert.Equal(t, "https://img.youtube.com/vi/QGodfn8jV-c/hqdefault.jpg", d.Thumbnail)
	assert.Equal(t, "https://www.youtube.com/watch?v=QGodfn8jV-c", d.WatchURL)
	assert.Equal(t, "📚 Grundlagen", d.CategoryName)
	assert.Equal(t, "1.5M Aufrufe", d.Views)
}
