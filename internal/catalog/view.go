package catalog

import (
	"math"
	"strconv"
	"strings"

	"github.com/lehmann314159/heimwerker/internal/i18n"
	"github.com/lehmann314159/heimwerker/internal/models"
)

// fallbackCategory groups records that carry no category at all.
const fallbackCategory = "grundlagen"

const star = "⭐"

// Query is the part of the view state that decides which cards are shown.
type Query struct {
	Language string
	Search   string
	Category string
}

// grouped reports whether the view is split into category sections.
func (q Query) grouped() bool {
	return q.Search == "" && (q.Category == "" || q.Category == models.AllCategories)
}

// Matches reports whether v passes the search and category filter of q.
// Search is a case-insensitive substring test on the title or description
// in the query language, falling back to the base language text.
func Matches(v models.Video, q Query) bool {
	if q.Category != "" && q.Category != models.AllCategories && v.Category != q.Category {
		return false
	}
	term := strings.ToLower(q.Search)
	title := strings.ToLower(v.Title.In(q.Language))
	desc := strings.ToLower(v.Description.In(q.Language))
	return strings.Contains(title, term) || strings.Contains(desc, term)
}

// Filter returns the matching records in table order.
func (c *Catalog) Filter(q Query) []models.Video {
	var out []models.Video
	for _, v := range c.videos {
		if Matches(v, q) {
			out = append(out, v)
		}
	}
	return out
}

// Group is a run of videos sharing a category key.
type Group struct {
	Category string
	Videos   []models.Video
}

// GroupByCategory splits videos by category preserving first-seen order.
func GroupByCategory(videos []models.Video) []Group {
	var groups []Group
	index := map[string]int{}
	for _, v := range videos {
		key := v.Category
		if key == "" {
			key = fallbackCategory
		}
		i, ok := index[key]
		if !ok {
			i = len(groups)
			index[key] = i
			groups = append(groups, Group{Category: key})
		}
		groups[i].Videos = append(groups[i].Videos, v)
	}
	return groups
}

// Compute builds the gallery view for q.
func (c *Catalog) Compute(q Query) models.View {
	videos := c.Filter(q)
	if len(videos) == 0 {
		return models.View{Empty: true}
	}
	if !q.grouped() {
		cards := make([]models.Card, 0, len(videos))
		for _, v := range videos {
			cards = append(cards, c.Card(v, q.Language))
		}
		return models.View{Flat: true, Cards: cards}
	}
	var view models.View
	for _, g := range GroupByCategory(videos) {
		s := models.Section{
			Category: g.Category,
			Name:     c.CategoryName(g.Category, q.Language),
			Count:    len(g.Videos),
		}
		for _, v := range g.Videos {
			s.Cards = append(s.Cards, c.Card(v, q.Language))
		}
		view.Sections = append(view.Sections, s)
	}
	return view
}

// Card projects v into lang.
func (c *Catalog) Card(v models.Video, lang string) models.Card {
	return models.Card{
		ID:           CardID(v.YouTubeID),
		VideoID:      v.YouTubeID,
		Title:        v.Title.In(lang),
		Channel:      v.Channel,
		Thumbnail:    ThumbnailURL(v.YouTubeID),
		Icon:         c.CategoryIcon(v.Category),
		CategoryName: c.CategoryName(v.Category, lang),
		Stars:        Stars(v.Rating),
		Rating:       FormatRating(v.Rating),
		Views:        v.Views + " " + i18n.For(lang).Views,
	}
}

// Detail projects v into the overlay content for lang.
func (c *Catalog) Detail(v models.Video, lang string) models.Detail {
	return models.Detail{
		VideoID:      v.YouTubeID,
		Title:        v.Title.In(lang),
		Channel:      v.Channel,
		CategoryName: c.CategoryName(v.Category, lang),
		Description:  v.Description.In(lang),
		Rating:       FormatRating(v.Rating),
		Views:        v.Views + " " + i18n.For(lang).Views,
		Thumbnail:    DetailThumbnailURL(v.YouTubeID),
		WatchURL:     WatchURL(v.YouTubeID),
	}
}

// CardID is the element id of the card showing the video.
func CardID(youtubeID string) string {
	return "video-" + youtubeID
}

// Stars repeats the star glyph round(rating) times, rounding halves up.
// Out-of-range ratings are not clamped; negative counts produce no glyphs.
func Stars(rating float64) string {
	n := int(math.Floor(rating + 0.5))
	if n <= 0 {
		return ""
	}
	return strings.Repeat(star, n)
}

// FormatRating prints the rating with the shortest exact representation
// ("5", "4.1").
func FormatRating(rating float64) string {
	return strconv.FormatFloat(rating, 'f', -1, 64)
}

func ThumbnailURL(youtubeID string) string {
	return "https://img.youtube.com/vi/" + youtubeID + "/mqdefault.jpg"
}

func DetailThumbnailURL(youtubeID string) string {
	return "https://img.youtube.com/vi/" + youtubeID + "/hqdefault.jpg"
}

func WatchURL(youtubeID string) string {
	return "https://www.youtube.com/watch?v=" + youtubeID
}
