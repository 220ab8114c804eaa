package models

// BaseLanguage is the language every record and label is guaranteed to carry.
const BaseLanguage = "de"

// AllCategories is the filter value that disables category filtering.
const AllCategories = "all"

// Text holds one display string per language code.
type Text map[string]string

// In returns the text for lang, falling back to BaseLanguage when it is
// missing or empty.
func (t Text) In(lang string) string {
	if s := t[lang]; s != "" {
		return s
	}
	return t[BaseLanguage]
}

type Video struct {
	Title       Text    `json:"title"`
	Description Text    `json:"description"`
	Rating      float64 `json:"rating"`
	Views       string  `json:"views"` // display text, never parsed
	Category    string  `json:"category"`
	YouTubeID   string  `json:"youtubeId"`
	Channel     string  `json:"channel"`
}

type Category struct {
	Key  string
	Name Text
	Icon string
}

// Card is a video projected into one language for the gallery grid.
type Card struct {
	ID           string `json:"id"` // element id, stable per video
	VideoID      string `json:"videoId"`
	Title        string `json:"title"`
	Channel      string `json:"channel"`
	Thumbnail    string `json:"thumbnail"`
	Icon         string `json:"icon"`
	CategoryName string `json:"categoryName"`
	Stars        string `json:"stars"`
	Rating       string `json:"rating"`
	Views        string `json:"views"` // includes the localized unit
}

type Section struct {
	Category string `json:"category"`
	Name     string `json:"name"`
	Count    int    `json:"count"`
	Cards    []Card `json:"cards"`
}

// View is the computed gallery. Exactly one of Empty, Cards (flat) or
// Sections (grouped) is populated.
type View struct {
	Empty    bool      `json:"empty"`
	Flat     bool      `json:"flat"`
	Cards    []Card    `json:"cards,omitempty"`
	Sections []Section `json:"sections,omitempty"`
}

// Detail is the overlay content for one video.
type Detail struct {
	VideoID      string `json:"videoId"`
	Title        string `json:"title"`
	Channel      string `json:"channel"`
	CategoryName string `json:"categoryName"`
	Description  string `json:"description"`
	Rating       string `json:"rating"`
	Views        string `json:"views"`
	Thumbnail    string `json:"thumbnail"`
	WatchURL     string `json:"watchUrl"`
}

// PreferenceLanguage is the preference key holding the visitor's language.
const PreferenceLanguage = "language"
