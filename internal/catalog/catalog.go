// Package catalog holds the curated video table and the pure pipeline that
// turns it into the gallery view for a given language, search and filter.
package catalog

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/lehmann314159/heimwerker/internal/models"
)

//go:embed videos.json
var videosJSON []byte

// GenericIcon is shown for videos whose category key is not in the table.
const GenericIcon = "📹"

// Categories is the fixed category table in declaration order.
var Categories = []models.Category{
	{Key: "grundlagen", Name: models.Text{"de": "📚 Grundlagen", "en": "📚 Basics"}, Icon: "📚"},
	{Key: "dachausbau", Name: models.Text{"de": "🏠 Dachausbau", "en": "🏠 Attic Conversion"}, Icon: "🏠"},
	{Key: "vorwand", Name: models.Text{"de": "🧱 Vorwandinstallation", "en": "🧱 Wall Installation"}, Icon: "🧱"},
	{Key: "decke", Name: models.Text{"de": "⬆️ Deckenmontage", "en": "⬆️ Ceiling Installation"}, Icon: "⬆️"},
	{Key: "reparatur", Name: models.Text{"de": "🔧 Reparatur", "en": "🔧 Repair"}, Icon: "🔧"},
	{Key: "werkzeuge", Name: models.Text{"de": "🛠️ Werkzeuge", "en": "🛠️ Tools"}, Icon: "🛠️"},
	{Key: "tueren", Name: models.Text{"de": "🚪 Türen & Öffnungen", "en": "🚪 Doors & Openings"}, Icon: "🚪"},
	{Key: "spachteln", Name: models.Text{"de": "✨ Spachteln & Finish", "en": "✨ Taping & Finishing"}, Icon: "✨"},
	{Key: "installation", Name: models.Text{"de": "🔨 Installation", "en": "🔨 Installation"}, Icon: "🔨"},
}

// Catalog is an immutable video table plus its category table.
type Catalog struct {
	videos     []models.Video
	categories []models.Category
	byKey      map[string]models.Category
	byID       map[string]int
}

// New builds a catalog from the given tables. The slices are copied.
func New(videos []models.Video, categories []models.Category) *Catalog {
	c := &Catalog{
		videos:     append([]models.Video(nil), videos...),
		categories: append([]models.Category(nil), categories...),
		byKey:      make(map[string]models.Category, len(categories)),
		byID:       make(map[string]int, len(videos)),
	}
	for _, cat := range c.categories {
		c.byKey[cat.Key] = cat
	}
	for i, v := range c.videos {
		if _, dup := c.byID[v.YouTubeID]; !dup {
			c.byID[v.YouTubeID] = i
		}
	}
	return c
}

// Parse decodes a JSON video table and pairs it with the fixed Categories.
func Parse(data []byte) (*Catalog, error) {
	var videos []models.Video
	if err := json.Unmarshal(data, &videos); err != nil {
		return nil, fmt.Errorf("decode video table: %w", err)
	}
	return New(videos, Categories), nil
}

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
)

// Default returns the catalog baked into the binary.
func Default() *Catalog {
	defaultOnce.Do(func() {
		c, err := Parse(videosJSON)
		if err != nil {
			panic(err)
		}
		defaultCatalog = c
	})
	return defaultCatalog
}

// Videos returns the table in its original order.
func (c *Catalog) Videos() []models.Video {
	return append([]models.Video(nil), c.videos...)
}

func (c *Catalog) Categories() []models.Category {
	return append([]models.Category(nil), c.categories...)
}

func (c *Catalog) Len() int { return len(c.videos) }

// Video looks a record up by its YouTube id.
func (c *Catalog) Video(id string) (models.Video, bool) {
	i, ok := c.byID[id]
	if !ok {
		return models.Video{}, false
	}
	return c.videos[i], true
}

// Category resolves a category key.
func (c *Catalog) Category(key string) (models.Category, bool) {
	cat, ok := c.byKey[key]
	return cat, ok
}

// CategoryName is the localized name of key, or the raw key when unknown.
func (c *Catalog) CategoryName(key, lang string) string {
	if cat, ok := c.byKey[key]; ok {
		if name := cat.Name[lang]; name != "" {
			return name
		}
	}
	return key
}

// CategoryIcon is the icon of key, or GenericIcon when unknown.
func (c *Catalog) CategoryIcon(key string) string {
	if cat, ok := c.byKey[key]; ok && cat.Icon != "" {
		return cat.Icon
	}
	return GenericIcon
}
