// Package gallery implements the catalog view controller: it owns the view
// state and keeps a Screen consistent with it and with the static tables.
package gallery

import (
	"context"
	"log/slog"
	"time"

	"github.com/lehmann314159/heimwerker/internal/catalog"
	"github.com/lehmann314159/heimwerker/internal/i18n"
	"github.com/lehmann314159/heimwerker/internal/models"
)

// LanguageStore persists the visitor's language between sessions.
type LanguageStore interface {
	// Load returns the stored language code, or "" when none is stored.
	Load(ctx context.Context) (string, error)
	Save(ctx context.Context, lang string) error
}

// State is the mutable view state.
type State struct {
	Language string
	Query    string
	Category string
	Selected string // YouTube id of the video in the overlay, "" when closed
	Trigger  string // element id that opened the overlay
}

// Open reports whether the overlay is showing.
func (s State) Open() bool { return s.Selected != "" }

type Controller struct {
	cat    *catalog.Catalog
	store  LanguageStore
	screen Screen
	state  State

	log             *slog.Logger
	now             func() time.Time
	defaultLanguage string
}

type Option func(*Controller)

func WithLogger(l *slog.Logger) Option {
	return func(c *Controller) { c.log = l }
}

// WithClock sets the time source for the "last updated" label.
func WithClock(now func() time.Time) Option {
	return func(c *Controller) { c.now = now }
}

// WithDefaultLanguage sets the language used when the store holds none.
func WithDefaultLanguage(lang string) Option {
	return func(c *Controller) {
		if i18n.Supported(lang) {
			c.defaultLanguage = lang
		}
	}
}

// WithState restores a previously saved state, e.g. from a session.
func WithState(s State) Option {
	return func(c *Controller) { c.state = s }
}

func New(cat *catalog.Catalog, store LanguageStore, screen Screen, opts ...Option) *Controller {
	c := &Controller{
		cat:             cat,
		store:           store,
		screen:          screen,
		log:             slog.Default(),
		now:             time.Now,
		defaultLanguage: i18n.Default,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.state.Category == "" {
		c.state.Category = models.AllCategories
	}
	return c
}

// State returns a copy of the current view state.
func (c *Controller) State() State { return c.state }

// Bootstrap restores the language, applies it and paints the date line.
// The store is written only when the applied language differs from the
// stored one.
// A restored open overlay is painted again.
func (c *Controller) Bootstrap(ctx context.Context) {
	lang, err := c.store.Load(ctx)
	if err != nil {
		c.log.Warn("load language preference", slog.Any("error", err))
	}
	stored := lang
	if !i18n.Supported(lang) {
		lang = c.defaultLanguage
	}
	c.applyLanguage(ctx, lang, lang != stored)
	c.screen.PaintLastUpdate(i18n.FormatDate(c.now(), lang))
}

// SetLanguage switches the active language. Unknown codes are ignored.
func (c *Controller) SetLanguage(ctx context.Context, lang string) {
	if !i18n.Supported(lang) {
		return
	}
	c.applyLanguage(ctx, lang, true)
}

// applyLanguage repaints everything in lang, saving it to the store first
// when persist is set.
func (c *Controller) applyLanguage(ctx context.Context, lang string, persist bool) {
	c.state.Language = lang
	if persist {
		if err := c.store.Save(ctx, lang); err != nil {
			c.log.Warn("save language preference", slog.String("lang", lang), slog.Any("error", err))
		}
	}
	c.screen.PaintChrome(c.chrome())
	c.Render()
	if c.state.Open() {
		c.showDetail()
	}
}

func (c *Controller) UpdateSearch(q string) {
	c.state.Query = q
	c.Render()
}

func (c *Controller) UpdateFilter(category string) {
	if category == "" {
		category = models.AllCategories
	}
	c.state.Category = category
	c.Render()
}

// Render repaints the whole gallery from the current state.
func (c *Controller) Render() {
	c.screen.PaintView(c.cat.Compute(c.query()))
}

// OpenDetail shows the overlay for the video and moves focus to its close
// control. triggerID is remembered so CloseDetail can return focus to it.
// Unknown ids leave the state untouched.
func (c *Controller) OpenDetail(youtubeID, triggerID string) bool {
	if _, ok := c.cat.Video(youtubeID); !ok {
		return false
	}
	c.state.Selected = youtubeID
	c.state.Trigger = triggerID
	c.showDetail()
	c.screen.Focus(CloseControlID)
	return true
}

// CloseDetail hides the overlay and reports whether focus went back to the
// element that opened it. A trigger no longer on screen is skipped.
func (c *Controller) CloseDetail() bool {
	trigger := c.state.Trigger
	c.state.Selected = ""
	c.state.Trigger = ""
	c.screen.HideOverlay()
	if trigger == "" {
		return false
	}
	return c.screen.Focus(trigger)
}

// ActivateCard handles a click (key "") or Enter/Space on a focused card.
func (c *Controller) ActivateCard(youtubeID, key string) bool {
	switch key {
	case "", "Enter", " ":
		return c.OpenDetail(youtubeID, catalog.CardID(youtubeID))
	}
	return false
}

// HandleKey handles a key press anywhere on the page.
func (c *Controller) HandleKey(key string) {
	if key == "Escape" && c.state.Open() {
		c.CloseDetail()
	}
}

// ClickScrim handles a click on the overlay background outside its content.
func (c *Controller) ClickScrim() {
	if c.state.Open() {
		c.CloseDetail()
	}
}

func (c *Controller) showDetail() {
	v, ok := c.cat.Video(c.state.Selected)
	if !ok {
		c.state.Selected = ""
		c.state.Trigger = ""
		c.screen.HideOverlay()
		return
	}
	c.screen.ShowOverlay(c.cat.Detail(v, c.state.Language))
}

func (c *Controller) query() catalog.Query {
	return catalog.Query{
		Language: c.state.Language,
		Search:   c.state.Query,
		Category: c.state.Category,
	}
}

func (c *Controller) chrome() Chrome {
	lang := c.state.Language
	text := i18n.For(lang)
	ch := Chrome{Language: lang, Text: text}
	ch.Options = append(ch.Options, FilterOption{Value: models.AllCategories, Label: text.AllCategories})
	for _, cat := range c.cat.Categories() {
		ch.Options = append(ch.Options, FilterOption{Value: cat.Key, Label: cat.Name.In(lang)})
	}
	for _, code := range i18n.Languages {
		ch.Toggles = append(ch.Toggles, Toggle{Code: code, Label: i18n.For(code).Toggle, Active: code == lang})
	}
	return ch
}
