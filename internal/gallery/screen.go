package gallery

import (
	"github.com/lehmann314159/heimwerker/internal/i18n"
	"github.com/lehmann314159/heimwerker/internal/models"
)

// CloseControlID is the element id of the overlay close control.
const CloseControlID = "modal-close"

// FilterOption is one entry of the category filter control.
type FilterOption struct {
	Value string
	Label string
}

// Toggle is one language toggle control.
type Toggle struct {
	Code   string
	Label  string
	Active bool
}

// Chrome is everything on screen that depends only on the active language.
type Chrome struct {
	Language string
	Text     i18n.Strings
	Options  []FilterOption
	Toggles  []Toggle
}

// Screen is the surface a Controller paints onto. Implementations hold no
// logic of their own; the HTTP host paints an HTML page, the CLI a terminal.
type Screen interface {
	PaintChrome(Chrome)
	PaintView(models.View)
	PaintLastUpdate(label string)
	ShowOverlay(models.Detail)
	HideOverlay()
	// Focus moves keyboard focus to the element with the given id and
	// reports whether that element is currently on screen.
	Focus(id string) bool
}
