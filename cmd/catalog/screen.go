package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/lehmann314159/heimwerker/internal/gallery"
	"github.com/lehmann314159/heimwerker/internal/models"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#ff6b35"))

	sectionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#004e89")).
			Border(lipgloss.NormalBorder(), false, false, true, false)

	dimStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#666666"))

	detailStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#ff6b35")).
			Padding(0, 1)
)

// textScreen records what the controller paints and renders it as text.
type textScreen struct {
	chrome  gallery.Chrome
	view    models.View
	updated string
	detail  *models.Detail
	focused string
}

func (s *textScreen) PaintChrome(c gallery.Chrome) { s.chrome = c }
func (s *textScreen) PaintView(v models.View) { s.view = v }
func (s *textScreen) PaintLastUpdate(label string) { s.updated = label }
func (s *textScreen) ShowOverlay(d models.Detail) { s.detail = &d }
func (s *textScreen) HideOverlay() { s.detail = nil }

func (s *textScreen) Focus(id string) bool {
	s.focused = id
	return true
}

// Render draws the gallery.
func (s *textScreen) Render() string {
	var b strings.Builder
	text := s.chrome.Text
	b.WriteString(titleStyle.Render(text.SiteTitle))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(text.Subtitle))
	b.WriteString("\n\n")

	switch {
	case s.view.Empty:
		b.WriteString("🔍 " + text.NoResults + "\n")
		b.WriteString(dimStyle.Render(text.NoResultsHint) + "\n")
	case s.view.Flat:
		for _, c := range s.view.Cards {
			writeCard(&b, c)
		}
	default:
		for _, sec := range s.view.Sections {
			b.WriteString(sectionStyle.Render(fmt.Sprintf("%s  %d %s", sec.Name, sec.Count, text.VideosUnit)))
			b.WriteString("\n")
			for _, c := range sec.Cards {
				writeCard(&b, c)
			}
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render(fmt.Sprintf("✅ %s · %s: %s", text.VerifiedBy, text.LastUpdate, s.updated)))
	b.WriteString("\n")
	return b.String()
}

// RenderDetail draws the open overlay, or nothing when it is closed.
func (s *textScreen) RenderDetail() string {
	d := s.detail
	if d == nil {
		return ""
	}
	lines := []string{
		titleStyle.Render(d.Title),
		"📺 " + d.Channel,
		"📁 " + d.CategoryName,
		"",
		d.Description,
		"",
		fmt.Sprintf("⭐ %s   👁️ %s", d.Rating, d.Views),
		"",
		s.chrome.Text.WatchOnYouTube + ": " + d.WatchURL,
	}
	return detailStyle.Render(strings.Join(lines, "\n")) + "\n"
}

func writeCard(b *strings.Builder, c models.Card) {
	fmt.Fprintf(b, "%s %s\n", c.Icon, c.Title)
	fmt.Fprintf(b, "   📺 %s  %s %s  %s  %s\n", c.Channel, c.Stars, c.Rating, c.Views, dimStyle.Render(c.VideoID))
}
