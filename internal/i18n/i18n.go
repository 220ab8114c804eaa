// Package i18n holds the fixed UI label tables and the language helpers
// shared by the web and terminal hosts.
package i18n

import (
	"time"

	"golang.org/x/text/language"

	"github.com/lehmann314159/heimwerker/internal/models"
)

// Default is the language used when nothing else is known about the visitor.
const Default = models.BaseLanguage

// Strings are the static labels of one language.
type Strings struct {
	SiteTitle         string
	Subtitle          string
	SearchPlaceholder string
	AllCategories     string
	WatchOnYouTube    string
	Views             string
	VerifiedBy        string
	LastUpdate        string
	NoResults         string
	NoResultsHint     string
	VideosUnit        string
	Close             string
	Toggle            string // label of the language toggle control
	DateLayout        string
}

// Languages lists the supported codes in toggle order.
var Languages = []string{"de", "en"}

var tags = []language.Tag{language.German, language.English}

var matcher = language.NewMatcher(tags)

var table = map[string]Strings{
	"de": {
		SiteTitle:         "Heimwerker Meister",
		Subtitle:          "Die besten Trockenbau-Tutorials",
		SearchPlaceholder: "Videos suchen...",
		AllCategories:     "Alle Kategorien",
		WatchOnYouTube:    "Auf YouTube ansehen",
		Views:             "Aufrufe",
		VerifiedBy:        "Geprüft von Trockenbaumeister",
		LastUpdate:        "Letzte Aktualisierung",
		NoResults:         "Keine Videos gefunden",
		NoResultsHint:     "Versuche einen anderen Suchbegriff",
		VideosUnit:        "Videos",
		Close:             "Schließen",
		Toggle:            "🇩🇪 DE",
		DateLayout:        "2.1.2006",
	},
	"en": {
		SiteTitle:         "DIY Master",
		Subtitle:          "The Best Drywall Tutorials",
		SearchPlaceholder: "Search videos...",
		AllCategories:     "All Categories",
		WatchOnYouTube:    "Watch on YouTube",
		Views:             "views",
		VerifiedBy:        "Verified by Drywall Expert",
		LastUpdate:        "Last update",
		NoResults:         "No videos found",
		NoResultsHint:     "Try a different search term",
		VideosUnit:        "Videos",
		Close:             "Close",
		Toggle:            "🇬🇧 EN",
		DateLayout:        "02/01/2006",
	},
}

// Supported reports whether lang has a label table.
func Supported(lang string) bool {
	_, ok := table[lang]
	return ok
}

// For returns the labels of lang, or the Default labels for unknown codes.
func For(lang string) Strings {
	if s, ok := table[lang]; ok {
		return s
	}
	return table[Default]
}

// FormatDate renders t the way the language's locale writes short dates
// (de-DE "2.1.2006", en-GB "02/01/2006").
func FormatDate(t time.Time, lang string) string {
	return t.Format(For(lang).DateLayout)
}

// Match picks the supported language closest to an Accept-Language header.
// An empty or unparsable header yields Default.
func Match(acceptLanguage string) string {
	if acceptLanguage == "" {
		return Default
	}
	prefs, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(prefs) == 0 {
		return Default
	}
	_, idx, conf := matcher.Match(prefs...)
	if conf == language.No {
		return Default
	}
	return Languages[idx]
}
