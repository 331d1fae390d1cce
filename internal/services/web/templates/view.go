// Package templates renders the portfolio's HTML with templ components.
package templates

import (
	"strconv"
	"strings"

	"github.com/bfarth20/malexanderportfolio/internal/content"
	"github.com/bfarth20/malexanderportfolio/internal/content/catalog"
	"github.com/bfarth20/malexanderportfolio/internal/services/web/routepath"
)

// Setting keys read by the layout and pages.
const (
	KeyArtistName       = "artist_name"
	KeyArtistLocation   = "artist_location"
	KeyContactEmail     = "contact_email"
	KeyContactPhone     = "contact_phone"
	KeyHomeTitle        = "home_title"
	KeyHomeSubtitle     = "home_subtitle"
	KeyAboutBio         = "about_bio"
	KeyAboutHeadshotURL = "about_headshot_url"
	KeySocialInstagram  = "social_instagram"
	KeySocialTwitter    = "social_twitter"
	KeySocialWebsite    = "social_website"
)

// Fallback copy used when a setting is empty.
const (
	DefaultArtistName   = "Artist Name"
	DefaultHomeTitle    = "Artist Name"
	DefaultHomeSubtitle = "Clean • Simple • Fast"
	DefaultAboutBio     = "Add your artist biography in Notion (key: about_bio)."
	DefaultContactEmail = "example@example.com"
)

// NavTab is one primary navigation entry.
type NavTab struct {
	Path  string
	Label string
}

// NavTabs lists the primary navigation in display order.
var NavTabs = []NavTab{
	{Path: routepath.Root, Label: "Home"},
	{Path: routepath.Portfolio, Label: "Portfolio"},
	{Path: routepath.About, Label: "About the Artist"},
	{Path: routepath.Contact, Label: "Contact Me"},
}

// Chrome is the data shared by every page's header and footer.
type Chrome struct {
	Lang        string
	Title       string
	Description string
	ArtistName  string
	Location    string
	Email       string
	Phone       string
	Year        int
	// Active is the nav path marked as the current page.
	Active string
}

// NewChrome builds layout chrome from site settings.
func NewChrome(settings content.SiteSettings, active string, year int) Chrome {
	return Chrome{
		Description: settings.Get(KeyHomeSubtitle, DefaultHomeSubtitle),
		ArtistName:  settings.Get(KeyArtistName, DefaultArtistName),
		Location:    settings.Get(KeyArtistLocation, ""),
		Email:       settings.Get(KeyContactEmail, ""),
		Phone:       settings.Get(KeyContactPhone, ""),
		Year:        year,
		Active:      active,
	}
}

// PageTitle composes the document title for a page heading.
func (c Chrome) PageTitle() string {
	name := c.ArtistName
	if name == "" {
		name = DefaultArtistName
	}
	if c.Title == "" {
		return name
	}
	return c.Title + " | " + name
}

// TelHref keeps only the digits and plus signs of a phone number for a tel:
// link.
func TelHref(phone string) string {
	var b strings.Builder
	b.WriteString("tel:")
	for _, r := range phone {
		if r == '+' || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Card is the rendered form of a work in a grid or slideshow.
type Card struct {
	ID          string
	Anchor      string
	Title       string
	Meta        string
	Description string
	Cover       string
	HasCover    bool
	Gallery     []string
}

// NewCard derives a card from a work.
func NewCard(w content.Work) Card {
	cover, ok := catalog.Cover(w)
	var meta []string
	if w.Role != "" {
		meta = append(meta, w.Role)
	}
	if w.Year != nil {
		meta = append(meta, strconv.Itoa(*w.Year))
	}
	return Card{
		ID:          w.ID,
		Anchor:      w.Slug,
		Title:       w.Title,
		Meta:        strings.Join(meta, " • "),
		Description: w.Description,
		Cover:       cover,
		HasCover:    ok,
		Gallery:     catalog.Gallery(w),
	}
}

// NewCards derives cards for works, preserving order.
func NewCards(works []content.Work) []Card {
	cards := make([]Card, 0, len(works))
	for _, w := range works {
		cards = append(cards, NewCard(w))
	}
	return cards
}

// HomeView is the home page model.
type HomeView struct {
	Title    string
	Subtitle string
	Featured []Card
}

// PortfolioView is the portfolio page model.
type PortfolioView struct {
	Roles      []string
	ActiveRole string
	Works      []Card
	// Total counts works before role filtering.
	Total int
}

// AboutView is the about page model.
type AboutView struct {
	Bio         string
	HeadshotURL string
}

// ContactView is the contact page model.
type ContactView struct {
	Email     string
	Instagram string
	Twitter   string
	Website   string
}

// ErrorView is the error page model.
type ErrorView struct {
	StatusCode int
	Heading    string
	Message    string
}
