package content

// SiteSettings maps free-form setting keys to their text values.
type SiteSettings map[string]string

// Get returns the value for key, or fallback when it is missing or empty.
func (s SiteSettings) Get(key, fallback string) string {
	if v := s[key]; v != "" {
		return v
	}
	return fallback
}

// Work is one catalog entry.
type Work struct {
	ID    string
	Title string
	Slug  string
	Year  *int
	// Role is a single classification such as "Illustration". Empty means
	// unset.
	Role     string
	Featured bool
	// ThumbnailURL is empty when the record has no resolvable thumbnail;
	// callers fall back to Images[0].
	ThumbnailURL string
	Images       []string
	Description  string
	Tags         []string
	// Sort is an explicit rank used only for catalog ordering.
	Sort *float64
}

// WorksFilter narrows a works query.
type WorksFilter struct {
	FeaturedOnly bool
}
