package content

import (
	"math"
	"strings"

	"github.com/bfarth20/malexanderportfolio/internal/notion"
)

// Property names read from content records.
const (
	PropName        = "Name"
	PropValue       = "Value"
	PropSlug        = "Slug"
	PropYear        = "Year"
	PropRole        = "Role"
	PropFeatured    = "Featured"
	PropThumbnail   = "Thumbnail"
	PropImages      = "Images"
	PropDescription = "Description"
	PropTags        = "Tags"
	PropSort        = "Sort"
	PropFile        = "File"
)

// UntitledWork is the title given to works without one.
const UntitledWork = "Untitled"

// FlattenRichText concatenates fragment text in order with no separator.
func FlattenRichText(fragments []notion.RichText) string {
	var b strings.Builder
	for _, f := range fragments {
		b.WriteString(f.PlainText)
	}
	return b.String()
}

// ToKVEntry converts a settings record. The key is the flattened title, or
// the record id when the title is empty.
func ToKVEntry(page notion.Page) (key, value string) {
	key = titleText(page)
	if key == "" {
		key = page.ID
	}
	return key, richText(page, PropValue)
}

// ToWork converts a works record. Properties with unexpected shapes take
// their defaults.
func ToWork(page notion.Page) Work {
	w := Work{
		ID:          page.ID,
		Title:       titleText(page),
		Slug:        richText(page, PropSlug),
		Year:        intNumber(page, PropYear),
		Role:        selectName(page, PropRole),
		Featured:    checkbox(page, PropFeatured),
		Images:      ResolveFileURLs(fileRefs(page, PropImages)),
		Description: richText(page, PropDescription),
		Tags:        multiSelectNames(page, PropTags),
		Sort:        number(page, PropSort),
	}
	if w.Title == "" {
		w.Title = UntitledWork
	}
	if w.Slug == "" {
		w.Slug = page.ID
	}
	if thumbs := fileRefs(page, PropThumbnail); len(thumbs) > 0 {
		w.ThumbnailURL, _ = ResolveFileURL(thumbs[0])
	}
	return w
}

func titleText(page notion.Page) string {
	prop, ok := page.Property(PropName)
	if !ok {
		return ""
	}
	return FlattenRichText(prop.Title)
}

func richText(page notion.Page, name string) string {
	prop, ok := page.Property(name)
	if !ok {
		return ""
	}
	return FlattenRichText(prop.RichText)
}

func number(page notion.Page, name string) *float64 {
	prop, ok := page.Property(name)
	if !ok || prop.Number == nil || math.IsNaN(*prop.Number) {
		return nil
	}
	n := *prop.Number
	return &n
}

func intNumber(page notion.Page, name string) *int {
	n := number(page, name)
	if n == nil {
		return nil
	}
	i := int(math.Round(*n))
	return &i
}

func selectName(page notion.Page, name string) string {
	prop, ok := page.Property(name)
	if !ok || prop.Select == nil {
		return ""
	}
	return prop.Select.Name
}

func checkbox(page notion.Page, name string) bool {
	prop, ok := page.Property(name)
	return ok && prop.Checkbox != nil && *prop.Checkbox
}

func multiSelectNames(page notion.Page, name string) []string {
	prop, ok := page.Property(name)
	if !ok {
		return []string{}
	}
	names := make([]string, 0, len(prop.MultiSelect))
	for _, opt := range prop.MultiSelect {
		names = append(names, opt.Name)
	}
	return names
}
