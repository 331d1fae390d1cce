// Package catalog derives the view models the portfolio pages render from a
// normalized list of works: role facets, role filtering, display order, and
// cover/gallery image selection.
package catalog

import (
	"cmp"
	"slices"
	"strings"

	"github.com/bfarth20/malexanderportfolio/internal/content"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// DefaultLocale orders titles when no locale is configured.
var DefaultLocale = language.AmericanEnglish

// Roles returns the distinct non-blank roles in ascending order.
func Roles(works []content.Work) []string {
	seen := make(map[string]struct{}, len(works))
	roles := make([]string, 0, len(works))
	for _, w := range works {
		if strings.TrimSpace(w.Role) == "" {
			continue
		}
		if _, ok := seen[w.Role]; ok {
			continue
		}
		seen[w.Role] = struct{}{}
		roles = append(roles, w.Role)
	}
	slices.Sort(roles)
	return roles
}

// FilterByRole returns the works whose role equals role exactly. An empty
// role selects every work.
func FilterByRole(works []content.Work, role string) []content.Work {
	if role == "" {
		return slices.Clone(works)
	}
	filtered := make([]content.Work, 0, len(works))
	for _, w := range works {
		if w.Role == role {
			filtered = append(filtered, w)
		}
	}
	return filtered
}

// Order returns works in display order using DefaultLocale for titles.
func Order(works []content.Work) []content.Work {
	return OrderLocale(works, DefaultLocale)
}

// OrderLocale returns a sorted copy of works: explicit rank ascending with
// unranked works last, then year descending with undated works last, then
// title in tag's collation, then id. The input is not modified.
func OrderLocale(works []content.Work, tag language.Tag) []content.Work {
	ordered := slices.Clone(works)
	// Collators keep internal buffers, so each call gets its own.
	col := collate.New(tag)
	slices.SortStableFunc(ordered, func(a, b content.Work) int {
		if c := compareRank(a.Sort, b.Sort); c != 0 {
			return c
		}
		if c := compareYear(a.Year, b.Year); c != 0 {
			return c
		}
		if c := col.CompareString(a.Title, b.Title); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})
	return ordered
}

func compareRank(a, b *float64) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return 1
	case b == nil:
		return -1
	}
	return cmp.Compare(*a, *b)
}

func compareYear(a, b *int) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return 1
	case b == nil:
		return -1
	}
	return cmp.Compare(*b, *a)
}

// Cover picks the image shown for a work's thumbnail: the thumbnail, else the
// first image.
func Cover(w content.Work) (string, bool) {
	if w.ThumbnailURL != "" {
		return w.ThumbnailURL, true
	}
	if len(w.Images) > 0 {
		return w.Images[0], true
	}
	return "", false
}

// Gallery lists the images for full-size viewing: every image, else the
// cover alone, else nothing.
func Gallery(w content.Work) []string {
	if len(w.Images) > 0 {
		return slices.Clone(w.Images)
	}
	if cover, ok := Cover(w); ok {
		return []string{cover}
	}
	return []string{}
}
