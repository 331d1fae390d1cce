package content

import (
	"encoding/json"
	"testing"

	"github.com/bfarth20/malexanderportfolio/internal/notion"
	"github.com/google/go-cmp/cmp"
)

func rawPage(t *testing.T, id string, props map[string]string) notion.Page {
	t.Helper()
	page := notion.Page{ID: id, Properties: map[string]json.RawMessage{}}
	for name, raw := range props {
		if !json.Valid([]byte(raw)) {
			t.Fatalf("property %s: invalid json %s", name, raw)
		}
		page.Properties[name] = json.RawMessage(raw)
	}
	return page
}

func intPtr(v int) *int           { return &v }
func floatPtr(v float64) *float64 { return &v }

func TestFlattenRichTextConcatenatesInOrder(t *testing.T) {
	t.Parallel()

	got := FlattenRichText([]notion.RichText{{PlainText: "Ink "}, {PlainText: ""}, {PlainText: "on paper"}})
	if got != "Ink on paper" {
		t.Fatalf("FlattenRichText() = %q", got)
	}
	if FlattenRichText(nil) != "" {
		t.Fatal("expected empty string for nil fragments")
	}
}

func TestToKVEntry(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		page      notion.Page
		wantKey   string
		wantValue string
	}{
		{
			name: "title and value",
			page: rawPage(t, "kv-1", map[string]string{
				"Name":  `{"type":"title","title":[{"plain_text":"home_"},{"plain_text":"title"}]}`,
				"Value": `{"type":"rich_text","rich_text":[{"plain_text":"M. Alexander"}]}`,
			}),
			wantKey:   "home_title",
			wantValue: "M. Alexander",
		},
		{
			name:      "empty title falls back to id",
			page:      rawPage(t, "kv-2", map[string]string{"Name": `{"title":[]}`, "Value": `{"rich_text":[{"plain_text":"x"}]}`}),
			wantKey:   "kv-2",
			wantValue: "x",
		},
		{
			name:    "malformed title falls back to id",
			page:    rawPage(t, "kv-3", map[string]string{"Name": `{"title":"nope"}`}),
			wantKey: "kv-3",
		},
		{
			name:    "no properties",
			page:    notion.Page{ID: "kv-4"},
			wantKey: "kv-4",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			key, value := ToKVEntry(tc.page)
			if key != tc.wantKey || value != tc.wantValue {
				t.Fatalf("ToKVEntry() = (%q, %q), want (%q, %q)", key, value, tc.wantKey, tc.wantValue)
			}
		})
	}
}

func TestToWorkReadsAllFields(t *testing.T) {
	t.Parallel()

	page := rawPage(t, "w-1", map[string]string{
		"Name":        `{"title":[{"plain_text":"Moth"}]}`,
		"Slug":        `{"rich_text":[{"plain_text":"moth"}]}`,
		"Year":        `{"number":2021}`,
		"Role":        `{"select":{"name":"Illustration"}}`,
		"Featured":    `{"checkbox":true}`,
		"Thumbnail":   `{"files":[{"type":"file","file":{"url":"https://files.example.com/t.jpg"}}]}`,
		"Images":      `{"files":[{"type":"external","external":{"url":"https://cdn.example.com/1.jpg"}},{"type":"file","file":{"url":null}},{"type":"file","file":{"url":"https://files.example.com/2.jpg"}}]}`,
		"Description": `{"rich_text":[{"plain_text":"Ink"},{"plain_text":" on paper"}]}`,
		"Tags":        `{"multi_select":[{"name":"ink"},{"name":"insects"}]}`,
		"Sort":        `{"number":1.5}`,
	})

	want := Work{
		ID:           "w-1",
		Title:        "Moth",
		Slug:         "moth",
		Year:         intPtr(2021),
		Role:         "Illustration",
		Featured:     true,
		ThumbnailURL: "https://files.example.com/t.jpg",
		Images:       []string{"https://cdn.example.com/1.jpg", "https://files.example.com/2.jpg"},
		Description:  "Ink on paper",
		Tags:         []string{"ink", "insects"},
		Sort:         floatPtr(1.5),
	}
	if diff := cmp.Diff(want, ToWork(page)); diff != "" {
		t.Fatalf("ToWork() mismatch (-want +got):\n%s", diff)
	}
}

func TestToWorkDefaults(t *testing.T) {
	t.Parallel()

	page := rawPage(t, "w-2", map[string]string{
		"Name":      `{"title":[{"plain_text":""}]}`,
		"Year":      `{"number":null}`,
		"Role":      `{"select":null}`,
		"Featured":  `{"checkbox":"yes"}`,
		"Thumbnail": `{"files":[{"type":"unknown"},{"type":"external","external":{"url":"https://cdn.example.com/later.jpg"}}]}`,
		"Images":    `{"files":"broken"}`,
	})

	want := Work{
		ID:     "w-2",
		Title:  UntitledWork,
		Slug:   "w-2",
		Images: []string{},
		Tags:   []string{},
	}
	got := ToWork(page)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("ToWork() mismatch (-want +got):\n%s", diff)
	}
	if got.Images == nil || got.Tags == nil {
		t.Fatal("Images and Tags must never be nil")
	}
}

func TestToWorkIsPure(t *testing.T) {
	t.Parallel()

	page := rawPage(t, "w-3", map[string]string{
		"Name":   `{"title":[{"plain_text":"Harbor"}]}`,
		"Year":   `{"number":2019}`,
		"Images": `{"files":[{"type":"external","external":{"url":"https://cdn.example.com/h.jpg"}}]}`,
	})
	first := ToWork(page)
	second := ToWork(page)
	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("ToWork() not idempotent (-first +second):\n%s", diff)
	}
}

func TestResolveFileURLs(t *testing.T) {
	t.Parallel()

	refs := []FileRef{
		HostedFile{URL: "https://files.example.com/a.jpg"},
		HostedFile{},
		ExternalFile{URL: "https://cdn.example.com/b.jpg"},
		ExternalFile{},
		UnknownFile{Type: "pdf"},
		nil,
	}
	got := ResolveFileURLs(refs)
	want := []string{"https://files.example.com/a.jpg", "https://cdn.example.com/b.jpg"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("ResolveFileURLs() mismatch (-want +got):\n%s", diff)
	}

	resolvable := 0
	for _, ref := range refs {
		if _, ok := ResolveFileURL(ref); ok {
			resolvable++
		}
	}
	if len(got) != resolvable {
		t.Fatalf("len = %d, want %d resolvable refs", len(got), resolvable)
	}
	if empty := ResolveFileURLs(nil); empty == nil || len(empty) != 0 {
		t.Fatalf("ResolveFileURLs(nil) = %#v, want empty non-nil", empty)
	}
}

func TestDecodeFileRef(t *testing.T) {
	t.Parallel()

	tests := []struct {
		raw  string
		want FileRef
	}{
		{raw: `{"type":"file","file":{"url":"https://f/1"}}`, want: HostedFile{URL: "https://f/1"}},
		{raw: `{"type":"file"}`, want: HostedFile{}},
		{raw: `{"type":"external","external":{"url":"https://e/1"}}`, want: ExternalFile{URL: "https://e/1"}},
		{raw: `{"type":"file_upload","file_upload":{"id":"x"}}`, want: UnknownFile{Type: "file_upload"}},
		{raw: `"nonsense"`, want: UnknownFile{}},
	}
	for _, tc := range tests {
		if diff := cmp.Diff(tc.want, DecodeFileRef(json.RawMessage(tc.raw))); diff != "" {
			t.Fatalf("DecodeFileRef(%s) mismatch (-want +got):\n%s", tc.raw, diff)
		}
	}
}

func TestSiteSettingsGet(t *testing.T) {
	t.Parallel()

	s := SiteSettings{"home_title": "M. Alexander", "home_subtitle": ""}
	if got := s.Get("home_title", "Artist Name"); got != "M. Alexander" {
		t.Fatalf("Get(home_title) = %q", got)
	}
	if got := s.Get("home_subtitle", "fallback"); got != "fallback" {
		t.Fatalf("Get(empty) = %q", got)
	}
	if got := s.Get("missing", "fallback"); got != "fallback" {
		t.Fatalf("Get(missing) = %q", got)
	}
}
