package notion

import "encoding/json"

// Page is one record of a data source: an identifier plus a bag of named
// properties kept raw so that a single malformed property cannot fail the
// decode of the whole response.
type Page struct {
	ID         string
	Properties map[string]json.RawMessage
}

// UnmarshalJSON decodes a page leniently. A properties value that is not a
// JSON object leaves Properties nil instead of failing.
func (p *Page) UnmarshalJSON(data []byte) error {
	var raw struct {
		ID         string          `json:"id"`
		Properties json.RawMessage `json:"properties"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	p.ID = raw.ID
	p.Properties = nil
	if len(raw.Properties) > 0 {
		var props map[string]json.RawMessage
		if json.Unmarshal(raw.Properties, &props) == nil {
			p.Properties = props
		}
	}
	return nil
}

// MarshalJSON encodes the page in the same shape the API returns.
func (p Page) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Object     string                     `json:"object"`
		ID         string                     `json:"id"`
		Properties map[string]json.RawMessage `json:"properties"`
	}{Object: "page", ID: p.ID, Properties: p.Properties})
}

// Property decodes the named property. It reports false when the property is
// missing or its JSON does not match any known property shape.
func (p Page) Property(name string) (Property, bool) {
	raw, ok := p.Properties[name]
	if !ok || len(raw) == 0 {
		return Property{}, false
	}
	var prop Property
	if err := json.Unmarshal(raw, &prop); err != nil {
		return Property{}, false
	}
	return prop, true
}

// Property is the union of the property value shapes the portfolio reads.
// Only the field matching Type is populated by the API.
type Property struct {
	Type        string            `json:"type,omitempty"`
	Title       []RichText        `json:"title,omitempty"`
	RichText    []RichText        `json:"rich_text,omitempty"`
	Number      *float64          `json:"number,omitempty"`
	Select      *SelectOption     `json:"select,omitempty"`
	MultiSelect []SelectOption    `json:"multi_select,omitempty"`
	Checkbox    *bool             `json:"checkbox,omitempty"`
	Files       []json.RawMessage `json:"files,omitempty"`
}

// RichText is one fragment of a title or rich_text value.
type RichText struct {
	PlainText string `json:"plain_text"`
}

// SelectOption is a select or multi_select choice.
type SelectOption struct {
	Name string `json:"name"`
}

// FileObject is the wire shape of one entry of a files property.
type FileObject struct {
	Type     string   `json:"type"`
	Name     string   `json:"name,omitempty"`
	File     *FileURL `json:"file,omitempty"`
	External *FileURL `json:"external,omitempty"`
}

// FileURL carries the URL of a hosted upload or an external link.
type FileURL struct {
	URL *string `json:"url"`
}

// Database is the subset of a database object the resolver needs.
type Database struct {
	ID          string          `json:"id"`
	DataSources []DataSourceRef `json:"data_sources"`
}

// DataSourceRef names one child data source of a database.
type DataSourceRef struct {
	ID   string `json:"id"`
	Name string `json:"name,omitempty"`
}

// QueryRequest is the body of a data source query.
type QueryRequest struct {
	Filter      *Filter `json:"filter,omitempty"`
	Sorts       []Sort  `json:"sorts,omitempty"`
	PageSize    int     `json:"page_size,omitempty"`
	StartCursor string  `json:"start_cursor,omitempty"`
}

// Filter is a single-property filter condition.
type Filter struct {
	Property string             `json:"property"`
	Checkbox *CheckboxCondition `json:"checkbox,omitempty"`
	Title    *TextCondition     `json:"title,omitempty"`
}

// CheckboxCondition matches checkbox properties.
type CheckboxCondition struct {
	Equals bool `json:"equals"`
}

// TextCondition matches title and rich_text properties.
type TextCondition struct {
	Equals string `json:"equals"`
}

// Sort directions.
const (
	Ascending  = "ascending"
	Descending = "descending"
)

// Sort orders results by one property.
type Sort struct {
	Property  string `json:"property"`
	Direction string `json:"direction"`
}

// QueryResponse is one page of query results.
type QueryResponse struct {
	Results    []Page
	HasMore    bool
	NextCursor string
	// Malformed counts result entries that were not page objects and were
	// skipped.
	Malformed int
}

type queryResponseWire struct {
	Results    []json.RawMessage `json:"results"`
	HasMore    bool              `json:"has_more"`
	NextCursor *string           `json:"next_cursor"`
}

type errorResponseWire struct {
	Object  string `json:"object"`
	Status  int    `json:"status"`
	Code    string `json:"code"`
	Message string `json:"message"`
}
