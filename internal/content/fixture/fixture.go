// Package fixture provides a content store backed by a YAML document. It
// answers the same three calls as the hosted store so pages and the content
// layer can run against deterministic data.
package fixture

import (
	"cmp"
	"context"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"slices"
	"sync"

	"github.com/bfarth20/malexanderportfolio/internal/notion"
	"gopkg.in/yaml.v3"
)

// Document is the YAML layout of a fixture file.
type Document struct {
	// Databases maps a database id to its data source ids, in order.
	Databases map[string][]string `yaml:"databases"`
	// DataSources maps a data source id to its records, in remote order.
	DataSources map[string][]Record `yaml:"data_sources"`
}

// Record is one fixture page.
type Record struct {
	ID         string              `yaml:"id"`
	Properties map[string]Property `yaml:"properties"`
}

// Property is a compact spelling of one property value. Exactly one field
// should be set.
type Property struct {
	Title       *string  `yaml:"title"`
	RichText    *string  `yaml:"rich_text"`
	Number      *float64 `yaml:"number"`
	Select      *string  `yaml:"select"`
	MultiSelect []string `yaml:"multi_select"`
	Checkbox    *bool    `yaml:"checkbox"`
	Files       []File   `yaml:"files"`
	// Raw is copied verbatim, for records that need a malformed shape.
	Raw string `yaml:"raw"`
}

// File is one files entry: set File for a hosted upload, External for a link,
// or Type alone for a shape the portfolio does not understand.
type File struct {
	File     string `yaml:"file"`
	External string `yaml:"external"`
	Type     string `yaml:"type"`
}

// Store serves a Document. Calls are counted so tests can assert on the
// number of round trips.
type Store struct {
	doc Document

	mu    sync.Mutex
	calls map[string]int
	fail  map[string]error
}

// Load reads a fixture file from disk.
func Load(path string) (*Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read fixture %s: %w", path, err)
	}
	return Parse(data)
}

// LoadFS reads a fixture file from fsys.
func LoadFS(fsys fs.FS, path string) (*Store, error) {
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("read fixture %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes a YAML fixture document.
func Parse(data []byte) (*Store, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse fixture: %w", err)
	}
	return New(doc), nil
}

// New serves doc.
func New(doc Document) *Store {
	return &Store{doc: doc, calls: map[string]int{}, fail: map[string]error{}}
}

// FailOn makes every call touching id (a database or data source) return err.
func (s *Store) FailOn(id string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fail[id] = err
}

// Calls returns how many calls of kind ("data_sources", "query", "asset")
// were made.
func (s *Store) Calls(kind string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls[kind]
}

func (s *Store) record(kind, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls[kind]++
	return s.fail[id]
}

// DataSources implements content.Store.
func (s *Store) DataSources(ctx context.Context, databaseID string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := s.record("data_sources", databaseID); err != nil {
		return nil, err
	}
	children, ok := s.doc.Databases[databaseID]
	if !ok {
		return nil, &notion.APIError{StatusCode: 404, Code: "object_not_found", Message: "database " + databaseID + " not found"}
	}
	return slices.Clone(children), nil
}

// Query implements content.Store. It honours checkbox and title filters,
// number sorts (missing values last) and the page size.
func (s *Store) Query(ctx context.Context, dataSourceID string, req notion.QueryRequest) (notion.QueryResponse, error) {
	if err := ctx.Err(); err != nil {
		return notion.QueryResponse{}, err
	}
	if err := s.record("query", dataSourceID); err != nil {
		return notion.QueryResponse{}, err
	}
	return s.query(dataSourceID, req)
}

// QueryAsset implements content.Store.
func (s *Store) QueryAsset(ctx context.Context, dataSourceID, name string) (notion.Page, bool, error) {
	if err := ctx.Err(); err != nil {
		return notion.Page{}, false, err
	}
	if err := s.record("asset", dataSourceID); err != nil {
		return notion.Page{}, false, err
	}
	resp, err := s.query(dataSourceID, notion.QueryRequest{
		Filter:   &notion.Filter{Property: "Name", Title: &notion.TextCondition{Equals: name}},
		PageSize: 1,
	})
	if err != nil || len(resp.Results) == 0 {
		return notion.Page{}, false, err
	}
	return resp.Results[0], true, nil
}

func (s *Store) query(dataSourceID string, req notion.QueryRequest) (notion.QueryResponse, error) {
	records, ok := s.doc.DataSources[dataSourceID]
	if !ok {
		return notion.QueryResponse{}, &notion.APIError{StatusCode: 404, Code: "object_not_found", Message: "data source " + dataSourceID + " not found"}
	}
	pages := make([]notion.Page, 0, len(records))
	for _, rec := range records {
		page, err := rec.page()
		if err != nil {
			return notion.QueryResponse{}, err
		}
		if matches(page, req.Filter) {
			pages = append(pages, page)
		}
	}
	for i := len(req.Sorts) - 1; i >= 0; i-- {
		sortPages(pages, req.Sorts[i])
	}
	size := req.PageSize
	if size <= 0 || size > notion.MaxPageSize {
		size = notion.MaxPageSize
	}
	resp := notion.QueryResponse{Results: pages}
	if len(pages) > size {
		resp.Results = pages[:size]
		resp.HasMore = true
		resp.NextCursor = pages[size].ID
	}
	return resp, nil
}

func matches(page notion.Page, filter *notion.Filter) bool {
	if filter == nil {
		return true
	}
	prop, _ := page.Property(filter.Property)
	switch {
	case filter.Checkbox != nil:
		value := prop.Checkbox != nil && *prop.Checkbox
		return value == filter.Checkbox.Equals
	case filter.Title != nil:
		var text string
		for _, f := range prop.Title {
			text += f.PlainText
		}
		return text == filter.Title.Equals
	default:
		return true
	}
}

func sortPages(pages []notion.Page, by notion.Sort) {
	slices.SortStableFunc(pages, func(a, b notion.Page) int {
		av, aok := numberOf(a, by.Property)
		bv, bok := numberOf(b, by.Property)
		switch {
		case !aok && !bok:
			return 0
		case !aok:
			return 1
		case !bok:
			return -1
		}
		if by.Direction == notion.Descending {
			return cmp.Compare(bv, av)
		}
		return cmp.Compare(av, bv)
	})
}

func numberOf(page notion.Page, name string) (float64, bool) {
	prop, ok := page.Property(name)
	if !ok || prop.Number == nil {
		return 0, false
	}
	return *prop.Number, true
}

func (r Record) page() (notion.Page, error) {
	page := notion.Page{ID: r.ID, Properties: make(map[string]json.RawMessage, len(r.Properties))}
	for name, prop := range r.Properties {
		raw, err := prop.wire()
		if err != nil {
			return notion.Page{}, fmt.Errorf("record %s property %s: %w", r.ID, name, err)
		}
		page.Properties[name] = raw
	}
	return page, nil
}

func (p Property) wire() (json.RawMessage, error) {
	if p.Raw != "" {
		return json.RawMessage(p.Raw), nil
	}
	var out notion.Property
	switch {
	case p.Title != nil:
		out = notion.Property{Type: "title", Title: []notion.RichText{{PlainText: *p.Title}}}
	case p.RichText != nil:
		out = notion.Property{Type: "rich_text", RichText: []notion.RichText{{PlainText: *p.RichText}}}
	case p.Number != nil:
		out = notion.Property{Type: "number", Number: p.Number}
	case p.Select != nil:
		out = notion.Property{Type: "select", Select: &notion.SelectOption{Name: *p.Select}}
	case p.MultiSelect != nil:
		out = notion.Property{Type: "multi_select", MultiSelect: make([]notion.SelectOption, 0, len(p.MultiSelect))}
		for _, name := range p.MultiSelect {
			out.MultiSelect = append(out.MultiSelect, notion.SelectOption{Name: name})
		}
	case p.Checkbox != nil:
		out = notion.Property{Type: "checkbox", Checkbox: p.Checkbox}
	case p.Files != nil:
		out = notion.Property{Type: "files"}
		for _, f := range p.Files {
			raw, err := json.Marshal(f.wire())
			if err != nil {
				return nil, err
			}
			out.Files = append(out.Files, raw)
		}
	}
	return json.Marshal(out)
}

func (f File) wire() notion.FileObject {
	switch {
	case f.File != "":
		u := f.File
		return notion.FileObject{Type: "file", File: &notion.FileURL{URL: &u}}
	case f.External != "":
		u := f.External
		return notion.FileObject{Type: "external", External: &notion.FileURL{URL: &u}}
	default:
		return notion.FileObject{Type: f.Type}
	}
}
