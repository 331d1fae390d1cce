package content

import (
	"context"

	"github.com/bfarth20/malexanderportfolio/internal/notion"
)

// Store is the remote content store surface the portfolio consumes.
// *notion.Client satisfies it; tests substitute fixtures.
type Store interface {
	// DataSources enumerates the child data source ids of a database.
	DataSources(ctx context.Context, databaseID string) ([]string, error)
	// Query returns one page of raw records from a data source.
	Query(ctx context.Context, dataSourceID string, req notion.QueryRequest) (notion.QueryResponse, error)
	// QueryAsset returns the record titled name, if any.
	QueryAsset(ctx context.Context, dataSourceID, name string) (notion.Page, bool, error)
}

// SourceRef identifies a queryable source either directly or through the
// legacy database that contains it.
type SourceRef struct {
	DataSourceID string
	DatabaseID   string
}

// IsZero reports whether neither identifier is set.
func (r SourceRef) IsZero() bool {
	return r.DataSourceID == "" && r.DatabaseID == ""
}

// Sources groups the configured source identifiers.
type Sources struct {
	Settings SourceRef
	Works    SourceRef
	// Assets falls back to Settings when zero.
	Assets SourceRef
}

func (s Sources) assets() SourceRef {
	if s.Assets.IsZero() {
		return s.Settings
	}
	return s.Assets
}
