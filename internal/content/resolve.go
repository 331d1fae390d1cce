package content

import (
	"context"
	"strings"

	apperrors "github.com/bfarth20/malexanderportfolio/internal/platform/errors"
)

// ResolveSource returns the data source id to query for ref.
//
// An explicit data source id wins without any network call. Otherwise the
// legacy database is looked up once and its first data source is used. The
// result is not cached.
func ResolveSource(ctx context.Context, store Store, ref SourceRef) (string, error) {
	if strings.TrimSpace(ref.DataSourceID) != "" {
		return ref.DataSourceID, nil
	}
	databaseID := strings.TrimSpace(ref.DatabaseID)
	if databaseID == "" {
		return "", apperrors.New(apperrors.CodeConfiguration, "no source identifiers available")
	}
	if store == nil {
		return "", apperrors.New(apperrors.CodeConfiguration, "content store is not configured")
	}
	children, err := store.DataSources(ctx, databaseID)
	if err != nil {
		return "", apperrors.WrapWithMetadata(apperrors.CodeFetch, "retrieve database", map[string]string{"database_id": databaseID}, err)
	}
	if len(children) == 0 {
		return "", apperrors.WithMetadata(apperrors.CodeConfiguration, "no data sources found on database", map[string]string{"database_id": databaseID})
	}
	return children[0], nil
}
