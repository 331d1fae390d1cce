package content

import (
	"context"
	"strings"

	apperrors "github.com/bfarth20/malexanderportfolio/internal/platform/errors"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// ResolveAsset probes candidate asset names in order and returns the URL of
// the first one that resolves. Later candidates are not queried once one
// resolves. Finding nothing is not an error.
func (s *Service) ResolveAsset(ctx context.Context, candidates ...string) (assetURL string, found bool, err error) {
	ctx, finish := s.begin(ctx, OpAsset)
	defer func() { finish(err) }()

	sourceID, err := ResolveSource(ctx, s.store, s.sources.assets())
	if err != nil {
		return "", false, err
	}
	if s.store == nil {
		return "", false, apperrors.New(apperrors.CodeConfiguration, "content store is not configured")
	}
	span := trace.SpanFromContext(ctx)
	for _, name := range candidates {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		page, ok, err := s.store.QueryAsset(ctx, sourceID, name)
		if err != nil {
			return "", false, apperrors.WrapWithMetadata(apperrors.CodeFetch, "query asset", map[string]string{"data_source_id": sourceID, "asset": name}, err)
		}
		if !ok {
			continue
		}
		refs := fileRefs(page, PropFile)
		if len(refs) == 0 {
			continue
		}
		if u, ok := ResolveFileURL(refs[0]); ok {
			span.SetAttributes(attribute.String("content.asset", name))
			return u, true, nil
		}
	}
	return "", false, nil
}
