package content

import (
	"context"
	"time"

	"github.com/bfarth20/malexanderportfolio/internal/notion"
	apperrors "github.com/bfarth20/malexanderportfolio/internal/platform/errors"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

const tracerName = "github.com/bfarth20/malexanderportfolio/internal/content"

// Operation names reported to the Recorder.
const (
	OpSiteSettings = "site_settings"
	OpWorks        = "works"
	OpAsset        = "asset"
)

// Recorder observes completed content operations.
type Recorder interface {
	ObserveFetch(operation string, elapsed time.Duration, err error)
}

// Option customizes a Service.
type Option func(*Service)

// WithLogger sets the logger used for truncation and malformed-record
// warnings.
func WithLogger(logger *zap.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithRecorder sets the operation recorder.
func WithRecorder(r Recorder) Option {
	return func(s *Service) {
		s.recorder = r
	}
}

// Service fetches and normalizes site content. It holds no mutable state and
// is safe for concurrent use.
type Service struct {
	store    Store
	sources  Sources
	logger   *zap.Logger
	recorder Recorder
	tracer   trace.Tracer
	now      func() time.Time
}

// NewService builds a Service reading from store.
func NewService(store Store, sources Sources, opts ...Option) *Service {
	s := &Service{
		store:   store,
		sources: sources,
		logger:  zap.NewNop(),
		tracer:  otel.Tracer(tracerName),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SiteSettings fetches the settings source as a key/value map. When two
// records share a key, the later one in remote order wins.
func (s *Service) SiteSettings(ctx context.Context) (settings SiteSettings, err error) {
	ctx, finish := s.begin(ctx, OpSiteSettings)
	defer func() { finish(err) }()

	sourceID, err := ResolveSource(ctx, s.store, s.sources.Settings)
	if err != nil {
		return nil, err
	}
	resp, err := s.query(ctx, OpSiteSettings, sourceID, notion.QueryRequest{PageSize: notion.MaxPageSize})
	if err != nil {
		return nil, err
	}
	settings = make(SiteSettings, len(resp.Results))
	for _, page := range resp.Results {
		key, value := ToKVEntry(page)
		settings[key] = value
	}
	return settings, nil
}

// Works fetches works ordered by year descending, optionally only the
// featured ones. No matches yields an empty slice.
func (s *Service) Works(ctx context.Context, filter WorksFilter) (works []Work, err error) {
	ctx, finish := s.begin(ctx, OpWorks)
	defer func() { finish(err) }()
	trace.SpanFromContext(ctx).SetAttributes(attribute.Bool("content.featured_only", filter.FeaturedOnly))

	sourceID, err := ResolveSource(ctx, s.store, s.sources.Works)
	if err != nil {
		return nil, err
	}
	req := notion.QueryRequest{
		Sorts:    []notion.Sort{{Property: PropYear, Direction: notion.Descending}},
		PageSize: notion.MaxPageSize,
	}
	if filter.FeaturedOnly {
		req.Filter = &notion.Filter{Property: PropFeatured, Checkbox: &notion.CheckboxCondition{Equals: true}}
	}
	resp, err := s.query(ctx, OpWorks, sourceID, req)
	if err != nil {
		return nil, err
	}
	works = make([]Work, 0, len(resp.Results))
	for _, page := range resp.Results {
		works = append(works, ToWork(page))
	}
	return works, nil
}

func (s *Service) query(ctx context.Context, op, sourceID string, req notion.QueryRequest) (notion.QueryResponse, error) {
	if s.store == nil {
		return notion.QueryResponse{}, apperrors.New(apperrors.CodeConfiguration, "content store is not configured")
	}
	resp, err := s.store.Query(ctx, sourceID, req)
	if err != nil {
		return notion.QueryResponse{}, apperrors.WrapWithMetadata(apperrors.CodeFetch, "query data source", map[string]string{"data_source_id": sourceID}, err)
	}
	// Pagination is not followed: results past the first page are dropped.
	if resp.HasMore {
		s.logger.Warn("content query truncated to first page",
			zap.String("operation", op),
			zap.String("data_source_id", sourceID),
			zap.Int("page_size", req.PageSize),
		)
	}
	if resp.Malformed > 0 {
		s.logger.Warn("skipped malformed content records",
			zap.String("operation", op),
			zap.String("data_source_id", sourceID),
			zap.Int("count", resp.Malformed),
		)
	}
	return resp, nil
}

func (s *Service) begin(ctx context.Context, op string) (context.Context, func(error)) {
	ctx, span := s.tracer.Start(ctx, "content."+op)
	started := s.now()
	return ctx, func(err error) {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			span.SetAttributes(attribute.String("content.error_code", string(apperrors.CodeOf(err))))
		}
		span.End()
		if s.recorder != nil {
			s.recorder.ObserveFetch(op, s.now().Sub(started), err)
		}
	}
}
