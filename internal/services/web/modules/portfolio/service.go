package portfolio

import (
	"context"

	"github.com/bfarth20/malexanderportfolio/internal/content"
	"github.com/bfarth20/malexanderportfolio/internal/content/catalog"
	"github.com/bfarth20/malexanderportfolio/internal/services/web/platform/publichandler"
	webtemplates "github.com/bfarth20/malexanderportfolio/internal/services/web/templates"
)

const pageKey = "portfolio"

// catalogData is the cached page snapshot: works already in display order
// and their role facets.
type catalogData struct {
	Settings content.SiteSettings
	Works    []content.Work
	Roles    []string
}

type service struct {
	base publichandler.Base
}

func newService(base publichandler.Base) service {
	return service{base: base}
}

func (s service) load(ctx context.Context) (catalogData, error) {
	return publichandler.Load(ctx, s.base, pageKey, s.fetch)
}

func (s service) fetch(ctx context.Context) (catalogData, error) {
	data, err := publichandler.FetchSettingsAndWorks(ctx, s.base.Content(), content.WorksFilter{})
	if err != nil {
		return catalogData{}, err
	}
	return catalogData{
		Settings: data.Settings,
		Works:    catalog.OrderLocale(data.Works, s.base.Locale()),
		Roles:    catalog.Roles(data.Works),
	}, nil
}

func portfolioView(data catalogData, role string) webtemplates.PortfolioView {
	return webtemplates.PortfolioView{
		Roles:      data.Roles,
		ActiveRole: role,
		Works:      webtemplates.NewCards(catalog.FilterByRole(data.Works, role)),
		Total:      len(data.Works),
	}
}
