package home

import (
	"context"

	"github.com/bfarth20/malexanderportfolio/internal/content"
	"github.com/bfarth20/malexanderportfolio/internal/services/web/platform/publichandler"
	webtemplates "github.com/bfarth20/malexanderportfolio/internal/services/web/templates"
)

const pageKey = "home"

type service struct {
	base publichandler.Base
}

func newService(base publichandler.Base) service {
	return service{base: base}
}

// load returns settings and featured works, fetched concurrently on refresh.
// Featured works keep the store's newest-first order.
func (s service) load(ctx context.Context) (publichandler.SettingsAndWorks, error) {
	return publichandler.Load(ctx, s.base, pageKey, func(ctx context.Context) (publichandler.SettingsAndWorks, error) {
		return publichandler.FetchSettingsAndWorks(ctx, s.base.Content(), content.WorksFilter{FeaturedOnly: true})
	})
}

func homeView(data publichandler.SettingsAndWorks) webtemplates.HomeView {
	return webtemplates.HomeView{
		Title:    data.Settings.Get(webtemplates.KeyHomeTitle, webtemplates.DefaultHomeTitle),
		Subtitle: data.Settings.Get(webtemplates.KeyHomeSubtitle, webtemplates.DefaultHomeSubtitle),
		Featured: webtemplates.NewCards(data.Works),
	}
}
