package about

import (
	"context"

	"github.com/bfarth20/malexanderportfolio/internal/content"
	"github.com/bfarth20/malexanderportfolio/internal/services/web/platform/publichandler"
	webtemplates "github.com/bfarth20/malexanderportfolio/internal/services/web/templates"
	"go.uber.org/zap"
)

const pageKey = "about"

// headshotAssets are the asset names probed, in order, when no explicit
// headshot URL is configured.
var headshotAssets = []string{"headshot", "Assets/headshot"}

type aboutData struct {
	Settings    content.SiteSettings
	HeadshotURL string
}

type service struct {
	base publichandler.Base
}

func newService(base publichandler.Base) service {
	return service{base: base}
}

func (s service) load(ctx context.Context) (aboutData, error) {
	return publichandler.Load(ctx, s.base, pageKey, s.fetch)
}

// fetch reads settings, then the headshot asset when settings do not name
// one. Asset failures leave the page without an image.
func (s service) fetch(ctx context.Context) (aboutData, error) {
	settings, err := s.base.Content().SiteSettings(ctx)
	if err != nil {
		return aboutData{}, err
	}
	data := aboutData{
		Settings:    settings,
		HeadshotURL: settings.Get(webtemplates.KeyAboutHeadshotURL, ""),
	}
	if data.HeadshotURL != "" {
		return data, nil
	}
	assetURL, found, err := s.base.Content().ResolveAsset(ctx, headshotAssets...)
	if err != nil {
		s.base.Logger().Warn("headshot lookup failed", zap.Strings("candidates", headshotAssets), zap.Error(err))
		return data, nil
	}
	if found {
		data.HeadshotURL = assetURL
	}
	return data, nil
}

func aboutView(data aboutData) webtemplates.AboutView {
	return webtemplates.AboutView{
		Bio:         data.Settings.Get(webtemplates.KeyAboutBio, webtemplates.DefaultAboutBio),
		HeadshotURL: data.HeadshotURL,
	}
}
