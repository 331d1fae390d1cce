package contact

import (
	"context"

	"github.com/bfarth20/malexanderportfolio/internal/content"
	"github.com/bfarth20/malexanderportfolio/internal/services/web/platform/publichandler"
	webtemplates "github.com/bfarth20/malexanderportfolio/internal/services/web/templates"
)

const pageKey = "contact"

type service struct {
	base publichandler.Base
}

func newService(base publichandler.Base) service {
	return service{base: base}
}

func (s service) load(ctx context.Context) (content.SiteSettings, error) {
	return publichandler.Load(ctx, s.base, pageKey, s.base.Content().SiteSettings)
}

func contactView(settings content.SiteSettings) webtemplates.ContactView {
	return webtemplates.ContactView{
		Email:     settings.Get(webtemplates.KeyContactEmail, webtemplates.DefaultContactEmail),
		Instagram: settings.Get(webtemplates.KeySocialInstagram, ""),
		Twitter:   settings.Get(webtemplates.KeySocialTwitter, ""),
		Website:   settings.Get(webtemplates.KeySocialWebsite, ""),
	}
}
