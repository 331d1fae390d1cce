// Package routepath stores canonical HTTP paths for web modules.
package routepath

import "net/url"

const (
	Root          = "/"
	Portfolio     = "/portfolio"
	About         = "/about"
	Contact       = "/contact"
	Health        = "/up"
	Metrics       = "/metrics"
	StaticPrefix  = "/static/"
	RoleQueryName = "role"
)

// PortfolioRole returns the portfolio path filtered to role. An empty role
// returns the unfiltered portfolio path.
func PortfolioRole(role string) string {
	if role == "" {
		return Portfolio
	}
	return Portfolio + "?" + url.Values{RoleQueryName: []string{role}}.Encode()
}

// Static returns the URL for an embedded static asset.
func Static(name string) string {
	return StaticPrefix + name
}
