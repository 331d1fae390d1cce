// Package web serves the portfolio site: page modules composed on one root
// mux, embedded static assets, and the prometheus scrape endpoint.
package web
