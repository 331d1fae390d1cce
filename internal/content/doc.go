// Package content turns records from the hosted content store into the two
// shapes the portfolio renders: a key/value map of site settings and a list
// of works.
//
// The flow for every fetch is resolve source -> query -> normalize. Nothing is
// cached here; the web layer decides how often pages are refreshed.
package content
