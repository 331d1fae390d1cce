package fixture

import (
	_ "embed"
	"fmt"
)

// Database ids of the bundled sample site.
const (
	SampleSettingsDatabase = "db-site"
	SampleWorksDatabase    = "db-works"
)

//go:embed sample.yaml
var sample []byte

// Sample returns a fresh store serving the bundled sample site: a few
// settings, a headshot asset, and works covering hosted, external, unknown,
// missing and malformed values.
func Sample() *Store {
	store, err := Parse(sample)
	if err != nil {
		panic(fmt.Sprintf("fixture: bundled sample does not parse: %v", err))
	}
	return store
}
