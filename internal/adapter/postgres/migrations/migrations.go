// Package migrations embeds the SQL migration files so the migrate binary
// and the integration test harness share one schema source.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
