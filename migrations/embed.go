// Package migrations embeds the SQL migration files so the goose
// programmatic API can apply them from the binary, both at server boot
// and in integration-test setup.
package migrations

import "embed"

// FS holds all *.sql migration files embedded at compile time.
//
//go:embed *.sql
var FS embed.FS
