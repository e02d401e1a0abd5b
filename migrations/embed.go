// Package migrations embeds the SQL migrations of the identity store so the
// API process and tests apply them through goose without a filesystem path.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
