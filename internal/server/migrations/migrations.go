// Package migrations embeds the server's forward-only SQL migrations.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
