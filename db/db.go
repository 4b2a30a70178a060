// Package db embeds the SQL schema migrations so the binary can apply them
// at startup without shipping migration files alongside it.
package db

import "embed"

//go:embed migrations/*.sql
var Migrations embed.FS
