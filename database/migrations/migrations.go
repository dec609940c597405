// Package migrations embeds the Oracle schema. Each .up.sql file holds exactly
// one statement without a trailing semicolon, as go-ora executes one at a time.
package migrations

import "embed"

//go:embed *.up.sql
var FS embed.FS
