// ABOUTME: Embedded SQL migrations applied with goose at startup
// ABOUTME: Owns the sync-engine schema: feeds, articles, queue, usage, runs

package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
