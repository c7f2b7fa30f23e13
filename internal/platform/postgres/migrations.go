package postgres

import "embed"

// migrationsFS carries the goose migration scripts inside the binary so
// deployments never need the source tree.
//
//go:embed migrations/*.sql
var migrationsFS embed.FS
