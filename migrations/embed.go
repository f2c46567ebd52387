// Package migrations embeds the hub's SQL migration files into the binary.
//
// Importing this package for its side effect registers the files with the
// database package, so the audit schema can be created without the SQL
// files on disk.
package migrations

import (
	"embed"

	"github.com/nerrad567/gray-logic-hub/internal/infrastructure/database"
)

//go:embed *.sql
var migrationsFS embed.FS

func init() {
	database.MigrationsFS = migrationsFS
	database.MigrationsDir = "."
}
