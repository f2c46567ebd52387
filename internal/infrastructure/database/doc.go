// Package database provides SQLite connectivity for the Gray Logic Hub audit trail.
//
// This package manages:
//   - Database connection with WAL mode for concurrent reads
//   - Schema migrations embedded in the binary
//   - Connection lifecycle and health checks
//
// The hub keeps no controller state in the database. The only tables are the
// append-only audit trail and the schema_migrations bookkeeping table.
//
// Usage:
//
//	db, err := database.Open(database.ConfigFrom(cfg.Database))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer db.Close()
//
//	if err := db.Migrate(ctx); err != nil {
//	    log.Fatal(err)
//	}
//
// Migration files are named YYYYMMDD_HHMMSS_description.up.sql with a
// matching .down.sql, and are registered by the migrations package.
package database
