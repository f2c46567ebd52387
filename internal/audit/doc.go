// Package audit records hub dispatches in the SQLite audit_logs table and
// lets callers page through them.
//
// Recorder is a hub.Observer: attach it with hub.WithObserver and every
// activate, deactivate and undo is written as one row. Write failures are
// logged and never reach the hub. The table is append-only and is not used
// to restore hub state on startup.
package audit
