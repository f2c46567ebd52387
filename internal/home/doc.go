// Package home assembles a running hub from configuration.
//
// Build creates every configured device with the shared notifier, stores
// them in a device.Registry, creates the hub with the configured slot
// count and observers, and binds each configured slot to the canonical
// action pair of its device (see command.ForDevice).
//
// Usage:
//
//	h, err := home.Build(cfg, home.Options{Notifier: console, Logger: log})
//	if err != nil {
//	    return err
//	}
//	h.Hub.TriggerActivate(0)
package home
