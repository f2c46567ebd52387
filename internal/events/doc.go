// Package events publishes hub activity to the MQTT bus.
//
// Publisher implements both device.Notifier and hub.Observer, so one value
// can be plugged into the notifier fan-out and the observer list:
//
//	graylogic/hub/{site}/notification          every notification line
//	graylogic/hub/{site}/dispatch/{op}         every activate/deactivate/undo
//	graylogic/hub/{site}/status                status report (retained)
//	graylogic/hub/{site}/device/{id}/state     device snapshot (retained)
//
// Every event carries a unique "evt-" ID. Publish failures are logged and
// swallowed; the hub never sees them.
package events
